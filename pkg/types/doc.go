// Package types defines the board entity types, the Scope and Backing
// unions, the assembled board view structures, and the standard error
// values shared by the storage and engine layers.
package types
