// Package printer provides colored terminal output for the boardkit CLI.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func init() {
	// Respect NO_COLOR; otherwise keep color on even without a TTY so
	// output piped through a pager stays readable.
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	faint  = color.New(color.Faint)
)

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ "+format+"\n", a...)
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf("! "+format+"\n", a...)
}

// Errorf prints an error message in red to stderr.
func Errorf(format string, a ...any) {
	red.Fprintf(os.Stderr, format+"\n", a...)
}

// Heading prints a board column heading in cyan.
func Heading(format string, a ...any) {
	cyan.Printf(format+"\n", a...)
}

// Detail prints secondary detail (ids, counts) in faint text.
func Detail(format string, a ...any) {
	faint.Printf(format+"\n", a...)
}
