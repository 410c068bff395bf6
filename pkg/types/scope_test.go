package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope_Construction(t *testing.T) {
	space := SpaceScope("space-1")
	assert.False(t, space.IsSprint())
	assert.Equal(t, "space-1", space.ID())
	assert.Equal(t, "space:space-1", space.String())

	sprint := SprintScope("sprint-1")
	assert.True(t, sprint.IsSprint())
	assert.Equal(t, "sprint-1", sprint.ID())
	assert.Equal(t, "sprint:sprint-1", sprint.String())
}

func TestScope_Comparability(t *testing.T) {
	// Same ID under different cases must not compare equal.
	assert.NotEqual(t, SpaceScope("x"), SprintScope("x"))
	assert.Equal(t, SpaceScope("x"), SpaceScope("x"))
}

func TestScope_ZeroIsInvalid(t *testing.T) {
	var s Scope
	assert.True(t, s.IsZero())
	assert.ErrorIs(t, s.Validate(), ErrInvalidScope)
	assert.NoError(t, SpaceScope("x").Validate())
}

func TestBacking_Construction(t *testing.T) {
	direct := DirectBacking("item-1")
	assert.False(t, direct.IsSprint())
	assert.Equal(t, "item-1", direct.ID())

	sprint := SprintBacking("sbi-1")
	assert.True(t, sprint.IsSprint())
	assert.Equal(t, "sbi-1", sprint.ID())
}

func TestBacking_ZeroIsInvalid(t *testing.T) {
	var b Backing
	assert.True(t, b.IsZero())
	assert.ErrorIs(t, b.Validate(), ErrInvalidBacking)
	assert.NoError(t, DirectBacking("item-1").Validate())
}
