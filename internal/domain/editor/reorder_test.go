package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorderMovesDown(t *testing.T) {
	ids := []string{"a", "b", "c"}

	// Dragging "a" over "c", pointer past the midpoint.
	got, moved := Reorder(ids, "a", "c", 30, 40)
	assert.True(t, moved)
	assert.Equal(t, []string{"b", "c", "a"}, got)
	// Input untouched.
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestReorderMovesUp(t *testing.T) {
	ids := []string{"a", "b", "c"}

	got, moved := Reorder(ids, "c", "a", 10, 40)
	assert.True(t, moved)
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestReorderSuppressesBeforeMidpoint(t *testing.T) {
	ids := []string{"a", "b", "c"}

	// Downward drag, pointer still above the hovered block's midpoint.
	got, moved := Reorder(ids, "a", "b", 10, 40)
	assert.False(t, moved)
	assert.Equal(t, ids, got)

	// Upward drag, pointer still below the midpoint.
	got, moved = Reorder(ids, "c", "b", 30, 40)
	assert.False(t, moved)
	assert.Equal(t, ids, got)
}

func TestReorderSameTargetIsNoOp(t *testing.T) {
	ids := []string{"a", "b"}
	got, moved := Reorder(ids, "a", "a", 5, 40)
	assert.False(t, moved)
	assert.Equal(t, ids, got)
}

func TestReorderUnknownIDIsNoOp(t *testing.T) {
	ids := []string{"a", "b"}
	_, moved := Reorder(ids, "missing", "b", 30, 40)
	assert.False(t, moved)
	_, moved = Reorder(ids, "a", "missing", 30, 40)
	assert.False(t, moved)
}

func TestReorderPreservesRelativeOrder(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	got, moved := Reorder(ids, "b", "d", 35, 40)
	assert.True(t, moved)
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, got)
}
