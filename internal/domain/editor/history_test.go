package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBlock(t *testing.T, s string) *Block {
	t.Helper()
	b, err := NewBlock(TypeText)
	require.NoError(t, err)
	b.Content["text"] = s
	return b
}

func TestHistoryStartsWithInitialSnapshot(t *testing.T) {
	h := NewHistory(nil)
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	_, err := h.Undo()
	assert.ErrorIs(t, err, ErrNoOp)
	_, err = h.Redo()
	assert.ErrorIs(t, err, ErrNoOp)
}

func TestHistoryUndoRedo(t *testing.T) {
	a := textBlock(t, "a")
	b := textBlock(t, "b")

	h := NewHistory(nil)
	h.Commit([]*Block{a})
	h.Commit([]*Block{a, b})
	require.Equal(t, 2, h.Cursor())

	got, err := h.Undo()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Content["text"])

	got, err = h.Redo()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Content["text"])
	assert.False(t, h.CanRedo())
}

func TestHistoryCommitDiscardsRedoBranch(t *testing.T) {
	a := textBlock(t, "a")
	b := textBlock(t, "b")
	c := textBlock(t, "c")

	h := NewHistory(nil)
	h.Commit([]*Block{a})
	h.Commit([]*Block{a, b})

	_, err := h.Undo()
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	h.Commit([]*Block{a, c})
	assert.False(t, h.CanRedo())
	assert.Equal(t, 3, h.Len())

	_, err = h.Redo()
	assert.ErrorIs(t, err, ErrNoOp)
}

func TestHistorySnapshotsDoNotAlias(t *testing.T) {
	a := textBlock(t, "original")

	h := NewHistory(nil)
	h.Commit([]*Block{a})

	// Mutating the committed block must not reach the stored snapshot.
	a.Content["text"] = "mutated"

	got, err := h.Undo()
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = h.Redo()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "original", got[0].Content["text"])

	// Mutating a returned snapshot must not corrupt the stack either.
	got[0].Content["text"] = "scribbled"
	_, err = h.Undo()
	require.NoError(t, err)
	again, err := h.Redo()
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content["text"])
}
