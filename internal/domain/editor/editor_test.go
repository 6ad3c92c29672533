package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBlockSelectsAndAppends(t *testing.T) {
	e := New(nil)

	b, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, b.ID, e.Selected())

	doc := e.Document()
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, TypeText, doc.Blocks[0].Type)
}

func TestAddBlockUnknownType(t *testing.T) {
	e := New(nil)
	_, err := e.AddBlock(BlockType("carousel"))
	assert.ErrorIs(t, err, ErrUnsupportedBlockType)
	assert.Empty(t, e.Document().Blocks)
	assert.False(t, e.CanUndo())
}

func TestUndoRestoresPriorSnapshotAfterEachOperation(t *testing.T) {
	e := New(nil)

	txt, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	afterAdd := e.Document()

	require.NoError(t, e.UpdateBlock(txt.ID, Patch{Content: map[string]string{"text": "hello"}}))
	require.NoError(t, e.Undo())
	assert.Equal(t, afterAdd.Blocks, e.Document().Blocks)

	require.NoError(t, e.Redo())
	_, err = e.AddBlock(TypeButton)
	require.NoError(t, err)
	beforeDelete := e.Document()

	require.NoError(t, e.DeleteBlock(txt.ID))
	require.NoError(t, e.Undo())
	assert.Equal(t, beforeDelete.Blocks, e.Document().Blocks)
}

func TestRedoRestoresUndoneSnapshot(t *testing.T) {
	e := New(nil)

	b, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	require.NoError(t, e.UpdateBlock(b.ID, Patch{Content: map[string]string{"text": "edited"}}))

	edited := e.Document()
	require.NoError(t, e.Undo())
	require.NoError(t, e.Redo())
	assert.Equal(t, edited.Blocks, e.Document().Blocks)
}

func TestCommitAfterUndoDiscardsRedo(t *testing.T) {
	e := New(nil)

	_, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	_, err = e.AddBlock(TypeButton)
	require.NoError(t, err)

	require.NoError(t, e.Undo())
	require.True(t, e.CanRedo())

	_, err = e.AddBlock(TypeDivider)
	require.NoError(t, err)
	assert.False(t, e.CanRedo())
	assert.ErrorIs(t, e.Redo(), ErrNoOp)
}

// The add/add/move/undo*3 walk from the editor contract.
func TestAddMoveUndoScenario(t *testing.T) {
	e := New(nil)

	txt, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	btn, err := e.AddBlock(TypeButton)
	require.NoError(t, err)
	assert.Equal(t, 2, e.HistoryCursor())

	require.NoError(t, e.MoveBlock(0, 1))
	assert.Equal(t, []string{btn.ID, txt.ID}, e.Document().IDs())

	require.NoError(t, e.Undo())
	assert.Equal(t, []string{txt.ID, btn.ID}, e.Document().IDs())

	require.NoError(t, e.Undo())
	assert.Equal(t, []string{txt.ID}, e.Document().IDs())

	require.NoError(t, e.Undo())
	assert.Empty(t, e.Document().Blocks)

	assert.ErrorIs(t, e.Undo(), ErrNoOp)
}

func TestMoveBlockToOwnIndexCommitsNothing(t *testing.T) {
	e := New(nil)
	_, err := e.AddBlock(TypeText)
	require.NoError(t, err)

	before := e.HistoryLen()
	doc := e.Document()

	require.NoError(t, e.MoveBlock(0, 0))
	assert.Equal(t, before, e.HistoryLen())
	assert.Equal(t, doc.Blocks, e.Document().Blocks)
}

func TestMoveBlockRejectsBadIndex(t *testing.T) {
	e := New(nil)
	_, err := e.AddBlock(TypeText)
	require.NoError(t, err)

	assert.ErrorIs(t, e.MoveBlock(0, 5), ErrBlockNotFound)
	assert.ErrorIs(t, e.MoveBlock(-1, 0), ErrBlockNotFound)
}

func TestMoveOverCommitsOnceAndIgnoresSuppressedDrags(t *testing.T) {
	e := New(nil)
	a, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	b, err := e.AddBlock(TypeButton)
	require.NoError(t, err)

	before := e.HistoryLen()

	// Downward drag still above the midpoint: suppressed, no commit.
	moved, err := e.MoveOver(a.ID, b.ID, 5, 40)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, e.HistoryLen())

	moved, err = e.MoveOver(a.ID, b.ID, 30, 40)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{b.ID, a.ID}, e.Document().IDs())
	assert.Equal(t, before+1, e.HistoryLen())

	_, err = e.MoveOver("missing", b.ID, 30, 40)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestUpdateBlockMergesPatch(t *testing.T) {
	e := New(nil)
	b, err := e.AddBlock(TypeButton)
	require.NoError(t, err)

	err = e.UpdateBlock(b.ID, Patch{
		Content: map[string]string{"label": "Buy now"},
		Styles:  StyleMap{"backgroundColor": "#16a34a"},
	})
	require.NoError(t, err)

	got := e.Document().Find(b.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Buy now", got.Content["label"])
	assert.Equal(t, "#", got.Content["url"]) // untouched default
	assert.Equal(t, "#16a34a", got.Styles["backgroundColor"])
}

func TestUpdateBlockNotFound(t *testing.T) {
	e := New(nil)
	err := e.UpdateBlock("nope", Patch{Content: map[string]string{"text": "x"}})
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDeleteBlockClearsSelection(t *testing.T) {
	e := New(nil)
	b, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	require.Equal(t, b.ID, e.Selected())

	require.NoError(t, e.DeleteBlock(b.ID))
	assert.Empty(t, e.Selected())
	assert.Empty(t, e.Document().Blocks)

	assert.ErrorIs(t, e.DeleteBlock(b.ID), ErrBlockNotFound)
}

func TestDuplicateBlockInsertsAfterOriginalWithFreshID(t *testing.T) {
	e := New(nil)
	a, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	_, err = e.AddBlock(TypeDivider)
	require.NoError(t, err)

	require.NoError(t, e.UpdateBlock(a.ID, Patch{Content: map[string]string{"text": "copy me"}}))

	dup, err := e.DuplicateBlock(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, dup.ID)
	assert.Equal(t, "copy me", dup.Content["text"])

	ids := e.Document().IDs()
	require.Len(t, ids, 3)
	assert.Equal(t, a.ID, ids[0])
	assert.Equal(t, dup.ID, ids[1])
}

func TestUndoClearsStaleSelection(t *testing.T) {
	e := New(nil)
	_, err := e.AddBlock(TypeText)
	require.NoError(t, err)
	b, err := e.AddBlock(TypeButton)
	require.NoError(t, err)
	require.Equal(t, b.ID, e.Selected())

	// Undo removes the selected button from the restored snapshot.
	require.NoError(t, e.Undo())
	assert.Empty(t, e.Selected())
}

func TestSpacerHeightOverrideReachesGeneratedHTML(t *testing.T) {
	e := New(nil)
	sp, err := e.AddBlock(TypeSpacer)
	require.NoError(t, err)

	require.NoError(t, e.UpdateBlock(sp.ID, Patch{Styles: StyleMap{"height": "40px"}}))

	out, err := e.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "height:40px")
	assert.NotContains(t, out, "height:20px")
}

func TestImageWithoutSrcStillGenerates(t *testing.T) {
	e := New(nil)
	_, err := e.AddBlock(TypeImage)
	require.NoError(t, err)

	out, err := e.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "<img src=\"\"")
}

func TestDocumentReturnsDetachedCopy(t *testing.T) {
	e := New(nil)
	b, err := e.AddBlock(TypeText)
	require.NoError(t, err)

	doc := e.Document()
	doc.Blocks[0].Content["text"] = "tampered"

	assert.NotEqual(t, "tampered", e.Document().Find(b.ID).Content["text"])
}

func TestNewClonesInitialDocument(t *testing.T) {
	initial := NewDocument()
	b, err := NewBlock(TypeText)
	require.NoError(t, err)
	initial.Blocks = append(initial.Blocks, b)

	e := New(initial)
	initial.Blocks[0].Content["text"] = "tampered"

	assert.NotEqual(t, "tampered", e.Document().Blocks[0].Content["text"])
}

func TestGeneratedHTMLUsesGlobalSettings(t *testing.T) {
	e := New(nil)
	e.UpdateSettings(GlobalSettings{
		BackgroundColor: "#000000",
		ContentWidth:    480,
		FontFamily:      "Georgia, serif",
	})

	out, err := e.HTML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "max-width:480px"))
	assert.Contains(t, out, "background-color:#000000")
	assert.Contains(t, out, "Georgia, serif")
}
