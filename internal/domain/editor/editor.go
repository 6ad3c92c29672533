package editor

import "fmt"

// Patch is a partial update to a block's content and/or styles. Present keys
// are merged over the block's existing maps; absent maps leave that side
// untouched.
type Patch struct {
	Content map[string]string `json:"content,omitempty"`
	Styles  StyleMap          `json:"styles,omitempty"`
}

func (p Patch) isEmpty() bool {
	return len(p.Content) == 0 && len(p.Styles) == 0
}

// Editor owns a live document, its history and the current selection. Every
// successful mutation commits exactly one history snapshot. The editor itself
// does no I/O; persistence and rendering live with the caller.
//
// An Editor is not safe for concurrent use. Callers that share one across
// goroutines (the HTTP session layer does) must serialize access.
type Editor struct {
	doc      *Document
	history  *History
	selected string
}

// New builds an editor around an initial document, or an empty one if nil.
// The input is deep-copied; the caller's document is never aliased.
func New(initial *Document) *Editor {
	doc := NewDocument()
	if initial != nil {
		doc = initial.Clone()
	}
	return &Editor{
		doc:     doc,
		history: NewHistory(doc.Blocks),
	}
}

// AddBlock appends a fresh block of the given type and selects it.
func (e *Editor) AddBlock(t BlockType) (*Block, error) {
	block, err := NewBlock(t)
	if err != nil {
		return nil, err
	}

	e.doc.Blocks = append(cloneBlocks(e.doc.Blocks), block)
	e.selected = block.ID
	e.history.Commit(e.doc.Blocks)
	return block.Clone(), nil
}

// UpdateBlock merges a partial content/style patch into the block. An empty
// patch commits nothing.
func (e *Editor) UpdateBlock(id string, patch Patch) error {
	idx := e.doc.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	if patch.isEmpty() {
		return nil
	}

	blocks := cloneBlocks(e.doc.Blocks)
	target := blocks[idx]
	for k, v := range patch.Content {
		target.Content[k] = v
	}
	for k, v := range patch.Styles {
		target.Styles[k] = v
	}

	e.doc.Blocks = blocks
	e.history.Commit(blocks)
	return nil
}

// DeleteBlock removes the block, clearing the selection if it pointed there.
func (e *Editor) DeleteBlock(id string) error {
	idx := e.doc.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}

	blocks := cloneBlocks(e.doc.Blocks)
	blocks = append(blocks[:idx], blocks[idx+1:]...)

	if e.selected == id {
		e.selected = ""
	}
	e.doc.Blocks = blocks
	e.history.Commit(blocks)
	return nil
}

// DuplicateBlock deep-copies the block under a fresh id and inserts the copy
// immediately after the original.
func (e *Editor) DuplicateBlock(id string) (*Block, error) {
	idx := e.doc.IndexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}

	blocks := cloneBlocks(e.doc.Blocks)
	dup := blocks[idx].Duplicate()
	blocks = append(blocks[:idx+1], append([]*Block{dup}, blocks[idx+1:]...)...)

	e.doc.Blocks = blocks
	e.selected = dup.ID
	e.history.Commit(blocks)
	return dup.Clone(), nil
}

// MoveBlock reinserts the block at fromIndex at toIndex. Moving a block onto
// its own index is a no-op and commits nothing.
func (e *Editor) MoveBlock(fromIndex, toIndex int) error {
	n := len(e.doc.Blocks)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return fmt.Errorf("%w: index out of range", ErrBlockNotFound)
	}
	if fromIndex == toIndex {
		return nil
	}

	blocks := cloneBlocks(e.doc.Blocks)
	moved := blocks[fromIndex]
	blocks = append(blocks[:fromIndex], blocks[fromIndex+1:]...)
	blocks = append(blocks[:toIndex], append([]*Block{moved}, blocks[toIndex:]...)...)

	e.doc.Blocks = blocks
	e.history.Commit(blocks)
	return nil
}

// MoveOver applies a drag-and-drop move with the midpoint tie-break. It
// reports whether the order changed; a suppressed or same-position drag
// commits nothing.
func (e *Editor) MoveOver(dragID, hoverID string, offsetY, hoverHeight float64) (bool, error) {
	if e.doc.IndexOf(dragID) < 0 {
		return false, fmt.Errorf("%w: %s", ErrBlockNotFound, dragID)
	}
	if e.doc.IndexOf(hoverID) < 0 {
		return false, fmt.Errorf("%w: %s", ErrBlockNotFound, hoverID)
	}

	newIDs, moved := Reorder(e.doc.IDs(), dragID, hoverID, offsetY, hoverHeight)
	if !moved {
		return false, nil
	}

	byID := make(map[string]*Block, len(e.doc.Blocks))
	for _, b := range e.doc.Blocks {
		byID[b.ID] = b
	}
	blocks := make([]*Block, len(newIDs))
	for i, id := range newIDs {
		blocks[i] = byID[id].Clone()
	}

	e.doc.Blocks = blocks
	e.history.Commit(blocks)
	return true, nil
}

// Undo replaces the live blocks with the previous snapshot. Returns ErrNoOp
// at the start of history; callers treat that silently.
func (e *Editor) Undo() error {
	blocks, err := e.history.Undo()
	if err != nil {
		return err
	}
	e.restore(blocks)
	return nil
}

// Redo replaces the live blocks with the next snapshot, if an undo left one.
func (e *Editor) Redo() error {
	blocks, err := e.history.Redo()
	if err != nil {
		return err
	}
	e.restore(blocks)
	return nil
}

func (e *Editor) restore(blocks []*Block) {
	e.doc.Blocks = blocks
	if e.selected != "" && e.doc.IndexOf(e.selected) < 0 {
		e.selected = ""
	}
}

// Select marks a block as the current selection for the property panel.
func (e *Editor) Select(id string) error {
	if e.doc.IndexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	e.selected = id
	return nil
}

func (e *Editor) ClearSelection() { e.selected = "" }

// Selected returns the selected block id, or "" when nothing is selected.
func (e *Editor) Selected() string { return e.selected }

// UpdateSettings replaces the document-wide settings. Settings are not part
// of the block history, so no snapshot is committed.
func (e *Editor) UpdateSettings(s GlobalSettings) {
	e.doc.Settings = s
}

// Document returns a deep copy of the live document. Callers never receive
// references that could alias later mutations.
func (e *Editor) Document() *Document {
	return e.doc.Clone()
}

// HTML compiles the live document.
func (e *Editor) HTML() (string, error) {
	return Generate(e.doc)
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// HistoryCursor exposes the history position so the host UI can enable or
// disable its undo/redo controls.
func (e *Editor) HistoryCursor() int { return e.history.Cursor() }

func (e *Editor) HistoryLen() int { return e.history.Len() }
