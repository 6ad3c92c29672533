package editor

// History is a linear undo/redo stack of block-sequence snapshots plus a
// cursor. Snapshots strictly before the cursor are undo-able, strictly after
// it redo-able. Every snapshot is a deep copy: entries stay valid no matter
// what happens to the live document afterwards.
type History struct {
	snapshots [][]*Block
	cursor    int
}

// NewHistory starts the stack with the given blocks as the initial snapshot.
func NewHistory(initial []*Block) *History {
	return &History{snapshots: [][]*Block{cloneBlocks(initial)}}
}

// Commit records a new snapshot. Any redo-able entries beyond the cursor are
// discarded first: a new edit after an undo permanently abandons that branch.
func (h *History) Commit(blocks []*Block) {
	h.snapshots = append(h.snapshots[:h.cursor+1], cloneBlocks(blocks))
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back and returns a copy of the snapshot there.
// Returns ErrNoOp at the start of history.
func (h *History) Undo() ([]*Block, error) {
	if h.cursor == 0 {
		return nil, ErrNoOp
	}
	h.cursor--
	return cloneBlocks(h.snapshots[h.cursor]), nil
}

// Redo steps the cursor forward and returns a copy of the snapshot there.
// Returns ErrNoOp at the end of history.
func (h *History) Redo() ([]*Block, error) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, ErrNoOp
	}
	h.cursor++
	return cloneBlocks(h.snapshots[h.cursor]), nil
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Cursor is the index of the current snapshot.
func (h *History) Cursor() int { return h.cursor }

// Len is the total number of snapshots, undone ones included.
func (h *History) Len() int { return len(h.snapshots) }
