package editor

import "errors"

var (
	// ErrBlockNotFound is returned when an operation references a block id
	// that is not present in the document. Recoverable: callers should no-op
	// and drop any stale selection.
	ErrBlockNotFound = errors.New("block not found")

	// ErrUnsupportedBlockType is returned for a block type outside the
	// registered set. Blocks are only constructed through NewBlock, so hitting
	// this anywhere else means corrupted input, not a user mistake.
	ErrUnsupportedBlockType = errors.New("unsupported block type")

	// ErrNoOp is returned by Undo/Redo at a history boundary. Not an error
	// condition for the user; callers ignore it silently.
	ErrNoOp = errors.New("nothing to undo or redo")
)
