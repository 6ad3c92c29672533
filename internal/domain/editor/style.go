package editor

import "fmt"

// ResolveStyle flattens a block's effective styles: type defaults overridden
// by whatever keys the block carries. Keys no default knows about pass
// through unchanged; the per-type serializer decides what to do with them.
func ResolveStyle(b *Block) (StyleMap, error) {
	h, ok := handlers[b.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlockType, b.Type)
	}

	out := h.defaultStyles()
	for k, v := range b.Styles {
		out[k] = v
	}
	return out, nil
}
