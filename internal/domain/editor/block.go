package editor

import (
	"fmt"

	"marketing-app/internal/ulid"
)

type BlockType string

const (
	TypeText    BlockType = "text"
	TypeImage   BlockType = "image"
	TypeButton  BlockType = "button"
	TypeDivider BlockType = "divider"
	TypeSpacer  BlockType = "spacer"
)

// StyleMap is a sparse set of style properties. Keys a block type does not
// understand are carried along untouched; only the serializer for that type
// decides which keys become CSS.
type StyleMap map[string]string

// Block is a single content unit of an email document. Type is fixed at
// creation; only Content and Styles may change afterwards.
type Block struct {
	ID      string            `json:"id"`
	Type    BlockType         `json:"type"`
	Content map[string]string `json:"content"`
	Styles  StyleMap          `json:"styles"`
}

// NewBlock returns a fresh block of the given type with a unique id and the
// type's default content and styles.
func NewBlock(t BlockType) (*Block, error) {
	h, ok := handlers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlockType, t)
	}
	return &Block{
		ID:      ulid.GenerateID(),
		Type:    t,
		Content: h.defaultContent(),
		Styles:  h.defaultStyles(),
	}, nil
}

func (b *Block) Clone() *Block {
	clone := *b

	content := make(map[string]string, len(b.Content))
	for k, v := range b.Content {
		content[k] = v
	}
	clone.Content = content

	styles := make(StyleMap, len(b.Styles))
	for k, v := range b.Styles {
		styles[k] = v
	}
	clone.Styles = styles

	return &clone
}

// Duplicate deep-copies the block under a freshly generated id. Duplication
// is the only way an existing block's id is ever regenerated.
func (b *Block) Duplicate() *Block {
	clone := b.Clone()
	clone.ID = ulid.GenerateID()
	return clone
}

// GlobalSettings are document-wide rendering knobs.
type GlobalSettings struct {
	BackgroundColor string `json:"backgroundColor"`
	ContentWidth    int    `json:"contentWidth"`
	FontFamily      string `json:"fontFamily"`
}

func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		BackgroundColor: "#f4f4f5",
		ContentWidth:    600,
		FontFamily:      "Arial, Helvetica, sans-serif",
	}
}

// Document is the ordered block sequence plus global settings. Order is the
// render order and the only structural relationship between blocks.
type Document struct {
	Blocks   []*Block       `json:"blocks"`
	Settings GlobalSettings `json:"globalStyles"`
}

func NewDocument() *Document {
	return &Document{Settings: DefaultGlobalSettings()}
}

func (d *Document) Clone() *Document {
	blocks := make([]*Block, len(d.Blocks))
	for i, b := range d.Blocks {
		blocks[i] = b.Clone()
	}
	return &Document{Blocks: blocks, Settings: d.Settings}
}

// IndexOf returns the position of the block with the given id, or -1.
func (d *Document) IndexOf(id string) int {
	for i, b := range d.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) Find(id string) *Block {
	if i := d.IndexOf(id); i >= 0 {
		return d.Blocks[i]
	}
	return nil
}

// IDs returns the block ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		ids[i] = b.ID
	}
	return ids
}

func cloneBlocks(blocks []*Block) []*Block {
	out := make([]*Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}
