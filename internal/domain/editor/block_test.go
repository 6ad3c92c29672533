package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockDefaults(t *testing.T) {
	txt, err := NewBlock(TypeText)
	require.NoError(t, err)
	assert.NotEmpty(t, txt.ID)
	assert.Equal(t, "16px", txt.Styles["fontSize"])
	assert.Equal(t, "left", txt.Styles["textAlign"])
	assert.Equal(t, "#374151", txt.Styles["color"])

	btn, err := NewBlock(TypeButton)
	require.NoError(t, err)
	assert.Equal(t, "#2563eb", btn.Styles["backgroundColor"])
	assert.Equal(t, "9999px", btn.Styles["borderRadius"])

	sp, err := NewBlock(TypeSpacer)
	require.NoError(t, err)
	assert.Equal(t, "20px", sp.Styles["height"])

	assert.NotEqual(t, txt.ID, btn.ID)
}

func TestNewBlockUnknownType(t *testing.T) {
	_, err := NewBlock(BlockType("gallery"))
	assert.ErrorIs(t, err, ErrUnsupportedBlockType)
}

func TestBlockCloneIsDeep(t *testing.T) {
	b, err := NewBlock(TypeText)
	require.NoError(t, err)

	clone := b.Clone()
	clone.Content["text"] = "changed"
	clone.Styles["color"] = "#000"

	assert.NotEqual(t, "changed", b.Content["text"])
	assert.Equal(t, "#374151", b.Styles["color"])
	assert.Equal(t, b.ID, clone.ID)
}

func TestDuplicateRegeneratesID(t *testing.T) {
	b, err := NewBlock(TypeImage)
	require.NoError(t, err)
	b.Content["src"] = "https://cdn.example.com/x.png"

	dup := b.Duplicate()
	assert.NotEqual(t, b.ID, dup.ID)
	assert.Equal(t, b.Content["src"], dup.Content["src"])
}

func TestResolveStyleMergesOverridesAndPassesUnknownKeys(t *testing.T) {
	b, err := NewBlock(TypeText)
	require.NoError(t, err)
	b.Styles["fontSize"] = "20px"
	b.Styles["letterSpacing"] = "0.1em" // no default knows this key

	resolved, err := ResolveStyle(b)
	require.NoError(t, err)
	assert.Equal(t, "20px", resolved["fontSize"])
	assert.Equal(t, "left", resolved["textAlign"])
	assert.Equal(t, "0.1em", resolved["letterSpacing"])

	// Resolution never writes back to the block.
	assert.NotContains(t, b.Styles, "textAlign")
}

func TestResolveStyleUnknownType(t *testing.T) {
	_, err := ResolveStyle(&Block{ID: "x", Type: BlockType("gallery")})
	assert.ErrorIs(t, err, ErrUnsupportedBlockType)
}

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes()
	assert.Equal(t, []BlockType{TypeText, TypeImage, TypeButton, TypeDivider, TypeSpacer}, types)
	for _, typ := range types {
		_, ok := handlers[typ]
		assert.True(t, ok, "missing handler for %s", typ)
	}
}
