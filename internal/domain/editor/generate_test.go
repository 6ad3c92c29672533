package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument()
	for _, typ := range SupportedTypes() {
		b, err := NewBlock(typ)
		require.NoError(t, err)
		doc.Blocks = append(doc.Blocks, b)
	}
	doc.Blocks[0].Content["text"] = "<strong>Hi there</strong>"
	doc.Blocks[1].Content["src"] = "https://cdn.example.com/hero.png"
	doc.Blocks[1].Content["alt"] = "Hero"
	doc.Blocks[1].Content["url"] = "https://example.com"
	doc.Blocks[2].Content["label"] = "Shop the sale"
	doc.Blocks[2].Content["url"] = "https://example.com/sale"
	return doc
}

func TestGenerateIsDeterministic(t *testing.T) {
	doc := buildSampleDocument(t)

	first, err := Generate(doc)
	require.NoError(t, err)
	second, err := Generate(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateEmitsPreambleAndContainer(t *testing.T) {
	out, err := Generate(NewDocument())
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<meta charset=\"utf-8\">")
	assert.Contains(t, out, "name=\"viewport\"")
	assert.Contains(t, out, "max-width:600px")
}

func TestGenerateTextEmitsContentVerbatim(t *testing.T) {
	doc := buildSampleDocument(t)
	out, err := Generate(doc)
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Hi there</strong>")
	assert.Contains(t, out, "font-size:16px")
	assert.Contains(t, out, "text-align:left")
}

func TestGenerateImageWrapsAnchorOnlyWithLink(t *testing.T) {
	doc := NewDocument()
	img, err := NewBlock(TypeImage)
	require.NoError(t, err)
	img.Content["src"] = "https://cdn.example.com/a.png"
	doc.Blocks = []*Block{img}

	out, err := Generate(doc)
	require.NoError(t, err)
	assert.NotContains(t, out, "<a href")

	img.Content["url"] = "https://example.com"
	out, err = Generate(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<a href=\"https://example.com\">")
}

func TestGenerateButtonUsesResolvedColors(t *testing.T) {
	doc := NewDocument()
	btn, err := NewBlock(TypeButton)
	require.NoError(t, err)
	btn.Styles["backgroundColor"] = "#16a34a"
	doc.Blocks = []*Block{btn}

	out, err := Generate(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "background-color:#16a34a")
	assert.Contains(t, out, "border-radius:9999px")
	assert.Contains(t, out, "text-decoration:none")
}

func TestGenerateDividerUsesColorAndThickness(t *testing.T) {
	doc := NewDocument()
	hr, err := NewBlock(TypeDivider)
	require.NoError(t, err)
	hr.Styles["thickness"] = "3px"
	hr.Styles["color"] = "#111827"
	doc.Blocks = []*Block{hr}

	out, err := Generate(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "border-top:3px solid #111827")
}

func TestGenerateIgnoresIrrelevantStyleKeys(t *testing.T) {
	doc := NewDocument()
	hr, err := NewBlock(TypeDivider)
	require.NoError(t, err)
	// fontSize means nothing to a divider; the serializer drops it.
	hr.Styles["fontSize"] = "42px"
	doc.Blocks = []*Block{hr}

	out, err := Generate(doc)
	require.NoError(t, err)
	assert.NotContains(t, out, "42px")
}

func TestGenerateEscapesAttributeValues(t *testing.T) {
	doc := NewDocument()
	btn, err := NewBlock(TypeButton)
	require.NoError(t, err)
	btn.Content["url"] = `https://example.com/?q="quoted"`
	btn.Content["label"] = "Tom & Jerry"
	doc.Blocks = []*Block{btn}

	out, err := Generate(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "&#34;quoted&#34;")
	assert.Contains(t, out, "Tom &amp; Jerry")
}

func TestGenerateUnknownTypeFails(t *testing.T) {
	doc := NewDocument()
	doc.Blocks = []*Block{{ID: "x", Type: BlockType("carousel")}}

	_, err := Generate(doc)
	assert.ErrorIs(t, err, ErrUnsupportedBlockType)
}
