package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	doc := NewDocument()
	b, err := NewBlock(TypeButton)
	require.NoError(t, err)
	b.Content["label"] = "Go"
	b.Styles["letterSpacing"] = "0.05em" // unknown keys must survive
	doc.Blocks = []*Block{b}
	doc.Settings.ContentWidth = 520

	data, err := MarshalDocument(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version":1`)

	got, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Blocks, got.Blocks)
	assert.Equal(t, doc.Settings, got.Settings)
}

func TestUnmarshalRejectsWrongVersion(t *testing.T) {
	_, err := UnmarshalDocument([]byte(`{"version":2,"blocks":[]}`))
	assert.ErrorContains(t, err, "unsupported document version")

	_, err = UnmarshalDocument([]byte(`{"blocks":[]}`))
	assert.ErrorContains(t, err, "unsupported document version")
}

func TestUnmarshalRejectsUnknownBlockType(t *testing.T) {
	payload := `{"version":1,"blocks":[{"id":"a","type":"carousel"}]}`
	_, err := UnmarshalDocument([]byte(payload))
	assert.ErrorIs(t, err, ErrUnsupportedBlockType)
}

func TestUnmarshalRejectsDuplicateIDs(t *testing.T) {
	payload := `{"version":1,"blocks":[{"id":"a","type":"text"},{"id":"a","type":"spacer"}]}`
	_, err := UnmarshalDocument([]byte(payload))
	assert.ErrorContains(t, err, "duplicate block id")
}

func TestUnmarshalFillsMissingIDsAndMaps(t *testing.T) {
	payload := `{"version":1,"blocks":[{"type":"text"}]}`
	doc, err := UnmarshalDocument([]byte(payload))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.NotEmpty(t, doc.Blocks[0].ID)
	assert.NotNil(t, doc.Blocks[0].Content)
	assert.NotNil(t, doc.Blocks[0].Styles)

	// Absent globalStyles fall back to defaults.
	assert.Equal(t, DefaultGlobalSettings(), doc.Settings)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := UnmarshalDocument([]byte(`{"version":`))
	assert.ErrorContains(t, err, "invalid document payload")
}
