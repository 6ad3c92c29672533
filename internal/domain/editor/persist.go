package editor

import (
	"encoding/json"
	"fmt"

	"marketing-app/internal/ulid"
)

// DocumentVersion is the current persistence format version. The generated
// HTML is a derived artifact; this JSON structure is the source of truth.
const DocumentVersion = 1

type persistedDocument struct {
	Version      int            `json:"version"`
	Blocks       []*Block       `json:"blocks"`
	GlobalStyles GlobalSettings `json:"globalStyles"`
}

// MarshalDocument serializes a document as {version, blocks, globalStyles}.
func MarshalDocument(doc *Document) ([]byte, error) {
	return json.Marshal(persistedDocument{
		Version:      DocumentVersion,
		Blocks:       doc.Blocks,
		GlobalStyles: doc.Settings,
	})
}

// UnmarshalDocument parses and validates a persisted document. Block types
// must be registered and ids unique; blocks missing an id (hand-written
// fixtures, older exports) get a fresh one.
func UnmarshalDocument(data []byte) (*Document, error) {
	var p persistedDocument
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid document payload: %w", err)
	}
	if p.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported document version %d", p.Version)
	}

	seen := make(map[string]bool, len(p.Blocks))
	for _, b := range p.Blocks {
		if _, ok := handlers[b.Type]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlockType, b.Type)
		}
		if b.ID == "" {
			b.ID = ulid.GenerateID()
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate block id %s", b.ID)
		}
		seen[b.ID] = true

		if b.Content == nil {
			b.Content = map[string]string{}
		}
		if b.Styles == nil {
			b.Styles = StyleMap{}
		}
	}

	settings := p.GlobalStyles
	if settings == (GlobalSettings{}) {
		settings = DefaultGlobalSettings()
	}

	return &Document{Blocks: p.Blocks, Settings: settings}, nil
}
