package templates

import (
	"encoding/json"
	"time"
)

// ---------- requests

type CreateTemplateRequest struct {
	Name     string          `json:"name" binding:"required"`
	Document json.RawMessage `json:"document"` // optional initial {version, blocks, globalStyles}
}

type UpdateTemplateRequest struct {
	Name     *string         `json:"name"`
	Document json.RawMessage `json:"document"` // replaces the draft revision's document
}

// ---------- responses

type TemplateDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Published bool            `json:"published"`
	HasDraft  bool            `json:"has_draft"`
	Document  json.RawMessage `json:"document,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TemplateListDTO struct {
	Templates []TemplateDTO `json:"templates"`
}
