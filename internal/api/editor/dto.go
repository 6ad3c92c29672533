package editor

import (
	"marketing-app/internal/domain/editor"
)

// ---------- requests

type OpenSessionRequest struct {
	TemplateID *string `json:"template_id"` // open from a template draft; nil for a blank document
}

type AddBlockRequest struct {
	Type string `json:"type" binding:"required"`
}

type UpdateBlockRequest struct {
	Content map[string]string `json:"content"`
	Styles  map[string]string `json:"styles"`
}

// MoveBlockRequest carries either an explicit index move or a drag-and-drop
// pointer move; drag fields win when DragID is set.
type MoveBlockRequest struct {
	FromIndex *int `json:"from_index"`
	ToIndex   *int `json:"to_index"`

	DragID      string  `json:"drag_id"`
	HoverID     string  `json:"hover_id"`
	OffsetY     float64 `json:"offset_y"`
	HoverHeight float64 `json:"hover_height"`
}

type UpdateSettingsRequest struct {
	BackgroundColor string `json:"backgroundColor"`
	ContentWidth    int    `json:"contentWidth"`
	FontFamily      string `json:"fontFamily"`
}

// ---------- responses

// SessionStateDTO is what the host UI renders from: the live document, the
// selection, and the history position for its undo/redo controls.
type SessionStateDTO struct {
	SessionID     string           `json:"session_id"`
	Document      *editor.Document `json:"document"`
	SelectedBlock string           `json:"selected_block,omitempty"`
	CanUndo       bool             `json:"can_undo"`
	CanRedo       bool             `json:"can_redo"`
	HistoryCursor int              `json:"history_cursor"`
	HistoryLen    int              `json:"history_len"`
}

type PreviewDTO struct {
	HTML string `json:"html"`
	// Preview container width for the requested device; the generated
	// document itself always uses the template's own content width.
	PreviewWidth int    `json:"preview_width"`
	Device       string `json:"device"`
}

func sessionState(id string, sess *session) SessionStateDTO {
	return SessionStateDTO{
		SessionID:     id,
		Document:      sess.ed.Document(),
		SelectedBlock: sess.ed.Selected(),
		CanUndo:       sess.ed.CanUndo(),
		CanRedo:       sess.ed.CanRedo(),
		HistoryCursor: sess.ed.HistoryCursor(),
		HistoryLen:    sess.ed.HistoryLen(),
	}
}
