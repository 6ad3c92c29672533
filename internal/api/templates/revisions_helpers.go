package templates

import (
	"encoding/json"

	"marketing-app/internal/domain/editor"
	"marketing-app/internal/domain/templates"

	"gorm.io/gorm"
)

// EnsureDraftRevision returns the template's draft revision, creating one
// first if needed. A missing draft is seeded from the published revision when
// there is one, otherwise from an empty document, so edits after publishing
// never touch the published payload.
func EnsureDraftRevision(tx *gorm.DB, t *templates.EmailTemplate) (*templates.TemplateRevision, error) {
	if t.DraftRevisionID != nil && *t.DraftRevisionID != "" {
		if t.PublishedRevisionID == nil || *t.PublishedRevisionID == "" || *t.DraftRevisionID != *t.PublishedRevisionID {
			var dr templates.TemplateRevision
			if err := tx.First(&dr, "id = ?", *t.DraftRevisionID).Error; err != nil {
				return nil, err
			}
			return &dr, nil
		}
	}

	document := emptyDocumentJSON()
	if t.PublishedRevisionID != nil && *t.PublishedRevisionID != "" {
		var pr templates.TemplateRevision
		if err := tx.First(&pr, "id = ?", *t.PublishedRevisionID).Error; err != nil {
			return nil, err
		}
		document = append(json.RawMessage(nil), pr.Document...)
	}

	dr := templates.TemplateRevision{
		TemplateID: t.ID,
		Document:   document,
	}
	if err := tx.Create(&dr).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&templates.EmailTemplate{}).
		Where("id = ?", t.ID).
		Update("draft_revision_id", dr.ID).Error; err != nil {
		return nil, err
	}

	t.DraftRevisionID = &dr.ID

	return &dr, nil
}

func emptyDocumentJSON() json.RawMessage {
	data, _ := editor.MarshalDocument(editor.NewDocument())
	return data
}

// validateDocument parses a client-supplied document payload through the
// editor codec so only structurally valid documents ever reach the database.
func validateDocument(raw json.RawMessage) (json.RawMessage, error) {
	doc, err := editor.UnmarshalDocument(raw)
	if err != nil {
		return nil, err
	}
	return editor.MarshalDocument(doc)
}
