package templates

import (
	"encoding/json"
	"time"
)

const (
	OwnerUser   = "user"
	OwnerSystem = "system"
)

// EmailTemplate is a block-document template. The editable document lives on
// revisions: Draft is what the editor works on, Published is what campaigns
// compile from. Publishing points Published at the current draft; the next
// edit forks a fresh draft. System-owned templates are the starter gallery
// users copy from.
type EmailTemplate struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	OwnerType string `gorm:"type:text;not null;default:'user';index" json:"-"`
	UserID    *uint  `gorm:"index" json:"-"`

	Name string `gorm:"not null" json:"name"`

	PublishedRevisionID *string           `gorm:"type:uuid;index" json:"-"`
	DraftRevisionID     *string           `gorm:"type:uuid;index" json:"-"`
	DraftRevision       *TemplateRevision `gorm:"foreignKey:DraftRevisionID"`
	PublishedRevision   *TemplateRevision `gorm:"foreignKey:PublishedRevisionID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateRevision stores one immutable version of the block document as
// {version, blocks, globalStyles} jsonb. The compiled HTML is always derived
// from this, never stored as the source of truth.
type TemplateRevision struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TemplateID string `gorm:"type:uuid;index;not null" json:"-"`

	Document json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"document"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
