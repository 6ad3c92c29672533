package campaigns

import "time"

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
)

// Campaign is one email send: a template, an audience, a subject line and a
// delivery slot. CompiledHTML is snapshotted from the template's published
// revision at schedule time so later template edits never change a campaign
// already in flight.
type Campaign struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"-"`

	Name    string `gorm:"not null" json:"name"`
	Subject string `json:"subject"`

	TemplateID *string `gorm:"type:uuid;index" json:"template_id,omitempty"`
	ListID     *string `gorm:"type:uuid;index" json:"list_id,omitempty"`

	Status      string     `gorm:"not null;default:'draft';index" json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`

	CompiledHTML string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
