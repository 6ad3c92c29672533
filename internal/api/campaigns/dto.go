package campaigns

import "time"

// ---------- requests

type CreateCampaignRequest struct {
	Name       string  `json:"name" binding:"required"`
	Subject    string  `json:"subject"`
	TemplateID *string `json:"template_id"`
	ListID     *string `json:"list_id"`
}

type UpdateCampaignRequest struct {
	Name       *string `json:"name"`
	Subject    *string `json:"subject"`
	TemplateID *string `json:"template_id"`
	ListID     *string `json:"list_id"`
}

type ScheduleCampaignRequest struct {
	// Explicit slot; when absent the send-time scorer picks one.
	SendAt *time.Time `json:"send_at"`
}

// ---------- responses

type CampaignDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Subject     string     `json:"subject"`
	TemplateID  *string    `json:"template_id,omitempty"`
	ListID      *string    `json:"list_id,omitempty"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
