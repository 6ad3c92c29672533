package subscribers

import "time"

// List is a named audience a campaign can be sent to.
type List struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"-"`
	Name   string `gorm:"not null" json:"name"`

	Subscribers []Subscriber `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;" json:"subscribers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Subscriber struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"-"`
	ListID string `gorm:"type:uuid;not null;index:idx_subscribers_list_email,priority:1" json:"list_id"`

	Email string `gorm:"not null;index:idx_subscribers_list_email,priority:2" json:"email"`
	Name  string `json:"name,omitempty"`

	Unsubscribed bool `gorm:"not null;default:false" json:"unsubscribed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
