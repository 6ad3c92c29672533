package subscribers

// ---------- requests

type CreateListRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateListRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateSubscriberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type UpdateSubscriberRequest struct {
	Email        *string `json:"email"`
	Name         *string `json:"name"`
	Unsubscribed *bool   `json:"unsubscribed"`
}

// ---------- responses

type ListSummaryDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SubscriberCount int64  `json:"subscriber_count"`
}
