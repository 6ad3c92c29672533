package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Sender  SenderDTO  `json:"sender"`
	Usage   UsageDTO   `json:"usage"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

/* ---------- SENDER ---------- */

type SenderDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

/* ---------- USAGE ---------- */

type UsageDTO struct {
	Templates   int64 `json:"templates"`
	Lists       int64 `json:"lists"`
	Subscribers int64 `json:"subscribers"`
	Campaigns   int64 `json:"campaigns"`
}
