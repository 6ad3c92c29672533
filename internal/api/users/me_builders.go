package users

import (
	"time"

	"marketing-app/internal/domain/plans"
	"marketing-app/internal/domain/users"
	"marketing-app/internal/infra/stripe"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceEUR:      p.PriceEUR,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildTrialDTO(now time.Time, start, end *time.Time) *TrialDTO {
	if start == nil || end == nil {
		return nil
	}

	var daysLeft *int
	if now.Before(*end) {
		d := int(time.Until(*end).Hours() / 24)
		if d < 0 {
			d = 0
		}
		daysLeft = &d
	} else {
		d := 0
		daysLeft = &d
	}

	return &TrialDTO{
		StartsAt: start,
		EndsAt:   end,
		DaysLeft: daysLeft,
	}
}
