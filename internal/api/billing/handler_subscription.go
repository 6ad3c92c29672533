package billing

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

type StripePlan struct {
	PriceID        string  `json:"price_id"`
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Currency       string  `json:"currency"`
	UnitAmount     float64 `json:"unit_amount"` // in major units (EUR)
	Interval       string  `json:"interval"`    // month/year
	MaxSubscribers int     `json:"max_subscribers"`
	MaxCampaigns   int     `json:"max_campaigns"`
}

func ListPlansFromStripe(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	plans := []StripePlan{}
	for it.Next() {
		p := it.Price()

		if !p.Active || p.Recurring == nil {
			continue
		}

		// Product must exist and be active
		if p.Product == nil || !p.Product.Active {
			continue
		}

		// Optional: hide prices via metadata
		if p.Metadata["visible"] == "false" {
			continue
		}

		maxSubscribers, _ := strconv.Atoi(p.Metadata["max_subscribers"])
		maxCampaigns, _ := strconv.Atoi(p.Metadata["max_campaigns"])

		amount := float64(p.UnitAmount) / 100.0

		plans = append(plans, StripePlan{
			PriceID:        p.ID,
			ProductID:      p.Product.ID,
			Name:           p.Product.Name,
			Currency:       string(p.Currency),
			UnitAmount:     amount,
			Interval:       string(p.Recurring.Interval),
			MaxSubscribers: maxSubscribers,
			MaxCampaigns:   maxCampaigns,
		})
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, plans)
}
