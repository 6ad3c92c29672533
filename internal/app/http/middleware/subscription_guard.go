package middleware

import (
	"net/http"
	"time"

	"marketing-app/database"
	"marketing-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates features that cost money to run, like
// scheduling campaign sends.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil || user.SubscriptionEnd == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		if time.Now().After(*user.SubscriptionEnd) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
			return
		}

		c.Next()
	}
}
