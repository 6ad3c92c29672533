package users

import (
	"net/http"
	"time"

	"marketing-app/database"
	"marketing-app/internal/domain/campaigns"
	"marketing-app/internal/domain/subscribers"
	"marketing-app/internal/domain/templates"
	"marketing-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()

	var usage UsageDTO
	database.DB.Model(&templates.EmailTemplate{}).
		Where("owner_type = ? AND user_id = ?", templates.OwnerUser, user.ID).
		Count(&usage.Templates)
	database.DB.Model(&subscribers.List{}).
		Where("user_id = ?", user.ID).
		Count(&usage.Lists)
	database.DB.Model(&subscribers.Subscriber{}).
		Where("user_id = ? AND unsubscribed = ?", user.ID, false).
		Count(&usage.Subscribers)
	database.DB.Model(&campaigns.Campaign{}).
		Where("user_id = ?", user.ID).
		Count(&usage.Campaigns)

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(now, user.TrialStartAt, user.TrialEndAt),
		},
		Sender: SenderDTO{
			Name:  user.SenderName,
			Email: user.SenderEmail,
		},
		Usage: usage,
	}

	c.JSON(http.StatusOK, resp)
}

func UpdateSender(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"sender_name":  body.Name,
		"sender_email": body.Email,
	}
	if err := database.DB.Model(&users.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sender"})
		return
	}

	c.JSON(http.StatusOK, SenderDTO{Name: &body.Name, Email: &body.Email})
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	type Token struct {
		UserID int
	}
	var t Token
	if err := database.DB.Table("verification_tokens").Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Exec("DELETE FROM verification_tokens WHERE token = ?", token)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
