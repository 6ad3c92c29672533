package campaigns

import (
	"net/http"

	"marketing-app/database"
	"marketing-app/internal/domain/campaigns"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func toCampaignDTO(cp campaigns.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:          cp.ID,
		Name:        cp.Name,
		Subject:     cp.Subject,
		TemplateID:  cp.TemplateID,
		ListID:      cp.ListID,
		Status:      cp.Status,
		ScheduledAt: cp.ScheduledAt,
		SentAt:      cp.SentAt,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
	}
}

// ------------------------------
// GET /campaigns
// ------------------------------
func GetCampaigns(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []campaigns.Campaign
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load campaigns"})
		return
	}

	out := make([]CampaignDTO, 0, len(list))
	for _, cp := range list {
		out = append(out, toCampaignDTO(cp))
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": out})
}

// ------------------------------
// GET /campaigns/:id
// ------------------------------
func GetCampaignByID(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cp campaigns.Campaign
	if err := database.DB.First(&cp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	c.JSON(http.StatusOK, toCampaignDTO(cp))
}

// ------------------------------
// POST /campaigns
// ------------------------------
func CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	cp := campaigns.Campaign{
		UserID:     userID,
		Name:       req.Name,
		Subject:    req.Subject,
		TemplateID: req.TemplateID,
		ListID:     req.ListID,
		Status:     campaigns.StatusDraft,
	}
	if err := database.DB.Create(&cp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": cp.ID})
}

// ------------------------------
// PUT /campaigns/:id
// ------------------------------
func UpdateCampaign(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cp campaigns.Campaign
	if err := database.DB.First(&cp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	if cp.Status != campaigns.StatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Only draft campaigns can be edited"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Subject != nil {
		updates["subject"] = *req.Subject
	}
	if req.TemplateID != nil {
		updates["template_id"] = *req.TemplateID
	}
	if req.ListID != nil {
		updates["list_id"] = *req.ListID
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&cp).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /campaigns/:id
// ------------------------------
func DeleteCampaign(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.
		Where("id = ? AND user_id = ? AND status = ?", id, userID, campaigns.StatusDraft).
		Delete(&campaigns.Campaign{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found or not a draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
