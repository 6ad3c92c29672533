package campaigns

import (
	"net/http"
	"time"

	"marketing-app/database"
	"marketing-app/internal/domain/campaigns"
	"marketing-app/internal/domain/editor"
	"marketing-app/internal/domain/subscribers"
	"marketing-app/internal/domain/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Scorer picks the delivery slot when the client does not supply one.
// Swappable so deployments with real engagement data can plug their own in.
var Scorer = campaigns.DefaultScorer

// ------------------------------
// POST /campaigns/:id/schedule
// ------------------------------
// Freezes the campaign for delivery: resolves the send slot, compiles the
// template's published revision and snapshots the HTML onto the campaign.
// Template edits after this point do not touch a scheduled campaign.
func ScheduleCampaign(c *gin.Context) {
	id := c.Param("id")

	// Body is optional; without send_at the scorer picks the slot.
	var req ScheduleCampaignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var cp campaigns.Campaign
		if err := tx.First(&cp, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if cp.Status != campaigns.StatusDraft {
			c.JSON(http.StatusConflict, gin.H{"error": "Campaign is not a draft"})
			return nil
		}
		if cp.TemplateID == nil || cp.ListID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign needs a template and a list before scheduling"})
			return nil
		}

		var t templates.EmailTemplate
		err := tx.Where("owner_type = ? AND user_id = ?", templates.OwnerUser, userID).
			Preload("PublishedRevision").
			First(&t, "id = ?", *cp.TemplateID).Error
		if err != nil {
			return err
		}
		if t.PublishedRevision == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template has no published revision"})
			return nil
		}

		doc, err := editor.UnmarshalDocument(t.PublishedRevision.Document)
		if err != nil {
			return err
		}
		html, err := editor.Generate(doc)
		if err != nil {
			return err
		}

		var listSize int64
		if err := tx.Model(&subscribers.Subscriber{}).
			Where("list_id = ? AND unsubscribed = false", *cp.ListID).
			Count(&listSize).Error; err != nil {
			return err
		}

		sendAt := time.Time{}
		if req.SendAt != nil {
			sendAt = *req.SendAt
			if sendAt.Before(time.Now()) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "send_at is in the past"})
				return nil
			}
		} else {
			sendAt = Scorer.BestSendTime(int(listSize), time.Now())
		}

		if err := tx.Model(&cp).Updates(map[string]interface{}{
			"status":        campaigns.StatusScheduled,
			"scheduled_at":  sendAt,
			"compiled_html": html,
		}).Error; err != nil {
			return err
		}

		c.JSON(http.StatusOK, gin.H{"status": "scheduled", "scheduled_at": sendAt})
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign or template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule campaign", "details": err.Error()})
	}
}

// ------------------------------
// POST /campaigns/:id/unschedule
// ------------------------------
func UnscheduleCampaign(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Model(&campaigns.Campaign{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, campaigns.StatusScheduled).
		Updates(map[string]interface{}{
			"status":        campaigns.StatusDraft,
			"scheduled_at":  nil,
			"compiled_html": "",
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unschedule campaign"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found or not scheduled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "draft"})
}

// ------------------------------
// GET /campaigns/:id/html
// ------------------------------
// Returns the frozen HTML of a scheduled or sent campaign.
func GetCampaignHTML(c *gin.Context) {
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
	if cp.CompiledHTML == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign has no compiled HTML yet"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cp.CompiledHTML))
}
