package templates

import (
	"encoding/json"
	"net/http"

	"marketing-app/database"
	"marketing-app/internal/domain/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /starter-templates
// ------------------------------
// Starter templates are system-owned and published; users browse them and
// copy one as the starting point for their own template.
func ListStarterTemplates(c *gin.Context) {
	var list []templates.EmailTemplate
	err := database.DB.
		Where("owner_type = ?", templates.OwnerSystem).
		Where("published_revision_id IS NOT NULL").
		Preload("PublishedRevision").
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load starter templates"})
		return
	}

	out := TemplateListDTO{Templates: make([]TemplateDTO, 0, len(list))}
	for _, t := range list {
		out.Templates = append(out.Templates, toTemplateDTO(t, "published"))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /starter-templates/:id/copy
// ------------------------------
func CopyStarterTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	uid := userID

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var src templates.EmailTemplate
		err := tx.
			Where("owner_type = ?", templates.OwnerSystem).
			Where("published_revision_id IS NOT NULL").
			Preload("PublishedRevision").
			First(&src, "id = ?", id).Error
		if err != nil {
			return err
		}

		t := templates.EmailTemplate{
			OwnerType: templates.OwnerUser,
			UserID:    &uid,
			Name:      src.Name,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}

		dr := templates.TemplateRevision{
			TemplateID: t.ID,
			Document:   append(json.RawMessage(nil), src.PublishedRevision.Document...),
		}
		if err := tx.Create(&dr).Error; err != nil {
			return err
		}

		if err := tx.Model(&templates.EmailTemplate{}).
			Where("id = ?", t.ID).
			Update("draft_revision_id", dr.ID).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": t.ID})
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Starter template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy starter template"})
	}
}

// ------------------------------
// POST /admin/starter-templates  (admin only)
// ------------------------------
// Creates a system-owned starter, published immediately.
func CreateStarterTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document := emptyDocumentJSON()
	if len(req.Document) > 0 {
		valid, err := validateDocument(req.Document)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document", "details": err.Error()})
			return
		}
		document = valid
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		t := templates.EmailTemplate{
			OwnerType: templates.OwnerSystem,
			Name:      req.Name,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}

		rev := templates.TemplateRevision{TemplateID: t.ID, Document: document}
		if err := tx.Create(&rev).Error; err != nil {
			return err
		}

		if err := tx.Model(&templates.EmailTemplate{}).
			Where("id = ?", t.ID).
			Updates(map[string]interface{}{
				"draft_revision_id":     rev.ID,
				"published_revision_id": rev.ID,
			}).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": t.ID})
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create starter template", "details": err.Error()})
	}
}
