package templates

import (
	"net/http"

	"marketing-app/database"
	"marketing-app/internal/domain/editor"
	"marketing-app/internal/domain/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func userTemplateQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Where("owner_type = ? AND user_id = ?", templates.OwnerUser, userID)
}

func toTemplateDTO(t templates.EmailTemplate, view string) TemplateDTO {
	dto := TemplateDTO{
		ID:        t.ID,
		Name:      t.Name,
		Published: t.PublishedRevisionID != nil,
		HasDraft:  t.DraftRevisionID != nil,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if view == "published" {
		if t.PublishedRevision != nil {
			dto.Document = t.PublishedRevision.Document
		}
	} else if t.DraftRevision != nil {
		dto.Document = t.DraftRevision.Document
	}
	return dto
}

// ------------------------------
// GET /templates
// ------------------------------
func ListTemplates(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", "draft") // "draft" | "published"

	var list []templates.EmailTemplate
	err := userTemplateQuery(database.DB, userID).
		Preload("DraftRevision").
		Preload("PublishedRevision").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}

	out := TemplateListDTO{Templates: make([]TemplateDTO, 0, len(list))}
	for _, t := range list {
		out.Templates = append(out.Templates, toTemplateDTO(t, view))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /templates/:id
// ------------------------------
func GetTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var t templates.EmailTemplate
	err := userTemplateQuery(database.DB, userID).
		Preload("DraftRevision").
		Preload("PublishedRevision").
		First(&t, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, toTemplateDTO(t, c.DefaultQuery("view", "draft")))
}

// ------------------------------
// POST /templates
// ------------------------------
func CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	uid := userID

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
			OwnerType: templates.OwnerUser,
			UserID:    &uid,
			Name:      req.Name,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}

		dr := templates.TemplateRevision{TemplateID: t.ID, Document: document}
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template", "details": err.Error()})
	}
}

// ------------------------------
// PUT /templates/:id
// ------------------------------
func UpdateTemplate(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var document []byte
	if len(req.Document) > 0 {
		valid, err := validateDocument(req.Document)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document", "details": err.Error()})
			return
		}
		document = valid
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var t templates.EmailTemplate
		if err := userTemplateQuery(tx, userID).First(&t, "id = ?", id).Error; err != nil {
			return err
		}

		if req.Name != nil && *req.Name != "" {
			if err := tx.Model(&templates.EmailTemplate{}).
				Where("id = ?", t.ID).
				Update("name", *req.Name).Error; err != nil {
				return err
			}
		}

		if document != nil {
			dr, err := EnsureDraftRevision(tx, &t)
			if err != nil {
				return err
			}
			if err := tx.Model(&templates.TemplateRevision{}).
				Where("id = ?", dr.ID).
				Update("document", document).Error; err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
	}
}

// ------------------------------
// DELETE /templates/:id
// ------------------------------
func DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var t templates.EmailTemplate
		if err := userTemplateQuery(tx, userID).First(&t, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("template_id = ?", t.ID).Delete(&templates.TemplateRevision{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /templates/:id/publish
// ------------------------------
func PublishTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var t templates.EmailTemplate
		if err := userTemplateQuery(tx, userID).First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		if t.DraftRevisionID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to publish"})
			return nil
		}

		// The draft becomes the published revision; the next edit forks a
		// fresh draft via EnsureDraftRevision.
		return tx.Model(&templates.EmailTemplate{}).
			Where("id = ?", t.ID).
			Update("published_revision_id", *t.DraftRevisionID).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish template"})
		return
	}

	if !c.Writer.Written() {
		c.JSON(http.StatusOK, gin.H{"status": "published"})
	}
}

// ------------------------------
// POST /templates/:id/unpublish
// ------------------------------
func UnpublishTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var t templates.EmailTemplate
		if err := userTemplateQuery(tx, userID).First(&t, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&templates.EmailTemplate{}).
			Where("id = ?", t.ID).
			Update("published_revision_id", nil).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unpublished"})
}

// ------------------------------
// GET /templates/:id/render
// ------------------------------
func RenderTemplate(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	view := c.DefaultQuery("view", "draft")

	var t templates.EmailTemplate
	err := userTemplateQuery(database.DB, userID).
		Preload("DraftRevision").
		Preload("PublishedRevision").
		First(&t, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var rev *templates.TemplateRevision
	if view == "published" {
		rev = t.PublishedRevision
	} else {
		rev = t.DraftRevision
	}
	if rev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such revision to render"})
		return
	}

	doc, err := editor.UnmarshalDocument(rev.Document)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored document is invalid", "details": err.Error()})
		return
	}

	html, err := editor.Generate(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compile template", "details": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
