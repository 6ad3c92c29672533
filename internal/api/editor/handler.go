package editor

import (
	"errors"
	"net/http"

	"marketing-app/database"
	templatesapi "marketing-app/internal/api/templates"
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

func mustSession(c *gin.Context) (*session, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return nil, false
	}
	sess, ok := store.get(c.Param("id"), userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Editor session not found"})
		return nil, false
	}
	return sess, true
}

// engineError maps the editor taxonomy onto HTTP statuses. Block lookups are
// recoverable 404s; an unsupported type slipping past the boundary check is a
// server fault.
func engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, editor.ErrBlockNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
	case errors.Is(err, editor.ErrUnsupportedBlockType):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unsupported block type"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ------------------------------
// POST /editor/sessions
// ------------------------------
func OpenSession(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	// Body is optional; without a template_id the session starts blank.
	var req OpenSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var doc *editor.Document
	if req.TemplateID != nil && *req.TemplateID != "" {
		var t templates.EmailTemplate
		err := database.DB.
			Where("owner_type = ? AND user_id = ?", templates.OwnerUser, userID).
			Preload("DraftRevision").
			First(&t, "id = ?", *req.TemplateID).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		if t.DraftRevision != nil {
			doc, err = editor.UnmarshalDocument(t.DraftRevision.Document)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored document is invalid", "details": err.Error()})
				return
			}
		}
	}

	id := store.open(userID, req.TemplateID, doc)
	sess, _ := store.get(id, userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusCreated, sessionState(id, sess))
}

// ------------------------------
// GET /editor/sessions/:id
// ------------------------------
func GetSession(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// DELETE /editor/sessions/:id
// ------------------------------
func CloseSession(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if !store.close(c.Param("id"), userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Editor session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// ------------------------------
// POST /editor/sessions/:id/blocks
// ------------------------------
func AddBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.ed.AddBlock(editor.BlockType(req.Type)); err != nil {
		// The palette type comes straight from the client, so an unknown
		// type here is a bad request, not a server fault.
		if errors.Is(err, editor.ErrUnsupportedBlockType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown block type"})
			return
		}
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// PATCH /editor/sessions/:id/blocks/:blockID
// ------------------------------
func UpdateBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err := sess.ed.UpdateBlock(c.Param("blockID"), editor.Patch{
		Content: req.Content,
		Styles:  editor.StyleMap(req.Styles),
	})
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// DELETE /editor/sessions/:id/blocks/:blockID
// ------------------------------
func DeleteBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ed.DeleteBlock(c.Param("blockID")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// POST /editor/sessions/:id/blocks/:blockID/duplicate
// ------------------------------
func DuplicateBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.ed.DuplicateBlock(c.Param("blockID")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// POST /editor/sessions/:id/blocks/:blockID/select
// ------------------------------
func SelectBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ed.Select(c.Param("blockID")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// PUT /editor/sessions/:id/move
// ------------------------------
func MoveBlock(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req MoveBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if req.DragID != "" {
		if _, err := sess.ed.MoveOver(req.DragID, req.HoverID, req.OffsetY, req.HoverHeight); err != nil {
			engineError(c, err)
			return
		}
	} else {
		if req.FromIndex == nil || req.ToIndex == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from_index and to_index required"})
			return
		}
		if err := sess.ed.MoveBlock(*req.FromIndex, *req.ToIndex); err != nil {
			engineError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// POST /editor/sessions/:id/undo, /editor/sessions/:id/redo
// ------------------------------
// At a history boundary these answer with the unchanged state; the UI is
// expected to have disabled the button anyway.
func Undo(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ed.Undo(); err != nil && !errors.Is(err, editor.ErrNoOp) {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

func Redo(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ed.Redo(); err != nil && !errors.Is(err, editor.ErrNoOp) {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

// ------------------------------
// PATCH /editor/sessions/:id/settings
// ------------------------------
func UpdateSettings(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	settings := sess.ed.Document().Settings
	if req.BackgroundColor != "" {
		settings.BackgroundColor = req.BackgroundColor
	}
	if req.ContentWidth > 0 {
		settings.ContentWidth = req.ContentWidth
	}
	if req.FontFamily != "" {
		settings.FontFamily = req.FontFamily
	}
	sess.ed.UpdateSettings(settings)

	c.JSON(http.StatusOK, sessionState(c.Param("id"), sess))
}

var previewWidths = map[string]int{
	"desktop": 900,
	"tablet":  768,
	"mobile":  375,
}

// ------------------------------
// GET /editor/sessions/:id/preview
// ------------------------------
func Preview(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	device := c.DefaultQuery("device", "desktop")
	width, ok := previewWidths[device]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown device"})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	html, err := sess.ed.HTML()
	if err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, PreviewDTO{HTML: html, PreviewWidth: width, Device: device})
}

// ------------------------------
// POST /editor/sessions/:id/save
// ------------------------------
// Persists the session's document to the template's draft revision. Sessions
// opened without a template have nowhere to save to.
func Save(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	if sess.templateID == nil || *sess.templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session is not bound to a template"})
		return
	}

	sess.mu.Lock()
	doc := sess.ed.Document()
	sess.mu.Unlock()

	payload, err := editor.MarshalDocument(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize document"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var t templates.EmailTemplate
		err := tx.Where("owner_type = ? AND user_id = ?", templates.OwnerUser, sess.userID).
			First(&t, "id = ?", *sess.templateID).Error
		if err != nil {
			return err
		}

		dr, err := templatesapi.EnsureDraftRevision(tx, &t)
		if err != nil {
			return err
		}
		return tx.Model(&templates.TemplateRevision{}).
			Where("id = ?", dr.ID).
			Update("document", payload).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
