package subscribers

import (
	"net/http"

	"marketing-app/database"
	"marketing-app/internal/domain/subscribers"

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

// ------------------------------
// GET /lists
// ------------------------------
func GetLists(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var lists []subscribers.List
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lists"})
		return
	}

	out := make([]ListSummaryDTO, 0, len(lists))
	for _, l := range lists {
		var count int64
		database.DB.Model(&subscribers.Subscriber{}).
			Where("list_id = ? AND unsubscribed = false", l.ID).
			Count(&count)
		out = append(out, ListSummaryDTO{ID: l.ID, Name: l.Name, SubscriberCount: count})
	}
	c.JSON(http.StatusOK, gin.H{"lists": out})
}

// ------------------------------
// POST /lists
// ------------------------------
func CreateList(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	list := subscribers.List{UserID: userID, Name: req.Name}
	if err := database.DB.Create(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": list.ID})
}

// ------------------------------
// PUT /lists/:id
// ------------------------------
func UpdateList(c *gin.Context) {
	id := c.Param("id")

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Model(&subscribers.List{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", req.Name)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update list"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /lists/:id
// ------------------------------
func DeleteList(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var list subscribers.List
		if err := tx.First(&list, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&subscribers.Subscriber{}).Error; err != nil {
			return err
		}
		return tx.Delete(&list).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /lists/:id/subscribers
// ------------------------------
func GetSubscribers(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list subscribers.List
	if err := database.DB.First(&list, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	var subs []subscribers.Subscriber
	err := database.DB.
		Where("list_id = ?", list.ID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscribers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs})
}

// ------------------------------
// POST /lists/:id/subscribers
// ------------------------------
func CreateSubscriber(c *gin.Context) {
	id := c.Param("id")

	var req CreateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list subscribers.List
	if err := database.DB.First(&list, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	sub := subscribers.Subscriber{
		UserID: userID,
		ListID: list.ID,
		Email:  req.Email,
		Name:   req.Name,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscriber"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

// ------------------------------
// PUT /subscribers/:id
// ------------------------------
func UpdateSubscriber(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Unsubscribed != nil {
		updates["unsubscribed"] = *req.Unsubscribed
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	res := database.DB.Model(&subscribers.Subscriber{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscriber"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /subscribers/:id
// ------------------------------
func DeleteSubscriber(c *gin.Context) {
	id := c.Param("id")
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&subscribers.Subscriber{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
