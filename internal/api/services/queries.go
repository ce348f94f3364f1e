package services

import (
	"errors"
	"net/http"

	"servicetrack/database"
	"servicetrack/internal/domain/services"

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

func userServicesQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Where("user_id = ?", userID)
}

// loadService fetches the record by path id. Any authenticated user may
// read; mutation handlers additionally call mustOwn.
func loadService(c *gin.Context) (services.Service, bool) {
	var svc services.Service
	err := database.DB.First(&svc, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		}
		return services.Service{}, false
	}
	return svc, true
}

func mustOwn(c *gin.Context, svc services.Service) bool {
	userID, ok := mustUserID(c)
	if !ok {
		return false
	}
	if svc.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This service belongs to another user"})
		return false
	}
	return true
}
