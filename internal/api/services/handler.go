package services

import (
	"net/http"
	"time"

	"servicetrack/database"
	"servicetrack/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /services?search=
// ------------------------------
func ListServices(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []services.Service
	err := userServicesQuery(database.DB, userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	// Search narrows the already-small in-memory list, same as the
	// dashboard's client-side filter did.
	if term := c.Query("search"); term != "" {
		filtered := make([]services.Service, 0, len(list))
		for _, svc := range list {
			if services.MatchesSearch(svc, term) {
				filtered = append(filtered, svc)
			}
		}
		list = filtered
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

// ------------------------------
// GET /services/stats
// ------------------------------
func GetStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []services.Service
	if err := userServicesQuery(database.DB, userID).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	c.JSON(http.StatusOK, services.CountByStatus(list))
}

// ------------------------------
// POST /services
// ------------------------------
func CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	status := req.Status
	if status == "" {
		status = services.StatusPending
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}

	svc := services.Service{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Responsible: req.Responsible,
		Status:      status,
		StartDate:   startDate,
		EndDate:     req.EndDate,
		Process:     req.Process,
		Result:      req.Result,
		Notes:       []string{},
		Images:      []string{},
	}

	if err := database.DB.Create(&svc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// ------------------------------
// GET /services/:id
// ------------------------------
func GetService(c *gin.Context) {
	svc, ok := loadService(c)
	if !ok {
		return
	}

	userID := c.GetUint("user_id")
	c.JSON(http.StatusOK, gin.H{
		"service":  svc,
		"is_owner": svc.UserID == userID,
	})
}

// ------------------------------
// PUT /services/:id/status
// ------------------------------
func UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	svc, ok := loadService(c)
	if !ok {
		return
	}
	if !mustOwn(c, svc) {
		return
	}

	today := time.Now().Format("2006-01-02")
	status, endDate := services.ApplyStatusChange(req.Status, svc.EndDate, req.EndDate, today)

	// Status and end date land together so a Completed record is never
	// observed with a stale end date.
	svc.Status = status
	svc.EndDate = endDate
	if err := database.DB.Model(&svc).
		Select("Status", "EndDate").
		Updates(services.Service{Status: status, EndDate: endDate}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": svc.Status, "end_date": svc.EndDate})
}

// ------------------------------
// PUT /services/:id/technical
// ------------------------------
func UpdateTechnical(c *gin.Context) {
	var req UpdateTechnicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, ok := loadService(c)
	if !ok {
		return
	}
	if !mustOwn(c, svc) {
		return
	}

	svc.Process = req.Process
	svc.Result = req.Result
	if err := database.DB.Model(&svc).
		Select("Process", "Result").
		Updates(services.Service{Process: req.Process, Result: req.Result}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save technical details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"process": svc.Process, "result": svc.Result})
}

// ------------------------------
// POST /services/:id/notes
// ------------------------------
func AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, ok := loadService(c)
	if !ok {
		return
	}
	if !mustOwn(c, svc) {
		return
	}

	// Notes are append-only; individual notes are never edited or removed.
	svc.Notes = append(svc.Notes, req.Note)
	if err := database.DB.Model(&svc).
		Select("Notes").
		Updates(services.Service{Notes: svc.Notes}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": svc.Notes})
}

// ------------------------------
// DELETE /services/:id
// ------------------------------
func DeleteService(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&services.Service{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	if res.RowsAffected == 0 {
		// Either the record is gone or it belongs to someone else.
		c.JSON(http.StatusForbidden, gin.H{"error": "Service was not deleted. Likely owned by a different user."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
