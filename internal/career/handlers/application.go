package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/apisuite/apisuite/internal/career/db"
	"github.com/apisuite/apisuite/internal/career/middleware"
	"github.com/apisuite/apisuite/internal/career/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var validStatuses = []string{"pending", "interview", "rejected", "accepted"}

type CreateApplicationRequest struct {
	Company     string     `json:"company" binding:"required"`
	Position    string     `json:"position" binding:"required"`
	Status      string     `json:"status"`
	DateApplied *time.Time `json:"date_applied"`
}

// UpdateApplicationRequest enumerates the updatable fields explicitly. Only
// fields present in the body are merged into the stored record.
type UpdateApplicationRequest struct {
	Company     *string    `json:"company"`
	Position    *string    `json:"position"`
	Status      *string    `json:"status"`
	DateApplied *time.Time `json:"date_applied"`
}

// loadOwnedApplication fetches the application and enforces ownership,
// writing the error response itself on failure.
func loadOwnedApplication(ctx *gin.Context, userID uint) (models.JobApplication, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return models.JobApplication{}, false
	}

	var application models.JobApplication

	if err := db.DB.First(&application, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return models.JobApplication{}, false
	}

	if application.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access this application"})
		return models.JobApplication{}, false
	}

	return application, true
}

func CreateApplication(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateApplicationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = "pending"
	}

	dateApplied := time.Now()

	if req.DateApplied != nil {
		dateApplied = *req.DateApplied
	}

	application := models.JobApplication{
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		DateApplied: dateApplied,
		UserID:      user.ID,
	}

	if err := db.DB.Create(&application).Error; err != nil {
		log.Printf("Failed to create application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	ctx.JSON(http.StatusCreated, application)
}

func ListApplications(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	var applications []models.JobApplication

	if err := db.DB.Where("user_id = ?", user.ID).Offset(skip).Limit(limit).Find(&applications).Error; err != nil {
		log.Printf("Failed to list applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// SearchApplications filters the caller's applications by optional status,
// company, and position query parameters. Status must be one of the known
// values; company and position match as case-insensitive substrings.
func SearchApplications(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := db.DB.Where("user_id = ?", user.ID)

	if status := ctx.Query("status"); status != "" {
		status = strings.ToLower(status)
		valid := false

		for _, s := range validStatuses {
			if status == s {
				valid = true
				break
			}
		}

		if !valid {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(validStatuses, ", ")),
			})
			return
		}

		query = query.Where("LOWER(status) LIKE ?", "%"+status+"%")
	}

	if company := ctx.Query("company"); company != "" {
		query = query.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(company)+"%")
	}

	if position := ctx.Query("position"); position != "" {
		query = query.Where("LOWER(position) LIKE ?", "%"+strings.ToLower(position)+"%")
	}

	var applications []models.JobApplication

	if err := query.Find(&applications).Error; err != nil {
		log.Printf("Failed to search applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error processing search query: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

func GetApplication(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	application, ok := loadOwnedApplication(ctx, user.ID)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, application)
}

func UpdateApplication(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	application, ok := loadOwnedApplication(ctx, user.ID)

	if !ok {
		return
	}

	var req UpdateApplicationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Company != nil {
		application.Company = *req.Company
	}

	if req.Position != nil {
		application.Position = *req.Position
	}

	if req.Status != nil {
		application.Status = *req.Status
	}

	if req.DateApplied != nil {
		application.DateApplied = *req.DateApplied
	}

	if err := db.DB.Save(&application).Error; err != nil {
		log.Printf("Failed to update application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	ctx.JSON(http.StatusOK, application)
}

func DeleteApplication(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	application, ok := loadOwnedApplication(ctx, user.ID)

	if !ok {
		return
	}

	if err := db.DB.Delete(&application).Error; err != nil {
		log.Printf("Failed to delete application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job application deleted successfully"})
}
