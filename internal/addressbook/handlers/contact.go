package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/apisuite/apisuite/internal/addressbook/db"
	"github.com/apisuite/apisuite/internal/addressbook/middleware"
	"github.com/apisuite/apisuite/internal/addressbook/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateContactRequest enumerates the updatable fields explicitly. Only
// fields present in the body are merged into the stored record.
type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// loadOwnedContact fetches the contact and enforces ownership, writing the
// error response itself when the contact is missing or owned by someone else.
func loadOwnedContact(ctx *gin.Context, userID uint) (models.Contact, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return models.Contact{}, false
	}

	var contact models.Contact

	if err := db.DB.First(&contact, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		} else {
			log.Printf("Failed to fetch contact: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contact"})
		}
		return models.Contact{}, false
	}

	if contact.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access this contact"})
		return models.Contact{}, false
	}

	return contact, true
}

func CreateContact(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateContactRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.Contact{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		UserID: user.ID,
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		log.Printf("Failed to create contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	ctx.JSON(http.StatusCreated, contact)
}

func ListContacts(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	var contacts []models.Contact

	if err := db.DB.Where("user_id = ?", user.ID).Offset(skip).Limit(limit).Find(&contacts).Error; err != nil {
		log.Printf("Failed to list contacts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}

func GetContact(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, ok := loadOwnedContact(ctx, user.ID)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, contact)
}

func UpdateContact(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, ok := loadOwnedContact(ctx, user.ID)

	if !ok {
		return
	}

	var req UpdateContactRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}

	if req.Email != nil {
		contact.Email = *req.Email
	}

	if req.Phone != nil {
		contact.Phone = *req.Phone
	}

	if err := db.DB.Save(&contact).Error; err != nil {
		log.Printf("Failed to update contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	ctx.JSON(http.StatusOK, contact)
}

func DeleteContact(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contact, ok := loadOwnedContact(ctx, user.ID)

	if !ok {
		return
	}

	if err := db.DB.Delete(&contact).Error; err != nil {
		log.Printf("Failed to delete contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

func SearchContacts(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := "%" + strings.ToLower(ctx.Param("query")) + "%"

	var contacts []models.Contact

	err = db.DB.
		Where("user_id = ?", user.ID).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?", query, query, query).
		Find(&contacts).Error

	if err != nil {
		log.Printf("Failed to search contacts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search contacts"})
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}
