package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/apisuite/apisuite/internal/notes/backup"
	"github.com/apisuite/apisuite/internal/notes/db"
	"github.com/apisuite/apisuite/internal/notes/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest enumerates the updatable fields explicitly. Only fields
// present in the body are merged into the stored record.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type Handler struct {
	Backup *backup.Store
}

func New(backupStore *backup.Store) *Handler {
	return &Handler{Backup: backupStore}
}

// snapshot rewrites the backup file from the full notes table. Failures are
// logged and swallowed so a backup problem never fails the request that
// triggered it.
func (h *Handler) snapshot() {
	var notes []models.Note

	if err := db.DB.Find(&notes).Error; err != nil {
		log.Printf("Failed to read notes for backup: %v", err)
		return
	}

	if err := h.Backup.Write(notes); err != nil {
		log.Printf("Failed to back up notes: %v", err)
	}
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateNoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := models.Note{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := db.DB.Create(&note).Error; err != nil {
		log.Printf("Failed to create note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	h.snapshot()

	ctx.JSON(http.StatusCreated, note)
}

func (h *Handler) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	var notes []models.Note

	if err := db.DB.Offset(skip).Limit(limit).Find(&notes).Error; err != nil {
		log.Printf("Failed to list notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notes"})
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *Handler) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	var note models.Note

	if err := db.DB.First(&note, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve note"})
		}
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *Handler) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	var note models.Note

	if err := db.DB.First(&note, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve note"})
		}
		return
	}

	var req UpdateNoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		note.Title = *req.Title
	}

	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := db.DB.Save(&note).Error; err != nil {
		log.Printf("Failed to update note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	h.snapshot()

	ctx.JSON(http.StatusOK, note)
}

func (h *Handler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return
	}

	var note models.Note

	if err := db.DB.First(&note, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve note"})
		}
		return
	}

	if err := db.DB.Delete(&note).Error; err != nil {
		log.Printf("Failed to delete note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	h.snapshot()

	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func (h *Handler) Search(ctx *gin.Context) {
	query := "%" + strings.ToLower(ctx.Param("query")) + "%"

	var notes []models.Note

	if err := db.DB.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", query, query).Find(&notes).Error; err != nil {
		log.Printf("Failed to search notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search notes"})
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

// Restore re-inserts backup rows whose ids are no longer present and reports
// how many were brought back.
func (h *Handler) Restore(ctx *gin.Context) {
	backedUp, err := h.Backup.Load()

	if err != nil {
		if errors.Is(err, backup.ErrNoBackup) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Backup file not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error restoring from backup: %v", err)})
		return
	}

	restored := 0

	for _, note := range backedUp {
		var existing models.Note

		err := db.DB.First(&existing, note.ID).Error

		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error restoring from backup: %v", err)})
			return
		}

		restoredNote := models.Note{
			Title:   note.Title,
			Content: note.Content,
		}

		if err := db.DB.Create(&restoredNote).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error restoring from backup: %v", err)})
			return
		}

		restored++
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Restored %d notes from backup", restored)})
}
