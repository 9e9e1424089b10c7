package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/apisuite/apisuite/internal/university/db"
	"github.com/apisuite/apisuite/internal/university/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateStudentRequest struct {
	Name   string    `json:"name" binding:"required"`
	Age    int       `json:"age" binding:"required,gt=0"`
	Email  string    `json:"email" binding:"required,email"`
	Grades []float64 `json:"grades"`
}

// UpdateStudentRequest enumerates the updatable fields explicitly. Only
// fields present in the body are merged into the stored record.
type UpdateStudentRequest struct {
	Name   *string    `json:"name"`
	Age    *int       `json:"age" binding:"omitempty,gt=0"`
	Email  *string    `json:"email" binding:"omitempty,email"`
	Grades *[]float64 `json:"grades"`
}

type StudentResponse struct {
	ID     uint      `json:"id"`
	Name   string    `json:"name"`
	Age    int       `json:"age"`
	Email  string    `json:"email"`
	Grades []float64 `json:"grades"`
}

// toResponse always returns a non-nil grades slice so the API shows [], never
// null.
func toResponse(student models.Student) StudentResponse {
	grades := make([]float64, len(student.Grades))
	copy(grades, student.Grades)

	return StudentResponse{
		ID:     student.ID,
		Name:   student.Name,
		Age:    student.Age,
		Email:  student.Email,
		Grades: grades,
	}
}

func loadStudent(ctx *gin.Context) (models.Student, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return models.Student{}, false
	}

	var student models.Student

	if err := db.DB.First(&student, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			log.Printf("Failed to fetch student: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve student"})
		}
		return models.Student{}, false
	}

	return student, true
}

func CreateStudent(ctx *gin.Context) {
	var req CreateStudentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grades := req.Grades

	if grades == nil {
		grades = []float64{}
	}

	student := models.Student{
		Name:   req.Name,
		Age:    req.Age,
		Email:  req.Email,
		Grades: datatypes.NewJSONSlice(grades),
	}

	if err := db.DB.Create(&student).Error; err != nil {
		log.Printf("Failed to create student: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(student))
}

func ListStudents(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	var students []models.Student

	if err := db.DB.Offset(skip).Limit(limit).Find(&students).Error; err != nil {
		log.Printf("Failed to list students: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve students"})
		return
	}

	responses := make([]StudentResponse, 0, len(students))

	for _, student := range students {
		responses = append(responses, toResponse(student))
	}

	ctx.JSON(http.StatusOK, responses)
}

func GetStudent(ctx *gin.Context) {
	student, ok := loadStudent(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, toResponse(student))
}

func UpdateStudent(ctx *gin.Context) {
	student, ok := loadStudent(ctx)

	if !ok {
		return
	}

	var req UpdateStudentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		student.Name = *req.Name
	}

	if req.Age != nil {
		student.Age = *req.Age
	}

	if req.Email != nil {
		student.Email = *req.Email
	}

	if req.Grades != nil {
		student.Grades = datatypes.NewJSONSlice(*req.Grades)
	}

	if err := db.DB.Save(&student).Error; err != nil {
		log.Printf("Failed to update student: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(student))
}

func DeleteStudent(ctx *gin.Context) {
	student, ok := loadStudent(ctx)

	if !ok {
		return
	}

	if err := db.DB.Delete(&student).Error; err != nil {
		log.Printf("Failed to delete student: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

func SearchStudents(ctx *gin.Context) {
	query := "%" + strings.ToLower(ctx.Param("query")) + "%"

	var students []models.Student

	if err := db.DB.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", query, query).Find(&students).Error; err != nil {
		log.Printf("Failed to search students: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search students"})
		return
	}

	responses := make([]StudentResponse, 0, len(students))

	for _, student := range students {
		responses = append(responses, toResponse(student))
	}

	ctx.JSON(http.StatusOK, responses)
}
