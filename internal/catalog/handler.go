package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"courserec-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the course catalog repository.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.listCourses)
	rg.GET("/courses/:id", h.getCourse)
	rg.PUT("/courses", h.upsertCourse)
	rg.GET("/departments", h.listDepartments)
	rg.GET("/statistics", h.statistics)
}

func (h *Handler) listCourses(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	filters := SearchFilters{
		Department: c.Query("department"),
		Level:      c.Query("level"),
	}
	if v := c.Query("max_difficulty"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "max_difficulty must be a number", []map[string]string{
				{"field": "max_difficulty", "issue": "not_a_number"},
			})
			return
		}
		filters.MaxDifficulty = parsed
	}

	var (
		courses []Course
		err     error
	)
	if query == "" && filters == (SearchFilters{}) {
		courses, err = h.Repo.GetAll(c.Request.Context())
	} else {
		courses, err = h.Repo.Search(c.Request.Context(), query, filters)
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list courses", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *Handler) getCourse(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "course id is required", nil)
		return
	}

	course, err := h.Repo.GetByID(c.Request.Context(), courseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "course not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch course", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"course": course})
}

func (h *Handler) upsertCourse(c *gin.Context) {
	var course Course
	if err := c.ShouldBindJSON(&course); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	course.ID = strings.TrimSpace(course.ID)
	if course.ID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "course id is required", []map[string]string{
			{"field": "id", "issue": "required"},
		})
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), course); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save course", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"course": course})
}

func (h *Handler) listDepartments(c *gin.Context) {
	departments, err := h.Repo.Departments(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list departments", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"departments": departments})
}

func (h *Handler) statistics(c *gin.Context) {
	stats, err := h.Repo.Statistics(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute statistics", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"statistics": stats})
}
