package recommend

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"courserec-backend/internal/catalog"
	"courserec-backend/internal/shared/metrics"
	"courserec-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation engine.
type Handler struct {
	Engine *Engine
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
	rg.GET("/courses/:id/similar", h.similar)
}

type recommendRequest struct {
	Interests            []string `json:"interests"`
	SpecificTopics       string   `json:"specific_topics"`
	CareerGoals          string   `json:"career_goals"`
	PreferredTopics      []string `json:"preferred_topics"`
	DifficultyPreference string   `json:"difficulty_preference"`
	CompletedCourses     []string `json:"completed_courses"`
	AcademicLevel        string   `json:"academic_level"`
	DepartmentFilter     string   `json:"department_filter"`
	IncludeCrossDept     *bool    `json:"include_cross_dept"`
	NumRecommendations   int      `json:"num_recommendations"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.NumRecommendations < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "num_recommendations must be non-negative", []map[string]string{
			{"field": "num_recommendations", "issue": "negative"},
		})
		return
	}

	// Cross-department inclusion defaults to on when the field is omitted.
	includeCrossDept := true
	if req.IncludeCrossDept != nil {
		includeCrossDept = *req.IncludeCrossDept
	}

	metrics.IncRecommendationRequested()
	start := time.Now()

	recs, err := h.Engine.Recommend(c.Request.Context(), Query{
		Interests:            req.Interests,
		SpecificTopics:       req.SpecificTopics,
		CareerGoals:          req.CareerGoals,
		PreferredTopics:      req.PreferredTopics,
		DifficultyPreference: req.DifficultyPreference,
		CompletedCourses:     req.CompletedCourses,
		AcademicLevel:        req.AcademicLevel,
		DepartmentFilter:     req.DepartmentFilter,
		IncludeCrossDept:     includeCrossDept,
		NumRecommendations:   req.NumRecommendations,
	})
	if err != nil {
		metrics.IncRecommendationFailed()
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		return
	}

	metrics.IncRecommendationCompleted()
	metrics.ObserveRecommendationDurationMs(float64(time.Since(start)) / float64(time.Millisecond))

	respond.JSON(c, http.StatusOK, gin.H{
		"recommendations": recs,
		"count":           len(recs),
	})
}

func (h *Handler) similar(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "course id is required", nil)
		return
	}

	n := 5
	if v := c.Query("num"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}

	similar, err := h.Engine.SimilarCourses(c.Request.Context(), courseID, n)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "course not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to find similar courses", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"course_id":       courseID,
		"similar_courses": similar,
	})
}
