package ratings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courserec-backend/internal/catalog"
	"courserec-backend/internal/shared/metrics"
	"courserec-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the ratings service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches rating routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ratings", h.submitRating)
	rg.GET("/courses/:id/ratings", h.listRatings)
	rg.POST("/feedback", h.submitFeedback)
}

type ratingRequest struct {
	StudentEmail      string `json:"student_email"`
	CourseID          string `json:"course_id"`
	Rating            int    `json:"rating"`
	Review            string `json:"review"`
	CompletedSemester string `json:"completed_semester"`
	WouldRecommend    *bool  `json:"would_recommend"`
}

func (h *Handler) submitRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	wouldRecommend := true
	if req.WouldRecommend != nil {
		wouldRecommend = *req.WouldRecommend
	}

	avg, err := h.Svc.Submit(c.Request.Context(), Rating{
		StudentEmail:      req.StudentEmail,
		CourseID:          req.CourseID,
		Rating:            req.Rating,
		Review:            req.Review,
		CompletedSemester: req.CompletedSemester,
		WouldRecommend:    wouldRecommend,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			respond.Error(c, http.StatusBadRequest, "validation_error", "student_email and course_id are required", nil)
		case errors.Is(err, ErrInvalidRating):
			respond.Error(c, http.StatusBadRequest, "validation_error", "rating must be an integer between 1 and 5", []map[string]string{
				{"field": "rating", "issue": "out_of_range"},
			})
		case errors.Is(err, catalog.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "course not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save rating", nil)
		}
		return
	}

	metrics.IncRatingSubmitted()
	respond.JSON(c, http.StatusOK, gin.H{
		"message":         "Rating submitted successfully!",
		"updated_average": avg,
	})
}

func (h *Handler) listRatings(c *gin.Context) {
	courseID := c.Param("id")
	if courseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "course id is required", nil)
		return
	}

	list, err := h.Svc.ListForCourse(c.Request.Context(), courseID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list ratings", nil)
		return
	}
	if list == nil {
		list = []Rating{}
	}

	respond.JSON(c, http.StatusOK, gin.H{"ratings": list})
}

type feedbackRequest struct {
	StudentID          string   `json:"student_id"`
	RecommendedCourses []string `json:"recommended_courses"`
	SelectedCourses    []string `json:"selected_courses"`
	Rating             int      `json:"rating"`
	Comments           string   `json:"comments"`
}

func (h *Handler) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.RecordFeedback(c.Request.Context(), Feedback{
		StudentID:          req.StudentID,
		RecommendedCourses: req.RecommendedCourses,
		SelectedCourses:    req.SelectedCourses,
		Rating:             req.Rating,
		Comments:           req.Comments,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			respond.Error(c, http.StatusBadRequest, "validation_error", "student_id is required", []map[string]string{
				{"field": "student_id", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save feedback", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "Feedback submitted successfully"})
}
