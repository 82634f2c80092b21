package ratings

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"courserec-backend/internal/catalog"
)

// Service validates and stores ratings, keeping the per-course rating
// aggregate on the catalog in sync.
type Service struct {
	Repo    Repo
	Catalog catalog.Repo
}

// NewService constructs a Service.
func NewService(repo Repo, catalogRepo catalog.Repo) *Service {
	return &Service{Repo: repo, Catalog: catalogRepo}
}

// Submit stores one rating and returns the recomputed course average. The
// course must exist and the rating must be between 1 and 5.
func (s *Service) Submit(ctx context.Context, rating Rating) (float64, error) {
	rating.StudentEmail = strings.TrimSpace(rating.StudentEmail)
	rating.CourseID = strings.TrimSpace(rating.CourseID)
	if rating.StudentEmail == "" || rating.CourseID == "" {
		return 0, ErrMissingField
	}
	if rating.Rating < 1 || rating.Rating > 5 {
		return 0, ErrInvalidRating
	}

	if _, err := s.Catalog.GetByID(ctx, rating.CourseID); err != nil {
		return 0, fmt.Errorf("look up course %s: %w", rating.CourseID, err)
	}

	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	if err := s.Repo.Upsert(ctx, rating); err != nil {
		return 0, err
	}

	avg, total, err := s.Repo.Aggregate(ctx, rating.CourseID)
	if err != nil {
		return 0, err
	}
	avg = math.Round(avg*100) / 100
	if err := s.Catalog.UpdateRatingStats(ctx, rating.CourseID, avg, total); err != nil {
		return 0, fmt.Errorf("update course aggregate: %w", err)
	}
	return avg, nil
}

// ListForCourse returns all ratings for a course, newest first.
func (s *Service) ListForCourse(ctx context.Context, courseID string) ([]Rating, error) {
	return s.Repo.ListByCourse(ctx, courseID)
}

// RecordFeedback stores one feedback submission on a recommendation list.
func (s *Service) RecordFeedback(ctx context.Context, f Feedback) error {
	if strings.TrimSpace(f.StudentID) == "" {
		return ErrMissingField
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	return s.Repo.SaveFeedback(ctx, f)
}
