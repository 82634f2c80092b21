package catalog

import "context"

// Repo defines persistence operations for the course catalog.
type Repo interface {
	GetAll(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, courseID string) (Course, error)
	Search(ctx context.Context, query string, filters SearchFilters) ([]Course, error)
	Upsert(ctx context.Context, course Course) error
	Departments(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (Stats, error)
	// UpdateRatingStats stores the recomputed rating aggregate for a course.
	UpdateRatingStats(ctx context.Context, courseID string, avgRating float64, totalRatings int) error
}
