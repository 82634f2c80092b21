package ratings

import "context"

// Repo persists student ratings and recommendation feedback.
type Repo interface {
	// Upsert stores a rating, replacing any earlier rating by the same
	// student for the same course.
	Upsert(ctx context.Context, r Rating) error
	// ListByCourse returns all ratings for a course, newest first.
	ListByCourse(ctx context.Context, courseID string) ([]Rating, error)
	// Aggregate returns the average rating and rating count for a course.
	// A course with no ratings aggregates to (0, 0) without error.
	Aggregate(ctx context.Context, courseID string) (avg float64, total int, err error)
	// SaveFeedback stores one feedback submission.
	SaveFeedback(ctx context.Context, f Feedback) error
}
