package ratings

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores ratings in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byKey    map[string]Rating
	feedback []Feedback
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byKey: make(map[string]Rating)}
}

func ratingKey(studentEmail, courseID string) string {
	return studentEmail + "|" + courseID
}

// Upsert stores a rating, replacing any earlier one by the same student for
// the same course.
func (r *MemoryRepo) Upsert(ctx context.Context, rating Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[ratingKey(rating.StudentEmail, rating.CourseID)] = rating
	return nil
}

// ListByCourse returns all ratings for a course, newest first.
func (r *MemoryRepo) ListByCourse(ctx context.Context, courseID string) ([]Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Rating
	for _, rt := range r.byKey {
		if rt.CourseID == courseID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Aggregate returns the average rating and rating count for a course.
func (r *MemoryRepo) Aggregate(ctx context.Context, courseID string) (float64, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum, total int
	for _, rt := range r.byKey {
		if rt.CourseID == courseID {
			sum += rt.Rating
			total++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(total), total, nil
}

// SaveFeedback stores one feedback submission.
func (r *MemoryRepo) SaveFeedback(ctx context.Context, f Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, f)
	return nil
}
