package catalog

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo stores courses in memory and is safe for concurrent use.
// It backs tests and the no-database dev fallback.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Course
	ids  []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Course)}
}

// GetAll returns every course in insertion order.
func (r *MemoryRepo) GetAll(ctx context.Context) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Course, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// GetByID returns a course by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, courseID string) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.byID[courseID]
	if !ok {
		return Course{}, ErrNotFound
	}
	return course, nil
}

// Search performs a substring search over title, description, topics and
// career relevance, then applies the optional filters.
func (r *MemoryRepo) Search(ctx context.Context, query string, filters SearchFilters) ([]Course, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]Course, 0, len(all))
	for _, c := range all {
		if needle != "" {
			haystack := strings.ToLower(c.Title + " " + c.Description + " " + c.Topics + " " + c.CareerRelevance)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		if filters.Department != "" && c.Department != filters.Department {
			continue
		}
		if filters.Level != "" && !strings.EqualFold(c.Level, filters.Level) {
			continue
		}
		if filters.MaxDifficulty > 0 && c.DifficultyRating > filters.MaxDifficulty {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Upsert inserts or replaces a course.
func (r *MemoryRepo) Upsert(ctx context.Context, course Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(course.ID) == "" {
		return ErrMissingID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[course.ID]; !ok {
		r.ids = append(r.ids, course.ID)
	}
	r.byID[course.ID] = course
	return nil
}

// Departments returns the distinct department names, sorted.
func (r *MemoryRepo) Departments(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, c := range r.byID {
		if c.Department == "" || seen[c.Department] {
			continue
		}
		seen[c.Department] = true
		out = append(out, c.Department)
	}
	sort.Strings(out)
	return out, nil
}

// Statistics summarizes the stored catalog.
func (r *MemoryRepo) Statistics(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := Stats{Departments: make(map[string]int)}
	var diffSum, ratingSum float64
	for _, c := range r.byID {
		stats.TotalCourses++
		stats.Departments[c.Department]++
		diffSum += c.DifficultyRating
		ratingSum += c.AvgRating
	}
	if stats.TotalCourses > 0 {
		stats.AverageDifficulty = round2(diffSum / float64(stats.TotalCourses))
		stats.AverageRating = round2(ratingSum / float64(stats.TotalCourses))
	}
	return stats, nil
}

// UpdateRatingStats stores a recomputed rating aggregate.
func (r *MemoryRepo) UpdateRatingStats(ctx context.Context, courseID string, avgRating float64, totalRatings int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.byID[courseID]
	if !ok {
		return ErrNotFound
	}
	course.AvgRating = avgRating
	course.TotalRatings = totalRatings
	r.byID[courseID] = course
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
