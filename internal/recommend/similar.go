package recommend

import (
	"context"
	"fmt"
	"sort"
)

// SimilarCourses finds the n catalog courses closest to the target by
// TF-IDF cosine similarity over description plus topics. The target itself
// is excluded. Unknown course ids return catalog.ErrNotFound.
func (e *Engine) SimilarCourses(ctx context.Context, courseID string, n int) ([]SimilarCourse, error) {
	if n <= 0 {
		n = 5
	}

	target, err := e.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("load course %s: %w", courseID, err)
	}
	courses, err := e.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	targetText := Normalize(e.analyzer, target.Description+" "+target.Topics)

	out := make([]SimilarCourse, 0, len(courses))
	for _, course := range courses {
		if course.ID == courseID {
			continue
		}
		courseText := Normalize(e.analyzer, course.Description+" "+course.Topics)
		out = append(out, SimilarCourse{
			Course:     course,
			Similarity: round3(cosineTFIDF(targetText, courseText)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
