package recommend

import (
	"strings"

	"courserec-backend/internal/catalog"
)

// reason builds the human-readable justification from score thresholds. At
// most the first three applicable clauses are used.
func (e *Engine) reason(course catalog.Course, interest, career, difficulty, prerequisite float64) string {
	var clauses []string

	if interest > 0.7 {
		clauses = append(clauses, "strongly matches your interests")
	} else if interest > 0.5 {
		clauses = append(clauses, "aligns with your interests")
	}

	if career > 0.7 {
		clauses = append(clauses, "highly relevant to your career goals")
	} else if career > 0.5 {
		clauses = append(clauses, "supports your career objectives")
	}

	if difficulty > 0.8 {
		clauses = append(clauses, "perfect difficulty level for you")
	} else if difficulty > 0.6 {
		clauses = append(clauses, "appropriate difficulty level")
	}

	if prerequisite >= 1.0 {
		clauses = append(clauses, "you meet all prerequisites")
	} else if prerequisite > 0.5 {
		clauses = append(clauses, "you meet most prerequisites")
	}

	if course.Rating > 4.0 {
		clauses = append(clauses, "highly rated by students")
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "good foundational course for your profile")
	}
	if len(clauses) > 3 {
		clauses = clauses[:3]
	}
	return "Recommended because it " + strings.Join(clauses, ", ") + "."
}
