package recommend

import (
	"strings"

	"courserec-backend/internal/catalog"
)

// Query carries one student's profile for a single recommendation pass.
// Every field except NumRecommendations is optional.
type Query struct {
	Interests            []string
	SpecificTopics       string
	CareerGoals          string
	PreferredTopics      []string
	DifficultyPreference string
	CompletedCourses     []string
	AcademicLevel        string
	DepartmentFilter     string
	IncludeCrossDept     bool
	NumRecommendations   int
}

// withDefaults fills the documented defaults for omitted fields.
func (q Query) withDefaults() Query {
	if q.NumRecommendations <= 0 {
		q.NumRecommendations = 10
	}
	if strings.TrimSpace(q.DifficultyPreference) == "" {
		q.DifficultyPreference = "medium"
	}
	return q
}

// exploringSentinel is the intake-form phrase that switches weighting toward
// department diversity.
const exploringSentinel = "explore new fields discover interdisciplinary"

func (q Query) isExploring() bool {
	joined := strings.Join(append(append([]string{}, q.Interests...), q.PreferredTopics...), " ")
	return strings.Contains(joined, exploringSentinel)
}

func (q Query) hasSpecificTopics() bool {
	return strings.TrimSpace(q.SpecificTopics) != ""
}

// Breakdown is the capped per-dimension score set attached to every
// recommendation, rounded to 3 decimals.
type Breakdown struct {
	InterestMatch        float64 `json:"interest_match"`
	SemanticTopicMatch   float64 `json:"semantic_topic_match"`
	CareerAlignment      float64 `json:"career_alignment"`
	DifficultyFit        float64 `json:"difficulty_fit"`
	PrerequisitesMet     float64 `json:"prerequisites_met"`
	Popularity           float64 `json:"popularity"`
	LevelAppropriateness float64 `json:"level_appropriateness"`
	CourseLevelBonus     float64 `json:"course_level_bonus"`
}

// Recommendation is one scored course. Score is the weighted sum plus
// boosts; boosts can push it above 1.0 and no top-level cap is applied,
// which is what separates strongly-matching courses at the head of the list.
type Recommendation struct {
	catalog.Course
	Score     float64   `json:"recommendation_score"`
	Breakdown Breakdown `json:"score_breakdown"`
	Reason    string    `json:"recommendation_reason"`
}

// SimilarCourse pairs a course with its content similarity to a target.
type SimilarCourse struct {
	Course     catalog.Course `json:"course"`
	Similarity float64        `json:"similarity_score"`
}
