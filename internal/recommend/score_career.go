package recommend

import (
	"strings"

	"courserec-backend/internal/catalog"
)

// careerScore measures alignment between the course and the student's career
// goal. Empty goals without exploring yield the neutral 0.5. Exploring mode
// deliberately rewards department diversity instead of precise matching.
func (e *Engine) careerScore(course catalog.Course, careerGoals string, exploring bool) float64 {
	if careerGoals == "" && !exploring {
		return 0.5
	}

	topics := strings.ToLower(course.Topics)
	relevance := strings.ToLower(course.CareerRelevance)

	if exploring || careerGoals == "exploring" || careerGoals == "interdisciplinary" {
		bonus := 0.0
		for _, keyword := range e.tables.InterdisciplinaryKeywords {
			if strings.Contains(topics, keyword) || strings.Contains(relevance, keyword) {
				bonus += 0.1
			}
		}
		if !strings.Contains(strings.ToLower(course.Department), "computer science") {
			bonus += 0.2
		}
		return capAtOne(0.7 + bonus)
	}

	goalsLower := strings.ToLower(careerGoals)
	score := 0.0
	for _, keyword := range strings.Fields(goalsLower) {
		if strings.Contains(relevance, keyword) {
			score += 0.3
		}
		if strings.Contains(topics, keyword) {
			score += 0.2
		}
	}

	for careerType, keywords := range e.tables.CareerMappings {
		if careerType != careerGoals && !strings.Contains(goalsLower, strings.ReplaceAll(careerType, "_", " ")) {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(relevance, keyword) || strings.Contains(topics, keyword) {
				score += 0.25
			}
		}
	}

	return capAtOne(score)
}
