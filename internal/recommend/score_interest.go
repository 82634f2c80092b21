package recommend

import (
	"strings"

	"courserec-backend/internal/catalog"
)

// interestScore measures how well a course matches the student's interest
// tags. Empty interests yield the neutral 0.5. The base score mixes TF-IDF
// similarity (60%) with keyword overlap (40%); subject-specific boosts are
// layered on top and the result is capped at 1.0.
func (e *Engine) interestScore(course catalog.Course, interests []string) float64 {
	if len(interests) == 0 {
		return 0.5
	}

	courseText := Normalize(e.analyzer, course.Title+" "+course.Description+" "+course.Topics)
	interestText := Normalize(e.analyzer, strings.Join(e.expandInterests(interests), " "))
	if courseText == "" || interestText == "" {
		return 0.5
	}

	score := 0.6 * cosineTFIDF(courseText, interestText)

	courseWords := wordSet(courseText)
	interestWords := wordSet(interestText)
	if len(interestWords) > 0 {
		overlap := 0
		for w := range interestWords {
			if courseWords[w] {
				overlap++
			}
		}
		score += 0.4 * capAtOne(float64(overlap)/float64(len(interestWords)))
	}

	score = e.applySubjectBoosts(course, interests, score)
	return capAtOne(score)
}

// expandInterests turns raw interest tags into a vocabulary-rich word list:
// known tags pull in their keyword expansion, and underscore compounds
// contribute both the joined phrase and the individual words.
func (e *Engine) expandInterests(interests []string) []string {
	var expanded []string
	for _, tag := range interests {
		if keywords, ok := e.tables.InterestKeywords[strings.ToLower(tag)]; ok {
			expanded = append(expanded, keywords...)
		}
		if strings.Contains(tag, "_") {
			expanded = append(expanded, strings.Split(tag, "_")...)
			expanded = append(expanded, strings.ReplaceAll(tag, "_", " "))
		} else {
			expanded = append(expanded, tag)
		}
	}
	return expanded
}

// applySubjectBoosts adds the per-subject increments. Each interest tag is
// routed to its first matching subject branch; unmatched tags contribute
// nothing here.
func (e *Engine) applySubjectBoosts(course catalog.Course, interests []string, score float64) float64 {
	courseText := courseBoostText(course)
	titleLower := strings.ToLower(course.Title)

	for _, tag := range interests {
		tagLower := strings.ToLower(tag)
		switch {
		case strings.Contains(tagLower, "ai") || strings.Contains(tagLower, "ml"):
			if e.isAIMLCourse(course) {
				if strings.HasPrefix(course.ID, "CS") &&
					(strings.Contains(titleLower, "artificial intelligence") || strings.Contains(titleLower, "machine learning")) {
					score += 0.8
				} else {
					score += 0.6
				}
			} else if score <= 0.1 {
				// Irrelevant course under an AI/ML interest: push it down.
				score *= 0.3
			}

		case strings.Contains(tagLower, "cyber") || strings.Contains(tagLower, "security"):
			if containsAny(courseText, []string{"security", "cyber", "encryption", "cryptography"}) {
				if containsAny(courseText, []string{"cybersecurity", "network security", "information security"}) {
					score += 0.7
				} else {
					score += 0.4
				}
			}

		case strings.Contains(tagLower, "ux") || strings.Contains(tagLower, "design"):
			falsePositive := containsAny(courseText, e.tables.UXScoreExclusions)
			if containsAny(courseText, e.tables.UXPhrases) && !falsePositive {
				score += 0.8
			} else if containsAny(courseText, []string{"human factors", "ergonomics"}) && !falsePositive {
				score += 0.4
			}

		case strings.Contains(tagLower, "mechanical"):
			if containsAny(courseText, []string{"mechanical", "manufacturing", "design", "cad", "prototype"}) {
				if strings.Contains(courseText, "mechanical") || strings.Contains(courseText, "manufacturing") {
					score += 0.6
				} else {
					score += 0.3
				}
			}

		case strings.Contains(tagLower, "environmental"):
			if containsAny(courseText, []string{"environmental", "sustainability", "remote sensing", "gis"}) {
				if strings.Contains(courseText, "environmental") {
					score += 0.6
				} else {
					score += 0.3
				}
			}
		}
	}
	return score
}

// isAIMLCourse reports whether a course is clearly AI/ML related. A positive
// keyword match wins immediately; the false-positive list (machining,
// welding, ...) is only consulted afterwards, so order matters.
func (e *Engine) isAIMLCourse(course catalog.Course) bool {
	text := courseFullText(course)
	for _, keyword := range e.tables.AIMLKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	for _, fp := range e.tables.AIMLFalsePositives {
		if strings.Contains(text, fp) {
			return false
		}
	}
	return false
}

func wordSet(text string) map[string]bool {
	words := strings.Fields(text)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func capAtOne(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
