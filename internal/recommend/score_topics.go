package recommend

import (
	"regexp"
	"strings"

	"courserec-backend/internal/catalog"
)

// topicPhrasePattern extracts runs of two or more words from the raw topic
// text for exact phrase matching.
var topicPhrasePattern = regexp.MustCompile(`\b\w+\s+\w+(?:\s+\w+)*\b`)

// topicScore measures semantic match between the student's free-text topics
// and the course content. Blank topics yield the neutral 0.5. The mix is
// 40% TF-IDF similarity, 35% synonym-expanded keyword overlap, and 25%
// exact multi-word phrase matches, capped at 1.0.
func (e *Engine) topicScore(course catalog.Course, specificTopics string) float64 {
	if strings.TrimSpace(specificTopics) == "" {
		return 0.5
	}

	rawContent := course.Title + " " + course.Description + " " + course.Topics + " " + course.CareerRelevance
	courseContent := Normalize(e.analyzer, rawContent)
	topicsText := Normalize(e.analyzer, specificTopics)
	if courseContent == "" || topicsText == "" {
		return 0.5
	}

	score := 0.4 * cosineTFIDF(courseContent, topicsText)

	courseWords := wordSet(courseContent)
	expanded := wordSet(topicsText)
	for token := range wordSet(topicsText) {
		for _, rule := range e.tables.TopicSynonyms {
			if !strings.Contains(token, rule.Trigger) {
				continue
			}
			for _, term := range rule.Terms {
				if stem := e.analyzer.Stem(term); stem != "" {
					expanded[stem] = true
				}
			}
			break
		}
	}
	if len(expanded) > 0 {
		overlap := 0
		for w := range expanded {
			if courseWords[w] {
				overlap++
			}
		}
		score += 0.35 * capAtOne(float64(overlap)/float64(len(expanded)))
	}

	// Exact phrase matches against the raw lowercased course content.
	rawLower := strings.ToLower(rawContent)
	phrases := topicPhrasePattern.FindAllString(strings.ToLower(specificTopics), -1)
	if len(phrases) > 0 {
		matches := 0
		for _, phrase := range phrases {
			if len(strings.Fields(phrase)) >= 2 && strings.Contains(rawLower, phrase) {
				matches++
			}
		}
		score += 0.25 * capAtOne(float64(matches)/float64(len(phrases)))
	}

	return capAtOne(score)
}
