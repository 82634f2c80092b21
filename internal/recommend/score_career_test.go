package recommend

import (
	"testing"

	"courserec-backend/internal/catalog"
)

func TestCareerScoreNeutralDefault(t *testing.T) {
	e := newTestEngine()
	if got := e.careerScore(mlCourse(), "", false); got != 0.5 {
		t.Fatalf("careerScore with empty goals = %v, want 0.5", got)
	}
}

func TestCareerScoreKeywordMatch(t *testing.T) {
	e := newTestEngine()
	course := catalog.Course{
		ID:              "CS375",
		Topics:          "machine learning, neural networks",
		CareerRelevance: "machine learning, data science, artificial intelligence",
	}
	matched := e.careerScore(course, "machine learning engineer", false)
	unmatched := e.careerScore(course, "theatre production", false)
	if matched <= unmatched {
		t.Fatalf("ML career goal (%v) should outscore theatre goal (%v)", matched, unmatched)
	}
	if matched <= 0.5 {
		t.Fatalf("matched careerScore = %v, want above neutral", matched)
	}
}

func TestCareerScoreExploring(t *testing.T) {
	e := newTestEngine()
	outside := catalog.Course{
		ID:              "PSY201",
		Department:      "Psychology",
		Topics:          "psychology, cognitive science",
		CareerRelevance: "psychology, research",
	}
	cs := catalog.Course{
		ID:              "CS435",
		Department:      "Computer Science",
		Topics:          "graph algorithms, optimization",
		CareerRelevance: "software engineering",
	}

	outsideScore := e.careerScore(outside, "", true)
	csScore := e.careerScore(cs, "", true)
	if outsideScore <= csScore {
		t.Fatalf("exploring mode should favor non-CS departments: psychology %v vs cs %v", outsideScore, csScore)
	}
	// Exploring floor is 0.7 before diversity bonuses.
	if csScore < 0.7 {
		t.Fatalf("exploring careerScore = %v, want at least 0.7", csScore)
	}
}

func TestCareerScoreExploringGoals(t *testing.T) {
	e := newTestEngine()
	course := catalog.Course{ID: "PSY201", Department: "Psychology"}
	if got := e.careerScore(course, "exploring", false); got < 0.7 {
		t.Fatalf("careerScore for goals=exploring = %v, want >= 0.7", got)
	}
	if got := e.careerScore(course, "interdisciplinary", false); got < 0.7 {
		t.Fatalf("careerScore for goals=interdisciplinary = %v, want >= 0.7", got)
	}
}

func TestCareerScoreCapped(t *testing.T) {
	e := newTestEngine()
	course := catalog.Course{
		ID:              "CS1",
		Topics:          "software development programming web mobile cloud machine learning data",
		CareerRelevance: "software development programming web mobile cloud machine learning data engineer",
	}
	if got := e.careerScore(course, "software engineer developer programming web cloud data machine learning", false); got > 1.0 {
		t.Fatalf("careerScore exceeded cap: %v", got)
	}
}
