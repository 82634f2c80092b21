package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"courserec-backend/internal/catalog"
)

// Engine scores catalog courses against a student profile. It is stateless
// and read-only over its inputs; concurrent Recommend calls are safe as long
// as the repository supports concurrent reads.
type Engine struct {
	repo     catalog.Repo
	analyzer Analyzer
	tables   Tables
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnalyzer substitutes the text analyzer.
func WithAnalyzer(a Analyzer) Option {
	return func(e *Engine) { e.analyzer = a }
}

// WithTables substitutes the classifier tables, mainly for tests.
func WithTables(t Tables) Option {
	return func(e *Engine) { e.tables = t }
}

// New constructs an Engine over the given catalog repository.
func New(repo catalog.Repo, opts ...Option) *Engine {
	e := &Engine{
		repo:     repo,
		analyzer: EnglishAnalyzer{},
		tables:   DefaultTables(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend runs the full scoring pipeline and returns at most
// q.NumRecommendations courses ordered by descending score. An empty catalog
// yields an empty, non-nil slice.
func (e *Engine) Recommend(ctx context.Context, q Query) ([]Recommendation, error) {
	q = q.withDefaults()

	courses, err := e.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	exploring := q.isExploring()
	hasTopics := q.hasSpecificTopics()
	mergedInterests := append(append([]string{}, q.Interests...), q.PreferredTopics...)

	var allowedDepartments map[string]bool
	if q.DepartmentFilter != "" {
		if q.IncludeCrossDept {
			allowedDepartments = e.RelatedDepartments(q.DepartmentFilter, q.Interests, q.SpecificTopics, q.CareerGoals)
		} else {
			allowedDepartments = map[string]bool{q.DepartmentFilter: true}
		}
	}

	completed := make(map[string]bool, len(q.CompletedCourses))
	for _, id := range q.CompletedCourses {
		completed[id] = true
	}
	interestsMentionAIML := anyInterestMentions(q.Interests, "ai", "ml")

	w := weightsFor(q.IncludeCrossDept, exploring, hasTopics)
	out := make([]Recommendation, 0, len(courses))

	for _, course := range courses {
		if completed[course.ID] {
			continue
		}
		if allowedDepartments != nil && !allowedDepartments[course.Department] {
			continue
		}
		if interestsMentionAIML && containsAny(strings.ToLower(course.Title), e.tables.AIMLTitleExclusions) {
			continue
		}

		interest := e.interestScore(course, mergedInterests)
		topic := e.topicScore(course, q.SpecificTopics)

		// Cross-department mode widens the candidate pool, so plainly
		// irrelevant courses are dropped before weighting.
		if q.IncludeCrossDept && interest < 0.2 && topic < 0.3 {
			continue
		}

		career := e.careerScore(course, q.CareerGoals, exploring)
		difficulty := e.difficultyScore(course, q.DifficultyPreference)
		prerequisite := e.prerequisiteScore(course, q.CompletedCourses)
		popularity := e.popularityScore(course)
		level := e.levelScore(course, q.CompletedCourses, q.AcademicLevel)
		bonus := e.numberBonus(course, q.AcademicLevel)

		final := w.Interest*interest +
			w.Topic*topic +
			w.Career*career +
			w.Difficulty*difficulty +
			w.Prerequisite*prerequisite +
			w.Popularity*popularity +
			w.Level*level +
			w.Bonus*(1+bonus)

		if hasTopics {
			final += e.directTopicBoost(course, q.SpecificTopics)
		}
		final += e.interestBoosts(course, q.Interests, interest, hasTopics)

		out = append(out, Recommendation{
			Course: course,
			Score:  round3(final),
			Breakdown: Breakdown{
				InterestMatch:        round3(interest),
				SemanticTopicMatch:   round3(topic),
				CareerAlignment:      round3(career),
				DifficultyFit:        round3(difficulty),
				PrerequisitesMet:     round3(prerequisite),
				Popularity:           round3(popularity),
				LevelAppropriateness: round3(level),
				CourseLevelBonus:     round3(bonus),
			},
			Reason: e.reason(course, interest, career, difficulty, prerequisite),
		})
	}

	// Stable keeps catalog iteration order on ties, which in turn keeps
	// repeated calls byte-identical.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > q.NumRecommendations {
		out = out[:q.NumRecommendations]
	}
	return out, nil
}

// directTopicBoost applies the first matching topic-domain boost: a strong
// reward when the student named a domain and the course plainly belongs to
// it. Scan order is fixed (web, AI, data, security) and a rule whose topic
// terms match claims the scan even if its course terms do not.
func (e *Engine) directTopicBoost(course catalog.Course, specificTopics string) float64 {
	topicsLower := strings.ToLower(specificTopics)
	courseText := courseBoostText(course)
	for _, rule := range e.tables.TopicBoosts {
		if !containsAny(topicsLower, rule.TopicTerms) {
			continue
		}
		if containsAny(courseText, rule.CourseTerms) {
			return rule.Boost
		}
		return 0
	}
	return 0
}

// interestBoosts walks the interest tags and applies at most one boost per
// tag: the first subject detector whose interest terms match the tag claims
// it, boosting only if its course-text check passes. Tags no detector claims
// fall back to a proportional boost when the interest score is decent.
func (e *Engine) interestBoosts(course catalog.Course, interests []string, interestScore float64, hasTopics bool) float64 {
	base := 0.25
	if hasTopics {
		// Specific topics outrank general interests.
		base = 0.08
	}
	courseText := courseBoostText(course)

	var total float64
	for _, tag := range interests {
		tagLower := strings.ToLower(tag)
		applied := false
		for _, d := range e.tables.Detectors {
			if !containsAny(tagLower, d.InterestTerms) {
				continue
			}
			matched := false
			if d.UseAIMLPredicate {
				matched = e.isAIMLCourse(course)
			} else {
				matched = containsAny(courseText, d.CourseTerms) &&
					(len(d.Exclude) == 0 || !containsAny(courseText, d.Exclude))
			}
			if matched {
				total += base * d.Multiplier
				applied = true
			}
			break
		}
		if !applied && interestScore >= 0.4 {
			total += base * 0.4
		}
	}
	return total
}

func anyInterestMentions(interests []string, terms ...string) bool {
	for _, tag := range interests {
		lower := strings.ToLower(tag)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}

// courseBoostText is the raw lowercased id+title+description used by the
// boost and detector checks (topics deliberately excluded).
func courseBoostText(c catalog.Course) string {
	return strings.ToLower(c.ID + " " + c.Title + " " + c.Description)
}

// courseFullText additionally includes topics; the AI/ML predicate scans it.
func courseFullText(c catalog.Course) string {
	return strings.ToLower(c.ID + " " + c.Title + " " + c.Description + " " + c.Topics)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
