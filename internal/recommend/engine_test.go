package recommend

import (
	"context"
	"reflect"
	"testing"

	"courserec-backend/internal/catalog"
)

func seedRepo(t *testing.T, courses []catalog.Course) *catalog.MemoryRepo {
	t.Helper()
	repo := catalog.NewMemoryRepo()
	for _, c := range courses {
		if err := repo.Upsert(context.Background(), c); err != nil {
			t.Fatalf("seed %s: %v", c.ID, err)
		}
	}
	return repo
}

func TestRecommendEmptyCatalog(t *testing.T) {
	e := New(catalog.NewMemoryRepo())
	got, err := e.Recommend(context.Background(), Query{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("empty catalog should yield empty non-nil slice, got %v", got)
	}
}

func TestRecommendMachineLearningScenario(t *testing.T) {
	repo := seedRepo(t, []catalog.Course{{
		ID:               "CS480",
		Title:            "Introduction to Machine Learning",
		DifficultyRating: 4.3,
		Prerequisites:    "CS280, MATH333",
		Department:       "Computer Science",
		Level:            "Senior",
		Rating:           4.4,
	}})
	e := New(repo)

	got, err := e.Recommend(context.Background(), Query{
		Interests:            []string{"ai_ml"},
		DifficultyPreference: "any",
		NumRecommendations:   1,
		DepartmentFilter:     "Computer Science",
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %d", len(got))
	}
	rec := got[0]
	if rec.ID != "CS480" {
		t.Fatalf("expected CS480, got %s", rec.ID)
	}
	if rec.Breakdown.PrerequisitesMet != 0.6 {
		t.Fatalf("prerequisites_met = %v, want 0.6", rec.Breakdown.PrerequisitesMet)
	}
	// The AI/ML detector fires on title and ID, which pushes the total
	// score well past what the weighted sum alone would produce (~0.58 for
	// this course and query).
	if rec.Score <= 0.7 {
		t.Fatalf("expected AI/ML interest boost, score = %v", rec.Score)
	}
	if rec.Reason == "" {
		t.Fatalf("expected a recommendation reason")
	}
}

func TestRecommendStrictDepartmentFilter(t *testing.T) {
	repo := seedRepo(t, catalog.SampleCourses())
	e := New(repo)

	includeCross := false
	got, err := e.Recommend(context.Background(), Query{
		Interests:        []string{"ai_ml"},
		DepartmentFilter: "Computer Science",
		IncludeCrossDept: includeCross,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected results for CS filter")
	}
	for _, rec := range got {
		if rec.Department != "Computer Science" {
			t.Fatalf("strict filter leaked department %q (course %s)", rec.Department, rec.ID)
		}
	}
}

func TestRecommendExcludesCompletedCourses(t *testing.T) {
	repo := seedRepo(t, catalog.SampleCourses())
	e := New(repo)

	got, err := e.Recommend(context.Background(), Query{
		CompletedCourses: []string{"CS375", "CS388"},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range got {
		if rec.ID == "CS375" || rec.ID == "CS388" {
			t.Fatalf("completed course %s appeared in results", rec.ID)
		}
	}
}

func TestRecommendTruncatesAndSorts(t *testing.T) {
	repo := seedRepo(t, catalog.SampleCourses())
	e := New(repo)

	got, err := e.Recommend(context.Background(), Query{NumRecommendations: 3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results from a 10-course catalog, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("results not sorted descending: %v then %v", got[i-1].Score, got[i].Score)
		}
	}
}

func TestRecommendIdempotent(t *testing.T) {
	repo := seedRepo(t, catalog.SampleCourses())
	e := New(repo)
	q := Query{
		Interests:          []string{"ai_ml", "cybersecurity"},
		SpecificTopics:     "machine learning and network security",
		CareerGoals:        "software engineer",
		AcademicLevel:      "junior",
		IncludeCrossDept:   true,
		NumRecommendations: 5,
	}

	first, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical queries produced different output")
	}
}

func TestRecommendAIMLTitleExclusion(t *testing.T) {
	repo := seedRepo(t, []catalog.Course{
		{
			ID:          "CS375",
			Title:       "Introduction to Machine Learning",
			Description: "Supervised and unsupervised learning.",
			Department:  "Computer Science",
		},
		{
			ID:          "MET330",
			Title:       "Manual Machining and CNC Routing",
			Description: "Manual mills, lathes, welding basics.",
			Department:  "Engineering",
		},
	})
	e := New(repo)

	got, err := e.Recommend(context.Background(), Query{Interests: []string{"ai_ml"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range got {
		if rec.ID == "MET330" {
			t.Fatalf("machining course should be hard-excluded for AI/ML interests")
		}
	}
}

func TestRecommendDefaultCount(t *testing.T) {
	courses := make([]catalog.Course, 0, 12)
	for _, c := range catalog.SampleCourses() {
		courses = append(courses, c)
	}
	courses = append(courses,
		catalog.Course{ID: "HIST210", Title: "History of Technology", Department: "History"},
		catalog.Course{ID: "COM312", Title: "Technical Communication", Department: "Communication"},
	)
	repo := seedRepo(t, courses)
	e := New(repo)

	got, err := e.Recommend(context.Background(), Query{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("default num_recommendations should cap at 10, got %d", len(got))
	}
}

func TestRecommendWithSubstituteTables(t *testing.T) {
	repo := seedRepo(t, catalog.SampleCourses())
	e := New(repo, WithTables(Tables{
		CareerMappings:   map[string][]string{},
		InterestKeywords: map[string][]string{},
	}))

	got, err := e.Recommend(context.Background(), Query{Interests: []string{"ai_ml"}})
	if err != nil {
		t.Fatalf("Recommend with empty tables: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("empty classifier tables should not empty the result set")
	}
}
