package ratings

import (
	"context"
	"errors"
	"testing"

	"courserec-backend/internal/catalog"
)

func newTestService(t *testing.T) (*Service, *catalog.MemoryRepo) {
	t.Helper()
	catalogRepo := catalog.NewMemoryRepo()
	if err := catalogRepo.Upsert(context.Background(), catalog.Course{ID: "CS375", Title: "Introduction to Machine Learning"}); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return NewService(NewMemoryRepo(), catalogRepo), catalogRepo
}

func TestSubmitStoresRatingAndAggregate(t *testing.T) {
	svc, catalogRepo := newTestService(t)

	avg, err := svc.Submit(context.Background(), Rating{
		StudentEmail: "a@example.edu",
		CourseID:     "CS375",
		Rating:       5,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if avg != 5 {
		t.Fatalf("average = %v, want 5", avg)
	}

	avg, err = svc.Submit(context.Background(), Rating{
		StudentEmail: "b@example.edu",
		CourseID:     "CS375",
		Rating:       4,
	})
	if err != nil {
		t.Fatalf("Submit second: %v", err)
	}
	if avg != 4.5 {
		t.Fatalf("average after two ratings = %v, want 4.5", avg)
	}

	course, err := catalogRepo.GetByID(context.Background(), "CS375")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if course.AvgRating != 4.5 || course.TotalRatings != 2 {
		t.Fatalf("course aggregate = %v/%d, want 4.5/2", course.AvgRating, course.TotalRatings)
	}
}

func TestSubmitReplacesEarlierRating(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Submit(context.Background(), Rating{StudentEmail: "a@example.edu", CourseID: "CS375", Rating: 2}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	avg, err := svc.Submit(context.Background(), Rating{StudentEmail: "a@example.edu", CourseID: "CS375", Rating: 4})
	if err != nil {
		t.Fatalf("Submit replacement: %v", err)
	}
	if avg != 4 {
		t.Fatalf("replaced rating should fully supersede: avg = %v, want 4", avg)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)
	cases := []struct {
		name   string
		rating Rating
		want   error
	}{
		{
			name:   "rating_too_high",
			rating: Rating{StudentEmail: "a@example.edu", CourseID: "CS375", Rating: 6},
			want:   ErrInvalidRating,
		},
		{
			name:   "rating_too_low",
			rating: Rating{StudentEmail: "a@example.edu", CourseID: "CS375", Rating: 0},
			want:   ErrInvalidRating,
		},
		{
			name:   "missing_email",
			rating: Rating{CourseID: "CS375", Rating: 3},
			want:   ErrMissingField,
		},
		{
			name:   "missing_course",
			rating: Rating{StudentEmail: "a@example.edu", Rating: 3},
			want:   ErrMissingField,
		},
		{
			name:   "unknown_course",
			rating: Rating{StudentEmail: "a@example.edu", CourseID: "NOPE999", Rating: 3},
			want:   catalog.ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), tc.rating); !errors.Is(err, tc.want) {
				t.Fatalf("Submit = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRecordFeedback(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.RecordFeedback(context.Background(), Feedback{
		StudentID:          "student-1",
		RecommendedCourses: []string{"CS375", "CS485"},
		SelectedCourses:    []string{"CS375"},
		Rating:             4,
	})
	if err != nil {
		t.Fatalf("RecordFeedback: %v", err)
	}

	if err := svc.RecordFeedback(context.Background(), Feedback{}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for blank student id, got %v", err)
	}
}
