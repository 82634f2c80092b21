package ratings

import (
	"errors"
	"time"
)

// Rating is one student's review of a completed course. A student can rate a
// course once; resubmitting replaces the earlier rating.
type Rating struct {
	ID                string    `json:"id"`
	StudentEmail      string    `json:"student_email"`
	CourseID          string    `json:"course_id"`
	Rating            int       `json:"rating"`
	Review            string    `json:"review,omitempty"`
	CompletedSemester string    `json:"completed_semester,omitempty"`
	WouldRecommend    bool      `json:"would_recommend"`
	CreatedAt         time.Time `json:"created_at"`
}

// Feedback records how a student reacted to a recommendation list.
type Feedback struct {
	ID                 string    `json:"id"`
	StudentID          string    `json:"student_id"`
	RecommendedCourses []string  `json:"recommended_courses"`
	SelectedCourses    []string  `json:"selected_courses"`
	Rating             int       `json:"rating,omitempty"`
	Comments           string    `json:"comments,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

var (
	ErrInvalidRating = errors.New("ratings: rating must be between 1 and 5")
	ErrMissingField  = errors.New("ratings: required field missing")
)
