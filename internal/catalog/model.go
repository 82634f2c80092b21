package catalog

import "errors"

// ErrNotFound indicates the requested course does not exist.
var ErrNotFound = errors.New("course not found")

// ErrMissingID indicates a course record without an identifier.
var ErrMissingID = errors.New("course id is required")

// Course is one catalog entry. The recommendation engine treats it as
// read-only; avg_rating and total_ratings are maintained by the ratings
// service.
type Course struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Credits          int     `json:"credits"`
	Prerequisites    string  `json:"prerequisites"`
	Department       string  `json:"department"`
	Level            string  `json:"level"`
	DifficultyRating float64 `json:"difficulty_rating"`
	CareerRelevance  string  `json:"career_relevance"`
	Topics           string  `json:"topics"`
	SemesterOffered  string  `json:"semester_offered"`
	Professor        string  `json:"professor"`
	Rating           float64 `json:"rating"`
	AvgRating        float64 `json:"avg_rating"`
	TotalRatings     int     `json:"total_ratings"`
	EnrollmentCount  int     `json:"enrollment_count"`
}

// SearchFilters narrows a catalog search.
type SearchFilters struct {
	Department    string
	Level         string
	MaxDifficulty float64
}

// Stats summarizes the catalog.
type Stats struct {
	TotalCourses      int            `json:"total_courses"`
	Departments       map[string]int `json:"departments"`
	AverageDifficulty float64        `json:"average_difficulty"`
	AverageRating     float64        `json:"average_rating"`
}
