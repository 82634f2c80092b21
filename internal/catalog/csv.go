package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV decodes catalog rows from r. The first record is a header; columns
// are matched by name so partial catalogs import cleanly. Rows without an id
// are rejected rather than silently skipped.
func ReadCSV(r io.Reader) ([]Course, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("csv header missing id column")
	}

	var out []Course
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line+1, err)
		}
		line++

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		course := Course{
			ID:               field("id"),
			Title:            field("title"),
			Description:      field("description"),
			Credits:          parseInt(field("credits")),
			Prerequisites:    field("prerequisites"),
			Department:       field("department"),
			Level:            field("level"),
			DifficultyRating: ParseDifficulty(field("difficulty_rating")),
			CareerRelevance:  field("career_relevance"),
			Topics:           field("topics"),
			SemesterOffered:  field("semester_offered"),
			Professor:        field("professor"),
			Rating:           parseFloat(field("rating")),
			AvgRating:        parseFloat(field("avg_rating")),
			TotalRatings:     parseInt(field("total_ratings")),
			EnrollmentCount:  parseInt(field("enrollment_count")),
		}
		if course.ID == "" {
			return nil, fmt.Errorf("csv line %d: %w", line, ErrMissingID)
		}
		out = append(out, course)
	}
	return out, nil
}

// ParseDifficulty accepts a numeric 1-5 value or the categorical
// low/medium/high vocabulary and returns the numeric form.
func ParseDifficulty(raw string) float64 {
	if raw == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	switch strings.ToLower(raw) {
	case "low", "easy":
		return 2.0
	case "medium":
		return 3.5
	case "high", "hard":
		return 4.5
	default:
		return 3.5
	}
}

func parseInt(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
