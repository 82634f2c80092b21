package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,title,department,level,difficulty_rating,credits,rating,topics",
		"CS375,Introduction to Machine Learning,Computer Science,Junior,4.3,3,4.4,\"Machine Learning, Neural Networks\"",
		"IS375,Discovering User Needs for UX,Information Systems,Junior,medium,3,4.5,User Research",
	}, "\n")

	courses, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	first := courses[0]
	if first.ID != "CS375" || first.Department != "Computer Science" {
		t.Fatalf("unexpected first course: %+v", first)
	}
	if first.DifficultyRating != 4.3 || first.Rating != 4.4 || first.Credits != 3 {
		t.Fatalf("numeric fields misparsed: %+v", first)
	}
	if courses[1].DifficultyRating != 3.5 {
		t.Fatalf("categorical difficulty should map to 3.5, got %v", courses[1].DifficultyRating)
	}
}

func TestReadCSVMissingID(t *testing.T) {
	input := "id,title\n,No Identifier\n"
	_, err := ReadCSV(strings.NewReader(input))
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestReadCSVRequiresIDColumn(t *testing.T) {
	input := "title,department\nSome Course,CS\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for header without id column")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{raw: "", want: 0},
		{raw: "4.2", want: 4.2},
		{raw: "low", want: 2.0},
		{raw: "easy", want: 2.0},
		{raw: "medium", want: 3.5},
		{raw: "high", want: 4.5},
		{raw: "hard", want: 4.5},
		{raw: "unknown", want: 3.5},
	}
	for _, tc := range cases {
		if got := ParseDifficulty(tc.raw); got != tc.want {
			t.Fatalf("ParseDifficulty(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
