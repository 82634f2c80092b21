package recommend

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeStripsNonLetters(t *testing.T) {
	a := EnglishAnalyzer{}
	got := a.Tokenize("Machine Learning 101: neural-networks & AI!")
	want := []string{"machine", "learning", "neuralnetworks", "ai"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestNormalizeDropsStopwordsAndStems(t *testing.T) {
	a := EnglishAnalyzer{}
	got := Normalize(a, "an introduction to the running of algorithms")
	if strings.Contains(got, " the ") || strings.Contains(got, " to ") {
		t.Fatalf("Normalize kept stopwords: %q", got)
	}
	// The same stemmer handles course and query text, so two inflections of
	// one word must normalize identically.
	if Normalize(a, "running") != Normalize(a, "runs") {
		t.Fatalf("stemmer not internally consistent: %q vs %q",
			Normalize(a, "running"), Normalize(a, "runs"))
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(EnglishAnalyzer{}, ""); got != "" {
		t.Fatalf("Normalize(\"\") = %q, want empty", got)
	}
	if got := Normalize(EnglishAnalyzer{}, "the a an of"); got != "" {
		t.Fatalf("Normalize(stopwords only) = %q, want empty", got)
	}
}
