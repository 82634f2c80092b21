package recommend

import (
	"math"
	"strings"
)

// cosineTFIDF computes the cosine similarity of TF-IDF vectors built over
// exactly the two documents being compared. Both inputs are expected to be
// normalized text (space-separated stems). An empty vocabulary on either
// side contributes 0 similarity rather than an error.
func cosineTFIDF(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)

	// Smoothed IDF over the two-document corpus, sklearn style:
	// idf(t) = ln((1+n)/(1+df)) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/(1.0+float64(df))) + 1.0
	}

	var dot, normA, normB float64
	for term, countA := range tfA {
		w := idf(term)
		wa := float64(countA) * w
		normA += wa * wa
		if countB := tfB[term]; countB > 0 {
			dot += wa * float64(countB) * w
		}
	}
	for term, countB := range tfB {
		wb := float64(countB) * idf(term)
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}
