package recommend

import (
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// Analyzer abstracts the tokenizer, stopword list, and stemmer behind the
// text scorers. Course text and query text must pass through the same
// Analyzer so their stems stay comparable.
type Analyzer interface {
	Tokenize(text string) []string
	IsStopWord(token string) bool
	Stem(token string) string
}

// EnglishAnalyzer is the default Analyzer: lowercase letter-only tokens, a
// standard English stopword list, and Porter stemming.
type EnglishAnalyzer struct{}

// Tokenize lowercases the text, strips everything that is not a letter or
// whitespace, and splits on whitespace.
func (EnglishAnalyzer) Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// IsStopWord reports whether the token is in the English stopword list.
func (EnglishAnalyzer) IsStopWord(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}

// Stem reduces a token to its Porter stem.
func (EnglishAnalyzer) Stem(token string) string {
	return porterstemmer.StemString(token)
}

// Normalize runs the full pipeline: tokenize, drop stopwords, stem, rejoin
// with single spaces. Empty input yields the empty string; callers treat
// that as "no signal", never as an error.
func Normalize(a Analyzer, text string) string {
	if text == "" {
		return ""
	}
	tokens := a.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if a.IsStopWord(tok) {
			continue
		}
		if stem := a.Stem(tok); stem != "" {
			out = append(out, stem)
		}
	}
	return strings.Join(out, " ")
}

var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {}, "just": {}, "me": {}, "more": {}, "most": {},
	"my": {}, "myself": {}, "no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "very": {}, "was": {}, "we": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}
