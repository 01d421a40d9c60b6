package feature

import "strings"

// Extractor produces the bag-of-vocabulary-plus-semicolon feature
// vector described in §4.6, from a tokenized comment and a configured
// MaxTokens truncation limit.
type Extractor struct {
	Vocabulary *Vocabulary
	MaxTokens  int
}

// NewExtractor builds an Extractor bound to vocab, truncating to the
// first maxTokens tokens of any input (§4.6).
func NewExtractor(vocab *Vocabulary, maxTokens int) *Extractor {
	return &Extractor{Vocabulary: vocab, MaxTokens: maxTokens}
}

// Extract returns a feature vector of length V+2: a count per
// vocabulary entry, then the semicolon count, then the semicolon
// frequency over the first min(len(tokens), MaxTokens) tokens. Callers
// guarantee tokens is non-empty for non-empty comments (§4.6).
func (e *Extractor) Extract(tokens []string) []float64 {
	v := e.Vocabulary.Len()
	features := make([]float64, v+2)

	n := len(tokens)
	if n > e.MaxTokens {
		n = e.MaxTokens
	}

	var semicolons float64
	for i := 0; i < n; i++ {
		tok := tokens[i]
		if k, ok := e.Vocabulary.IndexOf(tok); ok {
			features[k]++
		}
		semicolons += float64(strings.Count(tok, ";"))
	}

	features[v] = semicolons
	if n > 0 {
		features[v+1] = semicolons / float64(n)
	}

	return features
}
