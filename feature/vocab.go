package feature

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sentineltools/commentcode/internal/cerr"
)

// Vocabulary is an ordered sequence of strings loaded from vocab.json,
// materialized as a string→index lookup where index is the array
// position (§3, §6).
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// LoadVocabulary parses vocab.json: a single top-level JSON array of
// strings.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	var tokens []string
	if err := json.NewDecoder(r).Decode(&tokens); err != nil {
		return nil, &cerr.ResourceLoadFailure{Resource: "vocabulary", Err: fmt.Errorf("not a JSON array of strings: %w", err)}
	}

	index := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		index[tok] = i
	}

	return &Vocabulary{tokens: tokens, index: index}, nil
}

// Len returns the vocabulary size V.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// IndexOf returns the vocabulary index of tok, and whether it was
// found.
func (v *Vocabulary) IndexOf(tok string) (int, bool) {
	i, ok := v.index[tok]
	return i, ok
}
