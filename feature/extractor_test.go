package feature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSeedScenario(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(`["foo", "bar"]`))
	require.NoError(t, err)

	extractor := NewExtractor(vocab, 10)
	got := extractor.Extract([]string{"foo", "foo", "bar", ";;"})

	assert.Equal(t, []float64{2, 1, 2, 0.5}, got)
}

func TestExtractTruncatesToMaxTokens(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(`["foo"]`))
	require.NoError(t, err)

	extractor := NewExtractor(vocab, 2)
	got := extractor.Extract([]string{"foo", "foo", "foo", "foo"})

	assert.Equal(t, []float64{2, 0, 0}, got)
}

func TestExtractEmptyTokens(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(`["foo"]`))
	require.NoError(t, err)

	extractor := NewExtractor(vocab, 10)
	got := extractor.Extract(nil)

	assert.Equal(t, []float64{0, 0, 0}, got)
}

func TestExtractIgnoresOutOfVocabTokens(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(`["foo"]`))
	require.NoError(t, err)

	extractor := NewExtractor(vocab, 10)
	got := extractor.Extract([]string{"unknown", "foo"})

	assert.Equal(t, []float64{1, 0, 0}, got)
}
