package feature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabulary(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(`["a", "b", ";"]`))
	require.NoError(t, err)
	assert.Equal(t, 3, vocab.Len())

	idx, ok := vocab.IndexOf("b")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = vocab.IndexOf("z")
	assert.False(t, ok)
}

func TestLoadVocabularyRejectsNonArray(t *testing.T) {
	_, err := LoadVocabulary(strings.NewReader(`{"a": 1}`))
	assert.Error(t, err)
}
