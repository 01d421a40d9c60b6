package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityEncoder passes each level-3 token through unchanged, letting
// these tests assert on level-2/level-3 behavior in isolation from BPE.
type identityEncoder struct{}

func (identityEncoder) Encode(token string) []string { return []string{token} }

func TestRoBERTaTokenizeOrdersLevelsCorrectly(t *testing.T) {
	tok := NewRoBERTaTokenizer(identityEncoder{})
	out := tok.Tokenize("hi there")

	assert.Len(t, out, 2)
	decoded0, ok := DecodeBytes(out[0])
	require.True(t, ok)
	assert.Equal(t, "hi", string(decoded0))

	decoded1, ok := DecodeBytes(out[1])
	require.True(t, ok)
	assert.Equal(t, " there", string(decoded1))
}

func TestRoBERTaTokenizeNotifiesEachLevel(t *testing.T) {
	var levels []int
	var lastLevel4 []string

	tok := NewRoBERTaTokenizer(identityEncoder{})
	tok.Listener = func(level int, tokens []string) {
		levels = append(levels, level)
		if level == 4 {
			lastLevel4 = tokens
		}
	}

	out := tok.Tokenize("ab")
	assert.Equal(t, []int{2, 3, 4}, levels)
	assert.Equal(t, out, lastLevel4)
}

func TestRoBERTaTokenizeHonorsLevelOverrides(t *testing.T) {
	tok := NewRoBERTaTokenizer(identityEncoder{})
	tok.Level2 = func(text string) []string { return strings.Split(text, ",") }
	tok.Level3 = func(token string) string { return strings.ToUpper(token) }

	out := tok.Tokenize("a,b,c")
	assert.Equal(t, []string{"A", "B", "C"}, out)
}

func TestRoBERTaTokenizeEndToEndWithRealBpe(t *testing.T) {
	ranks, err := LoadBpeRanks(strings.NewReader("#v\nh e\ne l\nl o\n"))
	require.NoError(t, err)

	tok := NewRoBERTaTokenizer(NewBpeEncoder(ranks))
	out := tok.Tokenize("hello")
	assert.NotEmpty(t, out)

	var decoded strings.Builder
	for _, piece := range out {
		b, ok := DecodeBytes(piece)
		require.True(t, ok)
		decoded.Write(b)
	}
	assert.Equal(t, "hello", decoded.String())
}
