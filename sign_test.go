package commentcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripLineGroup(t *testing.T) {
	batch := Batch{
		Kind: LineGroup,
		Trivia: []Trivium{
			{Kind: LineTrivium, Text: "// first line"},
			{Kind: LineTrivium, Text: "// second line"},
		},
	}

	text, err := SignStripper{}.Strip(batch)
	require.NoError(t, err)
	assert.Equal(t, " first line\n second line", text)
}

func TestStripBlockNonJavadoc(t *testing.T) {
	batch := Batch{Kind: BlockNonJavadoc, Trivia: []Trivium{{Kind: BlockTrivium, Text: "/* hello */"}}}

	text, err := SignStripper{}.Strip(batch)
	require.NoError(t, err)
	assert.Equal(t, " hello ", text)
}

func TestStripBlockNonJavadocUnterminated(t *testing.T) {
	batch := Batch{Kind: BlockNonJavadoc, Trivia: []Trivium{{Kind: BlockTrivium, Text: "/* hello"}}}

	text, err := SignStripper{}.Strip(batch)
	require.NoError(t, err)
	assert.Equal(t, " hello", text)
}

func TestStripBlockJavadocHeaders(t *testing.T) {
	batch := Batch{Kind: BlockJavadoc, Trivia: []Trivium{{Kind: JavadocTrivium, Text: "/** doc */"}}}

	text, err := SignStripper{}.Strip(batch)
	require.NoError(t, err)
	assert.Equal(t, "doc ", text)
}

func TestStripRejectsUnrecognizedPrefix(t *testing.T) {
	batch := Batch{Kind: LineGroup, Trivia: []Trivium{{Kind: LineTrivium, Text: "not a comment"}}}

	_, err := SignStripper{}.Strip(batch)
	require.Error(t, err)

	var unrecognized UnrecognizedCommentPrefix
	assert.ErrorAs(t, err, &unrecognized)
}
