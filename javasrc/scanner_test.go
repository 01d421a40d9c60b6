package javasrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineltools/commentcode"
)

func allTrivia(tokens []commentcode.SyntaxToken) []commentcode.Trivium {
	var out []commentcode.Trivium
	for _, tok := range tokens {
		out = append(out, tok.Trivia...)
	}
	return out
}

func TestScanLineComment(t *testing.T) {
	tokens := NewScanner("// hello\nint x;").Scan()
	trivia := allTrivia(tokens)
	require.Len(t, trivia, 1)
	assert.Equal(t, commentcode.LineTrivium, trivia[0].Kind)
	assert.Equal(t, "// hello", trivia[0].Text)
	assert.Equal(t, 1, trivia[0].Start.Line)
}

func TestScanBlockComment(t *testing.T) {
	tokens := NewScanner("/* block\nspanning */int x;").Scan()
	trivia := allTrivia(tokens)
	require.Len(t, trivia, 1)
	assert.Equal(t, commentcode.BlockTrivium, trivia[0].Kind)
	assert.Equal(t, "/* block\nspanning */", trivia[0].Text)
}

func TestScanJavadocComment(t *testing.T) {
	tokens := NewScanner("/** javadoc */\npublic void m() {}").Scan()
	trivia := allTrivia(tokens)
	require.Len(t, trivia, 1)
	assert.Equal(t, commentcode.JavadocTrivium, trivia[0].Kind)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	tokens := NewScanner("/* never closes").Scan()
	trivia := allTrivia(tokens)
	require.Len(t, trivia, 1)
	assert.Equal(t, "/* never closes", trivia[0].Text)
}

func TestScanIgnoresCommentMarkersInsideStringLiteral(t *testing.T) {
	tokens := NewScanner(`String s = "// not a comment";`).Scan()
	trivia := allTrivia(tokens)
	assert.Empty(t, trivia)
}

func TestScanIgnoresCommentMarkersInsideCharLiteral(t *testing.T) {
	tokens := NewScanner(`char c = '/';`).Scan()
	trivia := allTrivia(tokens)
	assert.Empty(t, trivia)
}

func TestScanHandlesEscapedQuoteInString(t *testing.T) {
	tokens := NewScanner(`String s = "a\"b"; // real comment`).Scan()
	trivia := allTrivia(tokens)
	require.Len(t, trivia, 1)
	assert.Equal(t, "// real comment", trivia[0].Text)
}

func TestScanAttachesTrailingTriviaToFinalToken(t *testing.T) {
	tokens := NewScanner("int x; // trailing").Scan()
	require.NotEmpty(t, tokens)
	last := tokens[len(tokens)-1]
	require.Len(t, last.Trivia, 1)
	assert.Equal(t, "// trailing", last.Trivia[0].Text)
}

func TestScanMultipleNonTriviaTokensBetweenComments(t *testing.T) {
	tokens := NewScanner("// a\nint x = 1;\n// b\nint y = 2;").Scan()
	var commentTexts []string
	for _, tok := range tokens {
		for _, tr := range tok.Trivia {
			commentTexts = append(commentTexts, tr.Text)
		}
	}
	assert.Equal(t, []string{"// a", "// b"}, commentTexts)
}
