package commentcode

import (
	"fmt"
	"strings"
)

// UnrecognizedCommentPrefix is returned by SignStripper when a batch's
// leading characters match none of the delimiter headers it knows
// about (§4.2, §7). Per §7 this should be unreachable in practice,
// since CommentGrouper only ever forwards batches that began with
// `//`, `/*`, or `/**`.
type UnrecognizedCommentPrefix struct {
	Prefix string
}

func (e UnrecognizedCommentPrefix) Error() string {
	return fmt.Sprintf("commentcode: unrecognized comment prefix %q", e.Prefix)
}

var javadocHeaders = []string{"/**\r\n", "/** ", "/**\t", "/**\n"}

// SignStripper removes comment delimiters from a batch according to
// its Kind, per the rules in §3.
type SignStripper struct{}

// Strip returns the sign-stripped text of a batch.
func (SignStripper) Strip(b Batch) (string, error) {
	text := b.Text()

	switch b.Kind {
	case BlockJavadoc:
		for _, header := range javadocHeaders {
			if strings.HasPrefix(text, header) {
				stripped := text[len(header):]
				stripped = strings.TrimSuffix(stripped, "*/")
				return stripped, nil
			}
		}
		return "", UnrecognizedCommentPrefix{Prefix: prefix(text, 4)}

	case LineGroup:
		if !strings.HasPrefix(text, "//") {
			return "", UnrecognizedCommentPrefix{Prefix: prefix(text, 4)}
		}
		stripped := strings.TrimPrefix(text, "//")
		stripped = strings.ReplaceAll(stripped, "\n//", "\n")
		return stripped, nil

	case BlockNonJavadoc:
		if !strings.HasPrefix(text, "/*") {
			return "", UnrecognizedCommentPrefix{Prefix: prefix(text, 4)}
		}
		stripped := strings.TrimPrefix(text, "/*")
		stripped = strings.TrimSuffix(stripped, "*/")
		return stripped, nil

	default:
		return "", UnrecognizedCommentPrefix{Prefix: prefix(text, 4)}
	}
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
