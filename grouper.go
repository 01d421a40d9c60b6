package commentcode

import "strings"

// CommentGrouper coalesces a syntax token's trivia into batches: a run
// of adjacent line comments becomes one LineGroup batch, a block
// comment becomes its own batch, and Javadoc is dropped entirely
// (§4.1). It holds no state across calls to Group; the buffering it
// describes is local to one trivia slice.
type CommentGrouper struct{}

// Group walks trivia in source order and returns the resulting
// batches. Each batch is non-empty; trivia classified as Javadoc never
// appear in the output.
func (CommentGrouper) Group(trivia []Trivium) []Batch {
	var batches []Batch
	var buf []Trivium
	lastLine := 0

	flush := func() {
		if len(buf) > 0 {
			batches = append(batches, Batch{Kind: LineGroup, Trivia: buf})
			buf = nil
		}
	}

	for _, t := range trivia {
		if strings.HasPrefix(t.Text, "/**") {
			continue
		}

		switch t.Kind {
		case BlockTrivium, JavadocTrivium:
			flush()
			batches = append(batches, Batch{Kind: BlockNonJavadoc, Trivia: []Trivium{t}})
			lastLine = t.End.Line
		case LineTrivium:
			if len(buf) == 0 || t.Start.Line <= lastLine+1 {
				buf = append(buf, t)
			} else {
				flush()
				buf = append(buf, t)
			}
			lastLine = t.End.Line
		}
	}
	flush()

	return batches
}
