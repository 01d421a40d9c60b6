// Package javasrc is a stand-in for the host's syntactic analyzer
// (§1, §4.9): it scans Java source for comment trivia and the
// non-trivia runs that delimit them, without parsing Java grammar at
// all — the Detector never consumes anything but trivia.
package javasrc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/sentineltools/commentcode"
)

// Scanner walks Java source rune-by-rune, in the same cursor-loop
// discipline as a hand-rolled recursive-descent lexer's scanner: track
// a byte cursor, decode one rune at a time, and bump the line counter
// on '\n'.
type Scanner struct {
	input string
	cur   int

	line            int // 1-based line of cur
	indexAtLineHead int // byte index where the current line started
}

// NewScanner returns a Scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, line: 1}
}

func (s *Scanner) pos() commentcode.Pos {
	return commentcode.Pos{Line: s.line, Col: s.cur - s.indexAtLineHead + 1}
}

func (s *Scanner) advance(r rune, w int) {
	s.cur += w
	if r == '\n' {
		s.line++
		s.indexAtLineHead = s.cur
	}
}

// Scan walks all of input and returns one SyntaxToken per non-trivia
// run encountered, each carrying the comment trivia that immediately
// preceded it; a final SyntaxToken carries any trivia trailing the
// last non-trivia run (the "EOF token"'s leading trivia), per §4.9.
func (s *Scanner) Scan() []commentcode.SyntaxToken {
	var tokens []commentcode.SyntaxToken
	var pending []commentcode.Trivium

	flush := func() {
		tokens = append(tokens, commentcode.SyntaxToken{Trivia: pending})
		pending = nil
	}

	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if r == utf8.RuneError && w <= 1 {
			// Not valid UTF-8 or truncated; skip the byte and move on
			// rather than looping forever.
			s.cur++
			continue
		}

		switch {
		case r == '/' && s.peek(w) == '/':
			pending = append(pending, s.scanLineComment())

		case r == '/' && s.peek(w) == '*':
			pending = append(pending, s.scanBlockComment())

		case unicode.IsSpace(r):
			s.advance(r, w)

		case r == '"':
			s.scanStringLiteral()
			flush()

		case r == '\'':
			s.scanCharLiteral()
			flush()

		case xid.Start(r) || r == '_' || r == '$':
			s.scanIdentifier()
			flush()

		default:
			s.advance(r, w)
			flush()
		}
	}

	flush()
	return tokens
}

// peek returns the rune immediately after the one of width w at cur,
// or utf8.RuneError at end of input.
func (s *Scanner) peek(w int) rune {
	r, _ := utf8.DecodeRuneInString(s.input[s.cur+w:])
	return r
}

func (s *Scanner) scanLineComment() commentcode.Trivium {
	start := s.pos()
	startIdx := s.cur
	s.advance('/', 1)
	s.advance('/', 1)
	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if r == '\n' {
			break
		}
		s.advance(r, w)
	}
	return commentcode.Trivium{
		Kind:  commentcode.LineTrivium,
		Start: start,
		End:   s.pos(),
		Text:  s.input[startIdx:s.cur],
	}
}

func (s *Scanner) scanBlockComment() commentcode.Trivium {
	start := s.pos()
	startIdx := s.cur
	s.advance('/', 1)
	s.advance('*', 1)

	prevStar := false
	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if prevStar && r == '/' {
			s.advance(r, w)
			break
		}
		prevStar = r == '*'
		s.advance(r, w)
	}

	text := s.input[startIdx:s.cur]
	kind := commentcode.BlockTrivium
	if strings.HasPrefix(text, "/**") {
		kind = commentcode.JavadocTrivium
	}
	return commentcode.Trivium{Kind: kind, Start: start, End: s.pos(), Text: text}
}

func (s *Scanner) scanStringLiteral() {
	s.advance('"', 1)
	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if r == '\\' {
			s.advance(r, w)
			if s.cur < len(s.input) {
				r2, w2 := utf8.DecodeRuneInString(s.input[s.cur:])
				s.advance(r2, w2)
			}
			continue
		}
		s.advance(r, w)
		if r == '"' || r == '\n' {
			return
		}
	}
}

func (s *Scanner) scanCharLiteral() {
	s.advance('\'', 1)
	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if r == '\\' {
			s.advance(r, w)
			if s.cur < len(s.input) {
				r2, w2 := utf8.DecodeRuneInString(s.input[s.cur:])
				s.advance(r2, w2)
			}
			continue
		}
		s.advance(r, w)
		if r == '\'' || r == '\n' {
			return
		}
	}
}

func (s *Scanner) scanIdentifier() {
	r, w := utf8.DecodeRuneInString(s.input[s.cur:])
	s.advance(r, w)
	for s.cur < len(s.input) {
		r, w := utf8.DecodeRuneInString(s.input[s.cur:])
		if !(xid.Continue(r) || r == '_' || r == '$') {
			return
		}
		s.advance(r, w)
	}
}
