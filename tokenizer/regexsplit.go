package tokenizer

import "github.com/dlclark/regexp2"

// level2Pattern is RoBERTa's pre-tokenization regex (§4.5.1). It needs
// both Unicode property classes (\p{L}, \p{N}) and a negative
// look-ahead ((?!\S)); Go's stdlib regexp (RE2) has the former but not
// the latter, so this is built on dlclark/regexp2's .NET-compatible
// engine instead (§9). Compiled once, reused for every call.
var level2Pattern = regexp2.MustCompile(
	`'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`,
	regexp2.None,
)

// SplitLevel2 reproduces the reference tokenizer's contiguous-find
// behavior exactly, including its cursor discipline: the cursor
// advances to each match's start (not its end), so consecutive
// matches concatenate into one emitted slice at the boundary of the
// next match (§4.5.1, §9 open question).
func SplitLevel2(text string) []string {
	runes := []rune(text)
	var tokens []string
	cursor := 0

	m, err := level2Pattern.FindRunesMatch(runes)
	for err == nil && m != nil {
		start := m.Index
		if start > cursor {
			tokens = append(tokens, string(runes[cursor:start]))
		}
		cursor = start
		m, err = level2Pattern.FindNextMatch(m)
	}
	if cursor < len(runes) {
		tokens = append(tokens, string(runes[cursor:]))
	}
	return tokens
}
