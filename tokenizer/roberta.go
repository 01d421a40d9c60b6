package tokenizer

// RoBERTaTokenizer orchestrates the three tokenization levels described
// in §4.5: level-2 regex split, level-3 byte-to-unicode encoding, and
// level-4 BPE. Level 1 (added-token splitting) is out of scope (§1);
// the whole input is treated as a single level-1 token.
type RoBERTaTokenizer struct {
	Encoder BpeEncoder

	// Level2 and Level3 are optional cache hooks wrapping the default
	// level-2/level-3 computations; nil means pass-through to
	// SplitLevel2/EncodeBytes (§4.5.4).
	Level2 func(text string) []string
	Level3 func(token string) string

	// Listener, if set, is invoked synchronously after each level
	// with the accumulated output of that level, before Tokenize
	// returns (§4.5.4, §5).
	Listener func(level int, tokens []string)
}

// NewRoBERTaTokenizer builds a tokenizer around encoder for level 4.
func NewRoBERTaTokenizer(encoder BpeEncoder) *RoBERTaTokenizer {
	return &RoBERTaTokenizer{Encoder: encoder}
}

// Tokenize executes level-2 split, level-3 encoding of each level-2
// token, and level-4 BPE of each level-3 token, flattening the result
// while preserving order (§4.5.4).
func (t *RoBERTaTokenizer) Tokenize(text string) []string {
	level2 := t.splitLevel2(text)
	t.notify(2, level2)

	level3 := make([]string, len(level2))
	for i, tok := range level2 {
		level3[i] = t.encodeLevel3(tok)
	}
	t.notify(3, level3)

	var out []string
	for _, tok := range level3 {
		out = append(out, t.Encoder.Encode(tok)...)
	}
	t.notify(4, out)

	return out
}

func (t *RoBERTaTokenizer) splitLevel2(text string) []string {
	if t.Level2 != nil {
		return t.Level2(text)
	}
	return SplitLevel2(text)
}

func (t *RoBERTaTokenizer) encodeLevel3(token string) string {
	if t.Level3 != nil {
		return t.Level3(token)
	}
	return EncodeBytes(token)
}

func (t *RoBERTaTokenizer) notify(level int, tokens []string) {
	if t.Listener != nil {
		t.Listener(level, tokens)
	}
}
