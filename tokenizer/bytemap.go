package tokenizer

// byteToUnicode is the 256-entry table mapping a raw byte value to the
// single visible Unicode character RoBERTa's byte-to-unicode encoding
// uses for it (§3, §9). Bytes already printable map to themselves;
// the rest are assigned successive code points starting at 256, in
// the order they're encountered scanning 0..255 ascending, so that
// every one of the 256 outputs is distinct and none is whitespace or
// a control character.
var byteToUnicode [256]rune

func isPrintableByte(b byte) bool {
	return (b >= 0x21 && b <= 0x7E) ||
		(b >= 0xA1 && b <= 0xAC) ||
		(b >= 0xAE && b <= 0xFF)
}

func init() {
	next := rune(256)
	for b := 0; b < 256; b++ {
		if isPrintableByte(byte(b)) {
			byteToUnicode[b] = rune(b)
		} else {
			byteToUnicode[b] = next
			next++
		}
	}
}

// unicodeToByte is the inverse of byteToUnicode, used by round-trip
// tests (§8) to decode a level-3 token back to raw bytes.
var unicodeToByte map[rune]byte

func init() {
	unicodeToByte = make(map[rune]byte, 256)
	for b, r := range byteToUnicode {
		unicodeToByte[r] = byte(b)
	}
}

// EncodeBytes maps each byte of a level-2 token's UTF-8 encoding to
// its visible-unicode counterpart, producing the level-3 token (§4.5.2).
func EncodeBytes(s string) string {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, byteToUnicode[s[i]])
	}
	return string(out)
}

// DecodeBytes is the inverse of EncodeBytes, used by round-trip tests.
// It returns false if r is not one of the 256 known output characters.
func DecodeBytes(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := unicodeToByte[r]
		if !ok {
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}
