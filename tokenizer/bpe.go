package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sentineltools/commentcode/internal/cerr"
)

// BpePair is an ordered pair of string symbols considered for merging.
// Its map key (see key) is built from (Left, Right) only; Merge is a
// derived cache field and is not part of that key (§3, §9). Go's ==
// on two BpePair values compares Merge as well.
type BpePair struct {
	Left, Right string
	Merge       string
}

// NewBpePair builds a BpePair with its Merge field precomputed.
func NewBpePair(left, right string) BpePair {
	return BpePair{Left: left, Right: right, Merge: left + right}
}

type pairKey struct {
	left, right string
}

func (p BpePair) key() pairKey {
	return pairKey{p.Left, p.Right}
}

// unrankedSentinel stands for "no rank"; being negative, it never
// collides with a real (zero-based) rank. Encode does not use it: it
// relies on the bool returned by Rank instead.
const unrankedSentinel = -1

// BpeRanks is an immutable mapping from BpePair to merge priority
// (lower rank merges first), built once from the merge file (§3, §6).
type BpeRanks struct {
	rank map[pairKey]int
}

// LoadBpeRanks parses the merges.txt format: UTF-8 text, first line
// begins with '#' and is ignored, every subsequent non-empty line is
// "left SPACE right"; rank is the zero-based index among those
// non-empty lines.
func LoadBpeRanks(r io.Reader) (*BpeRanks, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, &cerr.ResourceLoadFailure{Resource: "merges", Err: fmt.Errorf("empty input")}
	}
	header := scanner.Text()
	if !strings.HasPrefix(header, "#") {
		return nil, &cerr.ResourceLoadFailure{Resource: "merges", Err: fmt.Errorf("first line must begin with '#', got %q", header)}
	}

	ranks := make(map[pairKey]int)
	rank := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return nil, &cerr.ResourceLoadFailure{Resource: "merges", Err: fmt.Errorf("malformed line %q: expected \"left right\"", line)}
		}
		ranks[pairKey{parts[0], parts[1]}] = rank
		rank++
	}
	if err := scanner.Err(); err != nil {
		return nil, &cerr.ResourceLoadFailure{Resource: "merges", Err: err}
	}

	return &BpeRanks{rank: ranks}, nil
}

// Rank reports the merge priority of (left, right), and whether the
// pair is ranked at all.
func (b *BpeRanks) Rank(left, right string) (int, bool) {
	r, ok := b.rank[pairKey{left, right}]
	return r, ok
}

// Len reports the number of ranked pairs, mostly useful for logging.
func (b *BpeRanks) Len() int {
	return len(b.rank)
}

// BpeEncoder produces the ordered array of sub-word pieces RoBERTa's
// BPE would produce for a single non-empty token (§4.3).
type BpeEncoder interface {
	Encode(token string) []string
}

// standardBpeEncoder is the direct (uncached) implementation of the
// BPE merge loop.
type standardBpeEncoder struct {
	ranks *BpeRanks
}

// NewBpeEncoder returns a BpeEncoder backed by the given rank table.
func NewBpeEncoder(ranks *BpeRanks) BpeEncoder {
	return &standardBpeEncoder{ranks: ranks}
}

// Encode implements §4.3's algorithm: repeatedly find the
// lowest-ranked adjacent pair (first occurrence wins on ties, since
// the scan below only replaces the current best on a strict "<"), and
// merge every non-overlapping occurrence of it in one greedy
// left-to-right sweep, until no ranked pair remains or one symbol is
// left.
func (e *standardBpeEncoder) Encode(token string) []string {
	w := splitChars(token)
	if len(w) < 2 {
		return w
	}

	for {
		bestIdx := -1
		bestRank := 0
		for i := 0; i < len(w)-1; i++ {
			rank, ok := e.ranks.Rank(w[i], w[i+1])
			if !ok {
				continue
			}
			if bestIdx == -1 || rank < bestRank {
				bestIdx = i
				bestRank = rank
			}
		}
		if bestIdx == -1 {
			break
		}

		w = mergeSweep(w, w[bestIdx], w[bestIdx+1])
		if len(w) == 1 {
			break
		}
	}

	return w
}

// splitChars splits a string into single-character (single-rune)
// strings, per §4.3 step 1.
func splitChars(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// mergeSweep performs one left-to-right greedy sweep merging every
// non-overlapping occurrence of (left, right) into left+right (§4.3
// step 3d). A merge at position i consumes position i+1, so it cannot
// also start a match there.
func mergeSweep(w []string, left, right string) []string {
	out := make([]string, 0, len(w))
	i := 0
	for i < len(w) {
		if i < len(w)-1 && w[i] == left && w[i+1] == right {
			out = append(out, left+right)
			i += 2
			continue
		}
		out = append(out, w[i])
		i++
	}
	return out
}

// CachingBpeEncoder is a memoizing decorator over a BpeEncoder (§4.4).
// It is not safe for concurrent use; ownership is one analysis worker
// per §5.
type CachingBpeEncoder struct {
	delegate BpeEncoder
	cache    map[string][]string
	// Calls counts every invocation, hit or miss, per §4.4's "call
	// counter records every invocation (including cache hits)".
	Calls int
}

// NewCachingBpeEncoder wraps delegate with an unbounded, never-evicted
// memoization cache.
func NewCachingBpeEncoder(delegate BpeEncoder) *CachingBpeEncoder {
	return &CachingBpeEncoder{
		delegate: delegate,
		cache:    make(map[string][]string),
	}
}

// Encode returns the delegate's output for token, from cache when
// available.
func (c *CachingBpeEncoder) Encode(token string) []string {
	c.Calls++
	if cached, ok := c.cache[token]; ok {
		return cached
	}
	result := c.delegate.Encode(token)
	c.cache[token] = result
	return result
}

// Size reports the number of distinct inputs seen so far.
func (c *CachingBpeEncoder) Size() int {
	return len(c.cache)
}
