package romaji

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
)

// The decoder matches literals through an FST compiled from decodeLiterals,
// so each input position costs at most three key probes instead of a scan
// over the whole table. decodeKana holds the output side; FST values are
// indexes into it.
var (
	decodeFST     *vellum.FST
	decodeKana    []string
	maxLiteralLen int
)

func init() {
	var err error
	decodeFST, decodeKana, maxLiteralLen, err = buildDecodeFST()
	if err != nil {
		panic(fmt.Sprintf("romaji: building decode FST: %v", err))
	}
}

// buildDecodeFST compiles the ordered literal list into an in-memory FST.
// Duplicate literals keep their first-listed kana, preserving the table's
// precedence (じ over ぢ for "ji", ず over づ for "zu").
func buildDecodeFST() (*vellum.FST, []string, int, error) {
	indexes := make(map[string]uint64, len(decodeLiterals))
	var outputs []string
	maxLen := 0

	for _, e := range decodeLiterals {
		if _, seen := indexes[e.romaji]; seen {
			continue
		}
		indexes[e.romaji] = uint64(len(outputs))
		outputs = append(outputs, e.kana)
		if len(e.romaji) > maxLen {
			maxLen = len(e.romaji)
		}
	}

	keys := make([]string, 0, len(indexes))
	for k := range indexes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, nil, 0, err
	}
	for _, k := range keys {
		if err := builder.Insert([]byte(k), indexes[k]); err != nil {
			return nil, nil, 0, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, nil, 0, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, nil, 0, err
	}
	return fst, outputs, maxLen, nil
}

// longestLiteralMatch returns the longest table literal that is a prefix
// of s, with its kana. A zero length means no literal matched.
func longestLiteralMatch(s string) (int, string) {
	limit := maxLiteralLen
	if len(s) < limit {
		limit = len(s)
	}
	for n := limit; n >= 1; n-- {
		if v, ok, err := decodeFST.Get([]byte(s[:n])); err == nil && ok {
			return n, decodeKana[v]
		}
	}
	return 0, ""
}

// scanLiteral is the ordered linear scan the literal table was originally
// maintained for. The decoder runs on the FST; the test suite holds the
// two to identical segmentation.
func scanLiteral(s string) (int, string) {
	for _, e := range decodeLiterals {
		if strings.HasPrefix(s, e.romaji) {
			return len(e.romaji), e.kana
		}
	}
	return 0, ""
}
