// Package names folds country names into a comparison key so user input like
// "cote d'ivoire" or "ＵＮＩＴＥＤ states" finds the dataset's spelling
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 NFD decomposition so accents become combining marks
// 3 strip combining marks and format chars
// 4 case folding
// 5 width fold fullwidth to ASCII
// 6 NFC recomposition
// 7 collapse whitespace and trim
package names

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			cases.Fold(),
			width.Fold,
			norm.NFC,
		)
	},
}

// Fold returns the comparison key for s
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Index maps folded keys back to canonical names
// built once and read-only afterwards
type Index struct {
	byKey map[string]string
	all   []string
}

// NewIndex builds an Index over canonical; on key collisions the first name wins
func NewIndex(canonical []string) *Index {
	ix := &Index{byKey: make(map[string]string, len(canonical))}
	for _, c := range canonical {
		k := Fold(c)
		if k == "" {
			continue
		}
		if _, dup := ix.byKey[k]; dup {
			continue
		}
		ix.byKey[k] = c
		ix.all = append(ix.all, c)
	}
	sort.Strings(ix.all)
	return ix
}

// Lookup returns the canonical spelling for q
func (ix *Index) Lookup(q string) (string, bool) {
	if ix == nil {
		return "", false
	}
	c, ok := ix.byKey[Fold(q)]
	return c, ok
}

// Canonical returns the canonical spelling when known, else q trimmed
func (ix *Index) Canonical(q string) string {
	if c, ok := ix.Lookup(q); ok {
		return c
	}
	return strings.TrimSpace(q)
}

// Names returns the canonical names in sorted order
func (ix *Index) Names() []string {
	if ix == nil {
		return nil
	}
	return append([]string(nil), ix.all...)
}
