// Package normalize turns display names and user queries into canonical
// search keys. A key contains only lowercase letters, digits and single
// spaces, with Latin diacritics stripped and Arabic letter variants
// collapsed, so that "São Tomé", "sao tome" and "ساو تومي" all land in the
// same searchable space as the text a user actually types.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chainPool hands out NFD → strip combining marks (Mn) → NFC pipelines.
// Transformers carry internal state, so each borrower gets its own chain.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// latinFold maps Latin letters that have no canonical decomposition and
// therefore survive the NFD pass. ß→ss, æ→ae and œ→oe are expansions rather
// than strippings; they run after lowercasing so only lowercase forms appear.
var latinFold = map[rune]string{
	'ø': "o",
	'ł': "l",
	'đ': "d",
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
}

// Key builds the canonical search key for s. It never fails; empty input
// yields empty output. Applying Key to its own output is a no-op.
func Key(s string) string {
	if s == "" {
		return ""
	}

	chain := chainPool.Get().(transform.Transformer)
	chain.Reset()
	stripped, _, err := transform.String(chain, s)
	chainPool.Put(chain)
	if err != nil {
		// Transform failures leave the input usable as-is.
		stripped = s
	}

	lowered := strings.ToLower(stripped)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if folded, ok := latinFold[r]; ok {
			b.WriteString(folded)
			continue
		}
		if isArabicRemovable(r) {
			continue
		}
		r = foldArabic(r)
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// StripSpaces removes every U+0020 from a key, yielding the spaceless
// variant used for queries like "unitedstates".
func StripSpaces(key string) string {
	return strings.ReplaceAll(key, " ", "")
}
