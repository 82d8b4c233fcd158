// Package country holds the searchable country entities: immutable records
// carrying precomputed search keys, snapshot sets with a dial-code index,
// and the resolver that sources display names and dial strings.
package country

import (
	"strings"

	"github.com/omar-hanafy/country-selector/pkg/normalize"
)

// Record is one searchable country. Records are built once per (locale,
// country list) snapshot and never mutated afterwards; they are freely
// shareable by reference.
type Record struct {
	// ISOCode is the ISO 3166-1 alpha-2 identifier and the uniqueness key.
	ISOCode string
	// DialCode is the country calling code as bare decimal digits.
	DialCode string
	// DisplayName is the localized name as handed in by the resolver.
	DisplayName string
	// SearchKey is the normalized form of DisplayName.
	SearchKey string
	// SearchKeyNoSpaces is SearchKey with spaces removed.
	SearchKeyNoSpaces string
	// ShortKeys are compact synonyms for abbreviation matching: the
	// lowercased ISO code, the initials of multi-word names, and any
	// curated aliases. Ordered, lowercase, deduplicated.
	ShortKeys []string
}

// NewRecord builds the immutable searchable entity for one country.
func NewRecord(iso, dial, name string) *Record {
	key := normalize.Key(name)
	return &Record{
		ISOCode:           iso,
		DialCode:          dial,
		DisplayName:       name,
		SearchKey:         key,
		SearchKeyNoSpaces: normalize.StripSpaces(key),
		ShortKeys:         buildShortKeys(iso, key),
	}
}

func buildShortKeys(iso, searchKey string) []string {
	var keys []string
	seen := make(map[string]bool)
	add := func(k string) {
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keys = append(keys, k)
	}

	add(strings.ToLower(iso))

	tokens := strings.Fields(searchKey)
	if len(tokens) >= 2 {
		var initials strings.Builder
		for _, tok := range tokens {
			r := []rune(tok)
			initials.WriteRune(r[0])
		}
		if s := initials.String(); len([]rune(s)) >= 2 {
			add(s)
		}
	}

	for _, extra := range shortKeyExtras[strings.ToUpper(iso)] {
		add(extra)
	}

	return keys
}
