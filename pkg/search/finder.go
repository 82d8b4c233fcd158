// Package search ranks country records against keystroke-by-keystroke user
// queries. A query is classified once (dialing-code digits, a short
// abbreviation, or a name fragment) and routed through exact substring,
// short-key and fuzzy stages whose results merge into one deduplicated,
// capped list. Queries never error and never log; a miss is an empty slice.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/omar-hanafy/country-selector/internal/utils"
	"github.com/omar-hanafy/country-selector/pkg/country"
	"github.com/omar-hanafy/country-selector/pkg/normalize"
	"github.com/omar-hanafy/country-selector/pkg/scan"
	"github.com/omar-hanafy/country-selector/pkg/similarity"
)

// DefaultMaxResults caps the returned list length.
const DefaultMaxResults = 50

// Config carries the finder's construction options. Zero values select the
// defaults.
type Config struct {
	// MaxResults bounds the result length at every exit. Default 50.
	MaxResults int
	// StrictAlgorithm selects the substring scan used by the strict stage.
	// Default scan.BoyerMoore.
	StrictAlgorithm scan.Algorithm
	// NgramSize is the window width for the n-gram metric. Default 3.
	NgramSize int
	// SimilarityCacheCapacity bounds the similarity engine's LRU cache.
	SimilarityCacheCapacity int
}

// Finder answers queries over record sets. Immutable after construction
// apart from the similarity cache, which synchronizes internally, so
// concurrent WhereText calls on one Finder match sequential results.
type Finder struct {
	maxResults int
	strictAlg  scan.Algorithm
	sim        *similarity.Engine
}

// New builds a Finder from cfg, falling back to defaults for zero fields.
func New(cfg Config) *Finder {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.StrictAlgorithm == "" {
		cfg.StrictAlgorithm = scan.BoyerMoore
	}
	return &Finder{
		maxResults: cfg.MaxResults,
		strictAlg:  cfg.StrictAlgorithm,
		sim:        similarity.NewEngine(cfg.NgramSize, cfg.SimilarityCacheCapacity),
	}
}

// WhereText returns the records matching raw, ranked and capped. An empty or
// punctuation-only query returns the whole set in snapshot order; a digit
// query filters by dial code; anything else matches names, abbreviations and
// typos. Repeated calls with identical inputs return identical orderings.
func (f *Finder) WhereText(raw string, set *country.Set) []*country.Record {
	recs := set.All()

	numeric := strings.TrimSpace(raw)
	if strings.HasPrefix(numeric, "+") {
		numeric = strings.TrimSpace(numeric[1:])
	}
	if numeric == "" {
		return recs
	}
	if utils.IsASCIIDigits(numeric) {
		return f.byDialCode(numeric, set)
	}
	return f.byName(raw, recs)
}

// FirstMatch returns the best hit for raw among favorites, falling back to
// the full set, or nil when both come up empty.
func (f *Finder) FirstMatch(raw string, favorites, all *country.Set) *country.Record {
	if favorites != nil && favorites.Len() > 0 {
		if res := f.WhereText(raw, favorites); len(res) > 0 {
			return res[0]
		}
	}
	if all == nil {
		return nil
	}
	if res := f.WhereText(raw, all); len(res) > 0 {
		return res[0]
	}
	return nil
}

// byDialCode keeps records whose dial code contains the digits, ordering the
// starts-with partition first. Both partitions keep snapshot order.
func (f *Finder) byDialCode(digits string, set *country.Set) []*country.Record {
	startsWith := set.DialStartsWith(digits)

	out := make([]*country.Record, 0, len(startsWith))
	for _, rec := range set.All() {
		if startsWith[rec.ISOCode] {
			out = append(out, rec)
		}
	}
	for _, rec := range set.All() {
		if !startsWith[rec.ISOCode] && strings.Contains(rec.DialCode, digits) {
			out = append(out, rec)
		}
	}
	return truncate(out, f.maxResults)
}

// byName runs the strict, short-key and fuzzy stages and merges them by
// query length.
func (f *Finder) byName(raw string, recs []*country.Record) []*country.Record {
	q := normalize.Key(raw)
	if q == "" {
		return recs
	}
	qns := normalize.StripSpaces(q)
	qLen := utf8.RuneCountInString(q)
	qnsLen := utf8.RuneCountInString(qns)

	strict := f.strictHits(q, qns, recs)

	var short []scoredHit
	if qnsLen >= 1 && qnsLen <= shortKeyMaxQueryLen {
		short = f.shortKeyHits(qns, qnsLen, recs)
	}

	// Very short queries are more likely abbreviations than name fragments,
	// so their short-key hits outrank substring hits; at three runes the
	// preference flips.
	p := newPicker(f.maxResults)
	switch {
	case qnsLen <= 2:
		p.addScored(short)
		p.addStrict(strict)
	case qnsLen == 3:
		p.addStrict(strict)
		p.addScored(short)
	default:
		p.addStrict(strict)
	}

	if len(p.out) >= earlyExitCount || qLen <= 2 {
		return truncate(p.out, f.maxResults)
	}

	alg := pickAlgorithm(q)
	threshold := pickThreshold(qLen, alg)
	p.addScored(f.fuzzyHits(q, qns, alg, threshold, p.seen, recs))

	return truncate(p.out, f.maxResults)
}
