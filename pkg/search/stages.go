package search

import (
	"sort"
	"unicode/utf8"

	"github.com/omar-hanafy/country-selector/pkg/country"
	"github.com/omar-hanafy/country-selector/pkg/scan"
	"github.com/omar-hanafy/country-selector/pkg/similarity"
)

// strictHit is one exact-substring match during the strict stage.
type strictHit struct {
	rec    *country.Record
	index  int
	prefix bool
	keyLen int
}

// scoredHit is one similarity-scored match during the short-key and fuzzy
// stages.
type scoredHit struct {
	rec   *country.Record
	score float64
}

// strictHits compiles the query once and scans every record's search key and
// spaceless key, keeping the smaller of the two match indices. Hits sort
// prefix matches first, then earlier matches, then shorter keys; ties keep
// input order.
func (f *Finder) strictHits(q, qns string, recs []*country.Record) []strictHit {
	pat := scan.Compile(q, f.strictAlg)
	patNS := pat
	if qns != q {
		patNS = scan.Compile(qns, f.strictAlg)
	}

	var hits []strictHit
	for _, rec := range recs {
		best := pat.IndexIn(rec.SearchKey)
		if qns != "" {
			if idx := patNS.IndexIn(rec.SearchKeyNoSpaces); idx >= 0 && (best < 0 || idx < best) {
				best = idx
			}
		}
		if best < 0 {
			continue
		}
		hits = append(hits, strictHit{
			rec:    rec,
			index:  best,
			prefix: best == 0,
			keyLen: utf8.RuneCountInString(rec.SearchKey),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		if hits[i].index != hits[j].index {
			return hits[i].index < hits[j].index
		}
		return hits[i].keyLen < hits[j].keyLen
	})
	return hits
}

// shortKeyHits matches the spaceless query against each record's short keys.
// One- and two-rune queries must match a key exactly; a three-rune query may
// also reach a two-rune key through Jaro-Winkler. The best key per record
// wins, and records below the threshold drop out.
func (f *Finder) shortKeyHits(qns string, qnsLen int, recs []*country.Record) []scoredHit {
	threshold := shortKeyExact
	if qnsLen > 2 {
		threshold = shortKeyFuzzy
	}

	var hits []scoredHit
	for _, rec := range recs {
		best := 0.0
		for _, key := range rec.ShortKeys {
			switch {
			case key == qns:
				best = 1.0
			case qnsLen == 3 && utf8.RuneCountInString(key) == 2:
				if s := f.sim.Compare(qns, key, similarity.JaroWinkler); s > best {
					best = s
				}
			}
			if best == 1.0 {
				break
			}
		}
		if best >= threshold {
			hits = append(hits, scoredHit{rec: rec, score: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	return hits
}

// fuzzyHits scores every record not already picked, taking the better of the
// spaced and spaceless comparisons, and keeps those at or above threshold,
// best first.
func (f *Finder) fuzzyHits(q, qns string, alg similarity.Algorithm, threshold float64, skip map[string]bool, recs []*country.Record) []scoredHit {
	var hits []scoredHit
	for _, rec := range recs {
		if skip[rec.ISOCode] {
			continue
		}
		score := f.sim.Compare(q, rec.SearchKey, alg)
		if qns != "" {
			if s := f.sim.Compare(qns, rec.SearchKeyNoSpaces, alg); s > score {
				score = s
			}
		}
		if score >= threshold {
			hits = append(hits, scoredHit{rec: rec, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	return hits
}

// picker accumulates results while rejecting ISO codes already present.
type picker struct {
	seen map[string]bool
	out  []*country.Record
}

func newPicker(capHint int) *picker {
	return &picker{
		seen: make(map[string]bool, capHint),
		out:  make([]*country.Record, 0, capHint),
	}
}

func (p *picker) add(rec *country.Record) {
	if p.seen[rec.ISOCode] {
		return
	}
	p.seen[rec.ISOCode] = true
	p.out = append(p.out, rec)
}

func (p *picker) addStrict(hits []strictHit) {
	for _, h := range hits {
		p.add(h.rec)
	}
}

func (p *picker) addScored(hits []scoredHit) {
	for _, h := range hits {
		p.add(h.rec)
	}
}

func truncate(recs []*country.Record, max int) []*country.Record {
	if max > 0 && len(recs) > max {
		return recs[:max]
	}
	return recs
}
