package country

import (
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Set is an immutable snapshot of records in presentation order, plus a
// patricia trie over dial codes so the dial path can split a query into its
// starts-with partition without rescanning every code.
type Set struct {
	records  []*Record
	dialTrie *patricia.Trie
}

// NewSet wraps records in a Set. The slice order is preserved; callers that
// want presentation order should hand in a sorted slice (BuildRecords does).
func NewSet(records []*Record) *Set {
	trie := patricia.NewTrie()
	for _, rec := range records {
		if rec.DialCode == "" {
			continue
		}
		prefix := patricia.Prefix(rec.DialCode)
		if item := trie.Get(prefix); item != nil {
			trie.Set(prefix, append(item.([]string), rec.ISOCode))
		} else {
			trie.Insert(prefix, []string{rec.ISOCode})
		}
	}
	return &Set{records: records, dialTrie: trie}
}

// All returns the records in snapshot order. The returned slice must not be
// mutated.
func (s *Set) All() []*Record {
	return s.records
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.records)
}

// DialStartsWith returns the ISO codes of every record whose dial code has
// digits as a prefix.
func (s *Set) DialStartsWith(digits string) map[string]bool {
	isos := make(map[string]bool)
	if digits == "" {
		return isos
	}
	_ = s.dialTrie.VisitSubtree(patricia.Prefix(digits), func(_ patricia.Prefix, item patricia.Item) error {
		for _, iso := range item.([]string) {
			isos[iso] = true
		}
		return nil
	})
	return isos
}

// BuildRecords constructs one record per ISO code through the resolver and
// returns them as a Set sorted by display name under plain byte-order
// comparison, so the initial presentation is deterministic across locales of
// the host machine.
func BuildRecords(r Resolver, isoCodes []string) *Set {
	records := make([]*Record, 0, len(isoCodes))
	for _, iso := range isoCodes {
		records = append(records, NewRecord(iso, r.DialCode(iso), r.DisplayName(iso)))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return strings.Compare(records[i].DisplayName, records[j].DisplayName) < 0
	})
	return NewSet(records)
}
