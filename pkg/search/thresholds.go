package search

import (
	"strings"
	"unicode/utf8"

	"github.com/omar-hanafy/country-selector/pkg/similarity"
)

// The fuzzy stage adapts both metric and acceptance threshold to the query.
// Short queries throw off many spurious fuzzy hits, so their thresholds are
// tightened; queries with spaces care about token overlap more than order,
// so they use cosine. These numbers are contract, not tuning knobs: the
// ranking behavior callers observe depends on them.
const (
	// earlyExitCount stops the pipeline before the fuzzy stage once the
	// strict and short-key stages have produced this many hits.
	earlyExitCount = 8

	// shortKeyMaxQueryLen is the longest (spaceless) query the short-key
	// stage considers.
	shortKeyMaxQueryLen = 3
	// shortKeyExact requires equality for one- and two-rune queries.
	shortKeyExact = 1.0
	// shortKeyFuzzy admits near-misses of three-rune queries against
	// two-rune keys, e.g. "egb" reaching "eg".
	shortKeyFuzzy = 0.85

	// jaroWinklerMaxQueryLen is the longest spaceless query scored with
	// Jaro-Winkler; longer ones switch to n-gram Dice.
	jaroWinklerMaxQueryLen = 7

	// thresholdDisabled effectively turns the fuzzy stage off for one- and
	// two-rune queries.
	thresholdDisabled = 0.999
	// thresholdCosine applies whenever the metric is token cosine.
	thresholdCosine = 0.55
	// thresholdShort applies to queries up to four runes.
	thresholdShort = 0.75
	// thresholdMid applies to queries of five to seven runes.
	thresholdMid = 0.65
	// thresholdLong applies beyond seven runes.
	thresholdLong = 0.55
)

// pickAlgorithm chooses the fuzzy metric from the normalized query.
func pickAlgorithm(q string) similarity.Algorithm {
	switch {
	case strings.Contains(q, " "):
		return similarity.TokenCosine
	case utf8.RuneCountInString(q) <= jaroWinklerMaxQueryLen:
		return similarity.JaroWinkler
	default:
		return similarity.Ngram
	}
}

// pickThreshold chooses the fuzzy acceptance threshold from the query's rune
// length and the metric already picked for it.
func pickThreshold(qLen int, alg similarity.Algorithm) float64 {
	switch {
	case qLen <= 2:
		return thresholdDisabled
	case alg == similarity.TokenCosine:
		return thresholdCosine
	case qLen <= 4:
		return thresholdShort
	case qLen <= 7:
		return thresholdMid
	default:
		return thresholdLong
	}
}
