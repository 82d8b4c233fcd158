package similarity

import (
	"math"
	"testing"
)

func TestCompareJaroWinkler(t *testing.T) {
	e := NewEngine(DefaultNgramSize, DefaultCacheCapacity)

	testCases := []struct {
		a, b        string
		expected    float64
		description string
	}{
		{"martha", "marhta", 0.9611, "Classic transposition pair"},
		{"spain", "spain", 1.0, "Identical strings"},
		{"germny", "germany", 0.9714, "Dropped letter typo"},
		{"abc", "xyz", 0.0, "Disjoint strings"},
	}

	for _, tc := range testCases {
		got := e.Compare(tc.a, tc.b, JaroWinkler)
		if math.Abs(got-tc.expected) > 0.01 {
			t.Errorf("%s: Compare(%q, %q) = %.4f, want %.4f",
				tc.description, tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestCompareNgramMonotoneForTypos(t *testing.T) {
	e := NewEngine(3, DefaultCacheCapacity)

	target := "netherlands"
	closer := e.Compare("netherland", target, Ngram) // one char off
	farther := e.Compare("nethlnd", target, Ngram)   // several chars off
	unrelated := e.Compare("uruguay", target, Ngram)

	if !(closer > farther) {
		t.Errorf("one-char typo (%.3f) should outscore heavy typo (%.3f)", closer, farther)
	}
	if !(farther >= unrelated) {
		t.Errorf("heavy typo (%.3f) should not lose to unrelated string (%.3f)", farther, unrelated)
	}
	if got := e.Compare(target, target, Ngram); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("identical strings = %.4f, want 1.0", got)
	}
}

func TestCompareTokenCosine(t *testing.T) {
	e := NewEngine(DefaultNgramSize, DefaultCacheCapacity)

	testCases := []struct {
		a, b        string
		expected    float64
		description string
	}{
		{"united states", "states united", 1.0, "Order insensitive"},
		{"united states", "united kingdom", 0.5, "One of two tokens shared"},
		{"papua new guinea", "guinea", 0.5774, "Single token against three"},
		{"spain", "france", 0.0, "No shared tokens"},
	}

	for _, tc := range testCases {
		got := e.Compare(tc.a, tc.b, TokenCosine)
		if math.Abs(got-tc.expected) > 0.01 {
			t.Errorf("%s: Compare(%q, %q) = %.4f, want %.4f",
				tc.description, tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestCompareSymmetric(t *testing.T) {
	e := NewEngine(DefaultNgramSize, DefaultCacheCapacity)
	pairs := [][2]string{
		{"australia", "austria"},
		{"united arab emirates", "united states"},
		{"oman", "om"},
	}
	for _, alg := range []Algorithm{JaroWinkler, Ngram, TokenCosine} {
		for _, p := range pairs {
			ab := e.Compare(p[0], p[1], alg)
			ba := e.Compare(p[1], p[0], alg)
			if ab != ba {
				t.Errorf("alg %d not symmetric for %q/%q: %.6f vs %.6f", alg, p[0], p[1], ab, ba)
			}
		}
	}
}

func TestCompareDegenerate(t *testing.T) {
	e := NewEngine(DefaultNgramSize, DefaultCacheCapacity)
	for _, alg := range []Algorithm{JaroWinkler, Ngram, TokenCosine} {
		if got := e.Compare("", "spain", alg); got != 0 {
			t.Errorf("alg %d: empty operand = %.4f, want 0", alg, got)
		}
		if got := e.Compare("", "", alg); got != 0 {
			t.Errorf("alg %d: both empty = %.4f, want 0", alg, got)
		}
	}
}

func TestCompareCached(t *testing.T) {
	e := NewEngine(DefaultNgramSize, 8)
	first := e.Compare("germany", "germny", JaroWinkler)
	second := e.Compare("germany", "germny", JaroWinkler)
	third := e.Compare("germny", "germany", JaroWinkler)
	if first != second || first != third {
		t.Errorf("cached scores diverge: %.6f %.6f %.6f", first, second, third)
	}
}
