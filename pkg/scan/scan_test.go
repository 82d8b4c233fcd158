package scan

import "testing"

var algorithms = []Algorithm{BoyerMoore, Naive}

func TestIndexIn(t *testing.T) {
	testCases := []struct {
		pattern     string
		haystack    string
		expected    int
		description string
	}{
		{"spain", "spain", 0, "Exact match"},
		{"aus", "australia", 0, "Prefix"},
		{"land", "netherlands", 6, "Interior match"},
		{"states", "united states of america", 7, "Match after space"},
		{"dom", "united kingdom", 11, "Match near end"},
		{"xy", "united kingdom", -1, "No match"},
		{"kingdoms", "kingdom", -1, "Pattern longer than haystack"},
		{"an", "anand", 0, "Leftmost of repeated matches"},
		{"ana", "banana", 1, "Overlapping candidates"},
		{"مصر", "مصر", 0, "Arabic exact"},
		{"مان", "عمان", 1, "Arabic interior, rune index"},
		{"é", "cote", -1, "Absent non-ASCII"},
	}

	for _, alg := range algorithms {
		for _, tc := range testCases {
			p := Compile(tc.pattern, alg)
			if got := p.IndexIn(tc.haystack); got != tc.expected {
				t.Errorf("%s [%s]: IndexIn(%q, %q) = %d, want %d",
					tc.description, alg, tc.pattern, tc.haystack, got, tc.expected)
			}
		}
	}
}

func TestIndexInDegenerate(t *testing.T) {
	for _, alg := range algorithms {
		if got := Compile("", alg).IndexIn("spain"); got != -1 {
			t.Errorf("[%s] empty pattern = %d, want -1", alg, got)
		}
		if got := Compile("spain", alg).IndexIn(""); got != -1 {
			t.Errorf("[%s] empty haystack = %d, want -1", alg, got)
		}
	}
}

func TestIndexInReuse(t *testing.T) {
	// One compiled pattern applied to a whole record set.
	p := Compile("an", BoyerMoore)
	haystacks := map[string]int{
		"france":      2,
		"germany":     4,
		"andorra":     0,
		"anguilla":    0,
		"switzerland": 8,
		"peru":        -1,
	}
	for h, want := range haystacks {
		if got := p.IndexIn(h); got != want {
			t.Errorf("IndexIn(%q) = %d, want %d", h, got, want)
		}
	}
}
