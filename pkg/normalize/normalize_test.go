package normalize

import "testing"

func TestKey(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		// plain passthrough
		{"spain", "spain", "Already normalized"},
		{"Spain", "spain", "Lowercasing"},
		{"UNITED STATES", "united states", "Uppercase words"},

		// Latin diacritics
		{"Türkiye", "turkiye", "u with diaeresis"},
		{"Curaçao", "curacao", "c with cedilla"},
		{"São Tomé and Príncipe", "sao tome and principe", "Multiple accents"},
		{"Åland Islands", "aland islands", "Ring above"},
		{"Côte d'Ivoire", "cote d ivoire", "Accent plus apostrophe"},

		// Latin letters without a canonical decomposition
		{"Føroyar", "foroyar", "Slashed o"},
		{"Łódź", "lodz", "L with stroke"},
		{"Großbritannien", "grossbritannien", "Sharp s expands to ss"},

		// punctuation and whitespace
		{"Trinidad & Tobago", "trinidad tobago", "Ampersand becomes space"},
		{"  Bosnia -  Herzegovina ", "bosnia herzegovina", "Runs collapse to one space"},
		{"...", "", "Punctuation only"},
		{"", "", "Empty input"},
		{"U.S.A.", "u s a", "Dotted abbreviation"},

		// digits survive
		{"Area 51", "area 51", "Digits kept"},
	}

	for _, tc := range testCases {
		if got := Key(tc.input); got != tc.expected {
			t.Errorf("%s: Key(%q) = %q, want %q", tc.description, tc.input, got, tc.expected)
		}
	}
}

func TestKeyArabic(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"مصر", "مصر", "Plain Arabic passthrough"},
		{"عُمان", "عمان", "Damma stripped"},
		{"الإمارات", "الامارات", "Alef with hamza below collapses"},
		{"آسيا", "اسيا", "Alef madda collapses"},
		{"سوريا", "سوريا", "No-op on clean input"},
		{"مكّة", "مكه", "Shadda stripped, taa marbuta to haa"},
		{"مبنى", "مبني", "Alef maksura to yaa"},
		{"سؤال", "سوال", "Waw with hamza to waw"},
		{"جزائر", "جزاير", "Yaa with hamza to yaa"},
		{"العـــراق", "العراق", "Tatweel removed"},
	}

	for _, tc := range testCases {
		if got := Key(tc.input); got != tc.expected {
			t.Errorf("%s: Key(%q) = %q, want %q", tc.description, tc.input, got, tc.expected)
		}
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{
		"São Tomé and Príncipe",
		"عُمان",
		"Côte d'Ivoire",
		"Großbritannien",
		"  mixed   Input!! مصر  ",
		"",
	}
	for _, in := range inputs {
		once := Key(in)
		if twice := Key(once); twice != once {
			t.Errorf("Key not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestKeyDiacriticInsensitive(t *testing.T) {
	// Composed and decomposed spellings of the same letter must agree with
	// the bare base letter.
	pairs := []struct {
		accented string
		base     string
	}{
		{"é", "e"},
		{"é", "e"}, // e + combining acute
		{"ü", "u"},
		{"ã", "a"},
		{"ñ", "n"},
		{"č", "c"},
	}
	for _, p := range pairs {
		if Key(p.accented) != Key(p.base) {
			t.Errorf("Key(%q) = %q, want same as Key(%q) = %q",
				p.accented, Key(p.accented), p.base, Key(p.base))
		}
	}
}

func TestStripSpaces(t *testing.T) {
	if got := StripSpaces("united states of america"); got != "unitedstatesofamerica" {
		t.Errorf("StripSpaces = %q", got)
	}
	if got := StripSpaces("spain"); got != "spain" {
		t.Errorf("StripSpaces on spaceless input = %q", got)
	}
}
