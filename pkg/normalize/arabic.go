package normalize

// Arabic handling is always-on: every function here is a no-op outside the
// Arabic block, which is cheaper than detecting the script first. The folds
// are deliberately lossy (ة↔ه, ى↔ي, the alef family) to favor recall over
// distinguishing near-homographs.

// isArabicRemovable reports code points dropped outright: tashkeel and other
// Arabic diacritic marks plus the tatweel. Most tashkeel are combining marks
// already removed by the NFD pass; the tatweel (U+0640) classifies as a
// letter and the Koranic annotation signs in U+06D6..U+06ED include format
// characters, so both need explicit treatment.
func isArabicRemovable(r rune) bool {
	switch {
	case r >= 0x0610 && r <= 0x061A:
		return true
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	case r == 0x0640:
		return true
	}
	return false
}

// foldArabic collapses Arabic letter variants onto a single representative.
// The hamza-carrying alef forms also decompose under NFD, so most inputs
// arrive here already collapsed; mapping them again keeps the fold total and
// idempotent regardless of the caller's normal form.
func foldArabic(r rune) rune {
	switch r {
	case 0x0622, 0x0623, 0x0625, 0x0671: // alef variants
		return 0x0627
	case 0x0649: // alef maksura
		return 0x064A
	case 0x0629: // taa marbuta
		return 0x0647
	case 0x0624: // waw with hamza
		return 0x0648
	case 0x0626: // yaa with hamza
		return 0x064A
	}
	return r
}
