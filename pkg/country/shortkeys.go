package country

// shortKeyExtras are curated abbreviation aliases that neither the ISO code
// nor name initials produce. Process-wide constant data; adding a mapping is
// a source change. Entries must be lowercase and punctuation-free.
var shortKeyExtras = map[string][]string{
	"US": {"usa"},
	"SA": {"ksa"},
	"GB": {"uk"},
}
