package country

import (
	"strconv"

	"github.com/biter777/countries"
)

// Resolver sources the display name and dial string for an ISO code. Hosts
// with localization catalogs implement this over their message tables; the
// core treats the returned names as opaque, already-localized strings.
type Resolver interface {
	DisplayName(iso string) string
	DialCode(iso string) string
}

// StandardResolver resolves through the embedded ISO 3166 dataset: English
// names and the first registered calling code, rendered as bare digits.
// Useful for tests, the debug CLI, and hosts without their own catalog.
type StandardResolver struct{}

// DisplayName returns the English country name, or "" for unknown codes.
func (StandardResolver) DisplayName(iso string) string {
	c := countries.ByName(iso)
	if c == countries.Unknown {
		return ""
	}
	return c.String()
}

// DialCode returns the calling code digits without a leading plus, or ""
// when the code is unknown or has no calling code.
func (StandardResolver) DialCode(iso string) string {
	c := countries.ByName(iso)
	if c == countries.Unknown {
		return ""
	}
	codes := c.CallCodes()
	if len(codes) == 0 {
		return ""
	}
	return strconv.FormatInt(int64(codes[0]), 10)
}

// AllISOCodes lists every assigned alpha-2 code in the dataset, for hosts
// that want the full picker without maintaining their own list. Policy
// filtering of specific codes stays with the caller.
func AllISOCodes() []string {
	all := countries.All()
	isos := make([]string, 0, len(all))
	for _, c := range all {
		if c == countries.Unknown {
			continue
		}
		isos = append(isos, c.Alpha2())
	}
	return isos
}
