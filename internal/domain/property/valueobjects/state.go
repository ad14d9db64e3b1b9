package valueobjects

import "strings"

// USState is a 2-letter US state code, normalized to uppercase.
type USState string

// The 50 states plus DC. Immutable; lookups only.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"DC": true,
}

// NewUSState validates s case-insensitively and returns the uppercase code.
// The bool result is false when s is not a known state.
func NewUSState(s string) (USState, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !usStates[normalized] {
		return "", false
	}
	return USState(normalized), true
}

func (s USState) String() string {
	return string(s)
}

func (s USState) IsValid() bool {
	return usStates[string(s)]
}
