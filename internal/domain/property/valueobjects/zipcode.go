package valueobjects

import "regexp"

// ZipCode is a US ZIP code: five digits, optionally with a +4 extension.
type ZipCode string

var zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// NewZipCode validates s against the ZIP/ZIP+4 format. The bool result is
// false when the format does not match.
func NewZipCode(s string) (ZipCode, bool) {
	if !zipCodePattern.MatchString(s) {
		return "", false
	}
	return ZipCode(s), true
}

func (z ZipCode) String() string {
	return string(z)
}

func (z ZipCode) IsValid() bool {
	return zipCodePattern.MatchString(string(z))
}
