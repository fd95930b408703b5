package phone

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// SubmissionDigits is the exact digit count a customer phone must resolve to
// before a report may be filed against it.
const SubmissionDigits = 10

// Normalize strips every non-digit character from the input. It is the
// canonical form used to correlate reports about the same customer.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidSubmission reports whether the input normalizes to exactly ten
// digits. Lookups accept any length; only submissions are this strict.
func ValidSubmission(input string) bool {
	return len(Normalize(input)) == SubmissionDigits
}

// FormatBusinessContact validates and pretty-prints a business's own contact
// number. Customer keys never go through here: the scoring key must stay the
// plain digits-only form regardless of region formatting rules.
func FormatBusinessContact(input, region string) (string, error) {
	if region == "" {
		region = "US"
	}
	num, err := libphonenumber.Parse(input, region)
	if err != nil {
		return "", err
	}
	return libphonenumber.Format(num, libphonenumber.NATIONAL), nil
}
