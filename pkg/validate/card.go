package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minCardDigits = 12
	maxCardDigits = 19
)

// IsCardNumber reports whether s looks like a payment card number: 12 to 19
// digits, optionally grouped with spaces or dashes, passing the Luhn check.
func IsCardNumber(s string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return false
	}
	return goluhn.Validate(digits) == nil
}
