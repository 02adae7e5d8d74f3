package validate

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Indian mobile numbering plan: first digit 6-9 followed by nine digits.
var mobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// ValidMobile checks a mobile number against the Indian numbering plan.
func ValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// NormalizeUsername folds a staff username the way it is stored: trimmed
// and lowercased. Lookups must apply the same folding.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// GeneratePIN produces a random 4-digit PIN in [1000, 9999]. PINs are not
// unique across parents; the mobile number is the real key.
func GeneratePIN() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
