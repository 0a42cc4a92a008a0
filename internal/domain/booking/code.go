package booking

import (
	"strconv"
	"strings"
	"time"
)

// GenerateBookingCode derives a short, unique-enough booking code from the
// given instant: the nanosecond timestamp encoded in base-36, upper-cased.
// Codes are always generated server-side; caller-supplied codes are ignored.
func GenerateBookingCode(now time.Time) string {
	return strings.ToUpper(strconv.FormatInt(now.UnixNano(), 36))
}
