package puzzle

import (
	"strconv"
	"time"
)

var subSecondUnits = []string{"ns", "μs", "ms"}

// FormatDuration renders d in the largest unit that keeps the value below
// 1000, truncating at each step: 1_500_000ns prints as "1ms". Seconds are
// never scaled further.
func FormatDuration(d time.Duration) string {
	n := max(d.Nanoseconds(), 0)
	for _, unit := range subSecondUnits {
		if n < 1000 {
			return strconv.FormatInt(n, 10) + unit
		}
		n /= 1000
	}
	return strconv.FormatInt(n, 10) + "s"
}
