package vertex

import (
	"strconv"
	"strings"
)

// FormatValue renders z as the shortest decimal that round-trips, keeping a
// trailing ".0" on integral values (8 → "8.0").
func FormatValue(z float64) string {
	s := strconv.FormatFloat(z, 'g', -1, 64)
	if strings.ContainsAny(s, ".eInN") {
		return s
	}
	return s + ".0"
}
