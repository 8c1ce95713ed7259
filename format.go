package fermi

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParseNumber converts a string with an optional case-insensitive K/M/B
// magnitude suffix into its value: "2.7M" is 2700000. The numeric part
// accepts anything strconv.ParseFloat does. A value outside the float64
// range saturates to an infinity or zero rather than failing.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty string cannot be parsed as a number")
	}
	scale := 1.0
	switch s[len(s)-1] {
	case 'k', 'K':
		scale = 1e3
	case 'm', 'M':
		scale = 1e6
	case 'b', 'B':
		scale = 1e9
	}
	num := s
	if scale != 1 {
		num = strings.TrimSpace(s[:len(s)-1])
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid number format: %q", s)
	}
	return v * scale, nil
}

// FormatNumber renders a number with the appropriate magnitude suffix:
// 2700000 is "2.70M". Values below ten keep two decimals; other values below
// a thousand are shown as integers.
func FormatNumber(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", n/1e3)
	case abs >= 10, n == 0:
		return fmt.Sprintf("%.0f", n)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// FormatValue renders a scalar with magnitude suffixes, or a distribution as
// its median with the p10..p90 percentile band.
func FormatValue(v Value) string {
	if !v.IsDistribution() {
		return FormatNumber(v.Float64())
	}
	s := append([]float64(nil), v.Samples()...)
	sort.Float64s(s)
	return fmt.Sprintf("%s (p10 %s, p90 %s)",
		FormatNumber(s[rank(50, len(s))]),
		FormatNumber(s[rank(10, len(s))]),
		FormatNumber(s[rank(90, len(s))]))
}
