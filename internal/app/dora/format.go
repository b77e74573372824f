package dora

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// currency renders a whole-dollar amount with thousands separators.
func currency(v float64) string {
	rounded := int64(math.Round(v))
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}

	return "$" + humanize.Comma(rounded)
}

// percent renders a ratio as a percentage with one decimal.
func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// signedPercent renders a percent value with an explicit sign.
func signedPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}

	return fmt.Sprintf("%d %s", n, many)
}
