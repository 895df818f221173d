// Package output provides deterministic rounding and ordering for dyno
// responses, so that identical inputs produce byte-identical JSON. Power
// figures are rounded to one decimal, times and grip coefficients to two.
package output

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds a float to the given number of decimal places.
func Round(f float64, decimals int) float64 {
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(f*multiplier) / multiplier
}

// RoundHP rounds a horsepower or torque figure for display.
func RoundHP(f float64) float64 {
	return Round(f, 1)
}

// RoundMetric rounds a time, distance, or grip figure for display.
func RoundMetric(f float64) float64 {
	return Round(f, 2)
}

// RoundScore rounds a 0-100 ring score to whole points.
func RoundScore(f float64) float64 {
	return Round(f, 0)
}

// FormatFloat formats a float with no trailing zeros.
func FormatFloat(f float64) string {
	str := strconv.FormatFloat(Round(f, 6), 'f', 6, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimRight(str, ".")
	if str == "" || str == "-" {
		return "0"
	}
	return str
}
