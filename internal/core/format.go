package core

import (
	"fmt"
	"math"
	"strings"
)

var shortScale = []string{
	"",
	"thousand",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
	"sextillion",
	"septillion",
}

func digits(n float64) int {
	d := 1
	n = math.Floor(n)
	for n /= 10; n >= 1.0; n /= 10 {
		d++
	}
	return d
}

// FormatShortScale renders n with English short-scale names, e.g.
// 12345 as "12.3 thousand" and 1234567 as "1.2 million". Numbers with at
// most four integer digits are printed as is.
func FormatShortScale(n float64, decimals int) string {
	exp := 0
	if d := digits(n); d > 4 {
		exp = 3 * ((d - 1) / 3)
	}
	if top := 3 * (len(shortScale) - 1); exp > top {
		exp = top
	}
	s := fmt.Sprintf("%.*f %s", decimals, n/math.Pow(10, float64(exp)), shortScale[exp/3])
	return strings.TrimSpace(s)
}
