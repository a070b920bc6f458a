/*
github.com/tcrain/critplot - Plot data from criterion benchmark results.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the shortest string that parses back to v.
// Unlike strconv's 'g' format the result always carries a decimal point or an
// exponent (2 prints as "2.0"), and the exponent form is only used for
// magnitudes below 1e-4 or from 1e16 up.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	ret := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(ret, '.') {
		ret += ".0"
	}
	return ret
}

// FormatCoordinate prints integral values without a fraction so instance ids
// and edge counts look like integers, anything else goes through FormatFloat.
func FormatCoordinate(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return FormatFloat(v)
}

// Exp computes x to the power of y
func Exp(x, y int) (ret int) {
	ret = 1
	for i := 0; i < y; i++ {
		ret *= x
	}
	return
}

// RoundFloat rounds v to roundTo decimal digits.
func RoundFloat(v float64, roundTo int) float64 {
	round := float64(Exp(10, roundTo))
	return math.Round(v*round) / round
}
