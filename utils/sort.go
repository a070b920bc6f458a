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
	"sort"
	"strings"
	"unicode"
)

// splitDigits splits str into alternating runs of digits and non digits.
func splitDigits(str string) (ret []string) {
	for len(str) > 0 {
		isNum := unicode.IsDigit(rune(str[0]))
		end := strings.IndexFunc(str, func(r rune) bool {
			return unicode.IsDigit(r) != isNum
		})
		if end < 0 {
			end = len(str)
		}
		ret = append(ret, str[:end])
		str = str[end:]
	}
	return
}

func isDigits(str string) bool {
	return len(str) > 0 && unicode.IsDigit(rune(str[0]))
}

// NaturalLess orders strings run by run, comparing runs of digits by their
// value so "alt-cost-2" sorts before "alt-cost-10".
func NaturalLess(a, b string) bool {
	aItems, bItems := splitDigits(a), splitDigits(b)
	for k := 0; k < len(aItems) && k < len(bItems); k++ {
		aItem, bItem := aItems[k], bItems[k]
		if isDigits(aItem) && isDigits(bItem) {
			aNum := strings.TrimLeft(aItem, "0")
			bNum := strings.TrimLeft(bItem, "0")
			if len(aNum) != len(bNum) {
				return len(aNum) < len(bNum)
			}
			if aNum != bNum {
				return aNum < bNum
			}
			continue
		}
		if aItem != bItem {
			return aItem < bItem
		}
	}
	return len(aItems) < len(bItems)
}

// SortNatural sorts items in place using NaturalLess.
func SortNatural(items []string) {
	sort.Slice(items, func(i, j int) bool {
		return NaturalLess(items[i], items[j])
	})
}
