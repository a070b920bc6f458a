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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "2.0", FormatFloat(2000000/1000000.0))
	assert.Equal(t, "5.0", FormatFloat(5000/1000.0))
	assert.Equal(t, "0.5", FormatFloat(0.5))
	assert.Equal(t, "0.0", FormatFloat(0))
	assert.Equal(t, "-3.25", FormatFloat(-3.25))
	assert.Equal(t, "0.0001", FormatFloat(0.0001))
	assert.Equal(t, "1e-05", FormatFloat(0.00001))
	assert.Equal(t, "1.5e-07", FormatFloat(0.00000015))
	assert.Equal(t, "1234567.891", FormatFloat(1234567.891))
	assert.Equal(t, "1e+16", FormatFloat(1e16))
	assert.Equal(t, "9999999999999998.0", FormatFloat(9999999999999998))
	assert.Equal(t, "0.1", FormatFloat(0.1))
	assert.Equal(t, "inf", FormatFloat(math.Inf(1)))
	assert.Equal(t, "-inf", FormatFloat(math.Inf(-1)))
	assert.Equal(t, "nan", FormatFloat(math.NaN()))
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "47", FormatCoordinate(47))
	assert.Equal(t, "-2", FormatCoordinate(-2))
	assert.Equal(t, "2.5", FormatCoordinate(2.5))
	assert.Equal(t, "1e+16", FormatCoordinate(1e16))
}

func TestExp(t *testing.T) {
	assert.Equal(t, 1, Exp(10, 0))
	assert.Equal(t, 1000, Exp(10, 3))
	assert.Equal(t, 32, Exp(2, 5))
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 2.22, RoundFloat(2.2222, 2))
	assert.Equal(t, 10.0, RoundFloat(9.99999, 2))
	assert.Equal(t, 4.0, RoundFloat(4.44444, 0))
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, NaturalLess("alt-cost-2", "alt-cost-10"))
	assert.False(t, NaturalLess("alt-cost-10", "alt-cost-2"))
	assert.True(t, NaturalLess("incremental", "incremental alt-cost-2"))
	assert.True(t, NaturalLess("incremental", "none"))
	assert.True(t, NaturalLess("9", "10"))
	assert.True(t, NaturalLess("007", "10"))
	assert.False(t, NaturalLess("same", "same"))
	assert.True(t, NaturalLess("", "a"))
}

func TestSortNatural(t *testing.T) {
	items := []string{"none", "incremental alt-cost-10", "incremental", "incremental alt-cost-2"}
	SortNatural(items)
	assert.Equal(t, []string{"incremental", "incremental alt-cost-2", "incremental alt-cost-10", "none"}, items)
}
