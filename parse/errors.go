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

package parse

import "fmt"

var ErrUnknownStatistic = fmt.Errorf("unknown statistic")
var ErrMissingStatistic = fmt.Errorf("statistic missing from estimates")
var ErrMissingPointEstimate = fmt.Errorf("point estimate missing from estimates")
var ErrZeroBaseline = fmt.Errorf("comparison point estimate is zero")
var ErrZeroDivisor = fmt.Errorf("divisor is zero")
var ErrUnknownFormat = fmt.Errorf("unknown output format")
var ErrNoIDs = fmt.Errorf("no benchmark instances found")
var ErrTrailingData = fmt.Errorf("data after the estimates object")
