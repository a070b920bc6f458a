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

import (
	"fmt"

	"github.com/tcrain/critplot/logging"
)

// Point is the plotted result of one benchmark instance.
type Point struct {
	ID           int
	X            float64 // the instance id unless remapped by ReportOptions.XValues
	Value        float64
	Lower, Upper float64 // confidence interval, scaled like Value
	Raw          float64 // the unscaled point estimate of the baseline
}

type ReportOptions struct {
	Dir       string
	Group     string
	Baseline  string
	Compare   string // if set each value is Baseline divided by Compare
	IDs       []int  // if empty the ids found in the group folder are used
	Statistic Statistic
	Divisor   float64 // value mode only
	XValues   map[int]float64
}

// IsRatio is true when the report compares two baselines.
func (ro ReportOptions) IsRatio() bool {
	return ro.Compare != ""
}

func (ro ReportOptions) XLabel() string {
	if len(ro.XValues) > 0 {
		return "x"
	}
	return "instance"
}

func (ro ReportOptions) YLabel() string {
	if ro.IsRatio() {
		return fmt.Sprintf("%v %v/%v", ro.Statistic, ro.Baseline, ro.Compare)
	}
	return fmt.Sprintf("%v %v", ro.Statistic, ro.Baseline)
}

// Report holds one point per id, in the order of ReportOptions.IDs.
type Report struct {
	ReportOptions
	Points []Point
}

// BuildReport loads the estimates of every instance. The first missing or
// malformed file fails the whole report, no partial points are returned.
func BuildReport(opts ReportOptions) (Report, error) {
	if opts.Statistic == "" {
		opts.Statistic = Mean
	}
	if !opts.IsRatio() && opts.Divisor == 0 {
		logging.Error(ErrZeroDivisor)
		return Report{}, ErrZeroDivisor
	}
	if len(opts.IDs) == 0 {
		ids, err := DiscoverIDs(opts.Dir, opts.Group)
		if err != nil {
			return Report{}, err
		}
		logging.Infof("using discovered ids %v", ids)
		opts.IDs = ids
	}

	points := make([]Point, 0, len(opts.IDs))
	for _, id := range opts.IDs {
		nxt, err := buildPoint(opts, id)
		if err != nil {
			return Report{}, err
		}
		points = append(points, nxt)
	}
	return Report{ReportOptions: opts, Points: points}, nil
}

func buildPoint(opts ReportOptions, id int) (Point, error) {
	est, err := LoadEstimate(opts.Dir, opts.Group, id, opts.Baseline, opts.Statistic)
	if err != nil {
		return Point{}, err
	}
	ret := Point{ID: id, X: float64(id), Raw: *est.PointEstimate}
	if x, ok := opts.XValues[id]; ok {
		ret.X = x
	}

	if !opts.IsRatio() {
		ret.Value = *est.PointEstimate / opts.Divisor
		ret.Lower = est.ConfidenceInterval.LowerBound / opts.Divisor
		ret.Upper = est.ConfidenceInterval.UpperBound / opts.Divisor
	} else {
		cmp, err := LoadEstimate(opts.Dir, opts.Group, id, opts.Compare, opts.Statistic)
		if err != nil {
			return Point{}, err
		}
		if *cmp.PointEstimate == 0 {
			err = fmt.Errorf("%w: instance %v baseline %q", ErrZeroBaseline, id, opts.Compare)
			logging.Error(err)
			return Point{}, err
		}
		ret.Value = *est.PointEstimate / *cmp.PointEstimate
		ret.Lower = est.ConfidenceInterval.LowerBound / cmp.ConfidenceInterval.UpperBound
		ret.Upper = est.ConfidenceInterval.UpperBound / cmp.ConfidenceInterval.LowerBound
	}
	if ret.Lower > ret.Upper { // negative divisor
		ret.Lower, ret.Upper = ret.Upper, ret.Lower
	}
	return ret, nil
}
