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

/*
Package parse loads criterion benchmark estimates and turns them into plot data.
*/
package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tcrain/critplot/config"
	"github.com/tcrain/critplot/logging"
)

// Statistic names one of the estimates criterion computes for a benchmark.
type Statistic string

const (
	Mean         Statistic = "mean"
	Median       Statistic = "median"
	MedianAbsDev Statistic = "median_abs_dev"
	Slope        Statistic = "slope"
	StdDev       Statistic = "std_dev"
)

var Statistics = []Statistic{Mean, Median, MedianAbsDev, Slope, StdDev}

func ParseStatistic(name string) (Statistic, error) {
	for _, nxt := range Statistics {
		if string(nxt) == name {
			return nxt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatistic, name)
}

type ConfidenceInterval struct {
	ConfidenceLevel float64 `json:"confidence_level"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}

// Estimate is a single statistic, PointEstimate is nil when the file does not have one.
type Estimate struct {
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	PointEstimate      *float64           `json:"point_estimate"`
	StandardError      float64            `json:"standard_error"`
}

// Estimates is the content of a criterion estimates.json file.
// Slope is null in the file when the benchmark used flat sampling.
type Estimates struct {
	Mean         *Estimate `json:"mean"`
	Median       *Estimate `json:"median"`
	MedianAbsDev *Estimate `json:"median_abs_dev"`
	Slope        *Estimate `json:"slope"`
	StdDev       *Estimate `json:"std_dev"`
}

// decodeFields decodes the JSON object in data into the values of fields.
// Keys must match exactly, a key that only matches ignoring case is not used.
func decodeFields(data []byte, fields map[string]interface{}) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, dst := range fields {
		val, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("%v: %w", key, err)
		}
	}
	return nil
}

func (ci *ConfidenceInterval) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]interface{}{
		"confidence_level": &ci.ConfidenceLevel,
		"lower_bound":      &ci.LowerBound,
		"upper_bound":      &ci.UpperBound,
	})
}

func (e *Estimate) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]interface{}{
		"confidence_interval": &e.ConfidenceInterval,
		"point_estimate":      &e.PointEstimate,
		"standard_error":      &e.StandardError,
	})
}

func (e *Estimates) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]interface{}{
		string(Mean):         &e.Mean,
		string(Median):       &e.Median,
		string(MedianAbsDev): &e.MedianAbsDev,
		string(Slope):        &e.Slope,
		string(StdDev):       &e.StdDev,
	})
}

// Get returns the estimate for stat, failing if it or its point estimate is missing.
func (e Estimates) Get(stat Statistic) (Estimate, error) {
	var ret *Estimate
	switch stat {
	case Mean:
		ret = e.Mean
	case Median:
		ret = e.Median
	case MedianAbsDev:
		ret = e.MedianAbsDev
	case Slope:
		ret = e.Slope
	case StdDev:
		ret = e.StdDev
	default:
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownStatistic, stat)
	}
	if ret == nil {
		return Estimate{}, fmt.Errorf("%w: %v", ErrMissingStatistic, stat)
	}
	if ret.PointEstimate == nil {
		return Estimate{}, fmt.Errorf("%w: %v", ErrMissingPointEstimate, stat)
	}
	return *ret, nil
}

// EstimatesPath is where criterion stores the estimates of the saved baseline
// for benchmark id of group: {dir}/{group}/{id}/{baseline}/estimates.json
func EstimatesPath(dir, group string, id int, baseline string) string {
	return filepath.Join(dir, group, strconv.Itoa(id), baseline, config.EstimatesFileName)
}

// LoadEstimates reads and decodes an estimates.json file.
// The file must hold a single JSON object.
func LoadEstimates(filePath string) (ret Estimates, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		logging.Error(err)
		return
	}
	defer func() { _ = file.Close() }()

	dec := json.NewDecoder(file)
	if err = dec.Decode(&ret); err != nil {
		err = fmt.Errorf("decoding %v: %w", filePath, err)
		logging.Error(err)
		return
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		ret = Estimates{}
		err = fmt.Errorf("%w in %v", ErrTrailingData, filePath)
		logging.Error(err)
		return
	}
	logging.Infof("loaded %v", filePath)
	return
}

// LoadEstimate loads the given statistic of one benchmark instance.
func LoadEstimate(dir, group string, id int, baseline string, stat Statistic) (Estimate, error) {
	filePath := EstimatesPath(dir, group, id, baseline)
	est, err := LoadEstimates(filePath)
	if err != nil {
		return Estimate{}, err
	}
	ret, err := est.Get(stat)
	if err != nil {
		err = fmt.Errorf("%v: %w", filePath, err)
		logging.Error(err)
		return Estimate{}, err
	}
	return ret, nil
}
