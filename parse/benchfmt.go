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
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/perf/benchfmt"
)

// benchName builds a go benchmark name, the first letter is upper case so
// readers accept the line and spaces become '_' since fields are space separated.
func benchName(group string, id int, baseline string) benchfmt.Name {
	if r, size := utf8.DecodeRuneInString(group); size > 0 {
		group = string(unicode.ToUpper(r)) + group[size:]
	}
	baseline = strings.Join(strings.Fields(baseline), "_")
	return benchfmt.Name(fmt.Sprintf("%v/id=%v/baseline=%v", group, id, baseline))
}

// WriteBenchfmt writes the report in the go benchmark format so it can be
// compared with benchstat. Value mode writes the unscaled statistic in ns/op,
// ratio mode writes the ratio.
func WriteBenchfmt(writer io.Writer, rep Report, _ FormatOptions) error {
	var out bytes.Buffer
	bw := benchfmt.NewWriter(&out)
	baseline := rep.Baseline
	if rep.IsRatio() {
		baseline = fmt.Sprintf("%v/compare=%v", rep.Baseline, strings.Join(strings.Fields(rep.Compare), "_"))
	}
	cfg := []benchfmt.Config{
		{Key: "group", Value: []byte(rep.Group), File: true},
		{Key: "statistic", Value: []byte(rep.Statistic), File: true},
	}
	for _, nxt := range rep.Points {
		var val benchfmt.Value
		switch rep.IsRatio() {
		case true:
			val = benchfmt.Value{Value: nxt.Value, Unit: "ratio"}
		case false:
			val = benchfmt.Value{Value: nxt.Raw, Unit: "ns/op"}
		}
		res := &benchfmt.Result{
			Config: cfg,
			Name:   benchName(rep.Group, nxt.ID, baseline),
			Iters:  1,
			Values: []benchfmt.Value{val},
		}
		if err := bw.Write(res); err != nil {
			return err
		}
	}
	_, err := writer.Write(out.Bytes())
	return err
}
