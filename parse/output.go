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
	"sort"

	"github.com/tcrain/critplot/utils"
)

type FormatOptions struct {
	Round int // digits kept by the latex format
}

// Writer outputs a report in one format. Writers build the whole output
// before writing so a failure does not leave half a report behind.
type Writer func(writer io.Writer, rep Report, fo FormatOptions) error

var Formats = map[string]Writer{
	"pairs":    WritePairs,
	"tsv":      WriteTSV,
	"latex":    WriteLatex,
	"benchfmt": WriteBenchfmt,
	"svg":      WriteSVG,
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	ret := make([]string, 0, len(Formats))
	for nxt := range Formats {
		ret = append(ret, nxt)
	}
	sort.Strings(ret)
	return ret
}

func LookupFormat(name string) (Writer, error) {
	if w, ok := Formats[name]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q, expected one of %v", ErrUnknownFormat, name, FormatNames())
}

// WritePairs writes "(x, value) " for each point, every pair is followed by a
// single space and there is no newline. This is the coordinate list format
// pgfplots reads.
func WritePairs(writer io.Writer, rep Report, _ FormatOptions) error {
	var out bytes.Buffer
	for _, nxt := range rep.Points {
		out.WriteString(fmt.Sprintf("(%v, %v) ", utils.FormatCoordinate(nxt.X), utils.FormatFloat(nxt.Value)))
	}
	_, err := writer.Write(out.Bytes())
	return err
}

// WriteTSV writes a gnuplot data file, a commented header then one
// tab separated x, lower, value, upper line per point.
func WriteTSV(writer io.Writer, rep Report, _ FormatOptions) error {
	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("# %v\t%v\t%v\t%v\n", rep.XLabel(), "lower", rep.Statistic, "upper"))
	for _, nxt := range rep.Points {
		out.WriteString(fmt.Sprintf("%v\t%v\t%v\t%v\t\n", utils.FormatCoordinate(nxt.X),
			utils.FormatFloat(nxt.Lower), utils.FormatFloat(nxt.Value), utils.FormatFloat(nxt.Upper)))
	}
	_, err := writer.Write(out.Bytes())
	return err
}
