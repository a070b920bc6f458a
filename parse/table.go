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
	"strconv"
	"strings"

	"github.com/tcrain/critplot/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Header struct {
	name   string
	minMax bool // the column is split in lo, est, hi
}

func NewHeader(name string, minMax bool) Header {
	return Header{
		name:   name,
		minMax: minMax,
	}
}

// PrintTable writes a latex table row by row.
type PrintTable struct {
	headers []Header
	writer  io.Writer
	n       int
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"_", `\_`,
	"%", `\%`,
	"&", `\&`,
	"#", `\#`,
	"$", `\$`,
	"{", `\{`,
	"}", `\}`,
)

func latexEscape(str string) string {
	return latexEscaper.Replace(str)
}

// latexLabel keeps letters and digits of str, anything else becomes '-'.
func latexLabel(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, str)
}

func InitTable(leftHeader string, headers []Header, writer io.Writer) (ret *PrintTable, n int, err error) {
	defer func() {
		n = ret.n
	}()

	ret = &PrintTable{
		headers: headers,
		writer:  writer,
	}
	var hasMinMax bool
	if err = ret.writeStr("\\begin{table}\n\\centering\n\\begin{tabular}{ l |"); err != nil {
		return
	}
	var str string
	for _, nxt := range headers {
		switch nxt.minMax {
		case true:
			str = " | c  c  c"
			hasMinMax = true
		case false:
			str = " | c"
		}
		if err = ret.writeStr(str); err != nil {
			return
		}
	}
	if err = ret.writeStr(fmt.Sprintf(" }\n%v", latexEscape(leftHeader))); err != nil {
		return
	}

	for i, nxt := range headers {
		switch nxt.minMax {
		case true:
			var col string
			if i < len(headers)-1 {
				col = "|"
			}
			str = fmt.Sprintf(" & \\multicolumn{3}{c%v}{%v}", col, latexEscape(nxt.name))
		case false:
			switch hasMinMax {
			case true:
				str = fmt.Sprintf(" & \\multirow{2}{*}{%v}", latexEscape(nxt.name))
			case false:
				str = fmt.Sprintf(" & %v", latexEscape(nxt.name))
			}
		}
		if err = ret.writeStr(str); err != nil {
			return
		}
	}
	if err = ret.writeStr(" \\\\\n"); err != nil {
		return
	}
	if hasMinMax {
		for _, nxt := range headers {
			switch nxt.minMax {
			case true:
				str = " & lo & est & hi"
			case false:
				str = " &"
			}
			if err = ret.writeStr(str); err != nil {
				return
			}
		}
		if err = ret.writeStr(" \\\\\n"); err != nil {
			return
		}
	}
	err = ret.AddHLine()
	return
}

func (pt *PrintTable) writeStr(str string) error {
	n, err := pt.writer.Write([]byte(str))
	pt.n += n
	return err
}

func roundFloat(nxt interface{}, roundTo int) interface{} {
	ret := nxt
	switch v := nxt.(type) {
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ret = utils.RoundFloat(f, roundTo)
		}
	case float32:
		ret = utils.RoundFloat(float64(v), roundTo)
	case float64:
		ret = utils.RoundFloat(v, roundTo)
	}
	return ret
}

// AddRow writes one row, values has an entry per header, only the middle
// value is used for headers without minMax.
func (pt *PrintTable) AddRow(title interface{}, values [][3]interface{}, roundTo int) (n int, err error) {
	defer func() {
		n = pt.n
	}()
	pt.n = 0

	if len(values) != len(pt.headers) {
		panic("must have same number of rows as headers")
	}
	if err = pt.writeStr(latexEscape(fmt.Sprintf("%v", title))); err != nil {
		return
	}

	for i, nxt := range values {
		for j := 0; j < 3; j++ {
			nxt[j] = roundFloat(nxt[j], roundTo)
		}
		var str string
		switch pt.headers[i].minMax {
		case true:
			str = fmt.Sprintf(" & %v & %v & %v", nxt[0], nxt[1], nxt[2])
		case false:
			str = fmt.Sprintf(" & %v", nxt[1])
		}
		if err = pt.writeStr(str); err != nil {
			return
		}
	}
	err = pt.writeStr(" \\\\ \n")
	return
}

func (pt *PrintTable) AddHLine() error {
	return pt.writeStr("\\hline\n")
}

func (pt *PrintTable) Done(caption string) (n int, err error) {
	pt.n = 0
	err = pt.writeStr(fmt.Sprintf("\\end{tabular}\n"+
		"\\caption{%v}\\label{tab:%v}\n"+
		"\\end{table}\n\n",
		latexEscape(caption), latexLabel(caption)))
	return pt.n, err
}

// WriteLatex writes the report as a table with a lo, est, hi column group
// and a final row with the lowest, geometric mean and highest value, the row
// is left out when a value is not positive.
func WriteLatex(writer io.Writer, rep Report, fo FormatOptions) error {
	var out bytes.Buffer
	tab, _, err := InitTable(rep.XLabel(), []Header{NewHeader(rep.YLabel(), true)}, &out)
	if err != nil {
		return err
	}
	values := make([]float64, 0, len(rep.Points))
	for _, nxt := range rep.Points {
		values = append(values, nxt.Value)
		if _, err = tab.AddRow(utils.FormatCoordinate(nxt.X),
			[][3]interface{}{{nxt.Lower, nxt.Value, nxt.Upper}}, fo.Round); err != nil {
			return err
		}
	}
	// the geometric mean is only defined for positive values
	if len(values) > 0 && floats.Min(values) > 0 {
		if err = tab.AddHLine(); err != nil {
			return err
		}
		if _, err = tab.AddRow("geomean",
			[][3]interface{}{{floats.Min(values), stat.GeometricMean(values, nil), floats.Max(values)}},
			fo.Round); err != nil {
			return err
		}
	}
	if _, err = tab.Done(fmt.Sprintf("%v %v", rep.Group, rep.YLabel())); err != nil {
		return err
	}
	_, err = writer.Write(out.Bytes())
	return err
}
