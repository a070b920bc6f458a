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
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// pointErrors plots the points with their confidence interval as y error bars.
type pointErrors []Point

var _ plotter.XYer = pointErrors(nil)
var _ plotter.YErrorer = pointErrors(nil)

func (pe pointErrors) Len() int {
	return len(pe)
}

func (pe pointErrors) XY(i int) (float64, float64) {
	return pe[i].X, pe[i].Value
}

func (pe pointErrors) YError(i int) (float64, float64) {
	return pe[i].Value - pe[i].Lower, pe[i].Upper - pe[i].Value
}

// WriteSVG renders the report as a line plot with error bars.
func WriteSVG(writer io.Writer, rep Report, _ FormatOptions) error {
	p := plot.New()
	p.Title.Text = rep.Group
	p.X.Label.Text = rep.XLabel()
	p.Y.Label.Text = rep.YLabel()
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	data := pointErrors(rep.Points)
	line, points, err := plotter.NewLinePoints(data)
	if err != nil {
		return err
	}
	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return err
	}
	p.Add(line, points, bars)
	legend := rep.Baseline
	if rep.IsRatio() {
		legend += " / " + rep.Compare
	}
	p.Legend.Add(legend, line, points)

	wt, err := p.WriterTo(plotWidth, plotHeight, "svg")
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if _, err = wt.WriteTo(&out); err != nil {
		return err
	}
	_, err = writer.Write(out.Bytes())
	return err
}
