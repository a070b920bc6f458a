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

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tcrain/critplot/config"
	"github.com/tcrain/critplot/logging"
	"github.com/tcrain/critplot/parse"
)

func addReportFlags(flags *pflag.FlagSet) {
	flags.String("compare", "", "report the ratio of baseline to this baseline")
	flags.IntSlice("ids", config.DefaultIDs, "instance ids in output order (ids: [] in the config file reports every instance found)")
	flags.String("statistic", config.DefaultStatistic, "mean, median, median_abs_dev, slope or std_dev")
	flags.Float64("divisor", config.DefaultDivisor, "the statistic is divided by this, ignored with --compare")
	flags.String("format", config.DefaultFormat, "one of pairs, tsv, latex, benchfmt or svg")
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.Int("round", config.DefaultRound, "decimal digits kept by the latex format")
}

func newReportCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "print the statistic of each benchmark instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v)
		},
	}
	addReportFlags(cmd.Flags())
	return cmd
}

func reportOptions(rc config.ReportConfig) (parse.ReportOptions, error) {
	stat, err := parse.ParseStatistic(rc.Statistic)
	if err != nil {
		return parse.ReportOptions{}, err
	}
	xValues, err := rc.XValueMap()
	if err != nil {
		return parse.ReportOptions{}, err
	}
	return parse.ReportOptions{
		Dir:       rc.Dir,
		Group:     rc.Group,
		Baseline:  rc.Baseline,
		Compare:   rc.Compare,
		IDs:       rc.IDs,
		Statistic: stat,
		Divisor:   rc.Divisor,
		XValues:   xValues,
	}, nil
}

func runReport(cmd *cobra.Command, v *viper.Viper) error {
	rc, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	opts, err := reportOptions(rc)
	if err != nil {
		logging.Error(err)
		return err
	}
	writer, err := parse.LookupFormat(rc.Format)
	if err != nil {
		logging.Error(err)
		return err
	}
	rep, err := parse.BuildReport(opts)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), rc.Output, func(out io.Writer) error {
		return writer(out, rep, parse.FormatOptions{Round: rc.Round})
	})
}

// writeOutput runs write on the output file, or on stdout if fileName is empty.
func writeOutput(stdout io.Writer, fileName string, write func(io.Writer) error) (err error) {
	if fileName == "" {
		return write(stdout)
	}
	file, err := os.Create(fileName)
	if err != nil {
		logging.Error(err)
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	if err = write(file); err != nil {
		logging.Error(err)
	}
	return err
}
