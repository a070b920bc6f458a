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
critplot prints plot data from the estimates criterion saves for a benchmark group.

Without a sub command it runs report, with the defaults reading
target/criterion/exact/{id}/incremental alt-cost-2/estimates.json for each
instance and printing "(id, mean in ms) " pairs.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcrain/critplot/config"
	"github.com/tcrain/critplot/logging"
)

func newRootCommand() *cobra.Command {
	v := config.NewViper()
	report := newReportCommand(v)

	rootCmd := &cobra.Command{
		Use:          "critplot",
		Short:        "plot data from criterion benchmark results",
		SilenceUsage: true,
		RunE:         report.RunE,
	}
	addReportFlags(rootCmd.Flags())

	flags := rootCmd.PersistentFlags()
	flags.String("dir", config.DefaultDir, "criterion output folder")
	flags.String("group", config.DefaultGroup, "benchmark group")
	flags.String("baseline", config.DefaultBaseline, "saved baseline to report")
	flags.String("config", "", "yaml config file (default ./critplot.yaml if present)")
	flags.Bool("verbose", false, "log info messages")
	flags.Bool("plain-log", false, "log to stderr without time and file prefix")

	rootCmd.AddCommand(report, newIDsCommand(v), newBaselinesCommand(v), newConfigCommand(v))
	return rootCmd
}

// loadConfig merges the flags of the running command into v and loads the report configuration.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.ReportConfig, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logging.SetVerbose(verbose)
	plain, _ := cmd.Flags().GetBool("plain-log")
	logging.SetPlain(plain)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		logging.Error(err)
		return config.ReportConfig{}, err
	}
	configFile, _ := cmd.Flags().GetString("config")
	rc, err := config.LoadReportConfig(v, configFile)
	if err != nil {
		logging.Error(err)
		return rc, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logging.Info("Using config file: ", used)
	}
	return rc, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
