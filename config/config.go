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
General configuration settings and the default report values.
*/
package config

type Logtype int

const (
	GOLOG Logtype = iota // uses the default go logger
	FMT                  // prints logs to stderr using fmt package
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
)

var (
	// for logging, changed by the command line
	LoggingType     = GOLOG
	LoggingFmtLevel = LOGERROR
)

const (
	DefaultDir       = "target/criterion"       // where cargo bench leaves the criterion output
	DefaultGroup     = "exact"                  // benchmark group name
	DefaultBaseline  = "incremental alt-cost-2" // saved baseline to report
	DefaultStatistic = "mean"
	DefaultDivisor   = 1000000 // nanoseconds to milliseconds
	DefaultFormat    = "pairs"
	DefaultRound     = 3 // digits kept in latex tables

	EstimatesFileName = "estimates.json"
	ConfigFileName    = "critplot" // looked up as critplot.yaml in the working directory
	EnvPrefix         = "CRITPLOT"
)

// DefaultIDs are the public exact track instances used by the benchmark.
var DefaultIDs = []int{1, 3, 5, 7, 9, 11, 13, 15, 21, 23, 25, 31, 35, 41, 47}
