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
Basic logging functionality.
*/
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tcrain/critplot/config"
)

// where FMT logging is written
var fmtOutput io.Writer = os.Stderr

// setup the logging flags
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
}

// SetPlain switches between the go logger and plain messages on stderr.
func SetPlain(plain bool) {
	if plain {
		config.LoggingType = config.FMT
	} else {
		config.LoggingType = config.GOLOG
	}
}

// SetVerbose enables info and warning messages.
func SetVerbose(verbose bool) {
	if verbose {
		config.LoggingFmtLevel = config.LOGINFO
	} else {
		config.LoggingFmtLevel = config.LOGERROR
	}
}

func output(prefix, msg string) {
	switch config.LoggingType {
	case config.GOLOG:
		if err := log.Output(3, prefix+msg); err != nil {
			panic(err)
		}
	case config.FMT:
		_, _ = fmt.Fprintln(fmtOutput, prefix+msg)
	default:
		panic("Invalid logging type")
	}
}

// Error logs an error args.
func Error(args ...interface{}) {
	if config.LoggingFmtLevel >= config.LOGERROR {
		output("ERR: ", fmt.Sprint(args...))
	}
}

// Warningf logs a warning args using format.
func Warningf(format string, args ...interface{}) {
	if config.LoggingFmtLevel >= config.LOGWARNING {
		output("WARN: ", fmt.Sprintf(format, args...))
	}
}

// Infof logs an info message args using format.
func Infof(format string, args ...interface{}) {
	if config.LoggingFmtLevel >= config.LOGINFO {
		output("INFO: ", fmt.Sprintf(format, args...))
	}
}

// Info logs an info message args.
func Info(args ...interface{}) {
	if config.LoggingFmtLevel >= config.LOGINFO {
		output("INFO: ", fmt.Sprint(args...))
	}
}
