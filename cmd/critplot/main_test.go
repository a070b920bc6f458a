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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcrain/critplot/config"
	"github.com/tcrain/critplot/parse"
)

func writeEstimates(t *testing.T, dir string, id int, baseline string, mean float64) {
	t.Helper()
	filePath := parse.EstimatesPath(dir, config.DefaultGroup, id, baseline)
	require.Nil(t, os.MkdirAll(filepath.Dir(filePath), 0755))
	content := fmt.Sprintf(`{"mean": {"confidence_interval": {"confidence_level": 0.95, "lower_bound": %v, "upper_bound": %v},`+
		` "point_estimate": %v, "standard_error": 1.0}, "slope": null}`, mean-1, mean+1, mean)
	require.Nil(t, os.WriteFile(filePath, []byte(content), 0644))
}

// execute runs critplot from an empty working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultReport(t *testing.T) {
	dir := t.TempDir()
	var expected strings.Builder
	for i, id := range config.DefaultIDs {
		writeEstimates(t, dir, id, config.DefaultBaseline, float64(i+1)*1000000)
		expected.WriteString(fmt.Sprintf("(%v, %v.0) ", id, i+1))
	}

	out, err := execute(t, "--dir", dir)
	require.Nil(t, err)
	assert.Equal(t, expected.String(), out)

	out, err = execute(t, "report", "--dir", dir)
	require.Nil(t, err)
	assert.Equal(t, expected.String(), out)
}

func TestReportFlags(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, 3, "none", 5000)
	writeEstimates(t, dir, 1, "none", 2500)

	out, err := execute(t, "--dir", dir, "--baseline", "none", "--ids", "3,1", "--divisor", "1000")
	require.Nil(t, err)
	assert.Equal(t, "(3, 5.0) (1, 2.5) ", out)

	out, err = execute(t, "report", "--dir", dir, "--baseline", "none", "--ids", "1", "--format", "tsv")
	require.Nil(t, err)
	assert.Equal(t, "# instance\tlower\tmean\tupper\n1\t0.002499\t0.0025\t0.002501\t\n", out)

	out, err = execute(t, "--plain-log", "--verbose", "--dir", dir, "--baseline", "none", "--ids", "1", "--divisor", "1000")
	require.Nil(t, err)
	assert.Equal(t, "(1, 2.5) ", out)
	assert.Equal(t, config.FMT, config.LoggingType)

	_, err = execute(t, "--dir", dir, "--baseline", "none", "--ids", "1")
	require.Nil(t, err)
	assert.Equal(t, config.GOLOG, config.LoggingType)
}

func TestReportEmptyIDs(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, 3, "none", 5000)
	writeEstimates(t, dir, 1, "none", 2500)

	// an empty flag value is not a list of ids
	_, err := execute(t, "--dir", dir, "--baseline", "none", "--ids=")
	assert.NotNil(t, err)

	configFile := filepath.Join(t.TempDir(), "all.yaml")
	require.Nil(t, os.WriteFile(configFile, []byte("ids: []\n"), 0644))
	out, err := execute(t, "--config", configFile, "--dir", dir, "--baseline", "none", "--divisor", "1000")
	require.Nil(t, err)
	assert.Equal(t, "(1, 2.5) (3, 5.0) ", out)
}

func TestReportMissing(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, 1, config.DefaultBaseline, 2000000)

	out, err := execute(t, "--dir", dir, "--ids", "1,3")
	assert.NotNil(t, err)
	assert.Empty(t, out)

	_, err = execute(t, "--dir", dir, "--ids", "1", "--statistic", "slope")
	assert.ErrorIs(t, err, parse.ErrMissingStatistic)

	_, err = execute(t, "--dir", dir, "--ids", "1", "--divisor", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "--dir", dir, "--ids", "1", "--format", "csv")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestReportConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, 1, "incremental", 3000)
	writeEstimates(t, dir, 1, "none", 1500)
	writeEstimates(t, dir, 3, "incremental", 1000)
	writeEstimates(t, dir, 3, "none", 4000)

	configFile := filepath.Join(t.TempDir(), "ratio.yaml")
	content := fmt.Sprintf(`dir: %q
baseline: incremental
compare: none
ids: [1, 3]
x_values:
  "1": 10
  "3": 20
`, dir)
	require.Nil(t, os.WriteFile(configFile, []byte(content), 0644))

	out, err := execute(t, "--config", configFile)
	require.Nil(t, err)
	assert.Equal(t, "(10, 2.0) (20, 0.25) ", out)

	// flags override the file
	out, err = execute(t, "--config", configFile, "--ids", "3")
	require.Nil(t, err)
	assert.Equal(t, "(20, 0.25) ", out)
}

func TestReportOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeEstimates(t, dir, 1, config.DefaultBaseline, 2000000)
	outFile := filepath.Join(t.TempDir(), "exact.svg")

	out, err := execute(t, "--dir", dir, "--ids", "1", "--format", "svg", "-o", outFile)
	require.Nil(t, err)
	assert.Empty(t, out)

	buf, err := os.ReadFile(outFile)
	require.Nil(t, err)
	assert.Contains(t, string(buf), "<svg")
}

func TestIDsCommand(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []int{21, 3, 1} {
		writeEstimates(t, dir, id, "none", 1000)
	}
	out, err := execute(t, "ids", "--dir", dir)
	require.Nil(t, err)
	assert.Equal(t, "1\n3\n21\n", out)
}

func TestBaselinesCommand(t *testing.T) {
	dir := t.TempDir()
	for _, nxt := range []string{"none", "incremental alt-cost-2", "incremental"} {
		writeEstimates(t, dir, 7, nxt, 1000)
	}
	out, err := execute(t, "baselines", "7", "--dir", dir)
	require.Nil(t, err)
	assert.Equal(t, "incremental\nincremental alt-cost-2\nnone\n", out)

	_, err = execute(t, "baselines", "seven", "--dir", dir)
	assert.NotNil(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--group", "heuristic", "--divisor", "1000")
	require.Nil(t, err)
	assert.Contains(t, out, "group: heuristic\n")
	assert.Contains(t, out, "divisor: 1000\n")
	assert.Contains(t, out, "baseline: incremental alt-cost-2\n")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
