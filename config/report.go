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

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = fmt.Errorf("invalid configuration")

// ReportConfig is the resolved configuration of a report run.
// Values come from (highest first) flags, CRITPLOT_* environment variables,
// the yaml config file and the defaults in this package.
type ReportConfig struct {
	Dir       string `mapstructure:"dir" yaml:"dir" validate:"required"`
	Group     string `mapstructure:"group" yaml:"group" validate:"required"`
	Baseline  string `mapstructure:"baseline" yaml:"baseline" validate:"required"`
	Compare   string `mapstructure:"compare" yaml:"compare,omitempty" validate:"nefield=Baseline"`
	IDs       []int  `mapstructure:"ids" yaml:"ids" validate:"unique,dive,gte=0"`
	Statistic string `mapstructure:"statistic" yaml:"statistic" validate:"oneof=mean median median_abs_dev slope std_dev"`
	// Divisor scales value mode results, it is ignored when Compare is set.
	Divisor float64 `mapstructure:"divisor" yaml:"divisor" validate:"ne=0"`
	Format  string  `mapstructure:"format" yaml:"format" validate:"oneof=pairs tsv latex benchfmt svg"`
	Output  string  `mapstructure:"output" yaml:"output,omitempty"`
	Round   int     `mapstructure:"round" yaml:"round" validate:"gte=0,lte=15"`
	// XValues maps an instance id to the x coordinate printed for it.
	// Keys are kept as strings since viper flattens map keys.
	XValues map[string]float64 `mapstructure:"x_values" yaml:"x_values,omitempty"`
}

var validate = validator.New()

// NewViper returns a viper instance loaded with the report defaults that also
// reads CRITPLOT_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("group", DefaultGroup)
	v.SetDefault("baseline", DefaultBaseline)
	v.SetDefault("compare", "")
	v.SetDefault("ids", DefaultIDs)
	v.SetDefault("statistic", DefaultStatistic)
	v.SetDefault("divisor", DefaultDivisor)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("output", "")
	v.SetDefault("round", DefaultRound)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadReportConfig reads the config file into v and decodes the merged result.
// With an empty configFile, critplot.yaml is looked up in the working directory
// and is allowed to be missing.
func LoadReportConfig(v *viper.Viper, configFile string) (ReportConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return ReportConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var rc ReportConfig
	if err := v.Unmarshal(&rc); err != nil {
		return ReportConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := rc.Validate(); err != nil {
		return ReportConfig{}, err
	}
	return rc, nil
}

// Validate checks the field constraints and that every x_values key is an id.
func (rc ReportConfig) Validate() error {
	if err := validate.Struct(rc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := rc.XValueMap(); err != nil {
		return err
	}
	return nil
}

// XValueMap converts the x_values keys to instance ids.
func (rc ReportConfig) XValueMap() (map[int]float64, error) {
	if len(rc.XValues) == 0 {
		return nil, nil
	}
	ret := make(map[int]float64, len(rc.XValues))
	for k, x := range rc.XValues {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: x_values key %q is not an instance id", ErrInvalidConfig, k)
		}
		ret[id] = x
	}
	return ret, nil
}

// YAML renders the configuration in the config file format.
func (rc ReportConfig) YAML() ([]byte, error) {
	return yaml.Marshal(rc)
}
