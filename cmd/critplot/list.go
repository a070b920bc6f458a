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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcrain/critplot/parse"
)

func newIDsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "list the benchmark instances of the group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			ids, err := parse.DiscoverIDs(rc.Dir, rc.Group)
			if err != nil {
				return err
			}
			for _, nxt := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), nxt)
			}
			return nil
		},
	}
}

func newBaselinesCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "baselines <id>",
		Short: "list the saved baselines of a benchmark instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid instance id %q: %w", args[0], err)
			}
			rc, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			baselines, err := parse.DiscoverBaselines(rc.Dir, rc.Group, id)
			if err != nil {
				return err
			}
			for _, nxt := range baselines {
				fmt.Fprintln(cmd.OutOrStdout(), nxt)
			}
			return nil
		},
	}
}

func newConfigCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			buf, err := rc.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		},
	}
	addReportFlags(cmd.Flags())
	return cmd
}
