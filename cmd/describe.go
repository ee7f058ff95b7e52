// Copyright 2024-2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"math"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/clearframe/clearframe/cleaner"
	"github.com/clearframe/clearframe/loader"

	"github.com/olekukonko/tablewriter"
)

var (
	describeCmdTimeColumn string
	describeCmdDayFirst   bool
	describeCmdDelimiter  string
)

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVar(&describeCmdTimeColumn, "time-column", "", "name of the time column; detected when omitted")
	describeCmd.Flags().BoolVar(&describeCmdDayFirst, "day-first", false, "read ambiguous dates like 03/04/2024 as day first")
	describeCmd.Flags().StringVar(&describeCmdDelimiter, "delimiter", ",", "field delimiter for delimited text files")
}

var describeCmd = &cobra.Command{
	Use:   "describe [flags] FILE",
	Short: "Summarize the numeric columns of a cleaned table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		c, err := cleaner.New(viper.GetString("timezone"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create cleaner")
		}

		df, err := loader.ReadTable(ctx, args[0], delimiterRune(describeCmdDelimiter))
		if err != nil {
			log.Fatal().Err(err).Str("File", args[0]).Msg("no table produced")
		}

		frame, inference := c.Clean(ctx, df, cleaner.CleanOptions{
			TimeColumn: describeCmdTimeColumn,
			DayFirst:   describeCmdDayFirst,
		})

		fmt.Printf("Rows: %d\nFrequency: %s\n\n", frame.Data.NRows(), inference.Frequency)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Column", "Count", "Mean", "Std", "Min", "Max"})
		table.SetBorder(false)

		for _, s := range frame.Data.Series {
			col, ok := s.(*dataframe.SeriesFloat64)
			if !ok {
				continue
			}

			vals := make([]float64, 0, col.NRows())
			for row := 0; row < col.NRows(); row++ {
				if v, ok := col.Value(row).(float64); ok && !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}

			if len(vals) == 0 {
				table.Append([]string{col.Name(), "0", "", "", "", ""})
				continue
			}

			table.Append([]string{
				col.Name(),
				fmt.Sprintf("%d", len(vals)),
				fmt.Sprintf("%.4f", stat.Mean(vals, nil)),
				fmt.Sprintf("%.4f", stat.StdDev(vals, nil)),
				fmt.Sprintf("%.4f", floats.Min(vals)),
				fmt.Sprintf("%.4f", floats.Max(vals)),
			})
		}

		table.Render()
	},
}
