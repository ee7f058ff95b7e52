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
	"os"

	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clearframe/clearframe/cleaner"
	"github.com/clearframe/clearframe/loader"
)

var (
	cleanCmdTimeColumn string
	cleanCmdHint       string
	cleanCmdDayFirst   bool
	cleanCmdDelimiter  string
	cleanCmdOutput     string
)

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&cleanCmdTimeColumn, "time-column", "", "name of the time column; detected when omitted")
	cleanCmd.Flags().StringVar(&cleanCmdHint, "hint", "", "extra column name recognized as a time column")
	cleanCmd.Flags().BoolVar(&cleanCmdDayFirst, "day-first", false, "read ambiguous dates like 03/04/2024 as day first")
	cleanCmd.Flags().StringVar(&cleanCmdDelimiter, "delimiter", ",", "field delimiter for delimited text files")
	cleanCmd.Flags().StringVarP(&cleanCmdOutput, "output", "o", "", "write the cleaned table as CSV to this file")
}

var cleanCmd = &cobra.Command{
	Use:   "clean [flags] FILE",
	Short: "Normalize a tabular file into a time-indexed table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		c, err := cleaner.New(viper.GetString("timezone"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create cleaner")
		}

		df, err := loader.ReadTable(ctx, args[0], delimiterRune(cleanCmdDelimiter))
		if err != nil {
			log.Fatal().Err(err).Str("File", args[0]).Msg("no table produced")
		}

		frame, inference := c.Clean(ctx, df, cleaner.CleanOptions{
			TimeColumn: cleanCmdTimeColumn,
			Hint:       cleanCmdHint,
			DayFirst:   cleanCmdDayFirst,
		})

		if inference.Inferred {
			fmt.Printf("Frequency: %s\n", inference.Frequency)
		} else {
			fmt.Printf("Frequency: %s (default; %s)\n", inference.Frequency, inference.Reason)
		}

		if cleanCmdOutput == "" {
			fmt.Println(renderTable(frame.Data))
			return
		}

		fh, err := os.Create(cleanCmdOutput)
		if err != nil {
			log.Fatal().Err(err).Str("File", cleanCmdOutput).Msg("could not create output file")
		}
		defer fh.Close()

		if err := exports.ExportToCSV(ctx, fh, frame.Data); err != nil {
			log.Fatal().Err(err).Str("File", cleanCmdOutput).Msg("could not write CSV")
		}
		fmt.Printf("Wrote %d rows to %s\n", frame.Data.NRows(), cleanCmdOutput)
	},
}

func delimiterRune(s string) rune {
	if s == "" {
		return ','
	}
	return []rune(s)[0]
}
