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
	"fmt"
	"os"

	"github.com/clearframe/clearframe/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Timezone applied to every table; blank strips timezone awareness
	viper.BindEnv("timezone", "CLEARFRAME_TZ")
	rootCmd.PersistentFlags().String("timezone", "", "IANA timezone applied to time indexes; blank strips awareness")
	viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))

	// Logging configuration
	viper.BindEnv("log.level", "CLEARFRAME_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "CLEARFRAME_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "CLEARFRAME_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Use human friendly console log output")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

var rootCmd = &cobra.Command{
	Use:     "clearframe",
	Version: common.CurrentVersion.String(),
	Short:   "Clearframe normalizes tabular files into time-indexed tables",
	Long: `Clearframe ingests delimited text, spreadsheet and JSON files and
normalizes them into time-indexed tables: the time column is detected and
promoted to a timestamp index, a timezone policy is applied, the sampling
frequency is inferred and rows from the current incomplete period are
removed so aggregates never see partial data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
