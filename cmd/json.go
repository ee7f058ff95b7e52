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

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clearframe/clearframe/loader"
)

var jsonCmdEncoding string

func init() {
	rootCmd.AddCommand(jsonCmd)

	jsonCmd.Flags().StringVar(&jsonCmdEncoding, "encoding", "utf-8", "text encoding of the JSON file")
}

var jsonCmd = &cobra.Command{
	Use:   "json [flags] FILE",
	Short: "Load a JSON file and print the decoded document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.ReadJSON(args[0], jsonCmdEncoding)
		if err != nil {
			log.Fatal().Err(err).Str("File", args[0]).Msg("could not load JSON")
		}

		log.Info().Str("File", args[0]).Msg("JSON data loaded successfully")

		pretty, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not render document")
		}
		fmt.Println(string(pretty))
	},
}
