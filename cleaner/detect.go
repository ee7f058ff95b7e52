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

package cleaner

import (
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// timeColumns is the fixed vocabulary of recognized time column names;
// matching is case-insensitive
var timeColumns = []string{
	"date", "dt", "hour", "time", "day", "month", "year", "week",
	"timestamp", "block_timestamp", "ds", "period", "date_time",
	"trunc_date", "quarter", "block_time", "block_date", "date(utc)",
}

// TimeColumnNames returns a copy of the detection vocabulary
func TimeColumnNames() []string {
	names := make([]string, len(timeColumns))
	copy(names, timeColumns)
	return names
}

// TimeColumn picks the column most likely to represent time. The optional
// hint is lowercased and merged into a per-call copy of the vocabulary, so
// the shared vocabulary is never mutated. The second return value is false
// when no column matches; callers must treat that as a common outcome, not
// an error.
func (c *Cleaner) TimeColumn(df *dataframe.DataFrame, hint string) (string, bool) {
	vocab := make(map[string]bool, len(timeColumns)+1)
	for _, name := range timeColumns {
		vocab[name] = true
	}
	if hint != "" {
		vocab[strings.ToLower(hint)] = true
	}

	return matchTimeColumn(df, vocab)
}

// matchTimeColumn scans columns in their existing order and returns the
// first whose lowercased name is in vocab
func matchTimeColumn(df *dataframe.DataFrame, vocab map[string]bool) (string, bool) {
	for _, series := range df.Series {
		name := series.Name()
		if vocab[strings.ToLower(strings.TrimSpace(name))] {
			return name, true
		}
	}

	return "", false
}
