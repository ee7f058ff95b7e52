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
	"math"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// renderTable prints an ASCII formatted table of the dataframe
func renderTable(df *dataframe.DataFrame) string {
	if df.NRows() == 0 {
		return "<NO DATA>"
	}

	tableCols := make([]string, 0, len(df.Series))
	for _, s := range df.Series {
		tableCols = append(tableCols, s.Name())
	}

	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Rows"
	if len(footer) > 1 {
		footer[1] = fmt.Sprintf("%d", df.NRows())
	}
	table.SetFooter(footer)
	table.SetBorder(false)

	n := df.NRows()
	for row := 0; row < n; row++ {
		line := make([]string, 0, len(df.Series))
		for _, col := range df.Series {
			line = append(line, formatCell(col.Value(row)))
		}
		table.Append(line)
	}

	table.Render()
	return s.String()
}

func formatCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "NaN"
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case float64:
		if math.IsNaN(v) {
			return "NaN"
		}
		return fmt.Sprintf("%.4f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
