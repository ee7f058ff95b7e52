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
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// valueReplacements are applied in order to every textual cell before
// numeric coercion. The literal "." replacement also mangles legitimate
// decimals ("3.14" becomes "3NaN14"); kept for compatibility with the
// established cleaning behavior.
// TODO: treat "." as missing only when it is the entire cell
var valueReplacements = [][2]string{
	{"#DIV/0!", "NaN"},
	{".", "NaN"},
	{"%", ""},
	{",", ""},
	{"$", ""},
}

// CleanValues coerces every textual column to numbers: spreadsheet error
// tokens, percent signs, thousands separators and currency symbols are
// stripped and the remainder parsed as a float. Cells that still fail to
// parse become missing. Columns that are already numeric, and timestamp
// columns, are left untouched.
func (c *Cleaner) CleanValues(ctx context.Context, df *dataframe.DataFrame) *dataframe.DataFrame {
	return c.cleanValuesExcept(ctx, df, "")
}

// cleanValuesExcept is CleanValues with a protected column, so the pipeline
// can normalize values without destroying the detected time column
func (c *Cleaner) cleanValuesExcept(_ context.Context, df *dataframe.DataFrame, skip string) *dataframe.DataFrame {
	series := make([]dataframe.Series, 0, len(df.Series))

	for _, s := range df.Series {
		switch s.(type) {
		case *dataframe.SeriesFloat64, *dataframe.SeriesInt64, *dataframe.SeriesTime:
			series = append(series, s.Copy())
		default:
			if skip != "" && s.Name() == skip {
				series = append(series, s.Copy())
				continue
			}
			series = append(series, normalizeSeries(s))
		}
	}

	return dataframe.NewDataFrame(series...)
}

func normalizeSeries(s dataframe.Series) *dataframe.SeriesFloat64 {
	n := s.NRows()
	out := dataframe.NewSeriesFloat64(s.Name(), &dataframe.SeriesInit{Capacity: n})

	for row := 0; row < n; row++ {
		val := s.Value(row)
		if val == nil {
			out.Append(math.NaN())
			continue
		}

		cell := fmt.Sprintf("%v", val)
		for _, repl := range valueReplacements {
			cell = strings.ReplaceAll(cell, repl[0], repl[1])
		}

		// strconv accepts the literal "NaN" produced by the error-token
		// replacements, which parses to a missing value as intended
		parsed, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			out.Append(math.NaN())
			continue
		}
		out.Append(parsed)
	}

	return out
}
