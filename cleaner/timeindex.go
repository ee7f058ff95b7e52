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
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"

	"github.com/clearframe/clearframe/common"
	"github.com/clearframe/clearframe/period"
)

// ToTimeIndex resolves the table's time column (explicitly via timeCol, or
// by detection when timeCol is empty), parses it into a timestamp index and
// promotes it to column 0 under the name common.DateIdx, removing the
// original column. The timezone policy is applied before the sampling
// frequency is inferred. Cell-level parse failures become missing values;
// the function never fails — a table with no time column passes through
// unchanged with a Daily default inference.
func (c *Cleaner) ToTimeIndex(ctx context.Context, df *dataframe.DataFrame, timeCol string, dayFirst bool) (*Frame, period.Inference) {
	col := timeCol
	if col == "" {
		var ok bool
		if col, ok = c.TimeColumn(df, ""); !ok {
			log.Debug().Msg("no time column detected; table left unchanged")
			return &Frame{Data: df, Kind: IndexNone}, period.Default("no time column detected")
		}
	}

	colIdx, err := df.NameToColumn(col)
	if err != nil {
		log.Warn().Str("Column", col).Msg("requested time column not present; table left unchanged")
		return &Frame{Data: df, Kind: IndexNone}, period.Default("time column not present")
	}

	source := df.Series[colIdx]
	frame := &Frame{Kind: IndexTime}

	var index dataframe.Series
	switch strings.ToLower(strings.TrimSpace(col)) {
	case "year":
		// bare years keep only the calendar year, no month/day component
		index = parseYears(source)
		frame.Kind = IndexYear
	case "timestamp":
		// integer values are milliseconds since the Unix epoch
		index = parseEpochMillis(source)
	default:
		index, frame.TZ = parseTimestamps(source, dayFirst)
	}

	series := make([]dataframe.Series, 0, len(df.Series))
	series = append(series, index)
	for ii := range df.Series {
		if ii != colIdx {
			series = append(series, df.Series[ii].Copy())
		}
	}
	frame.Data = dataframe.NewDataFrame(series...)

	frame = c.ApplyTimezone(frame)

	inference := c.inferFrequency(frame)
	if !inference.Inferred {
		log.Warn().Object("Inference", &inference).Msg("could not infer frequency; defaulting to daily")
	}

	return frame, inference
}

func (c *Cleaner) inferFrequency(frame *Frame) period.Inference {
	if frame.Kind != IndexTime {
		return period.Default("index is not a timestamp type")
	}
	return period.Infer(frame.IndexTimes())
}

// parseYears coerces values like "2022" into an int64 index of calendar years
func parseYears(source dataframe.Series) *dataframe.SeriesInt64 {
	n := source.NRows()
	index := dataframe.NewSeriesInt64(common.DateIdx, &dataframe.SeriesInit{Capacity: n})

	for row := 0; row < n; row++ {
		if year, ok := coerceInt64(source.Value(row)); ok {
			index.Append(year)
		} else {
			index.Append(nil)
		}
	}

	return index
}

// parseEpochMillis interprets integer values as milliseconds since the Unix
// epoch; the resulting timestamps are naive UTC
func parseEpochMillis(source dataframe.Series) *dataframe.SeriesTime {
	n := source.NRows()
	index := dataframe.NewSeriesTime(common.DateIdx, &dataframe.SeriesInit{Capacity: n})

	for row := 0; row < n; row++ {
		if ms, ok := coerceInt64(source.Value(row)); ok {
			index.Append(time.UnixMilli(ms).UTC())
		} else {
			index.Append(nil)
		}
	}

	return index
}

// parseTimestamps parses general date/time strings. dayFirst controls how
// ambiguous dates like 03/04/2024 are read. The returned location is that
// of the first value carrying an explicit timezone offset, or nil when the
// whole column is naive.
func parseTimestamps(source dataframe.Series, dayFirst bool) (*dataframe.SeriesTime, *time.Location) {
	n := source.NRows()
	index := dataframe.NewSeriesTime(common.DateIdx, &dataframe.SeriesInit{Capacity: n})

	// nil means every value parsed as a naive wall-clock time
	var tz *time.Location

	opts := []dateparse.ParserOption{
		dateparse.PreferMonthFirst(!dayFirst),
		dateparse.RetryAmbiguousDateWithSwap(true),
	}

	for row := 0; row < n; row++ {
		val := source.Value(row)
		switch v := val.(type) {
		case nil:
			index.Append(nil)
		case time.Time:
			if v.Location() != time.UTC && tz == nil {
				tz = v.Location()
			}
			index.Append(v)
		default:
			cell := strings.TrimSpace(fmt.Sprintf("%v", v))
			parsed, err := dateparse.ParseIn(cell, time.UTC, opts...)
			if err != nil {
				log.Trace().Str("Value", cell).Msg("could not parse timestamp; value set to missing")
				index.Append(nil)
				continue
			}
			if parsed.Location() != time.UTC && tz == nil {
				tz = parsed.Location()
			}
			index.Append(parsed)
		}
	}

	return index, tz
}

// coerceInt64 extracts an integer from the loosely-typed cell values a
// loader produces (strings, floats, or proper ints)
func coerceInt64(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
