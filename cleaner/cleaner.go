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

// Package cleaner normalizes heterogeneous tabular data into a time-indexed
// table: it detects the time column, promotes it to a timestamp index with a
// uniform timezone policy, infers the sampling frequency and removes rows
// belonging to the current incomplete period. Textual value columns are
// coerced to numbers along the way.
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/clearframe/clearframe/common"
	"github.com/clearframe/clearframe/period"
)

var (
	ErrUnknownTimezone = errors.New("unknown timezone")
)

// IndexKind describes what the promoted index column holds
type IndexKind int

const (
	IndexNone IndexKind = iota
	IndexTime
	IndexYear
)

// Frame couples a table with metadata about its promoted index. TZ is nil
// while the index is naive; when set, every index timestamp is aware in
// exactly that zone.
type Frame struct {
	Data *dataframe.DataFrame
	Kind IndexKind
	TZ   *time.Location
}

// IndexTimes returns the timestamp values of the promoted index, skipping
// missing entries. The result is empty for frames without a time index.
func (frame *Frame) IndexTimes() []time.Time {
	if frame.Kind != IndexTime || frame.Data == nil {
		return nil
	}

	colIdx, err := frame.Data.NameToColumn(common.DateIdx)
	if err != nil {
		return nil
	}

	index := frame.Data.Series[colIdx]
	n := index.NRows()
	times := make([]time.Time, 0, n)
	for row := 0; row < n; row++ {
		if t, ok := index.Value(row).(time.Time); ok {
			times = append(times, t)
		}
	}

	return times
}

// Cleaner runs the normalization pipeline. The timezone setting is fixed at
// construction and applied uniformly to every table processed; a Cleaner
// retains no per-table state so independent tables may be processed through
// separate instances without coordination.
type Cleaner struct {
	tz  *time.Location
	now func() time.Time
}

// New creates a Cleaner with the given timezone policy. An empty timezone
// strips timezone awareness from every index; otherwise the IANA zone is
// applied (localize naive indexes, convert aware ones).
func New(timezone string) (*Cleaner, error) {
	c := &Cleaner{
		now: time.Now,
	}

	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, timezone)
		}
		c.tz = loc
	}

	return c, nil
}

// WithClock overrides the time source used to establish "now" when trimming
func (c *Cleaner) WithClock(clock func() time.Time) *Cleaner {
	c.now = clock
	return c
}

// CleanOptions adjust a single Clean invocation
type CleanOptions struct {
	// TimeColumn names the time column explicitly; empty delegates to detection
	TimeColumn string

	// Hint is an extra column name merged into the detection vocabulary
	Hint string

	// DayFirst resolves day-vs-month ambiguity in dates like 03/04/2024
	DayFirst bool
}

// Clean runs the full pipeline on a loaded table: detect the time column,
// normalize the remaining textual columns to numbers, promote the time
// column to a timestamp index with the configured timezone, infer the
// sampling frequency, and drop rows in the current incomplete period.
func (c *Cleaner) Clean(ctx context.Context, df *dataframe.DataFrame, opts CleanOptions) (*Frame, period.Inference) {
	col := opts.TimeColumn
	if col == "" {
		col, _ = c.TimeColumn(df, opts.Hint)
	}

	df = c.cleanValuesExcept(ctx, df, col)

	frame, inference := c.ToTimeIndex(ctx, df, col, opts.DayFirst)
	frame = c.DropIncomplete(ctx, frame, inference)

	return frame, inference
}
