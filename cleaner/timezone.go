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
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/clearframe/clearframe/common"
)

// ApplyTimezone enforces the cleaner's timezone policy on the frame's
// index; a no-op unless the index is a timestamp type. With a configured
// zone, a naive index is localized (wall clock reinterpreted in the zone)
// and an aware index converted (instants preserved). Without one, awareness
// is stripped keeping the wall-clock values. Afterwards the index is either
// fully naive or fully aware in exactly the configured zone; applying the
// policy twice yields the same index as applying it once.
func (c *Cleaner) ApplyTimezone(frame *Frame) *Frame {
	if frame.Kind != IndexTime {
		return frame
	}

	colIdx, err := frame.Data.NameToColumn(common.DateIdx)
	if err != nil {
		return frame
	}
	index, ok := frame.Data.Series[colIdx].(*dataframe.SeriesTime)
	if !ok {
		return frame
	}

	switch {
	case c.tz != nil && frame.TZ == nil:
		// localize: reinterpret the wall clock as being in the zone
		tz := c.tz
		rewriteIndex(index, func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), tz)
		})
		frame.TZ = c.tz
	case c.tz != nil:
		// convert: preserve instants, shift the representation
		tz := c.tz
		rewriteIndex(index, func(t time.Time) time.Time {
			return t.In(tz)
		})
		frame.TZ = c.tz
	case frame.TZ != nil:
		// strip: keep the clock-time values, discard the offset
		rewriteIndex(index, func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		})
		frame.TZ = nil
	}

	return frame
}

func rewriteIndex(index *dataframe.SeriesTime, fn func(time.Time) time.Time) {
	n := index.NRows()
	for row := 0; row < n; row++ {
		if t, ok := index.Value(row).(time.Time); ok {
			index.Update(row, fn(t))
		}
	}
}
