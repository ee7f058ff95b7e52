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
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rs/zerolog/log"

	"github.com/clearframe/clearframe/common"
	"github.com/clearframe/clearframe/period"
)

// DropIncomplete removes every row at or after the start of the current
// (still accumulating) period so aggregates never see partial data. "Now"
// is the current instant in the index zone for aware indexes, or today's
// date at midnight for naive ones. The result is sorted ascending by index.
// Frames without a timestamp index pass through unchanged. When every row
// falls into the current period the result is an empty table with the same
// column structure.
func (c *Cleaner) DropIncomplete(ctx context.Context, frame *Frame, inference period.Inference) *Frame {
	if frame.Kind != IndexTime {
		log.Debug().Msg("index is not a timestamp type; skipping incomplete period trim")
		return frame
	}

	var now time.Time
	if frame.TZ != nil {
		now = c.now().In(frame.TZ)
	} else {
		wall := c.now()
		now = time.Date(wall.Year(), wall.Month(), wall.Day(), 0, 0, 0, 0, time.UTC)
	}

	kept := &period.Interval{
		End: period.Start(now, inference.Frequency),
	}

	filterFn := dataframe.FilterDataFrameFn(func(vals map[interface{}]interface{}, row, nRows int) (dataframe.FilterAction, error) {
		if t, ok := vals[common.DateIdx].(time.Time); ok {
			if kept.Contains(t) {
				return dataframe.KEEP, nil
			}
		}
		// missing timestamps are dropped along with current-period rows
		return dataframe.DROP, nil
	})

	res, err := dataframe.Filter(ctx, frame.Data, filterFn)
	if err != nil {
		log.Error().Err(err).Msg("could not trim incomplete period; table left unchanged")
		return frame
	}

	df := res.(*dataframe.DataFrame)
	df.Sort(ctx, []dataframe.SortKey{{Key: common.DateIdx, Desc: false}})

	log.Debug().
		Object("Kept", kept).
		Object("Inference", &inference).
		Int("Rows", df.NRows()).
		Msg("dropped rows in the current incomplete period")

	return &Frame{Data: df, Kind: frame.Kind, TZ: frame.TZ}
}
