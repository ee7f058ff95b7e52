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

package period

import "time"

// Start computes the first instant of the current period containing now.
// Rows at or after this boundary belong to the still-incomplete period and
// must be excluded from aggregates. Only Weekly, Monthly and Quarterly get
// period-aligned boundaries; every other frequency uses now itself, which
// for a midnight "now" is the before-today rule. The boundary is computed
// in now's location so an aware index yields an aware boundary.
func Start(now time.Time, frequency Frequency) time.Time {
	switch frequency {
	case Weekly:
		// ISO weeks begin on Monday
		daysIntoWeek := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -daysIntoWeek)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	case Monthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Quarterly:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	default:
		return now
	}
}
