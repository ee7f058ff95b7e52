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

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// minimum number of index entries required before inference is attempted
const minInferPoints = 3

// fraction of gaps the modal step must cover for the pattern to count as stable
const stableModeFraction = 0.9

// Infer examines a timestamp index and returns the canonical sampling
// frequency of its step pattern. The input need not be sorted or unique;
// Infer works on a sorted, deduplicated copy. When no stable pattern can be
// found, or fewer than 3 distinct points exist, the Daily default is
// returned with Inferred set to false.
func Infer(times []time.Time) Inference {
	index := dedupeSorted(times)

	if len(index) < minInferPoints {
		return Default(fmt.Sprintf("index too short to infer frequency (%d entries)", len(index)))
	}

	// calendar-aligned patterns first: monthly, quarterly and annual series
	// have uneven day gaps but a constant month step on a common anchor day
	if monthStep, ok := monthAligned(index); ok {
		switch monthStep {
		case 1:
			return Inference{Frequency: Monthly, Inferred: true}
		case 3:
			return Inference{Frequency: Quarterly, Inferred: true}
		case 12:
			return Inference{Frequency: Annually, Inferred: true}
		}
	}

	// fall back to the modal day gap between consecutive entries
	gaps := make([]float64, 0, len(index)-1)
	for ii := 1; ii < len(index); ii++ {
		gaps = append(gaps, index[ii].Sub(index[ii-1]).Hours()/24)
	}
	sort.Float64s(gaps)

	mode, count := stat.Mode(gaps, nil)
	if count < stableModeFraction*float64(len(gaps)) {
		return Default("irregular spacing; no stable step pattern")
	}

	switch mode {
	case 1:
		return Inference{Frequency: Daily, Inferred: true}
	case 7:
		return Inference{Frequency: Weekly, Inferred: true}
	default:
		return Inference{Frequency: Unknown, Inferred: true}
	}
}

// dedupeSorted returns a sorted copy of times with equal instants removed
func dedupeSorted(times []time.Time) []time.Time {
	index := make([]time.Time, len(times))
	copy(index, times)
	sort.Slice(index, func(i, j int) bool {
		return index[i].Before(index[j])
	})

	out := index[:0]
	for ii, t := range index {
		if ii == 0 || !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// monthAligned reports whether every consecutive pair of entries shares an
// anchor day-of-month and advances by a constant number of months. Entries
// anchored past the 28th match on month-end to allow for short months.
func monthAligned(index []time.Time) (int, bool) {
	step := monthsBetween(index[0], index[1])
	if step <= 0 {
		return 0, false
	}

	for ii := 1; ii < len(index); ii++ {
		prev := index[ii-1]
		curr := index[ii]
		if monthsBetween(prev, curr) != step {
			return 0, false
		}
		if !sameAnchorDay(prev, curr) {
			return 0, false
		}
	}

	return step, true
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()*12 + int(b.Month())) - (a.Year()*12 + int(a.Month()))
}

func sameAnchorDay(a, b time.Time) bool {
	if a.Day() == b.Day() {
		return true
	}
	return isMonthEnd(a) && isMonthEnd(b)
}

func isMonthEnd(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
