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

package period_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/clearframe/clearframe/period"
)

var _ = Describe("Interval tests", func() {
	Context("with a bounded range", func() {
		interval := &period.Interval{
			Begin: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		}

		DescribeTable("check containment",
			func(t time.Time, expected bool) {
				Expect(interval.Contains(t)).To(Equal(expected))
			},

			Entry("When t is before the range",
				time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC), false),
			Entry("When t is the begin instant",
				time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true),
			Entry("When t is inside the range",
				time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC), true),
			Entry("When t is the end instant",
				time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), false),
			Entry("When t is after the range",
				time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), false),
		)

		It("accepts everything before End when Begin is the zero value", func() {
			open := &period.Interval{End: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}
			Expect(open.Contains(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))).To(BeTrue())
			Expect(open.Contains(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))).To(BeFalse())
		})
	})

	Context("when validating", func() {
		It("accepts begin before end", func() {
			interval := &period.Interval{
				Begin: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			}
			Expect(interval.Valid()).To(BeNil())
		})

		It("rejects begin after end", func() {
			interval := &period.Interval{
				Begin: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			Expect(interval.Valid()).To(MatchError(period.ErrBeginAfterEnd))
		})
	})
})
