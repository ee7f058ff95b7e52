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

package cleaner_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/clearframe/clearframe/cleaner"
	"github.com/clearframe/clearframe/common"
	"github.com/clearframe/clearframe/period"
)

var _ = Describe("Timestamp indexing", func() {
	var (
		c   *cleaner.Cleaner
		ctx context.Context
	)

	BeforeEach(func() {
		var err error
		c, err = cleaner.New("")
		Expect(err).To(BeNil())
		ctx = context.Background()
	})

	Context("with a general date column", func() {
		It("promotes the parsed index to the first column", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("close", nil, "1", "2", "3"),
				dataframe.NewSeriesString("date", nil, "2024-01-01", "2024-01-02", "2024-01-03"),
			)

			frame, inference := c.ToTimeIndex(ctx, df, "", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexTime))
			Expect(frame.TZ).To(BeNil())
			Expect(frame.Data.Series).To(HaveLen(2))
			Expect(frame.Data.Series[0].Name()).To(Equal(common.DateIdx))
			Expect(frame.Data.Series[1].Name()).To(Equal("close"))

			Expect(frame.Data.Series[0].Value(0)).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(inference.Frequency).To(Equal(period.Daily))
			Expect(inference.Inferred).To(BeTrue())
		})

		It("turns unparseable cells into missing values", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("date", nil, "2024-01-01", "not a date", "2024-01-03"),
			)

			frame, _ := c.ToTimeIndex(ctx, df, "", false)
			Expect(frame.Data.Series[0].Value(0)).NotTo(BeNil())
			Expect(frame.Data.Series[0].Value(1)).To(BeNil())
			Expect(frame.Data.Series[0].Value(2)).NotTo(BeNil())
		})

		DescribeTable("resolves day-vs-month ambiguity",
			func(dayFirst bool, expected time.Time) {
				df := dataframe.NewDataFrame(
					dataframe.NewSeriesString("date", nil, "03/04/2024"),
				)
				frame, _ := c.ToTimeIndex(ctx, df, "", dayFirst)
				Expect(frame.Data.Series[0].Value(0)).To(Equal(expected))
			},

			Entry("When month comes first", false, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)),
			Entry("When day comes first", true, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)),
		)
	})

	Context("with an epoch millisecond column", func() {
		It("converts integers to naive UTC timestamps", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("timestamp", nil,
					"1700000000000", "1700086400000", "1700172800000"),
			)

			frame, inference := c.ToTimeIndex(ctx, df, "", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexTime))
			Expect(frame.TZ).To(BeNil())
			Expect(frame.Data.Series[0].Value(0)).To(Equal(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)))
			Expect(inference.Frequency).To(Equal(period.Daily))
		})
	})

	Context("with a year column", func() {
		It("builds an integer index of calendar years", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("year", nil, "2020", "2021", "2022"),
				dataframe.NewSeriesString("gdp", nil, "1", "2", "3"),
			)

			frame, inference := c.ToTimeIndex(ctx, df, "", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexYear))
			Expect(frame.Data.Series[0].Name()).To(Equal(common.DateIdx))
			Expect(frame.Data.Series[0].Value(0)).To(Equal(int64(2020)))
			Expect(frame.Data.Series[0].Value(2)).To(Equal(int64(2022)))

			// a year index carries no month or day so inference cannot run
			Expect(inference.Frequency).To(Equal(period.Daily))
			Expect(inference.Inferred).To(BeFalse())
		})
	})

	Context("with no time column", func() {
		It("passes the table through with a daily default", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("open", nil, "1"),
				dataframe.NewSeriesString("close", nil, "2"),
			)

			frame, inference := c.ToTimeIndex(ctx, df, "", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexNone))
			Expect(frame.Data).To(BeIdenticalTo(df))
			Expect(inference.Frequency).To(Equal(period.Daily))
			Expect(inference.Inferred).To(BeFalse())
		})
	})

	Context("with an explicit column name", func() {
		It("uses the named column even when detection would miss it", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("observed", nil, "2024-01-01", "2024-01-02", "2024-01-03"),
			)

			frame, _ := c.ToTimeIndex(ctx, df, "observed", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexTime))
			Expect(frame.Data.Series[0].Name()).To(Equal(common.DateIdx))
		})

		It("passes through when the named column does not exist", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("close", nil, "1"),
			)

			frame, inference := c.ToTimeIndex(ctx, df, "missing", false)
			Expect(frame.Kind).To(Equal(cleaner.IndexNone))
			Expect(inference.Inferred).To(BeFalse())
		})
	})
})
