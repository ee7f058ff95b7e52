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

// Package loader ingests delimited text, spreadsheet and JSON files into
// dataframes. All cells load as strings; type coercion is the cleaner's job.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const bom = "\uFEFF"

var (
	ErrNoSheets   = errors.New("spreadsheet contains no sheets")
	ErrEmptySheet = errors.New("spreadsheet sheet has no rows")
)

// ReadTable loads a tabular file into a dataframe. Files ending in .xlsx or
// .xls are read as spreadsheets; everything else is read as delimited text
// with the given delimiter (use ',' for standard CSV) through a BOM-aware
// UTF-8 decoder. Column headers are stripped of BOM markers and surrounding
// whitespace, and rows where any cell is purely a BOM marker or whitespace
// are dropped. A load failure is logged with the file name and returned;
// no table is produced.
func ReadTable(ctx context.Context, path string, delimiter rune) (*dataframe.DataFrame, error) {
	var df *dataframe.DataFrame
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		df, err = readSpreadsheet(path)
	default:
		df, err = readDelimited(ctx, path, delimiter)
	}

	if err != nil {
		log.Error().Err(err).Str("File", path).Msg("could not load file")
		return nil, err
	}

	return scrub(ctx, df)
}

func readDelimited(ctx context.Context, path string, delimiter rune) (*dataframe.DataFrame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	// utf-8-sig: a leading byte order mark is consumed by the decoder
	decoded, err := io.ReadAll(transform.NewReader(fh, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	df, err := imports.LoadFromCSV(ctx, bytes.NewReader(decoded), imports.CSVLoadOptions{
		Comma:            delimiter,
		TrimLeadingSpace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return df, nil
}

func readSpreadsheet(path string) (*dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSheets, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, path)
	}

	headers := rows[0]
	series := make([]dataframe.Series, len(headers))
	for col, name := range headers {
		series[col] = dataframe.NewSeriesString(name, &dataframe.SeriesInit{Capacity: len(rows) - 1})
	}

	for _, row := range rows[1:] {
		for col := range headers {
			if col < len(row) {
				series[col].Append(row[col])
			} else {
				// ragged rows happen with trailing empty cells
				series[col].Append(nil)
			}
		}
	}

	return dataframe.NewDataFrame(series...), nil
}

// scrub strips BOM markers and whitespace from column names and drops rows
// containing cells that are nothing but a BOM marker or whitespace
func scrub(ctx context.Context, df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	for _, s := range df.Series {
		name := s.Name()
		cleaned := strings.TrimSpace(strings.ReplaceAll(name, bom, ""))
		if cleaned != name {
			s.Rename(cleaned)
		}
	}

	filterFn := dataframe.FilterDataFrameFn(func(vals map[interface{}]interface{}, row, nRows int) (dataframe.FilterAction, error) {
		for _, val := range vals {
			if cell, ok := val.(string); ok {
				if strings.TrimSpace(strings.ReplaceAll(cell, bom, "")) == "" && cell != "" {
					return dataframe.DROP, nil
				}
			}
		}
		return dataframe.KEEP, nil
	})

	res, err := dataframe.Filter(ctx, df, filterFn)
	if err != nil {
		return nil, fmt.Errorf("scrub rows: %w", err)
	}

	return res.(*dataframe.DataFrame), nil
}
