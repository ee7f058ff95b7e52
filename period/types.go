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
	"errors"

	"github.com/rs/zerolog"
)

// Frequency is the canonical sampling interval of a time index
type Frequency string

const (
	Daily     Frequency = "Daily"
	Weekly    Frequency = "Weekly"
	Monthly   Frequency = "Monthly"
	Quarterly Frequency = "Quarterly"
	Annually  Frequency = "Annually"
	Unknown   Frequency = "Unknown"
)

var (
	ErrBeginAfterEnd = errors.New("invalid interval; begin after end date")
)

// Inference is the outcome of frequency inference. Inferred is false when
// the Daily default was applied instead of a real inference; Reason records
// why the default was used.
type Inference struct {
	Frequency Frequency
	Inferred  bool
	Reason    string
}

// Default builds the conservative Daily fallback recorded when inference
// could not run or found no stable pattern
func Default(reason string) Inference {
	return Inference{
		Frequency: Daily,
		Inferred:  false,
		Reason:    reason,
	}
}

// MarshalZerologObject implement the log marshaller interface for zerolog
func (inf *Inference) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Frequency", string(inf.Frequency)).Bool("Inferred", inf.Inferred)
	if inf.Reason != "" {
		e.Str("Reason", inf.Reason)
	}
}
