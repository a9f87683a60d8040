// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stopcondition

import (
	"fmt"
)

// Predicate is a comparison between observed value and threshold.
type Predicate int

// Supported predicates.
const (
	GreaterOrEqual Predicate = iota
	Greater
	LessOrEqual
	Less
	Equal
	NotEqual
)

var symbols = map[Predicate]string{
	GreaterOrEqual: ">=",
	Greater:        ">",
	LessOrEqual:    "<=",
	Less:           "<",
	Equal:          "==",
	NotEqual:       "!=",
}

// String returns operator symbol of the predicate or a generic name for
// predicates without one.
func (p Predicate) String() string {
	if symbol, ok := symbols[p]; ok {
		return symbol
	}
	return fmt.Sprintf("Predicate(%d)", int(p))
}

// Holds applies predicate to observed value and threshold.
// Unknown predicates never hold.
func (p Predicate) Holds(observed, threshold float64) bool {
	switch p {
	case GreaterOrEqual:
		return observed >= threshold
	case Greater:
		return observed > threshold
	case LessOrEqual:
		return observed <= threshold
	case Less:
		return observed < threshold
	case Equal:
		return observed == threshold
	case NotEqual:
		return observed != threshold
	}
	return false
}
