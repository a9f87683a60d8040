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

package datapoints

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultRangeSteps is the number of intervals a "start-stop" range is split into.
	DefaultRangeSteps = 10
	// MaxRangeValue is the largest range boundary. Larger integers are not exact as float64.
	MaxRangeValue = 1 << 53
	// MaxRangeDatapoints bounds the length of a generated range.
	MaxRangeDatapoints = 100000
)

// ErrMalformedSpec is the cause of every error returned by Parse.
var ErrMalformedSpec = errors.New("malformed datapoints specification")

var (
	rangeSpec  = regexp.MustCompile(`^[0-9\-:]*$`)
	spreadSpec = regexp.MustCompile(`^[0-9]+~[0-9]+~[0-9]+$`)
	listSpec   = regexp.MustCompile(`^[0-9,]*$`)
)

// Parse converts textual datapoints specification into a Sequence.
// Accepted forms, checked in this order:
//	start-stop[:steps]   uniform range from start to stop inclusive split into steps intervals
//	start~target~stop    Spread around target
//	v1,v2,...,vn         literal values in given order
// A bare number is a single element list.
func Parse(spec string) (Sequence, error) {
	switch {
	case rangeSpec.MatchString(spec) && strings.ContainsAny(spec, "-:"):
		return parseRange(spec)
	case spreadSpec.MatchString(spec):
		return parseSpread(spec)
	case listSpec.MatchString(spec):
		return parseList(spec)
	}
	return nil, malformed(spec, "expected start-stop[:steps], start~target~stop or v1,v2,...")
}

func malformed(spec string, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedSpec, "%q: "+format, append([]interface{}{spec}, args...)...)
}

func parseRange(spec string) (Sequence, error) {
	entries := strings.Split(spec, ":")
	if len(entries) > 2 {
		return nil, malformed(spec, "at most one steps suffix is allowed")
	}

	boundaries := strings.Split(entries[0], "-")
	if len(boundaries) != 2 {
		return nil, malformed(spec, "range needs exactly start and stop")
	}
	start, err := strconv.Atoi(boundaries[0])
	if err != nil {
		return nil, malformed(spec, "invalid start %q", boundaries[0])
	}
	stop, err := strconv.Atoi(boundaries[1])
	if err != nil {
		return nil, malformed(spec, "invalid stop %q", boundaries[1])
	}
	if stop < start {
		return nil, malformed(spec, "stop %d is lower than start %d", stop, start)
	}
	if stop > MaxRangeValue {
		return nil, malformed(spec, "stop %d exceeds %d", stop, MaxRangeValue)
	}

	steps := DefaultRangeSteps
	if len(entries) == 2 {
		steps, err = strconv.Atoi(entries[1])
		if err != nil || steps < 1 {
			return nil, malformed(spec, "steps must be a positive integer, got %q", entries[1])
		}
	}

	span := stop - start
	step := span / steps
	if span%steps != 0 {
		step++
	}
	if step < 1 {
		step = 1
	}

	count := span/step + 1
	if count > MaxRangeDatapoints {
		return nil, malformed(spec, "%d datapoints exceed limit of %d", count, MaxRangeDatapoints)
	}
	datapoints := make(Sequence, 0, count)
	for i := 0; i < count; i++ {
		datapoints = append(datapoints, float64(start+i*step))
	}
	return datapoints, nil
}

func parseSpread(spec string) (Sequence, error) {
	values, err := parseNumbers(spec, "~")
	if err != nil {
		return nil, err
	}
	start, target, stop := values[0], values[1], values[2]
	if stop < start {
		return nil, malformed(spec, "stop %v is lower than start %v", stop, start)
	}
	return Spread(target, start, stop), nil
}

func parseList(spec string) (Sequence, error) {
	return parseNumbers(spec, ",")
}

func parseNumbers(spec, separator string) (Sequence, error) {
	items := strings.Split(spec, separator)
	datapoints := make(Sequence, 0, len(items))
	for _, item := range items {
		value, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, malformed(spec, "invalid value %q", item)
		}
		datapoints = append(datapoints, value)
	}
	return datapoints, nil
}
