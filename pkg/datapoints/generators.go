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

// Package datapoints generates the offered load values (requests per second)
// measured during a campaign.
//
// Generated sequences are ascending and free of duplicates unless stated
// otherwise. Every function returns a fresh slice, so callers own the result.
package datapoints

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultIncrement is the base distance between target and its closest neighbours.
	DefaultIncrement = 50
	// DefaultExponent controls how fast the distance from target grows.
	DefaultExponent = 0.5

	// spreadSteps bounds the exponent sweep. It is fixed regardless of the range,
	// so very wide ranges are sampled sparsely far from the target.
	spreadSteps = 100
)

// ErrInvalidArgument is the cause of errors returned for unusable generator arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// Sequence is an ordered list of datapoints.
type Sequence []float64

type spreadOptions struct {
	increment float64
	exponent  float64
}

// SpreadOption modifies how Spread places datapoints around the target.
type SpreadOption func(*spreadOptions)

// WithIncrement overrides DefaultIncrement.
func WithIncrement(increment float64) SpreadOption {
	return func(o *spreadOptions) {
		o.increment = increment
	}
}

// WithExponent overrides DefaultExponent.
func WithExponent(exponent float64) SpreadOption {
	return func(o *spreadOptions) {
		o.exponent = exponent
	}
}

// Spread returns datapoints between min and max, dense around target and
// sparse toward both ends. Neighbours of target are target ± increment*round(2^(i*exponent)).
func Spread(target, min, max float64, opts ...SpreadOption) Sequence {
	options := spreadOptions{increment: DefaultIncrement, exponent: DefaultExponent}
	for _, opt := range opts {
		opt(&options)
	}

	steps := map[float64]struct{}{}
	for i := 0; i < spreadSteps; i++ {
		step := options.increment * math.RoundToEven(math.Pow(2, float64(i)*options.exponent))
		steps[step] = struct{}{}
	}

	candidates := map[float64]struct{}{min: {}, target: {}, max: {}}
	for step := range steps {
		candidates[target-step] = struct{}{}
		candidates[target+step] = struct{}{}
	}

	datapoints := Sequence{}
	for candidate := range candidates {
		if candidate >= min && candidate <= max {
			datapoints = append(datapoints, candidate)
		}
	}
	sort.Float64s(datapoints)

	log.WithFields(log.Fields{
		"target": target,
		"min":    min,
		"max":    max,
	}).Infof("Measuring %d datapoints %v", len(datapoints), []float64(datapoints))

	return datapoints
}

// Uniform returns min, min+increment, min+2*increment, ... strictly below max.
func Uniform(min, max, increment float64) (Sequence, error) {
	if increment <= 0 || math.IsNaN(increment) {
		return nil, errors.Wrapf(ErrInvalidArgument, "increment must be positive, got %v", increment)
	}
	if !isFinite(min) || !isFinite(max) {
		return nil, errors.Wrapf(ErrInvalidArgument, "range [%v, %v) must be finite", min, max)
	}

	datapoints := Sequence{}
	for i := 0; ; i++ {
		value := min + float64(i)*increment
		if value >= max {
			break
		}
		datapoints = append(datapoints, value)
	}
	return datapoints, nil
}

// ThresholdApproach returns datapoints approaching threshold.
// First numExpPoints values go from threshold/2^numExpPoints up to threshold/2
// doubling each time, then numLinPoints values go linearly from threshold/2
// toward threshold. All values are truncated to integers.
func ThresholdApproach(threshold float64, numExpPoints, numLinPoints int) (Sequence, error) {
	if numExpPoints < 0 || numLinPoints < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"number of points cannot be negative, got %d exponential and %d linear", numExpPoints, numLinPoints)
	}

	datapoints := make(Sequence, 0, numExpPoints+numLinPoints)
	for i := numExpPoints; i > 0; i-- {
		datapoints = append(datapoints, math.Trunc(threshold/math.Pow(2, float64(i))))
	}

	linStep := math.Trunc(threshold / float64(2*numLinPoints+1))
	start := math.Trunc(threshold / 2)
	for i := 1; i <= numLinPoints; i++ {
		datapoints = append(datapoints, start+float64(i)*linStep)
	}

	return datapoints, nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
