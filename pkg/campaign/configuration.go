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

package campaign

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Configuration - set of parameters to control the campaign.
type Configuration struct {
	// Datapoints specification, see datapoints.Parse.
	Datapoints string
	// Latency that stops the campaign, same unit as measured samples.
	LatencyThreshold float64
	// Failure rate (0..1) that stops the campaign.
	FailureThreshold float64
	// Maximum number of iterations, 0 means number of datapoints.
	MaxIterations int
	// Number of load generating clients.
	Clients int
	// Duration of each iteration.
	LoadDuration time.Duration
	// Latency percentile compared against threshold, zero means mean.
	LatencyPercentile decimal.Decimal
}

// DefaultConfiguration returns configuration built from flags.
func DefaultConfiguration() (Configuration, error) {
	percentile, err := decimal.NewFromString(LatencyPercentileFlag.Value())
	if err != nil {
		return Configuration{}, errors.Wrapf(err, "invalid latency percentile %q", LatencyPercentileFlag.Value())
	}

	return Configuration{
		Datapoints:        DatapointsFlag.Value(),
		LatencyThreshold:  LatencyThresholdFlag.Value(),
		FailureThreshold:  FailureThresholdFlag.Value(),
		MaxIterations:     MaxIterationsFlag.Value(),
		Clients:           ClientsFlag.Value(),
		LoadDuration:      LoadDurationFlag.Value(),
		LatencyPercentile: percentile,
	}, nil
}

// IterationLimit returns configured maximum number of iterations or number of
// planned datapoints when it is not set.
func (c Configuration) IterationLimit(planned int) int {
	if c.MaxIterations > 0 {
		return c.MaxIterations
	}
	return planned
}

// Validate checks configuration values which do not depend on datapoints.
func (c Configuration) Validate() error {
	if c.Clients < 1 {
		return errors.Errorf("at least one client is required, got %d", c.Clients)
	}
	if c.MaxIterations < 0 {
		return errors.Errorf("max iterations cannot be negative, got %d", c.MaxIterations)
	}
	if c.LoadDuration <= 0 {
		return errors.Errorf("load duration must be positive, got %s", c.LoadDuration)
	}
	if c.LatencyPercentile.IsNegative() || c.LatencyPercentile.GreaterThan(decimal.NewFromInt(100)) {
		return errors.Errorf("latency percentile must be within [0, 100], got %s", c.LatencyPercentile)
	}
	return nil
}
