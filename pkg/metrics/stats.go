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

package metrics

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// NoData is returned by aggregates of an empty sample set. It is never a valid
// latency or rate, consumers must check it with IsNoData.
const NoData = -1

// IsNoData tells if value is the sentinel returned for an empty sample set.
func IsNoData(value float64) bool {
	return value == NoData
}

// MeanOrSentinel returns arithmetic mean of samples or NoData when there are none.
func MeanOrSentinel(samples []float64) float64 {
	if len(samples) == 0 {
		return NoData
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		return NoData
	}
	return mean
}

// MaxOrSentinel returns the largest sample or NoData when there are none.
func MaxOrSentinel(samples []float64) float64 {
	if len(samples) == 0 {
		return NoData
	}
	max, err := stats.Max(samples)
	if err != nil {
		return NoData
	}
	return max
}

// PercentileOrSentinel returns given percentile (0, 100] of samples or NoData
// when there are none.
func PercentileOrSentinel(samples []float64, percentile float64) (float64, error) {
	if percentile <= 0 || percentile > 100 {
		return NoData, errors.Errorf("percentile %v is out of (0, 100] range", percentile)
	}
	if len(samples) == 0 {
		return NoData, nil
	}
	value, err := stats.Percentile(samples, percentile)
	if err != nil {
		return NoData, errors.Wrapf(err, "cannot compute %v percentile of %d samples", percentile, len(samples))
	}
	return value, nil
}
