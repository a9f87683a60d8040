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

// Package load splits aggregate request rate across concurrent load generating clients.
package load

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Precision is the number of decimal digits each share is truncated to.
const Precision = 2

// ErrInvalidClientCount is returned when load is distributed to less than one client.
var ErrInvalidClientCount = errors.New("number of clients must be at least 1")

// Share holds per client request rates.
type Share []float64

// Distribute splits load evenly to n clients. Every client gets
// floor(100*load/n)/100, truncation may lose up to n*0.01 in total.
func Distribute(load float64, n int) (Share, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidClientCount, "cannot distribute %v to %d clients", load, n)
	}

	perClient := math.Floor(100*load/float64(n)) / 100
	share := make(Share, n)
	for i := range share {
		share[i] = perClient
	}
	return share, nil
}

// Total returns the exact sum of the share.
func (s Share) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rate := range s {
		total = total.Add(decimal.NewFromFloat(rate))
	}
	return total
}

// Shortfall returns how much of load was lost when it was distributed into share.
func Shortfall(load float64, share Share) decimal.Decimal {
	return decimal.NewFromFloat(load).Sub(share.Total())
}
