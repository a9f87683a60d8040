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
	"context"
	"time"

	"github.com/intelsdi-x/scalability/pkg/load"
)

// Measurement is what a load generator observed during one iteration.
type Measurement struct {
	// Latencies of successful requests.
	LatencySamples []float64
	// Requests issued.
	Requests int
	// Failures among issued requests.
	Failures int
}

// FailureRate returns ratio of failed requests, 0 when nothing was issued.
func (m Measurement) FailureRate() float64 {
	if m.Requests <= 0 {
		return 0
	}
	return float64(m.Failures) / float64(m.Requests)
}

// LoadGenerator drives load against the system under test.
// Every element of rates is the request rate of one client.
type LoadGenerator interface {
	Load(ctx context.Context, rates load.Share, duration time.Duration) (Measurement, error)
}
