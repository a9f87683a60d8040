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
	"time"
)

// Tags identify a single measured datapoint of a campaign.
// NOTE: For further encoding (e.g. with JSON Marshaler), fields here must be exported.
type Tags struct {
	CampaignID string
	Iteration  int
}

// Measurement holds what was offered and observed for one datapoint.
type Measurement struct {
	TargetRPS float64 `json:",omitempty"`
	ClientRPS float64 `json:",omitempty"`
	Clients   int     `json:",omitempty"`

	LoadDuration time.Duration `json:",omitempty,string"`

	// Latency is NoData when no request succeeded.
	Latency     float64
	MaxLatency  float64
	FailureRate float64
	Requests    int `json:",omitempty"`
	Failures    int `json:",omitempty"`

	// Accepted is true when neither latency nor failure rate reached its threshold.
	// A datapoint which only exhausted the iteration budget is accepted.
	Accepted bool
	Stop     bool
	Reasons  []string `json:",omitempty"`
}

// Record is a measured datapoint with its identifying tags.
type Record struct {
	Tags    Tags
	Metrics Measurement
}

// New is a constructor for Record structure.
func New(tags Tags, measurement Measurement) *Record {
	return &Record{
		Tags:    tags,
		Metrics: measurement,
	}
}
