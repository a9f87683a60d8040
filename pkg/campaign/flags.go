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

	"github.com/intelsdi-x/scalability/pkg/conf"
)

var (
	// DatapointsFlag specifies offered load of every iteration.
	DatapointsFlag = conf.NewStringFlag("datapoints",
		"Request rates to measure: start-stop[:steps], start~target~stop or v1,v2,...", "100-1000")
	// LatencyThresholdFlag stops the campaign when aggregated latency reaches it.
	LatencyThresholdFlag = conf.NewFloatFlag("latency_threshold", "Latency that stops the campaign. [ms]", 1000)
	// FailureThresholdFlag stops the campaign when failure rate reaches it.
	FailureThresholdFlag = conf.NewFloatFlag("failure_threshold", "Failure rate (0..1) that stops the campaign.", 0.1)
	// MaxIterationsFlag bounds number of measured datapoints.
	MaxIterationsFlag = conf.NewIntFlag("max_iterations",
		"Maximum number of iterations. If value is `0`, every datapoint is measured.", 0)
	// ClientsFlag is number of load generating clients the offered load is split to.
	ClientsFlag = conf.NewIntFlag("clients", "Number of load generating clients.", 1)
	// LoadDurationFlag is how long each datapoint is loaded.
	LoadDurationFlag = conf.NewDurationFlag("load_duration", "Load duration of each iteration.", 60*time.Second)
	// LatencyPercentileFlag selects latency aggregate compared against the threshold.
	LatencyPercentileFlag = conf.NewStringFlag("latency_percentile",
		"Latency percentile compared against threshold. If value is `0`, mean latency is used.", "0")
)
