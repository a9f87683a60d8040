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
	"io"
	"strconv"
	"strings"

	"github.com/intelsdi-x/scalability/pkg/metrics"
	"github.com/olekukonko/tablewriter"
)

// Results of a campaign in the order datapoints were measured.
type Results []metrics.Record

// Stopped tells if the campaign ended because latency or failure rate reached
// its threshold. Running out of iterations is not a stop.
func (r Results) Stopped() bool {
	return len(r) > 0 && !r[len(r)-1].Metrics.Accepted
}

// LastAccepted returns the highest iteration within latency and failure rate
// thresholds. The second value is false when there is none.
func (r Results) LastAccepted() (metrics.Record, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Metrics.Accepted {
			return r[i], true
		}
	}
	return metrics.Record{}, false
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Render draws results as a table.
func (r Results) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Iteration", "Target RPS", "Client RPS", "Clients", "Latency", "Failure rate", "Stop reason"})
	for _, record := range r {
		latency := formatFloat(record.Metrics.Latency)
		if metrics.IsNoData(record.Metrics.Latency) {
			latency = "no data"
		}
		table.Append([]string{
			strconv.Itoa(record.Tags.Iteration),
			formatFloat(record.Metrics.TargetRPS),
			formatFloat(record.Metrics.ClientRPS),
			strconv.Itoa(record.Metrics.Clients),
			latency,
			strconv.FormatFloat(record.Metrics.FailureRate, 'f', 4, 64),
			strings.Join(record.Metrics.Reasons, "; "),
		})
	}
	table.Render()
}
