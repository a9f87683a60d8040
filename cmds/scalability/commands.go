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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/intelsdi-x/scalability/pkg/campaign"
	"github.com/intelsdi-x/scalability/pkg/datapoints"
	"github.com/intelsdi-x/scalability/pkg/load"
	"github.com/intelsdi-x/scalability/pkg/stopcondition"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatShare(share load.Share) string {
	values := make([]string, len(share))
	for i, rate := range share {
		values[i] = formatFloat(rate)
	}
	return strings.Join(values, ", ")
}

// configurationFields turns flag values into log fields with secrets masked.
func configurationFields(flags map[string]string) logrus.Fields {
	fields := logrus.Fields{}
	for name, value := range flags {
		if strings.Contains(name, "password") && value != "" {
			value = "***"
		}
		fields[name] = value
	}
	return fields
}

// plan prints datapoints which campaign would measure.
func plan(w io.Writer, config campaign.Configuration) error {
	if err := config.Validate(); err != nil {
		return err
	}
	sequence, err := datapoints.Parse(config.Datapoints)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Iteration", "Target RPS", "Client RPS", "Shortfall"})
	limit := config.IterationLimit(len(sequence))
	for i, target := range sequence {
		if i >= limit {
			break
		}
		share, err := load.Distribute(target, config.Clients)
		if err != nil {
			return err
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			formatFloat(target),
			formatShare(share),
			load.Shortfall(target, share).String(),
		})
	}
	table.Render()
	return nil
}

// evaluate prints the decision for a single measurement and tells if the campaign should stop.
func evaluate(w io.Writer, config campaign.Configuration, latency, failure float64, iteration int) (bool, error) {
	sequence, err := datapoints.Parse(config.Datapoints)
	if err != nil {
		return false, errors.Wrap(err, "cannot determine iteration limit")
	}

	decision := stopcondition.EvaluateLatencyFailureIteration(
		latency, config.LatencyThreshold,
		failure, config.FailureThreshold,
		iteration, config.IterationLimit(len(sequence)))

	for _, message := range decision.Triggered {
		fmt.Fprintf(w, "stop: %s\n", message)
	}
	for _, message := range decision.Okay {
		fmt.Fprintf(w, "ok: not %s\n", message)
	}
	return decision.Stop, nil
}

// distribute prints offered load of every client.
func distribute(w io.Writer, offered float64, clients int) error {
	share, err := load.Distribute(offered, clients)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", formatShare(share))
	if shortfall := load.Shortfall(offered, share); !shortfall.IsZero() {
		fmt.Fprintf(w, "shortfall: %s\n", shortfall)
	}
	return nil
}
