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

// Package stopcondition decides whether a running campaign must stop.
//
// Evaluation is stateless: the caller passes current measurements and
// thresholds on every call and gets a fresh Decision back.
package stopcondition

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Observed labels of conditions checked by EvaluateLatencyFailureIteration.
const (
	LatencyLabel     = "latency"
	FailureRateLabel = "failure rate"
	IterationLabel   = "iteration"
)

// Condition compares an observed value against a threshold. It is triggered
// when Predicate holds for (Observed, Threshold).
type Condition struct {
	Observed       float64
	Threshold      float64
	Predicate      Predicate
	ObservedLabel  string
	ThresholdLabel string
}

// String renders condition as "{observed label} {observed} {symbol} {threshold label} {threshold}".
func (c Condition) String() string {
	return strings.Join([]string{
		c.ObservedLabel,
		formatValue(c.Observed),
		c.Predicate.String(),
		c.ThresholdLabel,
		formatValue(c.Threshold),
	}, " ")
}

// Triggered tells if the condition requires the campaign to stop.
func (c Condition) Triggered() bool {
	return c.Predicate.Holds(c.Observed, c.Threshold)
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Decision is the outcome of evaluating stop conditions.
type Decision struct {
	// Stop is true when at least one condition was triggered.
	Stop bool
	// Triggered lists rendered conditions which were triggered.
	Triggered []string
	// Okay lists rendered conditions which were not triggered.
	Okay []string
	// TriggeredLabels lists observed labels of triggered conditions.
	TriggeredLabels []string
}

// TriggeredBy tells if a condition observing label was triggered.
func (d Decision) TriggeredBy(label string) bool {
	for _, triggered := range d.TriggeredLabels {
		if triggered == label {
			return true
		}
	}
	return false
}

// Evaluate checks all conditions. Single triggered condition is enough to stop.
func Evaluate(conditions ...Condition) Decision {
	decision := Decision{}
	for _, condition := range conditions {
		message := condition.String()
		if condition.Triggered() {
			decision.Stop = true
			decision.Triggered = append(decision.Triggered, message)
			decision.TriggeredLabels = append(decision.TriggeredLabels, condition.ObservedLabel)
			log.Warnf("Stopping because %s", message)
			continue
		}
		decision.Okay = append(decision.Okay, message)
		log.Infof("Okay since not %s", message)
	}
	return decision
}

// EvaluateLatencyFailureIteration stops on excessive latency, excessive
// failure rate or exhausted iteration budget.
func EvaluateLatencyFailureIteration(latency, latencyThreshold, failure, failureThreshold float64, iteration, maxIterations int) Decision {
	return Evaluate(
		Condition{
			Observed:       latency,
			Threshold:      latencyThreshold,
			Predicate:      GreaterOrEqual,
			ObservedLabel:  LatencyLabel,
			ThresholdLabel: "threshold",
		},
		Condition{
			Observed:       failure,
			Threshold:      failureThreshold,
			Predicate:      GreaterOrEqual,
			ObservedLabel:  FailureRateLabel,
			ThresholdLabel: "threshold",
		},
		Condition{
			Observed:       float64(iteration),
			Threshold:      float64(maxIterations),
			Predicate:      GreaterOrEqual,
			ObservedLabel:  IterationLabel,
			ThresholdLabel: "max iterations",
		},
	)
}
