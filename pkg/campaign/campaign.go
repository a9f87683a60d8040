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

	"github.com/intelsdi-x/scalability/pkg/datapoints"
	"github.com/intelsdi-x/scalability/pkg/load"
	"github.com/intelsdi-x/scalability/pkg/metrics"
	"github.com/intelsdi-x/scalability/pkg/stopcondition"
	"github.com/intelsdi-x/scalability/pkg/utils/err_collection"
	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Campaign measures system under test at increasing offered load until
// a stop condition is triggered or datapoints run out.
type Campaign struct {
	// ID is unique identifier of the campaign, it tags every uploaded record.
	ID string
	// Name is human readable, time ordered identifier of the campaign.
	Name string

	config    Configuration
	generator LoadGenerator
	uploader  metrics.Uploader
	log       *logrus.Entry
}

// Option modifies optional campaign collaborators.
type Option func(*Campaign)

// WithUploader makes campaign send every measured datapoint to uploader.
func WithUploader(uploader metrics.Uploader) Option {
	return func(c *Campaign) {
		c.uploader = uploader
	}
}

// New constructs new Campaign. Load generator is required.
func New(config Configuration, generator LoadGenerator, opts ...Option) (*Campaign, error) {
	if generator == nil {
		return nil, errors.New("load generator is required")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid campaign configuration")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate campaign id")
	}

	c := &Campaign{
		ID:        id.String(),
		Name:      time.Now().Format("2006-01-02T15h04m05s_") + id.String(),
		config:    config,
		generator: generator,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logrus.WithField("campaign", c.ID)
	return c, nil
}

// Plan returns datapoints the campaign will measure.
func (c *Campaign) Plan() (datapoints.Sequence, error) {
	sequence, err := datapoints.Parse(c.config.Datapoints)
	if err != nil {
		return nil, errors.Wrap(err, "cannot plan campaign")
	}
	return sequence, nil
}

// aggregateLatency returns mean latency or configured percentile of samples.
// Empty samples give metrics.NoData.
func (c *Campaign) aggregateLatency(samples []float64) (float64, error) {
	if c.config.LatencyPercentile.IsZero() {
		return metrics.MeanOrSentinel(samples), nil
	}
	return metrics.PercentileOrSentinel(samples, c.config.LatencyPercentile.InexactFloat64())
}

// Run measures every planned datapoint in order and returns results gathered
// so far. It stops after the first iteration which triggers a stop condition.
// Failed uploads do not interrupt the campaign, they are reported after it ends.
func (c *Campaign) Run(ctx context.Context) (Results, error) {
	plan, err := c.Plan()
	if err != nil {
		return nil, err
	}
	maxIterations := c.config.IterationLimit(len(plan))
	c.log.WithFields(logrus.Fields{
		"datapoints":    len(plan),
		"maxIterations": maxIterations,
		"clients":       c.config.Clients,
	}).Info("Starting campaign ", c.Name)

	var uploadErrors errcollection.ErrorCollection
	results := Results{}
	for i, target := range plan {
		if err := ctx.Err(); err != nil {
			return results, errors.Wrapf(err, "campaign interrupted before iteration %d", i+1)
		}
		iteration := i + 1
		iterationLog := c.log.WithFields(logrus.Fields{"iteration": iteration, "target": target})

		share, err := load.Distribute(target, c.config.Clients)
		if err != nil {
			return results, errors.Wrapf(err, "iteration %d", iteration)
		}
		if shortfall := load.Shortfall(target, share); !shortfall.IsZero() {
			iterationLog.Debugf("Truncating per client rate to %v loses %s requests/s", share[0], shortfall)
		}

		measurement, err := c.generator.Load(ctx, share, c.config.LoadDuration)
		if err != nil {
			return results, errors.Wrapf(err, "load generation at %v requests/s failed in iteration %d", target, iteration)
		}

		latency, err := c.aggregateLatency(measurement.LatencySamples)
		if err != nil {
			return results, errors.Wrapf(err, "iteration %d", iteration)
		}
		if metrics.IsNoData(latency) {
			iterationLog.Warn("No latency samples measured")
		}

		decision := stopcondition.EvaluateLatencyFailureIteration(
			latency, c.config.LatencyThreshold,
			measurement.FailureRate(), c.config.FailureThreshold,
			iteration, maxIterations)
		accepted := !decision.TriggeredBy(stopcondition.LatencyLabel) &&
			!decision.TriggeredBy(stopcondition.FailureRateLabel)

		record := metrics.New(
			metrics.Tags{CampaignID: c.ID, Iteration: iteration},
			metrics.Measurement{
				TargetRPS:    target,
				ClientRPS:    share[0],
				Clients:      len(share),
				LoadDuration: c.config.LoadDuration,
				Latency:      latency,
				MaxLatency:   metrics.MaxOrSentinel(measurement.LatencySamples),
				FailureRate:  measurement.FailureRate(),
				Requests:     measurement.Requests,
				Failures:     measurement.Failures,
				Accepted:     accepted,
				Stop:         decision.Stop,
				Reasons:      decision.Triggered,
			})
		results = append(results, *record)

		if c.uploader != nil {
			if err := c.uploader.SendMetrics(*record); err != nil {
				iterationLog.Errorf("Uploading results failed: %v", err)
				uploadErrors.Add(errors.Wrapf(err, "iteration %d", iteration))
			}
		}

		if decision.Stop {
			iterationLog.Infof("Campaign stopped after %d of %d datapoints", iteration, len(plan))
			break
		}
	}

	return results, uploadErrors.GetErrIfAny()
}
