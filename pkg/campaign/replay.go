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
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/intelsdi-x/scalability/pkg/load"
	"github.com/pkg/errors"
)

// Recording is a measurement captured in a previous campaign.
type Recording struct {
	Latencies []float64 `json:"latencies"`
	Requests  int       `json:"requests"`
	Failures  int       `json:"failures"`
}

// Replay is a LoadGenerator returning recorded measurements in order.
// It lets thresholds and datapoints be tuned offline without issuing load.
type Replay struct {
	mu         sync.Mutex
	recordings []Recording
	next       int
}

// NewReplay returns Replay over given recordings.
func NewReplay(recordings []Recording) *Replay {
	return &Replay{recordings: recordings}
}

// ReadReplay decodes JSON array of recordings.
func ReadReplay(r io.Reader) (*Replay, error) {
	recordings := []Recording{}
	if err := json.NewDecoder(r).Decode(&recordings); err != nil {
		return nil, errors.Wrap(err, "cannot decode recordings")
	}
	return NewReplay(recordings), nil
}

// OpenReplay reads recordings from JSON file.
func OpenReplay(path string) (*Replay, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open recordings %q", path)
	}
	defer file.Close()
	return ReadReplay(file)
}

// Load implements LoadGenerator.
func (r *Replay) Load(ctx context.Context, rates load.Share, duration time.Duration) (Measurement, error) {
	if err := ctx.Err(); err != nil {
		return Measurement{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.next >= len(r.recordings) {
		return Measurement{}, errors.Errorf("only %d recordings available", len(r.recordings))
	}
	recording := r.recordings[r.next]
	r.next++

	return Measurement{
		LatencySamples: recording.Latencies,
		Requests:       recording.Requests,
		Failures:       recording.Failures,
	}, nil
}
