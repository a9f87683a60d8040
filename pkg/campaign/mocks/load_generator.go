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

package mocks

import (
	"context"
	"time"

	"github.com/intelsdi-x/scalability/pkg/campaign"
	"github.com/intelsdi-x/scalability/pkg/load"
	"github.com/stretchr/testify/mock"
)

// LoadGenerator mock
type LoadGenerator struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, rates, duration
func (_m *LoadGenerator) Load(ctx context.Context, rates load.Share, duration time.Duration) (campaign.Measurement, error) {
	ret := _m.Called(ctx, rates, duration)

	var r0 campaign.Measurement
	if rf, ok := ret.Get(0).(func(context.Context, load.Share, time.Duration) campaign.Measurement); ok {
		r0 = rf(ctx, rates, duration)
	} else {
		r0 = ret.Get(0).(campaign.Measurement)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, load.Share, time.Duration) error); ok {
		r1 = rf(ctx, rates, duration)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
