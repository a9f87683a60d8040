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

package uploaders

import (
	"strings"
	"testing"
	"time"

	"github.com/intelsdi-x/scalability/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCassandraStatements(t *testing.T) {
	Convey("When preparing Cassandra statements", t, func() {
		Convey("Schema creates keyspace before the table", func() {
			statements := schemaStatements("campaigns")
			So(statements, ShouldHaveLength, 2)
			So(statements[0], ShouldStartWith, "CREATE KEYSPACE IF NOT EXISTS campaigns")
			So(statements[1], ShouldContainSubstring, "campaigns."+datapointTable)
			So(statements[1], ShouldContainSubstring, "PRIMARY KEY (campaign_id, iteration)")
		})

		Convey("Insert binds one value per column", func() {
			record := metrics.New(
				metrics.Tags{CampaignID: "abc", Iteration: 2},
				metrics.Measurement{
					TargetRPS:    300,
					ClientRPS:    100,
					Clients:      3,
					LoadDuration: 15 * time.Second,
					Latency:      metrics.NoData,
					MaxLatency:   metrics.NoData,
					Accepted:     true,
					Stop:         true,
					Reasons:      []string{"iteration 2 >= max iterations 2"},
				})

			statement, values := buildInsert("campaigns", *record)
			So(statement, ShouldStartWith, "INSERT INTO campaigns."+datapointTable)
			So(strings.Count(statement, "?"), ShouldEqual, len(values))
			So(values[0], ShouldEqual, "abc")
			So(values[1], ShouldEqual, 2)
			So(values[5], ShouldEqual, int64(15*time.Second))
			So(values[6], ShouldEqual, float64(metrics.NoData))
			So(values[7], ShouldEqual, float64(metrics.NoData))
			So(values[11], ShouldEqual, true)
			So(values[12], ShouldEqual, true)
		})

		Convey("Default config points to local node", func() {
			config := DefaultConfig()
			So(config.Host, ShouldResemble, []string{"127.0.0.1"})
			So(config.Port, ShouldEqual, 9042)
			So(config.CreateSchema, ShouldBeTrue)
		})
	})
}
