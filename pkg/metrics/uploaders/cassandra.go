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
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/intelsdi-x/scalability/pkg/metrics"
	"github.com/pkg/errors"
)

const datapointTable = "campaign_datapoint"

// Config stores Cassandra database configuration.
type Config struct {
	Username string
	Password string
	Host     []string
	Port     int
	KeySpace string
	Timeout  time.Duration

	// CreateSchema creates keyspace and table when they do not exist.
	CreateSchema bool
}

// DefaultConfig returns configuration for local single node Cassandra.
func DefaultConfig() Config {
	return Config{
		Host:         []string{"127.0.0.1"},
		Port:         9042,
		KeySpace:     "scalability",
		Timeout:      10 * time.Second,
		CreateSchema: true,
	}
}

type cassandra struct {
	session  *gocql.Session
	keySpace string
}

// NewCassandra creates new Cassandra uploader. With CreateSchema it makes sure keyspace and table exist.
func NewCassandra(config Config) (metrics.Uploader, error) {
	cluster := gocql.NewCluster(config.Host...)
	cluster.ProtoVersion = 4
	if config.Port != 0 {
		cluster.Port = config.Port
	}
	if config.Timeout != 0 {
		cluster.Timeout = config.Timeout
	}
	if config.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrapf(err, "creating gocql session to %v failed", config.Host)
	}

	if !config.CreateSchema {
		return &cassandra{session: session, keySpace: config.KeySpace}, nil
	}
	for _, statement := range schemaStatements(config.KeySpace) {
		if err := session.Query(statement).Exec(); err != nil {
			session.Close()
			return nil, errors.Wrapf(err, "cannot prepare schema with %q", statement)
		}
	}

	return &cassandra{session: session, keySpace: config.KeySpace}, nil
}

func schemaStatements(keySpace string) []string {
	return []string{
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}`, keySpace),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
	campaign_id text,
	iteration int,
	target_rps double,
	client_rps double,
	clients int,
	load_duration bigint,
	latency double,
	max_latency double,
	failure_rate double,
	requests int,
	failures int,
	accepted boolean,
	stop boolean,
	reasons list<text>,
	PRIMARY KEY (campaign_id, iteration)
)`, keySpace, datapointTable),
	}
}

// buildInsert returns insert statement with its bound values for given record.
func buildInsert(keySpace string, record metrics.Record) (string, []interface{}) {
	statement := fmt.Sprintf(`INSERT INTO %s.%s (campaign_id, iteration, target_rps, client_rps, clients, load_duration, latency, max_latency, failure_rate, requests, failures, accepted, stop, reasons) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		keySpace, datapointTable)

	m := record.Metrics
	values := []interface{}{
		record.Tags.CampaignID,
		record.Tags.Iteration,
		m.TargetRPS,
		m.ClientRPS,
		m.Clients,
		int64(m.LoadDuration),
		m.Latency,
		m.MaxLatency,
		m.FailureRate,
		m.Requests,
		m.Failures,
		m.Accepted,
		m.Stop,
		m.Reasons,
	}
	return statement, values
}

// SendMetrics implements metrics.Uploader interface.
func (c *cassandra) SendMetrics(record metrics.Record) error {
	statement, values := buildInsert(c.keySpace, record)
	if err := c.session.Query(statement, values...).Exec(); err != nil {
		return errors.Wrapf(err, "saving datapoint %d of campaign %s failed", record.Tags.Iteration, record.Tags.CampaignID)
	}
	return nil
}

// Close releases the underlying session.
func (c *cassandra) Close() error {
	c.session.Close()
	return nil
}
