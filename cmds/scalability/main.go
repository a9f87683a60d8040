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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/intelsdi-x/scalability/pkg/campaign"
	"github.com/intelsdi-x/scalability/pkg/campaign/logger"
	"github.com/intelsdi-x/scalability/pkg/conf"
	"github.com/intelsdi-x/scalability/pkg/metrics/uploaders"
	"github.com/intelsdi-x/scalability/pkg/utils/errutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// stopExitCode is returned by evaluate and run when a stop condition was triggered.
const stopExitCode = 2

var (
	// Cassandra uploader configuration. Results are not uploaded when no host is given.
	uploadHostsFlag    = conf.NewSliceFlag("upload_hosts", "Cassandra hosts results are uploaded to (--upload_hosts=A --upload_hosts=B).")
	uploadKeySpaceFlag = conf.NewStringFlag("upload_keyspace", "Cassandra keyspace for results.", uploaders.DefaultConfig().KeySpace)
	uploadPortFlag     = conf.NewIntFlag("upload_port", "Cassandra native protocol port.", uploaders.DefaultConfig().Port)
	uploadUserFlag     = conf.NewStringFlag("upload_username", "Cassandra username.", "")
	uploadPasswordFlag = conf.NewStringFlag("upload_password", "Cassandra password.", "")
	uploadSchemaFlag   = conf.NewBoolFlag("upload_create_schema", "Create Cassandra keyspace and table when missing.", true)

	logDirFlag = conf.NewStringFlag("log_dir", "Directory where campaign logs are stored. Logs go only to stderr when empty.", "")

	planCmd = conf.Command("plan", "Print datapoints of the campaign and offered load of every client.")

	evaluateCmd       = conf.Command("evaluate", "Evaluate stop conditions for a single measurement.")
	evaluateLatency   = evaluateCmd.Arg("latency", "Aggregated latency, -1 when no data (pass after --).").Required().Float64()
	evaluateFailure   = evaluateCmd.Arg("failure_rate", "Failure rate (0..1).").Required().Float64()
	evaluateIteration = evaluateCmd.Arg("iteration", "1-based iteration number.").Required().Int()

	distributeCmd  = conf.Command("distribute", "Split offered load between clients.")
	distributeLoad = distributeCmd.Arg("load", "Offered load. [RPS]").Required().Float64()

	configCmd = conf.Command("config", "Dump configuration as environment file.")

	runCmd        = conf.Command("run", "Run campaign replaying recorded measurements.")
	runRecordings = runCmd.Arg("recordings", "JSON file with recorded measurements.").Required().ExistingFile()
)

func uploaderConfig() uploaders.Config {
	config := uploaders.DefaultConfig()
	config.Host = uploadHostsFlag.Value()
	config.Port = uploadPortFlag.Value()
	config.KeySpace = uploadKeySpaceFlag.Value()
	config.Username = uploadUserFlag.Value()
	config.Password = uploadPasswordFlag.Value()
	config.CreateSchema = uploadSchemaFlag.Value()
	return config
}

func runCampaign(ctx context.Context, out io.Writer) (stopped bool, err error) {
	config, err := campaign.DefaultConfiguration()
	if err != nil {
		return false, err
	}

	replay, err := campaign.OpenReplay(*runRecordings)
	if err != nil {
		return false, err
	}

	options := []campaign.Option{}
	if len(uploadHostsFlag.Value()) > 0 {
		uploader, err := uploaders.NewCassandra(uploaderConfig())
		if err != nil {
			return false, errors.Wrap(err, "cannot connect to Cassandra")
		}
		if closer, ok := uploader.(io.Closer); ok {
			defer closer.Close()
		}
		options = append(options, campaign.WithUploader(uploader))
	}

	c, err := campaign.New(config, replay, options...)
	if err != nil {
		return false, err
	}
	if logDirFlag.Value() != "" {
		closer, err := logger.Initialize(logDirFlag.Value(), c.Name)
		if err != nil {
			return false, errors.Wrap(err, "cannot create campaign logs directory")
		}
		defer closer.Close()
	}
	logrus.WithFields(configurationFields(conf.GetFlags())).Infof("Starting campaign %s", c.Name)

	results, err := c.Run(ctx)
	results.Render(out)

	if last, ok := results.LastAccepted(); ok {
		fmt.Fprintf(out, "Highest accepted load: %s RPS\n", formatFloat(last.Metrics.TargetRPS))
	} else {
		fmt.Fprintln(out, "No datapoint was accepted")
	}
	return results.Stopped(), err
}

func main() {
	conf.SetAppName("scalability")
	conf.SetHelp(`Scalability campaign plans offered load datapoints, splits them between load generating clients
and stops once latency, failure rate or iteration limit is reached.`)

	command, err := conf.ParseFlags()
	errutil.Check(err)

	logrus.SetLevel(conf.LogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stopped := false
	switch command {
	case planCmd.FullCommand():
		config, err := campaign.DefaultConfiguration()
		errutil.Check(err)
		errutil.Check(plan(os.Stdout, config))
	case evaluateCmd.FullCommand():
		config, err := campaign.DefaultConfiguration()
		errutil.Check(err)
		stopped, err = evaluate(os.Stdout, config, *evaluateLatency, *evaluateFailure, *evaluateIteration)
		errutil.Check(err)
	case distributeCmd.FullCommand():
		errutil.Check(distribute(os.Stdout, *distributeLoad, campaign.ClientsFlag.Value()))
	case configCmd.FullCommand():
		fmt.Println(conf.DumpConfig())
	case runCmd.FullCommand():
		stopped, err = runCampaign(ctx, os.Stdout)
		errutil.Check(err)
	default:
		errutil.Check(errors.Errorf("unknown command %q", command))
	}

	if stopped {
		cancel()
		os.Exit(stopExitCode)
	}
}
