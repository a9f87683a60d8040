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

package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const logFileName = "campaign.log"

// CreateCampaignDir creates directory for campaign logs under root and opens log file within.
func CreateCampaignDir(root, campaignName string) (string, *os.File, error) {
	directory := path.Join(root, campaignName)
	if err := os.MkdirAll(directory, 0o777); err != nil {
		return "", nil, errors.Wrapf(err, "cannot create campaign directory %q", directory)
	}

	logFile, err := os.OpenFile(path.Join(directory, logFileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create log file in %q", directory)
	}
	return directory, logFile, nil
}

// Initialize creates campaign logs directory and configures logrus to write to both stderr and log file.
// Returned closer releases the log file and restores stderr output.
func Initialize(root, campaignName string) (io.Closer, error) {
	directory, logFile, err := CreateCampaignDir(root, campaignName)
	if err != nil {
		return nil, err
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})
	logrus.Infof("Working directory %q", directory)
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))

	return closerFunc(func() error {
		logrus.SetOutput(os.Stderr)
		return logFile.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
