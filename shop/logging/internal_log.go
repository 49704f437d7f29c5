// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log"

	"github.com/sirupsen/logrus"
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// SetLogLevel parses level and applies it together with the internal formatter.
// Printing forces debug level regardless of level.
func SetLogLevel(level string, printing bool) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	if printing && parsed < logrus.DebugLevel {
		parsed = logrus.DebugLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&InternalFormatter{})
	return nil
}
