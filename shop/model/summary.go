// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
)

// ClerkStats counts what a single clerk handled.
type ClerkStats struct {
	ID        int `json:"id"`
	Customers int `json:"customers"`
	Items     int `json:"items"`
	Sales     int `json:"sales"`
	Register  int `json:"register"`
}

// RunSummary describes a finished simulation.
type RunSummary struct {
	Earnings        int           `json:"earnings"`
	ReceiptTotal    int           `json:"receiptTotal"`
	CustomersServed int           `json:"customersServed"`
	Abandoned       int           `json:"abandoned"`
	AssistantJobs   int           `json:"assistantJobs"`
	Clerks          []ClerkStats  `json:"clerks"`
	Elapsed         time.Duration `json:"elapsed"`
	FirstFatalError string        `json:"firstFatalError,omitempty"`
}

// RegisterTotal sums the clerks' registers.
func (s *RunSummary) RegisterTotal() int {
	total := 0
	for _, c := range s.Clerks {
		total += c.Register
	}
	return total
}

func (s *RunSummary) AsJSON() []byte {
	bytes, err := json.Marshal(s)
	if err != nil {
		log.Panicf("Failed to marshall run summary: %s", err)
	}
	return bytes
}
