// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekspedientki/checkout/shop/clerk"
	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/shopcore"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "14.00", formatCents(1400))
	assert.Equal(t, "-4.00", formatCents(-400))
}

func TestPrintSummary(t *testing.T) {
	summary := &model.RunSummary{
		Earnings:        1900,
		CustomersServed: 2,
		AssistantJobs:   1,
		Clerks:          []model.ClerkStats{{ID: 0, Customers: 2, Items: 3, Register: 1900}},
		Elapsed:         time.Second,
	}

	var out bytes.Buffer
	printSummary(&out, summary, false)
	assert.Contains(t, out.String(), "Customers served: 2\n")
	assert.Contains(t, out.String(), "Clerk 0: 2 customers, 3 items, register 19.00\n")
	assert.Contains(t, out.String(), "Total earnings: 19.00\n")
	assert.NotContains(t, out.String(), "abandoned")

	out.Reset()
	printSummary(&out, summary, true)
	var decoded model.RunSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, *summary, decoded)
}

func TestGetConfig(t *testing.T) {
	opts := options{Customers: 5, Clerks: 2, MaxConcurrent: 3, Intensity: 1, Wallet: 100, AssistantWait: "batch"}
	cfg, err := getConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, clerk.WaitBatch, cfg.AssistantWait)
	assert.Equal(t, 5, cfg.Customers)

	opts.Clerks = 0
	_, err = getConfig(opts)
	assert.ErrorIs(t, err, shopcore.ErrInvalidConfig)

	opts.Clerks = 2
	opts.AssistantWait = "parallel"
	_, err = getConfig(opts)
	assert.Error(t, err)
}
