// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/clerk"
	"github.com/ekspedientki/checkout/shop/inventory"
	"github.com/ekspedientki/checkout/shop/invariant"
	"github.com/ekspedientki/checkout/shop/logging"
	"github.com/ekspedientki/checkout/shop/shopcore"
)

type options struct {
	Customers     int           `long:"customers" default:"100" description:"number of customers that visit the shop"`
	Clerks        int           `long:"clerks" default:"3" description:"number of clerks"`
	MaxConcurrent int           `long:"max-concurrent" default:"10" description:"maximum number of customers inside at once"`
	Intensity     int           `long:"intensity" default:"100" description:"assistant work per prepared item"`
	Wallet        int           `long:"wallet" default:"10000" description:"starting wallet of every customer, in cents"`
	AssistantWait string        `long:"assistant-wait" default:"serial" choice:"serial" choice:"batch" description:"when clerks wait for the assistant"`
	Deadline      time.Duration `long:"deadline" default:"0s" description:"close the shop after this long, 0 for no limit"`
	Print         bool          `long:"print" description:"trace every step of every actor"`
	NoAsserts     bool          `long:"no-asserts" description:"disable invariant checks"`
	LogLevel      string        `long:"log-level" default:"info" description:"log level"`
	StatusAddr    string        `long:"status-addr" description:"serve live stats on this address, e.g. 127.0.0.1:8080"`
	JSON          bool          `long:"json" description:"print the summary as JSON"`
}

func main() {
	opts := getCLIArgs()

	if err := logging.SetLogLevel(opts.LogLevel, opts.Print); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}
	invariant.SetEnabled(!opts.NoAsserts)

	cfg, err := getConfig(opts)
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	shop, err := shopcore.New(cfg, inventory.NewDefaultCatalog())
	if err != nil {
		log.WithError(err).Fatal("Failed to open the shop")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go signalHandler(cancel)

	if len(opts.StatusAddr) > 0 {
		go startHTTPServer(opts.StatusAddr, shop)
	}

	summary, err := shop.Run(ctx)
	printSummary(os.Stdout, &summary, opts.JSON)
	if err != nil {
		os.Exit(1)
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(err.Error() + "\n")
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}

func getConfig(opts options) (shopcore.Config, error) {
	policy, err := clerk.ParseWaitPolicy(opts.AssistantWait)
	if err != nil {
		return shopcore.Config{}, err
	}

	cfg := shopcore.Config{
		Customers:     opts.Customers,
		Clerks:        opts.Clerks,
		MaxConcurrent: opts.MaxConcurrent,
		Intensity:     opts.Intensity,
		Wallet:        opts.Wallet,
		AssistantWait: policy,
		Deadline:      opts.Deadline,
	}
	return cfg, cfg.Validate()
}
