// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/model"
)

func signalHandler(cancel context.CancelFunc) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	sigReceived := <-sig
	log.WithField("signal", sigReceived.String()).Info("Received signal, closing the shop")
	cancel()
}

func printSummary(w io.Writer, summary *model.RunSummary, asJSON bool) {
	if asJSON {
		fmt.Fprintln(w, string(summary.AsJSON()))
		return
	}

	fmt.Fprintf(w, "Customers served: %d\n", summary.CustomersServed)
	if summary.Abandoned > 0 {
		fmt.Fprintf(w, "Customers abandoned: %d\n", summary.Abandoned)
	}
	fmt.Fprintf(w, "Assistant jobs: %d\n", summary.AssistantJobs)
	for _, c := range summary.Clerks {
		fmt.Fprintf(w, "Clerk %d: %d customers, %d items, register %s\n", c.ID, c.Customers, c.Items, formatCents(c.Register))
	}
	fmt.Fprintf(w, "Total earnings: %s\n", formatCents(summary.Earnings))
	fmt.Fprintf(w, "Elapsed: %s\n", summary.Elapsed)
	if summary.FirstFatalError != "" {
		fmt.Fprintf(w, "Error: %s\n", summary.FirstFatalError)
	}
}

func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
