// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/shopcore/status"
)

func startHTTPServer(ipport string, src status.StatsSource) {
	srv := &http.Server{
		Addr:    ipport,
		Handler: status.NewRouter(src),
	}

	log.Infof("Serving status on %s", ipport)
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Error("Status server stopped")
	}
}
