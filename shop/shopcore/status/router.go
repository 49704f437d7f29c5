// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package status serves a read-only HTTP view of a running shop.
package status

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/shopcore"
)

// StatsSource is the shop as seen by the status API.
type StatsSource interface {
	Stats() shopcore.Stats
}

// NewRouter returns the status routes: GET /ping and GET /stats.
func NewRouter(src StatsSource) *chi.Mux {
	r := chi.NewRouter()
	r.Use(accessLogDecorator)

	r.Get("/ping", PingHandler)
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) { StatsHandler(w, r, src) })
	return r
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

func StatsHandler(w http.ResponseWriter, r *http.Request, src StatsSource) {
	stats := src.Stats()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &stats)
}

func accessLogDecorator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := http.StatusOK
		if ww.Status() != 0 {
			status = ww.Status()
		}
		if status/100 != 2 {
			log.Warnf("status: <- %s %s %d", r.Method, r.URL, status)
		} else {
			log.Debugf("status: <- %s %s %d", r.Method, r.URL, status)
		}
	})
}
