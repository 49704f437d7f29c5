// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekspedientki/checkout/shop/inventory"
	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/shopcore"
	"github.com/ekspedientki/checkout/shop/spawner"
)

type staticSource struct {
	stats shopcore.Stats
}

func (s *staticSource) Stats() shopcore.Stats {
	return s.stats
}

func TestPing(t *testing.T) {
	router := NewRouter(&staticSource{})
	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.Equal(t, "pong", responseRecorder.Body.String())
}

func TestStats(t *testing.T) {
	src := &staticSource{stats: shopcore.Stats{
		Running:   true,
		Customers: spawner.Counters{Active: 2, Spawned: 7, Quota: 10, Limit: 3, Completed: 5},
		Lines:     []int{1, 0},
		Clerks:    []model.ClerkStats{{ID: 0, Customers: 3, Register: 1200}, {ID: 1, Customers: 2}},
		Safe:      0,
	}}
	router := NewRouter(src)
	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/stats", nil))

	require.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.Contains(t, responseRecorder.Header().Get("Content-Type"), "application/json")

	var got shopcore.Stats
	require.NoError(t, json.Unmarshal(responseRecorder.Body.Bytes(), &got))
	assert.Equal(t, src.stats, got)
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(&staticSource{})
	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest("POST", "/stats", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, responseRecorder.Code)
}

func TestStatsOfFinishedShop(t *testing.T) {
	cfg := shopcore.DefaultConfig()
	cfg.Customers, cfg.Clerks, cfg.MaxConcurrent, cfg.Intensity = 3, 1, 2, 1
	shop, err := shopcore.New(cfg, inventory.NewDefaultCatalog())
	require.NoError(t, err)

	responseRecorder := httptest.NewRecorder()
	NewRouter(shop).ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/stats", nil))

	var got shopcore.Stats
	require.NoError(t, json.Unmarshal(responseRecorder.Body.Bytes(), &got))
	assert.False(t, got.Running)
	assert.Equal(t, 3, got.Customers.Quota)
	assert.Equal(t, []int{0}, got.Lines)
}
