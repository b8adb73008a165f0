// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Hook names used in logs and metric labels.
const (
	HookTransform = "transform"
	HookPrebundle = "prebundle"
)

// Outcome label values.
const (
	outcomeTransformed = "transformed"
	outcomeDeclined    = "declined"
	outcomeFailed      = "failed"
)

// metrics holds per-plugin collectors.
type metrics struct {
	files    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics creates collectors registered with reg; nil reg leaves them unregistered.
//
// Collectors already registered by another plugin on the same reg are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pluginswc_files_total",
				Help: "Total number of files seen by plugin hooks",
			},
			[]string{"hook", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pluginswc_transform_duration_seconds",
				Help:    "Transformer call duration in seconds, excluding filter and source read",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"hook"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.files, err = registerOrReuse(reg, m.files); err != nil {
		return nil, err
	}
	if m.duration, err = registerOrReuse(reg, m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// registerOrReuse registers c, returning the existing collector when an equal one is already registered.
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("register metrics: %w", err)
}

// count records one hook outcome.
func (m *metrics) count(hook, outcome string) {
	m.files.WithLabelValues(hook, outcome).Inc()
}

// observeTransform records one transformer call started at started.
func (m *metrics) observeTransform(hook string, started time.Time) {
	m.duration.WithLabelValues(hook).Observe(time.Since(started).Seconds())
}
