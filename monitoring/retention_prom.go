// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RetentionDeletedScans = promauto.NewCounter(prometheus.CounterOpts{
	Name: "qualitygate_retention_deleted_scans_total",
	Help: "The total number of scans deleted by retention",
})

var RetentionRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "qualitygate_retention_run_duration_seconds",
	Help:    "Duration of a full retention run over all projects in seconds",
	Buckets: prometheus.DefBuckets,
})
