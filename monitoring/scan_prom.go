// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScansIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qualitygate_scans_ingested_total",
	Help: "The total number of ingested scans",
}, []string{"plan", "result"})

var ScanIngestionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "qualitygate_scan_ingestion_duration_seconds",
	Help:    "Duration of the synchronous part of a report ingestion in seconds",
	Buckets: prometheus.DefBuckets,
})

var FindingsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qualitygate_findings_ingested_total",
	Help: "The total number of persisted findings",
}, []string{"source"})

var ReportsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qualitygate_reports_rejected_total",
	Help: "The total number of rejected reports",
}, []string{"code"})
