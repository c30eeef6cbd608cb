// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IssueGroupsUpserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "qualitygate_issue_groups_upserted_total",
	Help: "The total number of issue group upserts",
})

var IssueGroupsFirstSeen = promauto.NewCounter(prometheus.CounterOpts{
	Name: "qualitygate_issue_groups_first_seen_total",
	Help: "The total number of issue groups seen for the first time",
})

var IssueGroupingFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "qualitygate_issue_grouping_failed_total",
	Help: "The total number of scans whose findings could not be grouped",
})
