// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import "github.com/google/uuid"

// GateResult is the output of the quality gate evaluation.
type GateResult struct {
	Passed bool `json:"passed"`
	// Reason names the rule of the decision order which decided the result
	Reason                  string         `json:"reason"`
	Message                 string         `json:"message"`
	Overridden              bool           `json:"overridden"`
	NewViolations           int            `json:"new_violations"`
	SuppressedNewViolations int            `json:"suppressed_new_violations"`
	NewByCategory           map[string]int `json:"new_by_category"`
	NewBySeverity           map[string]int `json:"new_by_severity"`
	FailedBuckets           []string       `json:"failed_buckets,omitempty"`
}

const (
	GateReasonOverride         = "override"
	GateReasonDisabled         = "disabled"
	GateReasonCriticalSecurity = "critical-security"
	GateReasonZeroNew          = "zero-new"
	GateReasonThresholds       = "thresholds"
)

// ScanStats is persisted as jsonb on every scan.
type ScanStats struct {
	Total      int            `json:"total"`
	New        int            `json:"new"`
	Legacy     int            `json:"legacy"`
	Suppressed int            `json:"suppressed"`
	Excluded   int            `json:"excluded"`
	Truncated  bool           `json:"truncated"`
	Forced     bool           `json:"forced"`
	BySeverity map[string]int `json:"by_severity"`
	ByCategory map[string]int `json:"by_category"`
	Gate       GateResult     `json:"gate"`
}

// DiffContext is a snapshot of the pull request the scan was compared against.
type DiffContext struct {
	Source            string `json:"source"`
	Repository        string `json:"repository"`
	PullRequestNumber int    `json:"pull_request_number"`
	BaseSHA           string `json:"base_sha,omitempty"`
	HeadSHA           string `json:"head_sha"`
	ChangedFiles      int    `json:"changed_files"`
}

type QualityGateDTO struct {
	Passed                  bool   `json:"passed"`
	NewViolations           int    `json:"new_violations"`
	SuppressedNewViolations int    `json:"suppressed_new_violations"`
	Message                 string `json:"message"`
}

type BaselineDTO struct {
	ScanID     uuid.UUID `json:"scan_id"`
	Branch     string    `json:"branch"`
	CommitHash string    `json:"commit_hash"`
}

type ExplainDTO struct {
	Baseline                *BaselineDTO  `json:"baseline"`
	DetectionMode           DetectionMode `json:"detection_mode"`
	SuppressionsEnabled     bool          `json:"suppressions_enabled"`
	StrictMode              bool          `json:"strict_mode"`
	ForceDisabledWhenStrict bool          `json:"force_disabled_when_strict"`
	NewReasonValues         []NewReason   `json:"new_reason_values"`
}

type CapabilitiesDTO struct {
	PRDiff       bool `json:"pr_diff"`
	Suppressions bool `json:"suppressions"`
	CheckRuns    bool `json:"check_runs"`
	Slack        bool `json:"slack"`
	Discord      bool `json:"discord"`
}

// ScanResponse is returned by POST /report.
// scanId and scan_id carry the same value for older clients.
type ScanResponse struct {
	Success      bool            `json:"success"`
	ScanID       uuid.UUID       `json:"scanId"`
	ScanIDSnake  uuid.UUID       `json:"scan_id"`
	QualityGate  QualityGateDTO  `json:"quality_gate"`
	Explain      ExplainDTO      `json:"explain"`
	Plan         string          `json:"plan"`
	Capabilities CapabilitiesDTO `json:"capabilities"`
	UpgradeHint  string          `json:"upgrade_hint,omitempty"`
	UpgradeURL   string          `json:"upgrade_url,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Code    string          `json:"code,omitempty"`
	Details string          `json:"details,omitempty"`
	Missing map[string]bool `json:"missing,omitempty"`
}
