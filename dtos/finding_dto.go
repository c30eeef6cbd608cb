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

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}

type Category string

const (
	CategorySecurity Category = "SECURITY"
	CategoryQuality  Category = "QUALITY"
	CategorySecret   Category = "SECRET"
	CategoryDeadCode Category = "DEAD_CODE"
)

var Categories = []Category{CategorySecurity, CategoryQuality, CategorySecret, CategoryDeadCode}

// NewReason explains why a finding was classified as new or legacy.
type NewReason string

const (
	NewReasonPRChangedLine     NewReason = "pr-changed-line"
	NewReasonPRFileFallback    NewReason = "pr-file-fallback"
	NewReasonLegacy            NewReason = "legacy"
	NewReasonFirstScanBaseline NewReason = "first-scan-baseline"
	NewReasonNotInBaseline     NewReason = "not-in-baseline"
)

var NewReasons = []NewReason{
	NewReasonPRChangedLine,
	NewReasonPRFileFallback,
	NewReasonLegacy,
	NewReasonFirstScanBaseline,
	NewReasonNotInBaseline,
}

type DetectionMode string

const (
	DetectionModePRDiff    DetectionMode = "pr-diff"
	DetectionModeBaseline  DetectionMode = "baseline"
	DetectionModeFirstScan DetectionMode = "first-scan"
)

// RawFinding is a single finding as sent by a client. Every field is optional.
type RawFinding struct {
	RuleID     FlexString `json:"rule_id"`
	ToolRuleID FlexString `json:"tool_rule_id"`
	FilePath   FlexString `json:"file_path"`
	File       FlexString `json:"file"`
	LineNumber *FlexInt   `json:"line_number"`
	Line       *FlexInt   `json:"line"`
	Message    FlexString `json:"message"`
	Snippet    FlexString `json:"snippet"`
	Severity   FlexString `json:"severity"`
	Category   FlexString `json:"category"`
}

// NormalizedFinding is the canonical shape every finding is converted into
// before classification. All string fields are non-empty except message and snippet.
type NormalizedFinding struct {
	RuleID     string   `json:"rule_id"`
	ToolRuleID string   `json:"tool_rule_id,omitempty"`
	FilePath   string   `json:"file_path"`
	LineNumber int      `json:"line_number"`
	Message    string   `json:"message"`
	Snippet    string   `json:"snippet"`
	Severity   Severity `json:"severity"`
	Category   Category `json:"category"`
}

// ClassifiedFinding is a normalized finding with its new/legacy and suppression decision.
type ClassifiedFinding struct {
	NormalizedFinding
	IsNew        bool      `json:"is_new"`
	NewReason    NewReason `json:"new_reason"`
	IsSuppressed bool      `json:"is_suppressed"`
}
