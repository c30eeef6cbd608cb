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

import "encoding/json"

// ReportMetadata holds the fields shared by native and SARIF uploads.
type ReportMetadata struct {
	CommitHash FlexString `json:"commit_hash"`
	Branch     FlexString `json:"branch"`
	Actor      FlexString `json:"actor"`
	Tool       FlexString `json:"tool"`
	IsForced   FlexBool   `json:"is_forced"`
}

// NativeReportBody is the report format produced by the cli.
// Findings are kept raw so a single malformed element does not reject the whole report.
type NativeReportBody struct {
	ReportMetadata
	Summary  json.RawMessage   `json:"summary"`
	Findings []json.RawMessage `json:"findings"`
}

// SarifReportBody is a SARIF document which may carry the same metadata as native uploads.
type SarifReportBody struct {
	ReportMetadata
	SarifDocument
}

// NormalizedReport is the single canonical shape both upload formats are converted into.
type NormalizedReport struct {
	Summary    map[string]any      `json:"summary"`
	Findings   []NormalizedFinding `json:"findings"`
	CommitHash string              `json:"commit_hash"`
	Branch     string              `json:"branch"`
	Actor      string              `json:"actor"`
	Tool       string              `json:"tool"`
	IsForced   bool                `json:"is_forced"`
	IsSarif    bool                `json:"is_sarif"`
	// Truncated is set if the report contained more findings than allowed
	Truncated bool     `json:"truncated"`
	Warnings  []string `json:"warnings,omitempty"`
}
