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

package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/pkg/errors"
)

var ErrInvalidReport = errors.New("invalid report")

const (
	DefaultCommitHash = "local"
	DefaultBranch     = "main"
	DefaultActor      = "unknown"
	DefaultNativeTool = "cli"

	DefaultMaxFindings = 5000
)

// RawReport is either a NativeReport or a SarifReport.
// It never leaves this package un-normalized.
type RawReport interface {
	metadata() dtos.ReportMetadata
}

type NativeReport struct {
	Body dtos.NativeReportBody
}

func (n NativeReport) metadata() dtos.ReportMetadata {
	return n.Body.ReportMetadata
}

type SarifReport struct {
	Body dtos.SarifReportBody
	// runs which could not be decoded
	SkippedRuns int
}

func (s SarifReport) metadata() dtos.ReportMetadata {
	return s.Body.ReportMetadata
}

type Options struct {
	MaxFindings int
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsSarif decides the report format by shape: a runs array and no findings key.
func IsSarif(fields map[string]json.RawMessage) bool {
	runs, hasRuns := fields["runs"]
	_, hasFindings := fields["findings"]
	return hasRuns && !hasFindings && isJSONArray(runs)
}

// Parse decodes a request body into a RawReport.
// Only a body which is not a json object is rejected. Malformed fields are tolerated.
func Parse(body []byte) (RawReport, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errors.Wrap(ErrInvalidReport, err.Error())
	}
	if fields == nil {
		return nil, errors.Wrap(ErrInvalidReport, "body must be a json object")
	}

	var meta dtos.ReportMetadata
	// all metadata fields are lenient scalars, this does not fail on a valid object
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, errors.Wrap(ErrInvalidReport, err.Error())
	}

	if IsSarif(fields) {
		return parseSarif(fields, meta), nil
	}

	native := dtos.NativeReportBody{ReportMetadata: meta}
	if summary, ok := fields["summary"]; ok && isJSONObject(summary) {
		native.Summary = summary
	}
	if findings, ok := fields["findings"]; ok && isJSONArray(findings) {
		if err := json.Unmarshal(findings, &native.Findings); err != nil {
			return nil, errors.Wrap(ErrInvalidReport, err.Error())
		}
	}
	return NativeReport{Body: native}, nil
}

func parseSarif(fields map[string]json.RawMessage, meta dtos.ReportMetadata) SarifReport {
	report := SarifReport{Body: dtos.SarifReportBody{ReportMetadata: meta}}
	_ = json.Unmarshal(fields["version"], &report.Body.Version)
	_ = json.Unmarshal(fields["$schema"], &report.Body.Schema)

	var runs []json.RawMessage
	if err := json.Unmarshal(fields["runs"], &runs); err != nil {
		return report
	}
	for _, raw := range runs {
		var run dtos.SarifRun
		if err := json.Unmarshal(raw, &run); err != nil {
			report.SkippedRuns++
			continue
		}
		report.Body.Runs = append(report.Body.Runs, run)
	}
	return report
}

// Report converts a raw report into the canonical NormalizedReport. It never fails.
func Report(raw RawReport, opts Options) dtos.NormalizedReport {
	maxFindings := opts.MaxFindings
	if maxFindings <= 0 {
		maxFindings = DefaultMaxFindings
	}

	meta := raw.metadata()
	out := dtos.NormalizedReport{
		CommitHash: firstOr(meta.CommitHash.String(), DefaultCommitHash),
		Branch:     firstOr(meta.Branch.String(), DefaultBranch),
		Actor:      firstOr(meta.Actor.String(), DefaultActor),
		IsForced:   bool(meta.IsForced),
		Summary:    map[string]any{},
	}

	var rawFindings []dtos.RawFinding
	switch r := raw.(type) {
	case NativeReport:
		out.Tool = firstOr(meta.Tool.String(), DefaultNativeTool)
		if len(r.Body.Summary) > 0 {
			if err := json.Unmarshal(r.Body.Summary, &out.Summary); err != nil {
				out.Summary = map[string]any{}
			}
		}

		elements := r.Body.Findings
		if len(elements) > maxFindings {
			out.Truncated = true
			out.Warnings = append(out.Warnings, truncationWarning(len(elements), maxFindings))
			elements = elements[:maxFindings]
		}
		rawFindings = make([]dtos.RawFinding, 0, len(elements))
		malformed := 0
		for _, element := range elements {
			var f dtos.RawFinding
			if !isJSONObject(element) || json.Unmarshal(element, &f) != nil {
				malformed++
				f = dtos.RawFinding{}
			}
			rawFindings = append(rawFindings, f)
		}
		if malformed > 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%d findings were malformed and filled with defaults", malformed))
		}
	case SarifReport:
		out.IsSarif = true
		out.Tool = firstOr(meta.Tool.String(), SarifToolName(r.Body.SarifDocument))
		rawFindings, out.Summary = SarifToFindings(r.Body.SarifDocument)
		if r.SkippedRuns > 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%d sarif runs could not be decoded and were skipped", r.SkippedRuns))
		}
		if len(rawFindings) > maxFindings {
			out.Truncated = true
			out.Warnings = append(out.Warnings, truncationWarning(len(rawFindings), maxFindings))
			rawFindings = rawFindings[:maxFindings]
		}
	}

	out.Findings = make([]dtos.NormalizedFinding, 0, len(rawFindings))
	for _, f := range rawFindings {
		out.Findings = append(out.Findings, Finding(f))
	}
	return out
}

func truncationWarning(total, max int) string {
	return fmt.Sprintf("report contained %d findings, only the first %d were processed", total, max)
}

func firstOr(value, def string) string {
	return utils.FirstNonEmpty(value, def)
}
