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

package classify

import (
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/normalize"
)

// FileChange describes the changed lines of a single file in a pull request.
type FileChange struct {
	Lines map[int]struct{}
	// WholeFile is set if the changed lines are unknown, e.g. binary files or patches too large to render
	WholeFile bool
}

// DiffScope is the set of files and lines a pull request touches, keyed by normalized path.
type DiffScope struct {
	PullRequestNumber int
	BaseSHA           string
	HeadSHA           string
	Files             map[string]FileChange
}

func NewDiffScope() *DiffScope {
	return &DiffScope{Files: make(map[string]FileChange)}
}

// AddFile registers changed lines of a file. Passing no lines marks the whole file as changed.
func (d *DiffScope) AddFile(path string, lines ...int) {
	path = normalize.NormalizePath(path)
	change := d.Files[path]
	if len(lines) == 0 {
		change.WholeFile = true
	}
	if change.Lines == nil {
		change.Lines = make(map[int]struct{}, len(lines))
	}
	for _, l := range lines {
		change.Lines[l] = struct{}{}
	}
	d.Files[path] = change
}

func (d *DiffScope) classify(f dtos.NormalizedFinding) (bool, dtos.NewReason) {
	change, ok := d.Files[f.FilePath]
	if !ok {
		return false, dtos.NewReasonLegacy
	}
	if _, changed := change.Lines[f.LineNumber]; changed && f.LineNumber > 0 {
		return true, dtos.NewReasonPRChangedLine
	}
	if change.WholeFile || f.LineNumber == 0 {
		return true, dtos.NewReasonPRFileFallback
	}
	return false, dtos.NewReasonLegacy
}

type creditKey struct {
	ruleID   string
	filePath string
}

// BaselineFinding is the part of a baseline finding the credit matching looks at.
type BaselineFinding struct {
	RuleID   string
	FilePath string
}

type Input struct {
	PRDiffEnabled bool
	// DiffScope is nil if no pull request information is available for the commit
	DiffScope *DiffScope
	// HasBaseline is false if the project has no comparable scan
	HasBaseline      bool
	BaselineFindings []BaselineFinding
}

// DetectionMode reports which classification strategy Classify will use for the input.
func (in Input) DetectionMode() dtos.DetectionMode {
	switch {
	case in.PRDiffEnabled && in.DiffScope != nil:
		return dtos.DetectionModePRDiff
	case !in.HasBaseline:
		return dtos.DetectionModeFirstScan
	default:
		return dtos.DetectionModeBaseline
	}
}

// Classify decides is_new and new_reason for every finding. The order of the findings is preserved.
//
// With a pull request diff, findings on changed lines are new. Without one, findings are matched
// against the baseline as a multiset over rule and file, so moved lines do not count as new.
func Classify(findings []dtos.NormalizedFinding, in Input) []dtos.ClassifiedFinding {
	out := make([]dtos.ClassifiedFinding, len(findings))

	switch in.DetectionMode() {
	case dtos.DetectionModePRDiff:
		for i, f := range findings {
			isNew, reason := in.DiffScope.classify(f)
			out[i] = dtos.ClassifiedFinding{NormalizedFinding: f, IsNew: isNew, NewReason: reason}
		}
	case dtos.DetectionModeFirstScan:
		for i, f := range findings {
			out[i] = dtos.ClassifiedFinding{NormalizedFinding: f, IsNew: false, NewReason: dtos.NewReasonFirstScanBaseline}
		}
	default:
		credits := make(map[creditKey]int, len(in.BaselineFindings))
		for _, b := range in.BaselineFindings {
			credits[creditKey{ruleID: b.RuleID, filePath: b.FilePath}]++
		}
		for i, f := range findings {
			key := creditKey{ruleID: f.RuleID, filePath: f.FilePath}
			if credits[key] > 0 {
				credits[key]--
				out[i] = dtos.ClassifiedFinding{NormalizedFinding: f, IsNew: false, NewReason: dtos.NewReasonLegacy}
				continue
			}
			out[i] = dtos.ClassifiedFinding{NormalizedFinding: f, IsNew: true, NewReason: dtos.NewReasonNotInBaseline}
		}
	}
	return out
}
