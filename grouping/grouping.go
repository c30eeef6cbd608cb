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

package grouping

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/utils"
)

// FingerprintLength is the number of hex characters of a fingerprint.
const FingerprintLength = 32

type Key struct {
	RuleID     string
	FilePath   string
	LineNumber int
}

// Group is a set of findings considered the same issue. The first member is canonical.
type Group struct {
	Key     Key
	Members []models.Finding
}

func (g Group) Canonical() models.Finding {
	return g.Members[0]
}

func (g Group) MemberIDs() []uuid.UUID {
	return utils.Map(g.Members, func(f models.Finding) uuid.UUID {
		return f.ID
	})
}

// AffectedFiles returns the distinct file paths of all members in sorted order.
func (g Group) AffectedFiles() []string {
	seen := make(map[string]struct{}, 1)
	files := make([]string, 0, 1)
	for _, m := range g.Members {
		if _, ok := seen[m.FilePath]; ok {
			continue
		}
		seen[m.FilePath] = struct{}{}
		files = append(files, m.FilePath)
	}
	slices.Sort(files)
	return files
}

type ruleFile struct {
	ruleID   string
	filePath string
}

// Findings groups findings by rule, file and line. With a lineWindow > 0 a finding also joins the
// first group of the same rule and file whose canonical line is at most lineWindow lines away.
// Groups are returned in the order their canonical finding was encountered.
func Findings(findings []models.Finding, lineWindow int) []Group {
	if lineWindow < 0 {
		lineWindow = 0
	}

	groups := make([]Group, 0)
	byRuleFile := make(map[ruleFile][]int)

	for _, f := range findings {
		rf := ruleFile{ruleID: f.RuleID, filePath: f.FilePath}

		joined := false
		for _, idx := range byRuleFile[rf] {
			if abs(groups[idx].Key.LineNumber-f.LineNumber) <= lineWindow {
				groups[idx].Members = append(groups[idx].Members, f)
				joined = true
				break
			}
		}
		if joined {
			continue
		}

		groups = append(groups, Group{
			Key:     Key{RuleID: f.RuleID, FilePath: f.FilePath, LineNumber: f.LineNumber},
			Members: []models.Finding{f},
		})
		byRuleFile[rf] = append(byRuleFile[rf], len(groups)-1)
	}
	return groups
}

// Fingerprint derives the stable identity of an issue. Message and snippet do not contribute.
func Fingerprint(projectID uuid.UUID, ruleID, filePath string, line int) string {
	return utils.HashString(fmt.Sprintf("%s|%s|%s|%d", projectID, ruleID, filePath, line))[:FingerprintLength]
}

func (g Group) Fingerprint(projectID uuid.UUID) string {
	return Fingerprint(projectID, g.Key.RuleID, g.Key.FilePath, g.Key.LineNumber)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
