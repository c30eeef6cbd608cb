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
	"strings"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
)

const (
	MaxRuleIDLength  = 100
	MaxMessageLength = 1000
	MaxSnippetLength = 2000

	UnknownRuleID   = "UNKNOWN"
	UnknownFilePath = "unknown"
)

var severityAliases = map[string]dtos.Severity{
	"CRITICAL":      dtos.SeverityCritical,
	"BLOCKER":       dtos.SeverityCritical,
	"HIGH":          dtos.SeverityHigh,
	"ERROR":         dtos.SeverityHigh,
	"MAJOR":         dtos.SeverityHigh,
	"MEDIUM":        dtos.SeverityMedium,
	"MODERATE":      dtos.SeverityMedium,
	"WARNING":       dtos.SeverityMedium,
	"WARN":          dtos.SeverityMedium,
	"LOW":           dtos.SeverityLow,
	"MINOR":         dtos.SeverityLow,
	"NOTE":          dtos.SeverityLow,
	"INFO":          dtos.SeverityInfo,
	"INFORMATIONAL": dtos.SeverityInfo,
	"NONE":          dtos.SeverityInfo,
}

var categoryAliases = map[string]dtos.Category{
	"SECURITY":      dtos.CategorySecurity,
	"VULNERABILITY": dtos.CategorySecurity,
	"VULN":          dtos.CategorySecurity,
	"QUALITY":       dtos.CategoryQuality,
	"CODE_SMELL":    dtos.CategoryQuality,
	"STYLE":         dtos.CategoryQuality,
	"SECRET":        dtos.CategorySecret,
	"SECRETS":       dtos.CategorySecret,
	"DEAD_CODE":     dtos.CategoryDeadCode,
	"DEADCODE":      dtos.CategoryDeadCode,
	"UNUSED":        dtos.CategoryDeadCode,
}

func normalizeToken(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// Severity maps any scanner severity onto the fixed vocabulary. Unknown values become MEDIUM.
func Severity(s string) dtos.Severity {
	if sev, ok := severityAliases[normalizeToken(s)]; ok {
		return sev
	}
	return dtos.SeverityMedium
}

// Category maps any scanner category onto the fixed vocabulary. Unknown values become QUALITY.
func Category(s string) dtos.Category {
	if cat, ok := categoryAliases[normalizeToken(s)]; ok {
		return cat
	}
	return dtos.CategoryQuality
}

func capRuleID(s string) string {
	runes := []rune(s)
	if len(runes) > MaxRuleIDLength {
		return string(runes[:MaxRuleIDLength])
	}
	return s
}

func lineNumber(values ...*dtos.FlexInt) int {
	for _, v := range values {
		if v != nil {
			return int(*v)
		}
	}
	return 0
}

// Finding converts a raw finding into its canonical shape.
func Finding(raw dtos.RawFinding) dtos.NormalizedFinding {
	ruleID := utils.FirstNonEmpty(raw.RuleID.String(), raw.ToolRuleID.String(), UnknownRuleID)

	filePath := NormalizePath(utils.FirstNonEmpty(raw.FilePath.String(), raw.File.String()))
	if filePath == "" {
		filePath = UnknownFilePath
	}

	return dtos.NormalizedFinding{
		RuleID:     capRuleID(ruleID),
		ToolRuleID: capRuleID(strings.TrimSpace(raw.ToolRuleID.String())),
		FilePath:   filePath,
		LineNumber: lineNumber(raw.LineNumber, raw.Line),
		Message:    utils.Truncate(raw.Message.String(), MaxMessageLength),
		Snippet:    utils.Truncate(raw.Snippet.String(), MaxSnippetLength),
		Severity:   Severity(raw.Severity.String()),
		Category:   Category(raw.Category.String()),
	}
}
