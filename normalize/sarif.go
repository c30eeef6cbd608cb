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
	"fmt"
	"strconv"
	"strings"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
)

// SarifToFindings flattens all results of all runs into raw findings.
// It returns the findings together with a summary of the document.
func SarifToFindings(doc dtos.SarifDocument) ([]dtos.RawFinding, map[string]any) {
	findings := make([]dtos.RawFinding, 0)
	tools := make([]string, 0, len(doc.Runs))

	for _, run := range doc.Runs {
		if name := strings.TrimSpace(run.Tool.Driver.Name); name != "" {
			tools = append(tools, name)
		}

		rulesByID := make(map[string]dtos.SarifRule, len(run.Tool.Driver.Rules))
		for _, r := range run.Tool.Driver.Rules {
			if id := strings.TrimSpace(r.ID); id != "" {
				rulesByID[id] = r
			}
		}

		for _, result := range run.Results {
			rule := resolveRule(run.Tool.Driver.Rules, rulesByID, result)
			uri, region := resolveLocation(result)
			line := region.StartLine

			findings = append(findings, dtos.RawFinding{
				RuleID:     dtos.FlexString(utils.FirstNonEmpty(rule.ID, result.RuleID)),
				ToolRuleID: dtos.FlexString(result.RuleID),
				FilePath:   dtos.FlexString(uri),
				LineNumber: &line,
				Message: dtos.FlexString(utils.FirstNonEmpty(
					result.Message.Text,
					result.Message.Markdown,
					rule.ShortDescription.Text,
					rule.Name,
				)),
				Snippet:  dtos.FlexString(region.Snippet.Text),
				Severity: dtos.FlexString(resolveSarifSeverity(result, rule)),
				Category: dtos.FlexString(resolveSarifCategory(result.Properties, rule.Properties)),
			})
		}
	}

	summary := map[string]any{
		"format": "sarif",
		"runs":   len(doc.Runs),
		"total":  len(findings),
		"tools":  tools,
	}
	return findings, summary
}

// SarifToolName returns the driver name of the first run which has one.
func SarifToolName(doc dtos.SarifDocument) string {
	for _, run := range doc.Runs {
		if name := strings.TrimSpace(run.Tool.Driver.Name); name != "" {
			return name
		}
	}
	return "sarif"
}

func resolveRule(rules []dtos.SarifRule, rulesByID map[string]dtos.SarifRule, result dtos.SarifResult) dtos.SarifRule {
	if id := strings.TrimSpace(result.RuleID); id != "" {
		if found, ok := rulesByID[id]; ok {
			return found
		}
	}
	if result.RuleIndex != nil && *result.RuleIndex >= 0 && *result.RuleIndex < len(rules) {
		return rules[*result.RuleIndex]
	}
	return dtos.SarifRule{}
}

func resolveLocation(result dtos.SarifResult) (string, dtos.SarifRegion) {
	for _, loc := range result.Locations {
		uri := strings.TrimSpace(loc.PhysicalLocation.ArtifactLocation.URI)
		if uri != "" {
			return uri, loc.PhysicalLocation.Region
		}
	}
	return "", dtos.SarifRegion{}
}

func resolveSarifSeverity(result dtos.SarifResult, rule dtos.SarifRule) string {
	for _, props := range []map[string]any{result.Properties, rule.Properties} {
		if score, ok := propertyFloat(props, "security-severity", "security_severity"); ok {
			switch {
			case score >= 9.0:
				return string(dtos.SeverityCritical)
			case score >= 7.0:
				return string(dtos.SeverityHigh)
			case score >= 4.0:
				return string(dtos.SeverityMedium)
			case score > 0:
				return string(dtos.SeverityLow)
			default:
				return string(dtos.SeverityInfo)
			}
		}
		if sev := propertyString(props, "severity"); sev != "" {
			return sev
		}
	}
	// warning is the default level of the sarif format
	return utils.FirstNonEmpty(result.Level, rule.DefaultConfiguration.Level, "warning")
}

func resolveSarifCategory(resultProps, ruleProps map[string]any) string {
	for _, props := range []map[string]any{resultProps, ruleProps} {
		if category := propertyString(props, "category"); category != "" {
			return category
		}
	}

	tags := append(propertyStrings(resultProps, "tags"), propertyStrings(ruleProps, "tags")...)
	for _, tag := range tags {
		switch strings.ToLower(strings.TrimSpace(tag)) {
		case "secret", "secrets", "credential", "credentials":
			return string(dtos.CategorySecret)
		}
	}
	for _, tag := range tags {
		switch t := strings.ToLower(strings.TrimSpace(tag)); {
		case t == "security", strings.HasPrefix(t, "cwe-"), strings.HasPrefix(t, "external/cwe"):
			return string(dtos.CategorySecurity)
		case t == "unused", t == "dead-code", t == "dead_code":
			return string(dtos.CategoryDeadCode)
		}
	}
	return string(dtos.CategoryQuality)
}

func propertyString(props map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := props[key]
		if !ok || v == nil {
			continue
		}
		switch value := v.(type) {
		case string:
			if s := strings.TrimSpace(value); s != "" {
				return s
			}
		case float64, bool, int:
			return fmt.Sprint(value)
		}
	}
	return ""
}

func propertyFloat(props map[string]any, keys ...string) (float64, bool) {
	s := propertyString(props, keys...)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func propertyStrings(props map[string]any, key string) []string {
	raw, ok := props[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
