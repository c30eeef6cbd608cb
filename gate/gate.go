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

package gate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/l3montree-dev/qualitygate/dtos"
)

type Input struct {
	Findings []dtos.ClassifiedFinding
	Config   dtos.GateConfig
	// HasOverride is true if the project whitelisted the scanned commit
	HasOverride      bool
	OverridesEnabled bool
}

// Evaluate decides the quality gate. The first matching rule wins:
// override, disabled gate, critical security findings, then the configured mode.
// Suppressed findings never block.
func Evaluate(in Input) dtos.GateResult {
	result := dtos.GateResult{
		NewByCategory: map[string]int{},
		NewBySeverity: map[string]int{},
	}

	criticalSecurity := 0
	for _, f := range in.Findings {
		if f.IsSuppressed {
			if f.IsNew {
				result.SuppressedNewViolations++
			}
			continue
		}
		if f.Severity == dtos.SeverityCritical && f.Category == dtos.CategorySecurity {
			criticalSecurity++
		}
		if f.IsNew {
			result.NewViolations++
			result.NewByCategory[string(f.Category)]++
			result.NewBySeverity[string(f.Severity)]++
		}
	}

	switch {
	case in.HasOverride && in.OverridesEnabled:
		result.Passed = true
		result.Overridden = true
		result.Reason = dtos.GateReasonOverride
		result.Message = "Quality gate passed: commit was overridden"
	case !in.Config.IsEnabled():
		result.Passed = true
		result.Reason = dtos.GateReasonDisabled
		result.Message = "Quality gate is disabled by policy"
	case criticalSecurity > 0:
		result.Passed = false
		result.Reason = dtos.GateReasonCriticalSecurity
		result.Message = fmt.Sprintf("Quality gate failed: %d critical security finding(s)", criticalSecurity)
	case in.Config.EffectiveMode() == dtos.GateModeZeroNew:
		result.Reason = dtos.GateReasonZeroNew
		result.Passed = result.NewViolations == 0
		if result.Passed {
			result.Message = "Quality gate passed: no new violations"
		} else {
			result.Message = fmt.Sprintf("Quality gate failed: %d new violation(s)", result.NewViolations)
		}
	default:
		result.Reason = dtos.GateReasonThresholds
		mode := in.Config.EffectiveMode()
		if mode == dtos.GateModeCategory || mode == dtos.GateModeBoth {
			result.FailedBuckets = append(result.FailedBuckets, exceeded(result.NewByCategory, in.Config.CategoryThresholds)...)
		}
		if mode == dtos.GateModeSeverity || mode == dtos.GateModeBoth {
			result.FailedBuckets = append(result.FailedBuckets, exceeded(result.NewBySeverity, in.Config.SeverityThresholds)...)
		}
		result.Passed = len(result.FailedBuckets) == 0
		if result.Passed {
			result.Message = "Quality gate passed: all thresholds met"
		} else {
			result.Message = "Quality gate failed: thresholds exceeded for " + strings.Join(result.FailedBuckets, ", ")
		}
	}

	return result
}

// Limit converts a configured threshold into a limit: negative values become 0, fractions are floored.
func Limit(threshold float64) int {
	if math.IsNaN(threshold) || threshold <= 0 {
		return 0
	}
	if math.IsInf(threshold, 1) {
		return math.MaxInt32
	}
	return int(math.Floor(threshold))
}

// exceeded checks every observed and every configured bucket. Buckets without threshold have a limit of 0.
func exceeded(counts map[string]int, thresholds map[string]float64) []string {
	limits := make(map[string]int, len(thresholds))
	for key, value := range thresholds {
		limits[strings.ToUpper(strings.TrimSpace(key))] = Limit(value)
	}

	buckets := make(map[string]struct{}, len(counts)+len(limits))
	for key := range counts {
		buckets[key] = struct{}{}
	}
	for key := range limits {
		buckets[key] = struct{}{}
	}

	failed := make([]string, 0)
	for bucket := range buckets {
		if count := counts[bucket]; count > limits[bucket] {
			failed = append(failed, fmt.Sprintf("%s (%d > %d)", bucket, count, limits[bucket]))
		}
	}
	sort.Strings(failed)
	return failed
}
