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
	"time"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/normalize"
)

type SuppressionKey struct {
	RuleID     string
	FilePath   string
	LineNumber int
}

type SuppressionSet map[SuppressionKey]struct{}

// ActiveSuppressions keeps the suppressions which are active at now.
func ActiveSuppressions(suppressions []models.Suppression, now time.Time) SuppressionSet {
	set := make(SuppressionSet, len(suppressions))
	for _, s := range suppressions {
		if !s.IsActive(now) {
			continue
		}
		set[SuppressionKey{
			RuleID:     s.RuleID,
			FilePath:   normalize.NormalizePath(s.FilePath),
			LineNumber: s.LineNumber,
		}] = struct{}{}
	}
	return set
}

func (s SuppressionSet) Contains(f dtos.NormalizedFinding) bool {
	_, ok := s[SuppressionKey{RuleID: f.RuleID, FilePath: f.FilePath, LineNumber: f.LineNumber}]
	return ok
}

// ApplySuppressions flags suppressed findings in place. It never touches is_new.
// If suppressions are disabled for the plan every finding stays unsuppressed.
func ApplySuppressions(findings []dtos.ClassifiedFinding, set SuppressionSet, enabled bool) int {
	suppressed := 0
	for i := range findings {
		findings[i].IsSuppressed = enabled && set.Contains(findings[i].NormalizedFinding)
		if findings[i].IsSuppressed {
			suppressed++
		}
	}
	return suppressed
}
