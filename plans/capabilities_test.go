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

package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("should disable every optional capability on the free plan", func(t *testing.T) {
		c := Resolve("free")
		assert.Equal(t, TierFree, c.Plan)
		assert.False(t, c.PRDiffEnabled)
		assert.False(t, c.SuppressionsEnabled)
		assert.False(t, c.OverridesEnabled)
		assert.False(t, c.CheckRunsEnabled)
		assert.False(t, c.SarifEnabled)
		assert.False(t, c.SlackEnabled)
		assert.False(t, c.DiscordEnabled)
		assert.False(t, c.HasAllOptional())
		assert.Equal(t, 10, c.MaxScansStored)
	})

	t.Run("should enable everything on pro and enterprise and only differ in the stored scan limit", func(t *testing.T) {
		pro := Resolve("pro")
		enterprise := Resolve("enterprise")
		assert.True(t, pro.HasAllOptional())
		assert.True(t, enterprise.HasAllOptional())
		assert.Less(t, pro.MaxScansStored, enterprise.MaxScansStored)

		pro.MaxScansStored = enterprise.MaxScansStored
		pro.Plan = enterprise.Plan
		assert.Equal(t, enterprise, pro)
	})

	t.Run("should fail safe to free for unknown or missing plans", func(t *testing.T) {
		assert.Equal(t, Resolve("free"), Resolve(""))
		assert.Equal(t, Resolve("free"), Resolve("platinum"))
	})

	t.Run("should ignore case and surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, TierPro, Resolve("  PRO ").Plan)
	})
}

func TestParseTable(t *testing.T) {
	t.Run("should reject a table without a free tier", func(t *testing.T) {
		_, err := parseTable([]byte("pro:\n  maxScansStored: 1\n"))
		assert.Error(t, err)
	})

	t.Run("should reject invalid yaml", func(t *testing.T) {
		_, err := parseTable([]byte("free: ["))
		assert.Error(t, err)
	})
}
