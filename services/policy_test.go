package services

import (
	"testing"

	databasetypes "github.com/l3montree-dev/qualitygate/database/types"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicy(t *testing.T) {
	t.Run("should use the defaults without warning if no policy is stored", func(t *testing.T) {
		policy, warnings := resolvePolicy(newProject("free"))
		assert.Empty(t, warnings)
		assert.True(t, policy.Gate.IsEnabled())
		assert.Equal(t, dtos.GateModeZeroNew, policy.Gate.EffectiveMode())
	})

	t.Run("should accept a valid policy", func(t *testing.T) {
		project := newProject("pro")
		project.PolicyConfig = databasetypes.JSONB{
			"gate": map[string]any{
				"mode":                "severity",
				"severity_thresholds": map[string]any{"HIGH": 2, "CRITICAL": 0},
			},
			"excluded_paths": []any{"vendor/**"},
		}

		policy, warnings := resolvePolicy(project)
		require.Empty(t, warnings)
		assert.Equal(t, dtos.GateModeSeverity, policy.Gate.EffectiveMode())
		assert.Equal(t, float64(2), policy.Gate.SeverityThresholds["HIGH"])
		assert.Equal(t, []string{"vendor/**"}, policy.ExcludedPaths)
	})

	t.Run("should fall back to the defaults if a threshold is not a number", func(t *testing.T) {
		project := newProject("pro")
		project.PolicyConfig = databasetypes.JSONB{
			"gate": map[string]any{
				"mode":                "category",
				"category_thresholds": map[string]any{"SECURITY": "zero"},
			},
		}

		policy, warnings := resolvePolicy(project)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "does not match the schema")
		assert.Equal(t, dtos.GateModeZeroNew, policy.Gate.EffectiveMode())
	})

	t.Run("should reject empty excluded path patterns", func(t *testing.T) {
		project := newProject("free")
		project.PolicyConfig = databasetypes.JSONB{"excluded_paths": []any{""}}

		policy, warnings := resolvePolicy(project)
		assert.Len(t, warnings, 1)
		assert.Empty(t, policy.ExcludedPaths)
	})
}
