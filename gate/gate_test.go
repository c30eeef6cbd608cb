package gate

import (
	"testing"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/stretchr/testify/assert"
)

func classified(severity dtos.Severity, category dtos.Category, isNew, suppressed bool) dtos.ClassifiedFinding {
	return dtos.ClassifiedFinding{
		NormalizedFinding: dtos.NormalizedFinding{RuleID: "R", FilePath: "a.go", Severity: severity, Category: category},
		IsNew:             isNew,
		IsSuppressed:      suppressed,
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("should pass with zero new findings in the default mode", func(t *testing.T) {
		result := Evaluate(Input{Findings: []dtos.ClassifiedFinding{
			classified(dtos.SeverityHigh, dtos.CategorySecurity, false, false),
		}})
		assert.True(t, result.Passed)
		assert.Equal(t, dtos.GateReasonZeroNew, result.Reason)
	})

	t.Run("should fail with a single new unsuppressed finding in the default mode", func(t *testing.T) {
		result := Evaluate(Input{Findings: []dtos.ClassifiedFinding{
			classified(dtos.SeverityLow, dtos.CategoryQuality, true, false),
		}})
		assert.False(t, result.Passed)
		assert.Equal(t, 1, result.NewViolations)
		assert.Equal(t, 1, result.NewByCategory["QUALITY"])
		assert.Equal(t, 1, result.NewBySeverity["LOW"])
	})

	t.Run("should not fail on a suppressed new critical security finding", func(t *testing.T) {
		result := Evaluate(Input{Findings: []dtos.ClassifiedFinding{
			classified(dtos.SeverityCritical, dtos.CategorySecurity, true, true),
		}})
		assert.True(t, result.Passed)
		assert.Equal(t, 0, result.NewViolations)
		assert.Equal(t, 1, result.SuppressedNewViolations)
	})

	t.Run("should fail on an unsuppressed critical security finding even if it is legacy", func(t *testing.T) {
		result := Evaluate(Input{Findings: []dtos.ClassifiedFinding{
			classified(dtos.SeverityCritical, dtos.CategorySecurity, false, false),
		}})
		assert.False(t, result.Passed)
		assert.Equal(t, dtos.GateReasonCriticalSecurity, result.Reason)
	})

	t.Run("should not let thresholds waive a critical security finding", func(t *testing.T) {
		result := Evaluate(Input{
			Findings: []dtos.ClassifiedFinding{classified(dtos.SeverityCritical, dtos.CategorySecurity, true, false)},
			Config: dtos.GateConfig{
				Mode:               dtos.GateModeBoth,
				CategoryThresholds: map[string]float64{"SECURITY": 10},
				SeverityThresholds: map[string]float64{"CRITICAL": 10},
			},
		})
		assert.False(t, result.Passed)
		assert.Equal(t, dtos.GateReasonCriticalSecurity, result.Reason)
	})

	t.Run("should pass if the commit was overridden and the plan allows overrides", func(t *testing.T) {
		result := Evaluate(Input{
			Findings:         []dtos.ClassifiedFinding{classified(dtos.SeverityCritical, dtos.CategorySecurity, true, false)},
			HasOverride:      true,
			OverridesEnabled: true,
		})
		assert.True(t, result.Passed)
		assert.True(t, result.Overridden)
		assert.Equal(t, 1, result.NewViolations)
	})

	t.Run("should ignore an override if the plan does not allow overrides", func(t *testing.T) {
		result := Evaluate(Input{
			Findings:    []dtos.ClassifiedFinding{classified(dtos.SeverityLow, dtos.CategoryQuality, true, false)},
			HasOverride: true,
		})
		assert.False(t, result.Passed)
		assert.False(t, result.Overridden)
	})

	t.Run("should pass if the gate is disabled", func(t *testing.T) {
		result := Evaluate(Input{
			Findings: []dtos.ClassifiedFinding{classified(dtos.SeverityCritical, dtos.CategorySecurity, true, false)},
			Config:   dtos.GateConfig{Enabled: utils.Ptr(false)},
		})
		assert.True(t, result.Passed)
		assert.Equal(t, dtos.GateReasonDisabled, result.Reason)
	})

	t.Run("should compare category counts against floored thresholds", func(t *testing.T) {
		findings := []dtos.ClassifiedFinding{
			classified(dtos.SeverityLow, dtos.CategoryQuality, true, false),
			classified(dtos.SeverityLow, dtos.CategoryQuality, true, false),
		}
		pass := Evaluate(Input{Findings: findings, Config: dtos.GateConfig{
			Mode:               dtos.GateModeCategory,
			CategoryThresholds: map[string]float64{"quality": 2.9},
		}})
		assert.True(t, pass.Passed)

		fail := Evaluate(Input{Findings: findings, Config: dtos.GateConfig{
			Mode:               dtos.GateModeCategory,
			CategoryThresholds: map[string]float64{"QUALITY": 1.9},
		}})
		assert.False(t, fail.Passed)
		assert.Equal(t, []string{"QUALITY (2 > 1)"}, fail.FailedBuckets)
	})

	t.Run("should default buckets without threshold to a limit of 0", func(t *testing.T) {
		result := Evaluate(Input{
			Findings: []dtos.ClassifiedFinding{classified(dtos.SeverityLow, dtos.CategorySecret, true, false)},
			Config: dtos.GateConfig{
				Mode:               dtos.GateModeCategory,
				CategoryThresholds: map[string]float64{"QUALITY": 5},
			},
		})
		assert.False(t, result.Passed)
		assert.Equal(t, []string{"SECRET (1 > 0)"}, result.FailedBuckets)
	})

	t.Run("should treat negative thresholds as 0", func(t *testing.T) {
		result := Evaluate(Input{
			Findings: []dtos.ClassifiedFinding{classified(dtos.SeverityHigh, dtos.CategoryQuality, true, false)},
			Config: dtos.GateConfig{
				Mode:               dtos.GateModeSeverity,
				SeverityThresholds: map[string]float64{"HIGH": -3},
			},
		})
		assert.False(t, result.Passed)
	})

	t.Run("should check both maps in mode both", func(t *testing.T) {
		findings := []dtos.ClassifiedFinding{classified(dtos.SeverityHigh, dtos.CategoryQuality, true, false)}
		result := Evaluate(Input{Findings: findings, Config: dtos.GateConfig{
			Mode:               dtos.GateModeBoth,
			CategoryThresholds: map[string]float64{"QUALITY": 1},
			SeverityThresholds: map[string]float64{"HIGH": 0},
		}})
		assert.False(t, result.Passed)
		assert.Equal(t, []string{"HIGH (1 > 0)"}, result.FailedBuckets)
	})

	t.Run("should not count suppressed or legacy findings against thresholds", func(t *testing.T) {
		result := Evaluate(Input{
			Findings: []dtos.ClassifiedFinding{
				classified(dtos.SeverityHigh, dtos.CategoryQuality, true, true),
				classified(dtos.SeverityHigh, dtos.CategoryQuality, false, false),
			},
			Config: dtos.GateConfig{Mode: dtos.GateModeSeverity},
		})
		assert.True(t, result.Passed)
	})
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 0, Limit(-1))
	assert.Equal(t, 0, Limit(0.5))
	assert.Equal(t, 3, Limit(3.99))
	assert.Equal(t, 7, Limit(7))
}
