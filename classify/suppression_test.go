package classify

import (
	"testing"
	"time"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/stretchr/testify/assert"
)

func TestActiveSuppressions(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	set := ActiveSuppressions([]models.Suppression{
		{RuleID: "R1", FilePath: "./a.py", LineNumber: 1},
		{RuleID: "R2", FilePath: "a.py", LineNumber: 2, ExpiresAt: utils.Ptr(now)},
		{RuleID: "R3", FilePath: "a.py", LineNumber: 3, ExpiresAt: utils.Ptr(now.Add(time.Second))},
		{RuleID: "R4", FilePath: "a.py", LineNumber: 4, RevokedAt: utils.Ptr(now.Add(-time.Minute))},
	}, now)

	t.Run("should normalize the suppression path", func(t *testing.T) {
		assert.True(t, set.Contains(finding("R1", "a.py", 1)))
	})

	t.Run("should reject a suppression expiring exactly now", func(t *testing.T) {
		assert.False(t, set.Contains(finding("R2", "a.py", 2)))
	})

	t.Run("should accept a suppression expiring one second in the future", func(t *testing.T) {
		assert.True(t, set.Contains(finding("R3", "a.py", 3)))
	})

	t.Run("should ignore revoked suppressions", func(t *testing.T) {
		assert.False(t, set.Contains(finding("R4", "a.py", 4)))
	})

	t.Run("should require the exact line", func(t *testing.T) {
		assert.False(t, set.Contains(finding("R1", "a.py", 2)))
	})
}

func TestApplySuppressions(t *testing.T) {
	set := SuppressionSet{{RuleID: "R1", FilePath: "a.py", LineNumber: 1}: {}}

	t.Run("should flag matching findings without touching is_new", func(t *testing.T) {
		findings := []dtos.ClassifiedFinding{
			{NormalizedFinding: finding("R1", "a.py", 1), IsNew: true, NewReason: dtos.NewReasonNotInBaseline},
			{NormalizedFinding: finding("R2", "a.py", 1), IsNew: true},
		}
		count := ApplySuppressions(findings, set, true)

		assert.Equal(t, 1, count)
		assert.True(t, findings[0].IsSuppressed)
		assert.True(t, findings[0].IsNew)
		assert.False(t, findings[1].IsSuppressed)
	})

	t.Run("should suppress nothing if the plan does not allow suppressions", func(t *testing.T) {
		findings := []dtos.ClassifiedFinding{{NormalizedFinding: finding("R1", "a.py", 1)}}
		count := ApplySuppressions(findings, set, false)

		assert.Equal(t, 0, count)
		assert.False(t, findings[0].IsSuppressed)
	})
}
