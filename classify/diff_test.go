package classify

import (
	"testing"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finding(ruleID, path string, line int) dtos.NormalizedFinding {
	return dtos.NormalizedFinding{
		RuleID:     ruleID,
		FilePath:   path,
		LineNumber: line,
		Severity:   dtos.SeverityMedium,
		Category:   dtos.CategoryQuality,
	}
}

func TestClassify(t *testing.T) {
	t.Run("should mark every finding of the first scan as baseline", func(t *testing.T) {
		result := Classify([]dtos.NormalizedFinding{
			finding("R1", "a.py", 1),
			finding("R2", "b.py", 2),
		}, Input{})

		require.Len(t, result, 2)
		for _, f := range result {
			assert.False(t, f.IsNew)
			assert.Equal(t, dtos.NewReasonFirstScanBaseline, f.NewReason)
		}
	})

	t.Run("should consume baseline credit only once per occurrence", func(t *testing.T) {
		result := Classify([]dtos.NormalizedFinding{
			finding("R1", "fileA", 10),
			finding("R1", "fileA", 20),
		}, Input{
			HasBaseline:      true,
			BaselineFindings: []BaselineFinding{{RuleID: "R1", FilePath: "fileA"}},
		})

		assert.False(t, result[0].IsNew)
		assert.Equal(t, dtos.NewReasonLegacy, result[0].NewReason)
		assert.True(t, result[1].IsNew)
		assert.Equal(t, dtos.NewReasonNotInBaseline, result[1].NewReason)
	})

	t.Run("should ignore line drift when matching the baseline", func(t *testing.T) {
		result := Classify([]dtos.NormalizedFinding{finding("R1", "a.py", 99)}, Input{
			HasBaseline:      true,
			BaselineFindings: []BaselineFinding{{RuleID: "R1", FilePath: "a.py"}},
		})
		assert.False(t, result[0].IsNew)
	})

	t.Run("should treat a baseline without findings as a baseline", func(t *testing.T) {
		result := Classify([]dtos.NormalizedFinding{finding("R1", "a.py", 1)}, Input{HasBaseline: true})
		assert.True(t, result[0].IsNew)
		assert.Equal(t, dtos.NewReasonNotInBaseline, result[0].NewReason)
	})

	t.Run("should prefer the pull request diff over the baseline", func(t *testing.T) {
		scope := NewDiffScope()
		scope.AddFile("src/changed.go", 10, 11)
		scope.AddFile("./src/binary.bin")

		in := Input{
			PRDiffEnabled:    true,
			DiffScope:        scope,
			HasBaseline:      true,
			BaselineFindings: []BaselineFinding{{RuleID: "R1", FilePath: "src/untouched.go"}},
		}
		assert.Equal(t, dtos.DetectionModePRDiff, in.DetectionMode())

		result := Classify([]dtos.NormalizedFinding{
			finding("R1", "src/changed.go", 10),
			finding("R1", "src/changed.go", 50),
			finding("R1", "src/changed.go", 0),
			finding("R1", "src/binary.bin", 3),
			finding("R1", "src/untouched.go", 1),
			finding("R2", "src/other.go", 1),
		}, in)

		assert.Equal(t, dtos.NewReasonPRChangedLine, result[0].NewReason)
		assert.True(t, result[0].IsNew)
		assert.Equal(t, dtos.NewReasonLegacy, result[1].NewReason)
		assert.False(t, result[1].IsNew)
		assert.Equal(t, dtos.NewReasonPRFileFallback, result[2].NewReason)
		assert.True(t, result[2].IsNew)
		assert.Equal(t, dtos.NewReasonPRFileFallback, result[3].NewReason)
		assert.Equal(t, dtos.NewReasonLegacy, result[4].NewReason)
		assert.False(t, result[5].IsNew)
	})

	t.Run("should fall back to the baseline if the capability is disabled", func(t *testing.T) {
		scope := NewDiffScope()
		scope.AddFile("a.py", 1)
		in := Input{DiffScope: scope, HasBaseline: true}

		assert.Equal(t, dtos.DetectionModeBaseline, in.DetectionMode())
		result := Classify([]dtos.NormalizedFinding{finding("R1", "a.py", 1)}, in)
		assert.Equal(t, dtos.NewReasonNotInBaseline, result[0].NewReason)
	})

	t.Run("should use first scan mode if the capability is enabled but no diff is available", func(t *testing.T) {
		in := Input{PRDiffEnabled: true}
		assert.Equal(t, dtos.DetectionModeFirstScan, in.DetectionMode())
	})
}
