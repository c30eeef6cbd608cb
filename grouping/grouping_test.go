package grouping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(ruleID, path string, line int, message string) models.Finding {
	return models.Finding{ID: uuid.New(), RuleID: ruleID, FilePath: path, LineNumber: line, Message: message}
}

func TestFindings(t *testing.T) {
	t.Run("should group exact duplicates and keep the first finding canonical", func(t *testing.T) {
		first := f("R1", "a.py", 10, "first")
		groups := Findings([]models.Finding{
			first,
			f("R2", "a.py", 10, ""),
			f("R1", "a.py", 10, "second"),
			f("R1", "a.py", 11, ""),
		}, 0)

		require.Len(t, groups, 3)
		assert.Equal(t, first.ID, groups[0].Canonical().ID)
		assert.Len(t, groups[0].Members, 2)
		assert.Equal(t, Key{RuleID: "R1", FilePath: "a.py", LineNumber: 10}, groups[0].Key)
		assert.Equal(t, "R2", groups[1].Key.RuleID)
		assert.Equal(t, 11, groups[2].Key.LineNumber)
	})

	t.Run("should merge near duplicates within the line window", func(t *testing.T) {
		groups := Findings([]models.Finding{
			f("R1", "a.py", 10, ""),
			f("R1", "a.py", 12, ""),
			f("R1", "a.py", 14, ""),
			f("R1", "b.py", 10, ""),
		}, 2)

		require.Len(t, groups, 3)
		assert.Len(t, groups[0].Members, 2)
		assert.Equal(t, 14, groups[1].Key.LineNumber)
		assert.Equal(t, []string{"b.py"}, groups[2].AffectedFiles())
	})

	t.Run("should return every member id", func(t *testing.T) {
		a, b := f("R1", "a.py", 1, ""), f("R1", "a.py", 1, "")
		groups := Findings([]models.Finding{a, b}, 0)
		assert.Equal(t, []uuid.UUID{a.ID, b.ID}, groups[0].MemberIDs())
	})
}

func TestFingerprint(t *testing.T) {
	projectID := uuid.New()

	t.Run("should have a fixed length", func(t *testing.T) {
		assert.Len(t, Fingerprint(projectID, "R1", "a.py", 1), FingerprintLength)
	})

	t.Run("should ignore message and snippet drift", func(t *testing.T) {
		a := Findings([]models.Finding{f("R1", "a.py", 1, "old message")}, 0)[0]
		b := Findings([]models.Finding{f("R1", "a.py", 1, "new message")}, 0)[0]
		assert.Equal(t, a.Fingerprint(projectID), b.Fingerprint(projectID))
	})

	t.Run("should differ per project, rule, file and line", func(t *testing.T) {
		base := Fingerprint(projectID, "R1", "a.py", 1)
		assert.NotEqual(t, base, Fingerprint(uuid.New(), "R1", "a.py", 1))
		assert.NotEqual(t, base, Fingerprint(projectID, "R2", "a.py", 1))
		assert.NotEqual(t, base, Fingerprint(projectID, "R1", "b.py", 1))
		assert.NotEqual(t, base, Fingerprint(projectID, "R1", "a.py", 2))
	})
}
