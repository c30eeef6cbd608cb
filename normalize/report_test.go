package normalize_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, body string, opts normalize.Options) dtos.NormalizedReport {
	t.Helper()
	raw, err := normalize.Parse([]byte(body))
	require.NoError(t, err)
	return normalize.Report(raw, opts)
}

func TestParse(t *testing.T) {
	t.Run("should reject a body which is not a json object", func(t *testing.T) {
		for _, body := range []string{`[]`, `"str"`, `null`, `{`} {
			_, err := normalize.Parse([]byte(body))
			assert.ErrorIs(t, err, normalize.ErrInvalidReport, body)
		}
	})

	t.Run("should detect sarif by shape", func(t *testing.T) {
		raw, err := normalize.Parse([]byte(`{"version":"2.1.0","runs":[]}`))
		require.NoError(t, err)
		assert.IsType(t, normalize.SarifReport{}, raw)
	})

	t.Run("should treat a body with findings as native even if runs exist", func(t *testing.T) {
		raw, err := normalize.Parse([]byte(`{"runs":[],"findings":[]}`))
		require.NoError(t, err)
		assert.IsType(t, normalize.NativeReport{}, raw)
	})

	t.Run("should treat a runs key which is not an array as native", func(t *testing.T) {
		raw, err := normalize.Parse([]byte(`{"runs":"nope"}`))
		require.NoError(t, err)
		assert.IsType(t, normalize.NativeReport{}, raw)
	})
}

func TestReportNative(t *testing.T) {
	t.Run("should fill defaults for missing metadata", func(t *testing.T) {
		report := mustNormalize(t, `{"findings":[]}`, normalize.Options{})

		assert.Equal(t, "local", report.CommitHash)
		assert.Equal(t, "main", report.Branch)
		assert.Equal(t, "unknown", report.Actor)
		assert.Equal(t, "cli", report.Tool)
		assert.False(t, report.IsForced)
		assert.False(t, report.IsSarif)
		assert.Empty(t, report.Findings)
	})

	t.Run("should keep provided metadata and the summary object", func(t *testing.T) {
		report := mustNormalize(t, `{"commit_hash":"abc","branch":"feature","actor":"jane","is_forced":true,"summary":{"files":3}}`, normalize.Options{})

		assert.Equal(t, "abc", report.CommitHash)
		assert.Equal(t, "feature", report.Branch)
		assert.Equal(t, "jane", report.Actor)
		assert.True(t, report.IsForced)
		assert.Equal(t, float64(3), report.Summary["files"])
	})

	t.Run("should normalize every finding field", func(t *testing.T) {
		report := mustNormalize(t, `{"findings":[
			{"rule_id":"SKY-D211","file_path":"/home/runner/work/r/r/a.py","line_number":10,"severity":"high","category":"security","message":"m"},
			{"tool_rule_id":"B101","file":"b.py","line":"7","severity":"bogus","category":"bogus"},
			{}
		]}`, normalize.Options{})

		require.Len(t, report.Findings, 3)

		first := report.Findings[0]
		assert.Equal(t, "SKY-D211", first.RuleID)
		assert.Equal(t, "a.py", first.FilePath)
		assert.Equal(t, 10, first.LineNumber)
		assert.Equal(t, dtos.SeverityHigh, first.Severity)
		assert.Equal(t, dtos.CategorySecurity, first.Category)

		second := report.Findings[1]
		assert.Equal(t, "B101", second.RuleID)
		assert.Equal(t, "B101", second.ToolRuleID)
		assert.Equal(t, "b.py", second.FilePath)
		assert.Equal(t, 7, second.LineNumber)
		assert.Equal(t, dtos.SeverityMedium, second.Severity)
		assert.Equal(t, dtos.CategoryQuality, second.Category)

		third := report.Findings[2]
		assert.Equal(t, "UNKNOWN", third.RuleID)
		assert.Equal(t, "unknown", third.FilePath)
		assert.Equal(t, 0, third.LineNumber)
	})

	t.Run("should replace malformed findings with defaults and warn", func(t *testing.T) {
		report := mustNormalize(t, `{"findings":[42, "x", {"rule_id":"R1"}]}`, normalize.Options{})

		require.Len(t, report.Findings, 3)
		assert.Equal(t, "UNKNOWN", report.Findings[0].RuleID)
		assert.Equal(t, "R1", report.Findings[2].RuleID)
		assert.Len(t, report.Warnings, 1)
	})

	t.Run("should cap long fields", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"findings": []map[string]any{{
				"rule_id": strings.Repeat("r", 150),
				"message": strings.Repeat("m", 1500),
				"snippet": strings.Repeat("s", 2500),
			}},
		})
		require.NoError(t, err)
		report := mustNormalize(t, string(body), normalize.Options{})

		f := report.Findings[0]
		assert.Len(t, f.RuleID, 100)
		assert.Len(t, f.Message, 1000)
		assert.True(t, strings.HasSuffix(f.Message, "..."))
		assert.Len(t, f.Snippet, 2000)
	})

	t.Run("should truncate the finding list and record a warning", func(t *testing.T) {
		findings := make([]string, 0, 12)
		for i := 0; i < 12; i++ {
			findings = append(findings, fmt.Sprintf(`{"rule_id":"R%d"}`, i))
		}
		report := mustNormalize(t, `{"findings":[`+strings.Join(findings, ",")+`]}`, normalize.Options{MaxFindings: 10})

		assert.Len(t, report.Findings, 10)
		assert.True(t, report.Truncated)
		assert.Equal(t, "R9", report.Findings[9].RuleID)
		assert.Contains(t, report.Warnings[0], "12")
	})
}

func TestSeverityAndCategoryVocabulary(t *testing.T) {
	t.Run("should only produce uppercase values of the fixed vocabulary", func(t *testing.T) {
		inputs := []string{"", "critical", "High", "medium", "low", "info", "error", "warning", "note", "none", "whatever", "  HIGH  "}
		for _, input := range inputs {
			assert.Contains(t, dtos.Severities, normalize.Severity(input), input)
		}

		categories := []string{"", "security", "Quality", "secret", "dead-code", "dead code", "foo"}
		for _, input := range categories {
			assert.Contains(t, dtos.Categories, normalize.Category(input), input)
		}
	})

	t.Run("should default unknown values", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityMedium, normalize.Severity("whatever"))
		assert.Equal(t, dtos.CategoryQuality, normalize.Category("whatever"))
	})

	t.Run("should map aliases", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityHigh, normalize.Severity("error"))
		assert.Equal(t, dtos.SeverityLow, normalize.Severity("note"))
		assert.Equal(t, dtos.CategoryDeadCode, normalize.Category("dead-code"))
	})
}

const sarifDoc = `{
	"version": "2.1.0",
	"commit_hash": "deadbeef",
	"runs": [{
		"tool": {"driver": {"name": "semgrep", "rules": [
			{"id": "python.sqli", "properties": {"security-severity": "9.8", "tags": ["security", "CWE-89"]}},
			{"id": "python.unused", "defaultConfiguration": {"level": "note"}, "properties": {"tags": ["unused"]}}
		]}},
		"results": [
			{"ruleId": "python.sqli", "level": "error", "message": {"text": "sql injection"},
			 "locations": [{"physicalLocation": {"artifactLocation": {"uri": "file:///github/workspace/app/db.py"}, "region": {"startLine": 12, "snippet": {"text": "cursor.execute(q)"}}}}]},
			{"ruleIndex": 1, "message": {"text": "unused variable"},
			 "locations": [{"physicalLocation": {"artifactLocation": {"uri": "app/util.py"}, "region": {"startLine": 3}}}]},
			{"ruleId": "other", "level": "warning", "message": {"text": "no location"}}
		]
	}]
}`

func TestReportSarif(t *testing.T) {
	report := mustNormalize(t, sarifDoc, normalize.Options{})

	t.Run("should take metadata from the envelope and the tool name from the driver", func(t *testing.T) {
		assert.True(t, report.IsSarif)
		assert.Equal(t, "deadbeef", report.CommitHash)
		assert.Equal(t, "semgrep", report.Tool)
		assert.Equal(t, 3, report.Summary["total"])
	})

	t.Run("should map security severity scores and tags", func(t *testing.T) {
		f := report.Findings[0]
		assert.Equal(t, "python.sqli", f.RuleID)
		assert.Equal(t, "app/db.py", f.FilePath)
		assert.Equal(t, 12, f.LineNumber)
		assert.Equal(t, "cursor.execute(q)", f.Snippet)
		assert.Equal(t, dtos.SeverityCritical, f.Severity)
		assert.Equal(t, dtos.CategorySecurity, f.Category)
	})

	t.Run("should resolve rules by index and fall back to the default level", func(t *testing.T) {
		f := report.Findings[1]
		assert.Equal(t, "python.unused", f.RuleID)
		assert.Equal(t, dtos.SeverityLow, f.Severity)
		assert.Equal(t, dtos.CategoryDeadCode, f.Category)
	})

	t.Run("should default results without a location", func(t *testing.T) {
		f := report.Findings[2]
		assert.Equal(t, "unknown", f.FilePath)
		assert.Equal(t, 0, f.LineNumber)
		assert.Equal(t, dtos.SeverityMedium, f.Severity)
	})
}
