package classify

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/normalize"
)

// PathExcluder drops findings in files matching one of the configured glob patterns.
type PathExcluder struct {
	patterns []string
	invalid  []string
}

func NewPathExcluder(patterns []string) PathExcluder {
	e := PathExcluder{}
	for _, p := range patterns {
		p = normalize.NormalizePath(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			e.invalid = append(e.invalid, p)
			continue
		}
		e.patterns = append(e.patterns, p)
	}
	return e
}

// Invalid returns the patterns which were ignored because they are no valid globs.
func (e PathExcluder) Invalid() []string {
	return e.invalid
}

func (e PathExcluder) Excluded(path string) bool {
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Filter returns the findings which are not excluded and the number of dropped findings.
func (e PathExcluder) Filter(findings []dtos.NormalizedFinding) ([]dtos.NormalizedFinding, int) {
	if len(e.patterns) == 0 {
		return findings, 0
	}
	kept := make([]dtos.NormalizedFinding, 0, len(findings))
	for _, f := range findings {
		if e.Excluded(f.FilePath) {
			continue
		}
		kept = append(kept, f)
	}
	return kept, len(findings) - len(kept)
}
