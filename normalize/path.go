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

package normalize

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	fileSchemeRegex  = regexp.MustCompile(`(?i)^file://`)
	driveLetterRegex = regexp.MustCompile(`^[A-Za-z]:/`)
	// workspace directories of the common ci runners
	ciPrefixRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^home/runner/work/[^/]+/[^/]+/`),
		regexp.MustCompile(`^__w/[^/]+/[^/]+/`),
		regexp.MustCompile(`^github/workspace/`),
		regexp.MustCompile(`^builds/[^/]+/[^/]+/`),
	}
)

// NormalizePath converts a file path reported by a scanner into a repository relative path.
// The function is idempotent.
func NormalizePath(p string) string {
	// a pass never makes the path longer. Percent decoding only shrinks it.
	for {
		next := normalizePathOnce(p)
		if next == p {
			return next
		}
		p = next
	}
}

func normalizePathOnce(p string) string {
	p = strings.TrimSpace(p)
	p = fileSchemeRegex.ReplaceAllString(p, "")

	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	p = strings.ReplaceAll(p, "\\", "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}

	p = driveLetterRegex.ReplaceAllString(p, "")
	for {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(p, "./"), "/")
		if trimmed == p {
			break
		}
		p = trimmed
	}

	for _, r := range ciPrefixRegexes {
		p = r.ReplaceAllString(p, "")
	}
	return p
}
