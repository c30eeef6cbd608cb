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

// Package plans maps an organization plan tier to the features it unlocks.
package plans

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Capabilities is resolved once per request and never mutated afterwards.
type Capabilities struct {
	Plan                Tier `yaml:"-" json:"plan"`
	MaxScansStored      int  `yaml:"maxScansStored" json:"maxScansStored"`
	PRDiffEnabled       bool `yaml:"prDiffEnabled" json:"prDiffEnabled"`
	SuppressionsEnabled bool `yaml:"suppressionsEnabled" json:"suppressionsEnabled"`
	OverridesEnabled    bool `yaml:"overridesEnabled" json:"overridesEnabled"`
	CheckRunsEnabled    bool `yaml:"checkRunsEnabled" json:"checkRunsEnabled"`
	SarifEnabled        bool `yaml:"sarifEnabled" json:"sarifEnabled"`
	SlackEnabled        bool `yaml:"slackEnabled" json:"slackEnabled"`
	DiscordEnabled      bool `yaml:"discordEnabled" json:"discordEnabled"`
}

// HasAllOptional reports whether every optional capability is enabled.
func (c Capabilities) HasAllOptional() bool {
	return c.PRDiffEnabled && c.SuppressionsEnabled && c.OverridesEnabled && c.CheckRunsEnabled &&
		c.SarifEnabled && c.SlackEnabled && c.DiscordEnabled
}

//go:embed plans.yaml
var rawTable []byte

var table = mustParseTable(rawTable)

func parseTable(raw []byte) (map[Tier]Capabilities, error) {
	parsed := map[Tier]Capabilities{}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse plan table: %w", err)
	}
	if _, ok := parsed[TierFree]; !ok {
		return nil, fmt.Errorf("plan table does not define the %q tier", TierFree)
	}
	for tier, c := range parsed {
		c.Plan = tier
		parsed[tier] = c
	}
	return parsed, nil
}

func mustParseTable(raw []byte) map[Tier]Capabilities {
	t, err := parseTable(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTier lower-cases and trims the plan string. Unknown values become free.
func ParseTier(plan string) Tier {
	tier := Tier(strings.ToLower(strings.TrimSpace(plan)))
	if _, ok := table[tier]; !ok {
		return TierFree
	}
	return tier
}

func Resolve(plan string) Capabilities {
	return table[ParseTier(plan)]
}
