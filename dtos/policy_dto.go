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

package dtos

type GateMode string

const (
	GateModeZeroNew  GateMode = "zero-new"
	GateModeCategory GateMode = "category"
	GateModeSeverity GateMode = "severity"
	GateModeBoth     GateMode = "both"
)

type GateConfig struct {
	// Enabled defaults to true if omitted
	Enabled            *bool              `json:"enabled,omitempty"`
	Mode               GateMode           `json:"mode,omitempty" validate:"omitempty,oneof=zero-new category severity both"`
	CategoryThresholds map[string]float64 `json:"category_thresholds,omitempty"`
	SeverityThresholds map[string]float64 `json:"severity_thresholds,omitempty"`
}

func (g GateConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

func (g GateConfig) EffectiveMode() GateMode {
	if g.Mode == "" {
		return GateModeZeroNew
	}
	return g.Mode
}

// PolicyConfig is stored per project as jsonb.
type PolicyConfig struct {
	Gate          GateConfig `json:"gate"`
	ExcludedPaths []string   `json:"excluded_paths,omitempty" validate:"dive,required"`
}

type NotifyOn string

const (
	NotifyOnAlways   NotifyOn = "always"
	NotifyOnFailure  NotifyOn = "failure"
	NotifyOnRecovery NotifyOn = "recovery"
)

// ChatChannelConfig is only validated when the channel is enabled.
type ChatChannelConfig struct {
	Enabled    bool     `json:"enabled"`
	WebhookURL string   `json:"webhook_url" validate:"required,url"`
	NotifyOn   NotifyOn `json:"notify_on,omitempty" validate:"omitempty,oneof=always failure recovery"`
}

type GithubIntegrationConfig struct {
	InstallationID int64 `json:"installation_id,omitempty"`
}

// IntegrationConfig is stored per project as jsonb.
type IntegrationConfig struct {
	Slack   ChatChannelConfig       `json:"slack"`
	Discord ChatChannelConfig       `json:"discord"`
	Github  GithubIntegrationConfig `json:"github"`
}
