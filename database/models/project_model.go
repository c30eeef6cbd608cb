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

package models

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	databasetypes "github.com/l3montree-dev/qualitygate/database/types"
	"github.com/l3montree-dev/qualitygate/dtos"
)

type Project struct {
	Model
	Name           string    `json:"name" gorm:"type:text"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"not null;type:uuid;index"`
	Organization   Org       `json:"organization" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`

	RepoURL       string `json:"repoUrl" gorm:"type:text"`
	DefaultBranch string `json:"defaultBranch" gorm:"type:text;not null;default:'main'"`
	StrictMode    bool   `json:"strictMode" gorm:"default:false;"`

	PolicyConfig databasetypes.JSONB `json:"policyConfig" gorm:"type:jsonb"`
	Integrations databasetypes.JSONB `json:"integrations" gorm:"type:jsonb"`

	APIKey string `json:"-" gorm:"type:text;uniqueIndex;not null"`
}

func (Project) TableName() string {
	return "projects"
}

func (m Project) GetDefaultBranch() string {
	if m.DefaultBranch == "" {
		return "main"
	}
	return m.DefaultBranch
}

// GetIntegrations decodes the integration config. A broken document yields the zero config.
func (m Project) GetIntegrations() dtos.IntegrationConfig {
	var cfg dtos.IntegrationConfig
	if err := m.Integrations.Decode(&cfg); err != nil {
		return dtos.IntegrationConfig{}
	}
	return cfg
}

// RepositoryOwnerAndName extracts owner and name from urls like https://github.com/owner/name(.git)
// or git@github.com:owner/name.git
func (m Project) RepositoryOwnerAndName() (string, string, bool) {
	raw := strings.TrimSpace(m.RepoURL)
	if raw == "" {
		return "", "", false
	}

	var path string
	if strings.HasPrefix(raw, "git@") {
		_, after, found := strings.Cut(raw, ":")
		if !found {
			return "", "", false
		}
		path = after
	} else {
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", false
		}
		path = u.Path
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
