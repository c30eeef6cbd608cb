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
	"time"

	"github.com/google/uuid"
)

type Suppression struct {
	Model
	ProjectID  uuid.UUID  `json:"projectId" gorm:"type:uuid;not null;index"`
	Project    Project    `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	RuleID     string     `json:"ruleId" gorm:"type:text;not null"`
	FilePath   string     `json:"filePath" gorm:"type:text;not null"`
	LineNumber int        `json:"lineNumber" gorm:"not null;default:0"`
	Reason     string     `json:"reason" gorm:"type:text"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	RevokedAt  *time.Time `json:"revokedAt"`
}

func (Suppression) TableName() string {
	return "suppressions"
}

// IsActive reports whether the suppression is neither revoked nor expired at now.
// A suppression expiring exactly at now is no longer active.
func (s Suppression) IsActive(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

// GateOverride whitelists the gate failure of a single commit.
type GateOverride struct {
	Model
	ProjectID  uuid.UUID  `json:"projectId" gorm:"type:uuid;not null;index:idx_gate_overrides_project_commit"`
	Project    Project    `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	CommitHash string     `json:"commitHash" gorm:"type:text;not null;index:idx_gate_overrides_project_commit"`
	Reason     string     `json:"reason" gorm:"type:text"`
	CreatedBy  string     `json:"createdBy" gorm:"type:text"`
	RevokedAt  *time.Time `json:"revokedAt"`
}

func (GateOverride) TableName() string {
	return "gate_overrides"
}
