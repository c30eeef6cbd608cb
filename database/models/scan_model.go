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
	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/dtos"
)

type Scan struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index:idx_scans_project_branch_created,priority:1"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`

	CommitHash string `json:"commitHash" gorm:"type:text;not null"`
	Branch     string `json:"branch" gorm:"type:text;not null;index:idx_scans_project_branch_created,priority:2"`
	Actor      string `json:"actor" gorm:"type:text"`
	Tool       string `json:"tool" gorm:"type:text"`

	DiffContext *dtos.DiffContext `json:"diffContext" gorm:"type:jsonb;serializer:json"`
	Stats       dtos.ScanStats    `json:"stats" gorm:"type:jsonb;serializer:json"`

	QualityGatePassed bool    `json:"qualityGatePassed"`
	IsOverridden      bool    `json:"isOverridden" gorm:"default:false;"`
	OverrideReason    *string `json:"overrideReason" gorm:"type:text"`

	Findings []Finding `json:"findings,omitempty" gorm:"foreignKey:ScanID;constraint:OnDelete:CASCADE;"`
}

func (Scan) TableName() string {
	return "scans"
}
