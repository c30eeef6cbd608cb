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

type Org struct {
	Model
	Name     string    `json:"name" gorm:"type:text"`
	Slug     string    `json:"slug" gorm:"type:text;unique;not null;index"`
	Plan     string    `json:"plan" gorm:"type:text;not null;default:'free'"`
	Projects []Project `json:"projects" gorm:"foreignKey:OrganizationID;"`
}

func (Org) TableName() string {
	return "organizations"
}
