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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/utils"
	"gorm.io/gorm"
)

type suppressionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Suppression, *gorm.DB]
}

func NewSuppressionRepository(db *gorm.DB) *suppressionRepository {
	return &suppressionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Suppression](db),
	}
}

func (r *suppressionRepository) FindUnrevokedByProject(projectID uuid.UUID) ([]models.Suppression, error) {
	var suppressions []models.Suppression
	err := r.db.Where("project_id = ? AND revoked_at IS NULL", projectID).Find(&suppressions).Error
	return suppressions, err
}

type gateOverrideRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.GateOverride, *gorm.DB]
}

func NewGateOverrideRepository(db *gorm.DB) *gateOverrideRepository {
	return &gateOverrideRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.GateOverride](db),
	}
}

func (r *gateOverrideRepository) FindActive(projectID uuid.UUID, commitHash string) (*models.GateOverride, error) {
	var override models.GateOverride
	err := r.db.Where("project_id = ? AND commit_hash = ? AND revoked_at IS NULL", projectID, commitHash).
		Order("created_at DESC").
		First(&override).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}
