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

type scanRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Scan, *gorm.DB]
}

func NewScanRepository(db *gorm.DB) *scanRepository {
	return &scanRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Scan](db),
	}
}

func (r *scanRepository) LatestForBranch(projectID uuid.UUID, branch string) (*models.Scan, error) {
	var scan models.Scan
	err := r.db.Where("project_id = ? AND branch = ?", projectID, branch).
		Order("created_at DESC").
		First(&scan).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) PreviousForBranch(projectID uuid.UUID, branch string, excludeID uuid.UUID) (*models.Scan, error) {
	var scan models.Scan
	err := r.db.Where("project_id = ? AND branch = ? AND id <> ?", projectID, branch, excludeID).
		Order("created_at DESC").
		First(&scan).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) CountByProject(tx *gorm.DB, projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.Scan{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// DeleteOldest removes the n oldest scans of the project. Findings go with them (ON DELETE CASCADE).
func (r *scanRepository) DeleteOldest(tx *gorm.DB, projectID uuid.UUID, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	res := r.GetDB(tx).Exec(`DELETE FROM scans WHERE id IN (
		SELECT id FROM scans WHERE project_id = ? ORDER BY created_at ASC, id ASC LIMIT ?
	)`, projectID, n)
	return res.RowsAffected, res.Error
}
