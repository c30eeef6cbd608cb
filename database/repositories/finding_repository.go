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
	"github.com/l3montree-dev/qualitygate/classify"
	"github.com/l3montree-dev/qualitygate/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findings have 14 columns, keep every insert well below the parameter limit
const findingInsertBatchSize = 1000

type findingRepository struct {
	db *gorm.DB
}

func NewFindingRepository(db *gorm.DB) *findingRepository {
	return &findingRepository{db: db}
}

func (r *findingRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateBatch inserts the findings. Ids are assigned in place before the insert,
// the caller can use them for grouping afterwards.
func (r *findingRepository) CreateBatch(tx *gorm.DB, findings []models.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	for i := range findings {
		if findings[i].ID == uuid.Nil {
			findings[i].ID = uuid.New()
		}
	}
	return r.getDB(tx).Omit(clause.Associations).CreateInBatches(&findings, findingInsertBatchSize).Error
}

func (r *findingRepository) BaselineFindings(scanID uuid.UUID) ([]classify.BaselineFinding, error) {
	var result []classify.BaselineFinding
	err := r.db.Model(&models.Finding{}).
		Select("rule_id", "file_path").
		Where("scan_id = ?", scanID).
		Scan(&result).Error
	return result, err
}

func (r *findingRepository) ListByScan(scanID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := r.db.Where("scan_id = ?", scanID).Order("created_at ASC, id ASC").Find(&findings).Error
	return findings, err
}

func (r *findingRepository) LinkGroup(tx *gorm.DB, groupID uuid.UUID, findingIDs []uuid.UUID) error {
	if len(findingIDs) == 0 {
		return nil
	}
	return r.getDB(tx).Model(&models.Finding{}).
		Where("id IN ?", findingIDs).
		Update("group_id", groupID).Error
}
