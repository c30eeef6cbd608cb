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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type issueGroupRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.IssueGroup, *gorm.DB]
}

func NewIssueGroupRepository(db *gorm.DB) *issueGroupRepository {
	return &issueGroupRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.IssueGroup](db),
	}
}

// Upsert relies on the unique index over org, project and fingerprint. A concurrent writer
// with the same fingerprint ends up in the update branch instead of creating a duplicate.
// The occurrence count accumulates, every other canonical field is replaced.
// first_seen_* are never part of the update, see MarkFirstSeen.
func (r *issueGroupRepository) Upsert(tx *gorm.DB, group *models.IssueGroup) error {
	updates := clause.AssignmentColumns([]string{
		"rule_id", "category", "severity", "file_path", "line_number", "snippet",
		"affected_files", "last_seen_at", "last_seen_scan_id", "updated_at",
	})
	updates = append(updates,
		clause.Assignment{Column: clause.Column{Name: "occurrence_count"}, Value: gorm.Expr("issue_groups.occurrence_count + EXCLUDED.occurrence_count")},
		clause.Assignment{Column: clause.Column{Name: "status"}, Value: string(models.IssueGroupStatusOpen)},
	)

	group.Status = models.IssueGroupStatusOpen
	return r.GetDB(tx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "project_id"}, {Name: "fingerprint"}},
			DoUpdates: updates,
		},
		clause.Returning{},
	).Create(group).Error
}

// MarkFirstSeen is a conditional update. Of several concurrent callers exactly one wins.
func (r *issueGroupRepository) MarkFirstSeen(tx *gorm.DB, groupID uuid.UUID, scanID uuid.UUID, at time.Time) (bool, error) {
	res := r.GetDB(tx).Model(&models.IssueGroup{}).
		Where("id = ? AND first_seen_scan_id IS NULL", groupID).
		Updates(map[string]any{
			"first_seen_at":      at,
			"first_seen_scan_id": scanID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *issueGroupRepository) FindByFingerprint(orgID, projectID uuid.UUID, fingerprint string) (models.IssueGroup, error) {
	var group models.IssueGroup
	err := r.db.Where("org_id = ? AND project_id = ? AND fingerprint = ?", orgID, projectID, fingerprint).First(&group).Error
	return group, err
}
