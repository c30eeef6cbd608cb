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
	"github.com/lib/pq"
)

type IssueGroupStatus string

const (
	IssueGroupStatusOpen     IssueGroupStatus = "open"
	IssueGroupStatusResolved IssueGroupStatus = "resolved"
	IssueGroupStatusIgnored  IssueGroupStatus = "ignored"
)

// IssueGroup is the cross scan identity of a recurring finding.
// first_seen_* are written at most once. See IssueGroupRepository.MarkFirstSeen.
type IssueGroup struct {
	Model
	OrgID       uuid.UUID `json:"orgId" gorm:"type:uuid;not null;uniqueIndex:idx_issue_groups_fingerprint,priority:1"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_issue_groups_fingerprint,priority:2"`
	Project     Project   `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	Fingerprint string    `json:"fingerprint" gorm:"type:text;not null;uniqueIndex:idx_issue_groups_fingerprint,priority:3"`

	RuleID     string `json:"ruleId" gorm:"type:text;not null"`
	Category   string `json:"category" gorm:"type:text"`
	Severity   string `json:"severity" gorm:"type:text"`
	FilePath   string `json:"filePath" gorm:"type:text"`
	LineNumber int    `json:"lineNumber"`
	Snippet    string `json:"snippet" gorm:"type:text"`

	OccurrenceCount int            `json:"occurrenceCount" gorm:"not null;default:0"`
	AffectedFiles   pq.StringArray `json:"affectedFiles" gorm:"type:text[]"`

	// the scans are not referenced by foreign keys, retention may delete them
	FirstSeenAt     *time.Time `json:"firstSeenAt"`
	FirstSeenScanID *uuid.UUID `json:"firstSeenScanId" gorm:"type:uuid"`
	LastSeenAt      time.Time  `json:"lastSeenAt"`
	LastSeenScanID  uuid.UUID  `json:"lastSeenScanId" gorm:"type:uuid"`

	Status IssueGroupStatus `json:"status" gorm:"type:text;not null;default:'open'"`
}

func (IssueGroup) TableName() string {
	return "issue_groups"
}
