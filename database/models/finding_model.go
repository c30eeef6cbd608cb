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
	"github.com/l3montree-dev/qualitygate/dtos"
)

type Finding struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ScanID uuid.UUID `json:"scanId" gorm:"type:uuid;not null;index"`

	RuleID     string        `json:"ruleId" gorm:"type:text;not null"`
	ToolRuleID string        `json:"toolRuleId" gorm:"type:text"`
	FilePath   string        `json:"filePath" gorm:"type:text;not null"`
	LineNumber int           `json:"lineNumber" gorm:"not null;default:0"`
	Message    string        `json:"message" gorm:"type:text"`
	Snippet    string        `json:"snippet" gorm:"type:text"`
	Severity   dtos.Severity `json:"severity" gorm:"type:text;not null"`
	Category   dtos.Category `json:"category" gorm:"type:text;not null"`

	IsNew        bool           `json:"isNew"`
	NewReason    dtos.NewReason `json:"newReason" gorm:"type:text"`
	IsSuppressed bool           `json:"isSuppressed"`

	GroupID *uuid.UUID `json:"groupId" gorm:"type:uuid;index"`
}

func (Finding) TableName() string {
	return "findings"
}

func NewFinding(scanID uuid.UUID, f dtos.ClassifiedFinding) Finding {
	return Finding{
		ScanID:       scanID,
		RuleID:       f.RuleID,
		ToolRuleID:   f.ToolRuleID,
		FilePath:     f.FilePath,
		LineNumber:   f.LineNumber,
		Message:      f.Message,
		Snippet:      f.Snippet,
		Severity:     f.Severity,
		Category:     f.Category,
		IsNew:        f.IsNew,
		NewReason:    f.NewReason,
		IsSuppressed: f.IsSuppressed,
	}
}
