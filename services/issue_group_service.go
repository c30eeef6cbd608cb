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

package services

import (
	"fmt"

	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/grouping"
	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/lib/pq"
)

type issueGroupService struct {
	issueGroupRepository shared.IssueGroupRepository
	findingRepository    shared.FindingRepository

	lineWindow    int
	linkBatchSize int
}

func NewIssueGroupService(issueGroupRepository shared.IssueGroupRepository, findingRepository shared.FindingRepository, cfg config.Config) *issueGroupService {
	return &issueGroupService{
		issueGroupRepository: issueGroupRepository,
		findingRepository:    findingRepository,
		lineWindow:           cfg.IssueGroupLineWindow,
		linkBatchSize:        cfg.GroupLinkBatchSize,
	}
}

// Deduplicate upserts one issue group per group of findings and links the findings to it.
// It returns the number of upserted groups.
func (s *issueGroupService) Deduplicate(tx shared.DB, project models.Project, scan models.Scan, findings []models.Finding) (int, error) {
	groups := grouping.Findings(findings, s.lineWindow)

	for i, g := range groups {
		group := newIssueGroup(project, scan, g)
		if err := s.issueGroupRepository.Upsert(tx, &group); err != nil {
			monitoring.IssueGroupingFailed.Inc()
			return i, fmt.Errorf("could not upsert issue group %s: %w", group.Fingerprint, err)
		}
		monitoring.IssueGroupsUpserted.Inc()

		// the upsert returns the stored row. first_seen_* stays write-once.
		if group.FirstSeenScanID == nil {
			marked, err := s.issueGroupRepository.MarkFirstSeen(tx, group.ID, scan.ID, scan.CreatedAt)
			if err != nil {
				monitoring.IssueGroupingFailed.Inc()
				return i, fmt.Errorf("could not mark first seen of issue group %s: %w", group.ID, err)
			}
			if marked {
				monitoring.IssueGroupsFirstSeen.Inc()
			}
		}

		for _, ids := range utils.Chunk(g.MemberIDs(), s.linkBatchSize) {
			if err := s.findingRepository.LinkGroup(tx, group.ID, ids); err != nil {
				monitoring.IssueGroupingFailed.Inc()
				return i, fmt.Errorf("could not link findings to issue group %s: %w", group.ID, err)
			}
		}
	}

	return len(groups), nil
}

func newIssueGroup(project models.Project, scan models.Scan, g grouping.Group) models.IssueGroup {
	canonical := g.Canonical()
	return models.IssueGroup{
		OrgID:           project.OrganizationID,
		ProjectID:       project.ID,
		Fingerprint:     g.Fingerprint(project.ID),
		RuleID:          canonical.RuleID,
		Category:        string(canonical.Category),
		Severity:        string(canonical.Severity),
		FilePath:        canonical.FilePath,
		LineNumber:      canonical.LineNumber,
		Snippet:         canonical.Snippet,
		OccurrenceCount: len(g.Members),
		AffectedFiles:   pq.StringArray(g.AffectedFiles()),
		LastSeenAt:      scan.CreatedAt,
		LastSeenScanID:  scan.ID,
		Status:          models.IssueGroupStatusOpen,
	}
}
