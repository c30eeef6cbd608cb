package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/grouping"
	"github.com/l3montree-dev/qualitygate/mocks"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func finding(ruleID, path string, line int) models.Finding {
	return models.Finding{ID: uuid.New(), RuleID: ruleID, FilePath: path, LineNumber: line, Severity: "HIGH", Category: "SECURITY"}
}

func TestDeduplicate(t *testing.T) {
	project := newProject("pro")
	scan := models.Scan{Branch: "main"}
	scan.ID = uuid.New()
	scan.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should upsert one group per key, mark first seen and link members", func(t *testing.T) {
		issueGroupRepository := mocks.NewIssueGroupRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		s := NewIssueGroupService(issueGroupRepository, findingRepository, config.Config{GroupLinkBatchSize: 500})

		findings := []models.Finding{finding("R1", "a.py", 10), finding("R1", "a.py", 10), finding("R2", "b.py", 1)}
		groupIDs := map[string]uuid.UUID{}

		var upserted []models.IssueGroup
		issueGroupRepository.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			group := args.Get(1).(*models.IssueGroup)
			group.ID = uuid.New()
			groupIDs[group.Fingerprint] = group.ID
			upserted = append(upserted, *group)
		}).Return(nil)
		issueGroupRepository.On("MarkFirstSeen", mock.Anything, mock.Anything, scan.ID, scan.CreatedAt).Return(true, nil).Times(2)
		findingRepository.On("LinkGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

		n, err := s.Deduplicate(nil, project, scan, findings)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		require.Len(t, upserted, 2)
		assert.Equal(t, 2, upserted[0].OccurrenceCount)
		assert.Equal(t, grouping.Fingerprint(project.ID, "R1", "a.py", 10), upserted[0].Fingerprint)
		assert.Equal(t, project.OrganizationID, upserted[0].OrgID)
		assert.Equal(t, scan.ID, upserted[0].LastSeenScanID)
		assert.Equal(t, []string{"a.py"}, []string(upserted[0].AffectedFiles))
		assert.Equal(t, models.IssueGroupStatusOpen, upserted[0].Status)

		findingRepository.AssertCalled(t, "LinkGroup", mock.Anything, groupIDs[upserted[0].Fingerprint], []uuid.UUID{findings[0].ID, findings[1].ID})
	})

	t.Run("should not touch first seen of a group which already has it", func(t *testing.T) {
		issueGroupRepository := mocks.NewIssueGroupRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		s := NewIssueGroupService(issueGroupRepository, findingRepository, config.Config{GroupLinkBatchSize: 500})

		firstSeen := uuid.New()
		issueGroupRepository.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			group := args.Get(1).(*models.IssueGroup)
			group.ID = uuid.New()
			group.FirstSeenScanID = &firstSeen
		}).Return(nil)
		findingRepository.On("LinkGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := s.Deduplicate(nil, project, scan, []models.Finding{finding("R1", "a.py", 1)})
		require.NoError(t, err)
		issueGroupRepository.AssertNotCalled(t, "MarkFirstSeen", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should link members in batches", func(t *testing.T) {
		issueGroupRepository := mocks.NewIssueGroupRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		s := NewIssueGroupService(issueGroupRepository, findingRepository, config.Config{GroupLinkBatchSize: 2})

		findings := make([]models.Finding, 5)
		for i := range findings {
			findings[i] = finding("R1", "a.py", 1)
		}
		issueGroupRepository.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.IssueGroup).ID = uuid.New()
		}).Return(nil)
		issueGroupRepository.On("MarkFirstSeen", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		findingRepository.On("LinkGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

		_, err := s.Deduplicate(nil, project, scan, findings)
		require.NoError(t, err)

		ids := utils.Map(findings, func(f models.Finding) uuid.UUID { return f.ID })
		findingRepository.AssertCalled(t, "LinkGroup", mock.Anything, mock.Anything, ids[4:])
	})

	t.Run("should stop at the first failing upsert", func(t *testing.T) {
		issueGroupRepository := mocks.NewIssueGroupRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		s := NewIssueGroupService(issueGroupRepository, findingRepository, config.Config{GroupLinkBatchSize: 500})

		issueGroupRepository.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()

		n, err := s.Deduplicate(nil, project, scan, []models.Finding{finding("R1", "a.py", 1), finding("R2", "a.py", 1)})
		assert.Error(t, err)
		assert.Equal(t, 0, n)
	})
}
