// Copyright (C) 2025 timbastin
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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/classify"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/plans"
	"github.com/l3montree-dev/qualitygate/utils"
)

type OrganizationRepository interface {
	utils.Repository[uuid.UUID, models.Org, DB]
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	// FindByAPIKey returns the project with its organization preloaded
	FindByAPIKey(apiKey string) (models.Project, error)
	AllWithOrganization() ([]models.Project, error)
}

type ScanRepository interface {
	utils.Repository[uuid.UUID, models.Scan, DB]
	// LatestForBranch returns nil if the branch was never scanned
	LatestForBranch(projectID uuid.UUID, branch string) (*models.Scan, error)
	// PreviousForBranch returns the newest scan of the branch other than excludeID, or nil
	PreviousForBranch(projectID uuid.UUID, branch string, excludeID uuid.UUID) (*models.Scan, error)
	CountByProject(tx DB, projectID uuid.UUID) (int64, error)
	// DeleteOldest deletes the n oldest scans of the project and returns the number of deleted rows
	DeleteOldest(tx DB, projectID uuid.UUID, n int) (int64, error)
}

type FindingRepository interface {
	CreateBatch(tx DB, findings []models.Finding) error
	BaselineFindings(scanID uuid.UUID) ([]classify.BaselineFinding, error)
	ListByScan(scanID uuid.UUID) ([]models.Finding, error)
	// LinkGroup sets group_id of the given findings. The caller chooses the batch size.
	LinkGroup(tx DB, groupID uuid.UUID, findingIDs []uuid.UUID) error
}

type SuppressionRepository interface {
	utils.Repository[uuid.UUID, models.Suppression, DB]
	// FindUnrevokedByProject returns every suppression which was not revoked. Expiry is checked by the caller.
	FindUnrevokedByProject(projectID uuid.UUID) ([]models.Suppression, error)
}

type GateOverrideRepository interface {
	utils.Repository[uuid.UUID, models.GateOverride, DB]
	// FindActive returns nil if the commit has no unrevoked override
	FindActive(projectID uuid.UUID, commitHash string) (*models.GateOverride, error)
}

type IssueGroupRepository interface {
	utils.Repository[uuid.UUID, models.IssueGroup, DB]
	// Upsert inserts or updates the group keyed by org, project and fingerprint.
	// After the call group carries the stored id, occurrence count and first seen fields.
	Upsert(tx DB, group *models.IssueGroup) error
	// MarkFirstSeen sets the first seen fields if they are still empty. It reports whether it did.
	MarkFirstSeen(tx DB, groupID uuid.UUID, scanID uuid.UUID, at time.Time) (bool, error)
	FindByFingerprint(orgID, projectID uuid.UUID, fingerprint string) (models.IssueGroup, error)
}

type BaselineService interface {
	Resolve(project models.Project, branch string) (*models.Scan, error)
}

type IssueGroupService interface {
	Deduplicate(tx DB, project models.Project, scan models.Scan, findings []models.Finding) (int, error)
}

type RetentionService interface {
	Trim(project models.Project, maxScansStored int) (int64, error)
	RunAll(ctx context.Context) (int64, error)
}

type ScanService interface {
	Ingest(ctx context.Context, project models.Project, body []byte) (IngestResult, error)
}

// IngestResult is the synchronous outcome of a report ingestion and the side effects still to run.
type IngestResult struct {
	Response dtos.ScanResponse
	Scan     models.Scan
	Effects  []Effect
}

// Effect is a best effort side effect. Its failure never changes a persisted decision.
type Effect struct {
	Channel string
	Run     func(ctx context.Context) error
}

// NotificationRouter decides which best effort side effects a persisted scan triggers.
type NotificationRouter interface {
	Effects(project models.Project, scan models.Scan, gate dtos.GateResult, caps plans.Capabilities) []Effect
}

type EffectDispatcher interface {
	Dispatch(effects []Effect)
}

// PRDiffProvider returns the lines changed by the pull request containing the commit.
// It returns nil without error if the commit is not part of an open pull request.
type PRDiffProvider interface {
	DiffScope(ctx context.Context, project models.Project, commitHash string) (*classify.DiffScope, error)
}

type CheckRunPoster interface {
	PostCheckRun(ctx context.Context, project models.Project, scan models.Scan, gate dtos.GateResult) error
}

type ChatNotifier interface {
	Notify(ctx context.Context, webhookURL string, notification dtos.ScanNotification) error
}
