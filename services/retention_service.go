// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/plans"
	"github.com/l3montree-dev/qualitygate/shared"
)

type retentionService struct {
	scanRepository    shared.ScanRepository
	projectRepository shared.ProjectRepository
}

func NewRetentionService(scanRepository shared.ScanRepository, projectRepository shared.ProjectRepository) *retentionService {
	return &retentionService{
		scanRepository:    scanRepository,
		projectRepository: projectRepository,
	}
}

// Trim deletes the oldest scans of the project until at most maxScansStored remain.
// A limit <= 0 means unlimited.
func (s *retentionService) Trim(project models.Project, maxScansStored int) (int64, error) {
	if maxScansStored <= 0 {
		return 0, nil
	}

	count, err := s.scanRepository.CountByProject(nil, project.ID)
	if err != nil {
		return 0, fmt.Errorf("could not count scans: %w", err)
	}
	if count <= int64(maxScansStored) {
		return 0, nil
	}

	deleted, err := s.scanRepository.DeleteOldest(nil, project.ID, int(count-int64(maxScansStored)))
	if err != nil {
		return 0, fmt.Errorf("could not delete old scans: %w", err)
	}
	monitoring.RetentionDeletedScans.Add(float64(deleted))
	slog.Debug("trimmed scans", "projectID", project.ID, "deleted", deleted, "limit", maxScansStored)
	return deleted, nil
}

// ProjectRetention is the outcome of trimming one project.
type ProjectRetention struct {
	Project models.Project
	Limit   int
	Deleted int64
	Err     error
}

// RetentionProgress observes a retention run over all projects.
type RetentionProgress interface {
	Start(projects int)
	Trimmed(result ProjectRetention)
}

// RunAll trims every project to the limit of its plan. It continues after a failing project
// and returns all errors joined.
func (s *retentionService) RunAll(ctx context.Context) (int64, error) {
	return s.RunAllWithProgress(ctx, nil)
}

// RunAllWithProgress behaves like RunAll and reports every project to progress, which may be nil.
func (s *retentionService) RunAllWithProgress(ctx context.Context, progress RetentionProgress) (int64, error) {
	start := time.Now()
	defer func() {
		monitoring.RetentionRunDuration.Observe(time.Since(start).Seconds())
	}()

	projects, err := s.projectRepository.AllWithOrganization()
	if err != nil {
		return 0, fmt.Errorf("could not fetch projects: %w", err)
	}
	if progress != nil {
		progress.Start(len(projects))
	}

	var total int64
	var errs []error
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		caps := plans.Resolve(project.Organization.Plan)
		deleted, err := s.Trim(project, caps.MaxScansStored)
		if progress != nil {
			progress.Trimmed(ProjectRetention{Project: project, Limit: caps.MaxScansStored, Deleted: deleted, Err: err})
		}
		if err != nil {
			slog.Error("could not trim project", "projectID", project.ID, "err", err)
			errs = append(errs, fmt.Errorf("project %s: %w", project.ID, err))
			continue
		}
		total += deleted
	}

	return total, errors.Join(errs...)
}
