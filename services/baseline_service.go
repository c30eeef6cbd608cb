// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"fmt"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/shared"
)

type baselineService struct {
	scanRepository shared.ScanRepository
}

func NewBaselineService(scanRepository shared.ScanRepository) *baselineService {
	return &baselineService{scanRepository: scanRepository}
}

// Resolve returns the scan new findings are compared against: the latest scan of the branch,
// else the latest scan of the default branch. It returns nil if neither exists.
func (s *baselineService) Resolve(project models.Project, branch string) (*models.Scan, error) {
	scan, err := s.scanRepository.LatestForBranch(project.ID, branch)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest scan of branch %s: %w", branch, err)
	}
	if scan != nil {
		return scan, nil
	}

	defaultBranch := project.GetDefaultBranch()
	if branch == defaultBranch {
		return nil, nil
	}

	scan, err = s.scanRepository.LatestForBranch(project.ID, defaultBranch)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest scan of default branch %s: %w", defaultBranch, err)
	}
	return scan, nil
}
