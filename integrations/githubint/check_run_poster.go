// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/utils"
)

const maxStatusDescriptionLength = 140

type CheckRunPoster struct {
	factory      clientFactory
	checkRunName string
}

func NewCheckRunPoster(cfg config.Config) *CheckRunPoster {
	return &CheckRunPoster{
		factory:      defaultClientFactory{cfg: cfg},
		checkRunName: cfg.CheckRunName,
	}
}

// PostCheckRun reports the gate decision on the commit. With an app installation the named check run
// is found or created and completed, otherwise a commit status is posted if a status token exists.
// Every call is a single attempt.
func (p *CheckRunPoster) PostCheckRun(ctx context.Context, project models.Project, scan models.Scan, gate dtos.GateResult) error {
	owner, repo, ok := project.RepositoryOwnerAndName()
	if !ok {
		return ErrNoRepository
	}

	installationID := project.GetIntegrations().Github.InstallationID
	if installationID != 0 {
		client, err := p.factory.installationClient(installationID)
		if err != nil {
			return err
		}
		return p.completeCheckRun(ctx, client, owner, repo, scan, gate)
	}

	client, ok := p.factory.statusClient(ctx)
	if !ok {
		slog.Debug("no github installation or status token, skipping check run", "projectID", project.ID)
		return nil
	}
	return p.postStatus(ctx, client, owner, repo, scan, gate)
}

func (p *CheckRunPoster) completeCheckRun(ctx context.Context, client githubClientFacade, owner, repo string, scan models.Scan, gate dtos.GateResult) error {
	existing, _, err := client.ListCheckRunsForRef(ctx, owner, repo, scan.CommitHash, &github.ListCheckRunsOptions{
		CheckName: utils.Ptr(p.checkRunName),
	})
	if err != nil {
		return fmt.Errorf("could not list check runs: %w", err)
	}

	output := &github.CheckRunOutput{
		Title:   utils.Ptr(gate.Message),
		Summary: utils.Ptr(checkRunSummary(scan, gate)),
	}

	if existing != nil && len(existing.CheckRuns) > 0 {
		_, _, err = client.UpdateCheckRun(ctx, owner, repo, existing.CheckRuns[0].GetID(), github.UpdateCheckRunOptions{
			Name:       p.checkRunName,
			Status:     utils.Ptr("completed"),
			Conclusion: utils.Ptr(conclusion(gate)),
			Output:     output,
		})
		if err != nil {
			return fmt.Errorf("could not update check run: %w", err)
		}
		return nil
	}

	_, _, err = client.CreateCheckRun(ctx, owner, repo, github.CreateCheckRunOptions{
		Name:       p.checkRunName,
		HeadSHA:    scan.CommitHash,
		Status:     utils.Ptr("completed"),
		Conclusion: utils.Ptr(conclusion(gate)),
		Output:     output,
	})
	if err != nil {
		return fmt.Errorf("could not create check run: %w", err)
	}
	return nil
}

func (p *CheckRunPoster) postStatus(ctx context.Context, client githubClientFacade, owner, repo string, scan models.Scan, gate dtos.GateResult) error {
	state := "failure"
	if gate.Passed {
		state = "success"
	}
	_, _, err := client.CreateStatus(ctx, owner, repo, scan.CommitHash, &github.RepoStatus{
		State:       utils.Ptr(state),
		Description: utils.Ptr(utils.Truncate(gate.Message, maxStatusDescriptionLength)),
		Context:     utils.Ptr(p.checkRunName),
	})
	if err != nil {
		return fmt.Errorf("could not create commit status: %w", err)
	}
	return nil
}

func conclusion(gate dtos.GateResult) string {
	if gate.Passed {
		return "success"
	}
	return "failure"
}

func checkRunSummary(scan models.Scan, gate dtos.GateResult) string {
	return fmt.Sprintf("New violations: %d\nSuppressed new violations: %d\nTotal findings: %d\nBranch: %s",
		gate.NewViolations, gate.SuppressedNewViolations, scan.Stats.Total, scan.Branch)
}
