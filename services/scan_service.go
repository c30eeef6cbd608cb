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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/classify"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/gate"
	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/normalize"
	"github.com/l3montree-dev/qualitygate/plans"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var (
	ErrStrictMode      = errors.New("STRICT MODE ENABLED: forcing a passing quality gate is disabled for this project")
	ErrSarifNotEnabled = errors.New("SARIF uploads are not available on the current plan")
)

const upgradeHint = "Upgrade your plan to unlock pull request diff analysis, suppressions, overrides, check runs, SARIF import and chat notifications."

type scanService struct {
	scanRepository         shared.ScanRepository
	findingRepository      shared.FindingRepository
	suppressionRepository  shared.SuppressionRepository
	gateOverrideRepository shared.GateOverrideRepository

	baselineService    shared.BaselineService
	issueGroupService  shared.IssueGroupService
	retentionService   shared.RetentionService
	notificationRouter shared.NotificationRouter
	prDiffProvider     shared.PRDiffProvider

	maxFindings int
	upgradeURL  string
	now         func() time.Time
}

type ScanServiceParams struct {
	fx.In

	ScanRepository         shared.ScanRepository
	FindingRepository      shared.FindingRepository
	SuppressionRepository  shared.SuppressionRepository
	GateOverrideRepository shared.GateOverrideRepository
	BaselineService        shared.BaselineService
	IssueGroupService      shared.IssueGroupService
	RetentionService       shared.RetentionService
	NotificationRouter     shared.NotificationRouter
	PRDiffProvider         shared.PRDiffProvider
	Config                 config.Config
}

func NewScanService(p ScanServiceParams) *scanService {
	return &scanService{
		scanRepository:         p.ScanRepository,
		findingRepository:      p.FindingRepository,
		suppressionRepository:  p.SuppressionRepository,
		gateOverrideRepository: p.GateOverrideRepository,
		baselineService:        p.BaselineService,
		issueGroupService:      p.IssueGroupService,
		retentionService:       p.RetentionService,
		notificationRouter:     p.NotificationRouter,
		prDiffProvider:         p.PRDiffProvider,
		maxFindings:            p.Config.MaxFindings,
		upgradeURL:             p.Config.UpgradeURL,
		now:                    time.Now,
	}
}

// Ingest runs the synchronous pipeline for one report: normalize, classify, suppress, gate,
// persist, group and trim. The returned effects are not executed.
//
// Once the scan is persisted it is never rolled back. A grouping failure still returns an error.
func (s *scanService) Ingest(ctx context.Context, project models.Project, body []byte) (shared.IngestResult, error) {
	start := s.now()
	caps := plans.Resolve(project.Organization.Plan)

	raw, err := normalize.Parse(body)
	if err != nil {
		monitoring.ReportsRejected.WithLabelValues("INVALID_REPORT").Inc()
		return shared.IngestResult{}, err
	}
	report := normalize.Report(raw, normalize.Options{MaxFindings: s.maxFindings})

	if report.IsForced && project.StrictMode {
		monitoring.ReportsRejected.WithLabelValues("STRICT_MODE").Inc()
		return shared.IngestResult{}, ErrStrictMode
	}
	if report.IsSarif && !caps.SarifEnabled {
		monitoring.ReportsRejected.WithLabelValues("SARIF_NOT_ENABLED").Inc()
		return shared.IngestResult{}, ErrSarifNotEnabled
	}

	warnings := append([]string{}, report.Warnings...)
	policy, policyWarnings := resolvePolicy(project)
	warnings = append(warnings, policyWarnings...)

	override, suppressions, err := s.fetchPolicyState(project, report.CommitHash, caps)
	if err != nil {
		return shared.IngestResult{}, err
	}

	excluder := classify.NewPathExcluder(policy.ExcludedPaths)
	for _, pattern := range excluder.Invalid() {
		warnings = append(warnings, fmt.Sprintf("ignoring invalid excluded path pattern %q", pattern))
	}
	findings, excluded := excluder.Filter(report.Findings)

	baseline, err := s.baselineService.Resolve(project, report.Branch)
	if err != nil {
		return shared.IngestResult{}, errors.Wrap(err, "could not resolve baseline")
	}

	input := classify.Input{
		PRDiffEnabled: caps.PRDiffEnabled,
		DiffScope:     s.diffScope(ctx, project, report.CommitHash, caps),
		HasBaseline:   baseline != nil,
	}
	if input.DetectionMode() == dtos.DetectionModeBaseline {
		input.BaselineFindings, err = s.findingRepository.BaselineFindings(baseline.ID)
		if err != nil {
			return shared.IngestResult{}, errors.Wrap(err, "could not fetch baseline findings")
		}
	}

	classified := classify.Classify(findings, input)
	suppressed := classify.ApplySuppressions(classified, classify.ActiveSuppressions(suppressions, s.now()), caps.SuppressionsEnabled)

	gateResult := gate.Evaluate(gate.Input{
		Findings:         classified,
		Config:           policy.Gate,
		HasOverride:      override != nil,
		OverridesEnabled: caps.OverridesEnabled,
	})

	scan := models.Scan{
		ProjectID:         project.ID,
		CommitHash:        report.CommitHash,
		Branch:            report.Branch,
		Actor:             report.Actor,
		Tool:              report.Tool,
		DiffContext:       diffContext(project, input.DiffScope, input.DetectionMode()),
		Stats:             buildStats(classified, suppressed, excluded, report, gateResult),
		QualityGatePassed: gateResult.Passed,
		IsOverridden:      gateResult.Overridden,
	}
	scan.ID = uuid.New()
	scan.CreatedAt = s.now()
	if gateResult.Overridden {
		scan.OverrideReason = utils.Ptr(override.Reason)
	}

	rows := make([]models.Finding, len(classified))
	for i, f := range classified {
		rows[i] = models.NewFinding(scan.ID, f)
		rows[i].ID = uuid.New()
	}

	err = s.scanRepository.Transaction(func(tx shared.DB) error {
		if err := s.scanRepository.Create(tx, &scan); err != nil {
			return errors.Wrap(err, "could not save scan")
		}
		return errors.Wrap(s.findingRepository.CreateBatch(tx, rows), "could not save findings")
	})
	if err != nil {
		return shared.IngestResult{}, err
	}
	monitoring.FindingsIngested.WithLabelValues(findingSource(report)).Add(float64(len(rows)))

	if _, err := s.issueGroupService.Deduplicate(nil, project, scan, rows); err != nil {
		slog.Error("could not group findings", "projectID", project.ID, "scanID", scan.ID, "err", err)
		return shared.IngestResult{Scan: scan}, errors.Wrap(err, "could not group findings")
	}

	if _, err := s.retentionService.Trim(project, caps.MaxScansStored); err != nil {
		slog.Error("could not apply retention", "projectID", project.ID, "scanID", scan.ID, "err", err)
		monitoring.Alert("could not apply retention", err)
	}

	response := s.buildResponse(project, scan, report, gateResult, baseline, input.DetectionMode(), caps)
	response.Warnings = warnings

	result := "failed"
	if gateResult.Passed {
		result = "passed"
	}
	monitoring.ScansIngested.WithLabelValues(string(caps.Plan), result).Inc()
	monitoring.ScanIngestionDuration.Observe(s.now().Sub(start).Seconds())

	return shared.IngestResult{
		Response: response,
		Scan:     scan,
		Effects:  s.notificationRouter.Effects(project, scan, gateResult, caps),
	}, nil
}

// fetchPolicyState loads the override of the commit and the suppressions of the project concurrently.
// Disabled capabilities skip their query.
func (s *scanService) fetchPolicyState(project models.Project, commitHash string, caps plans.Capabilities) (*models.GateOverride, []models.Suppression, error) {
	var override *models.GateOverride
	var suppressions []models.Suppression

	var g errgroup.Group
	if caps.OverridesEnabled {
		g.Go(func() error {
			var err error
			override, err = s.gateOverrideRepository.FindActive(project.ID, commitHash)
			return errors.Wrap(err, "could not fetch gate override")
		})
	}
	if caps.SuppressionsEnabled {
		g.Go(func() error {
			var err error
			suppressions, err = s.suppressionRepository.FindUnrevokedByProject(project.ID)
			return errors.Wrap(err, "could not fetch suppressions")
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return override, suppressions, nil
}

// diffScope asks the provider for the pull request of the commit. Provider failures fall back
// to the baseline comparison.
func (s *scanService) diffScope(ctx context.Context, project models.Project, commitHash string, caps plans.Capabilities) *classify.DiffScope {
	if !caps.PRDiffEnabled || s.prDiffProvider == nil || commitHash == normalize.DefaultCommitHash {
		return nil
	}
	scope, err := s.prDiffProvider.DiffScope(ctx, project, commitHash)
	if err != nil {
		slog.Warn("could not resolve pull request diff, falling back to baseline", "projectID", project.ID, "commit", commitHash, "err", err)
		return nil
	}
	return scope
}

func diffContext(project models.Project, scope *classify.DiffScope, mode dtos.DetectionMode) *dtos.DiffContext {
	if scope == nil || mode != dtos.DetectionModePRDiff {
		return nil
	}
	return &dtos.DiffContext{
		Source:            "github",
		Repository:        project.RepoURL,
		PullRequestNumber: scope.PullRequestNumber,
		BaseSHA:           scope.BaseSHA,
		HeadSHA:           scope.HeadSHA,
		ChangedFiles:      len(scope.Files),
	}
}

func buildStats(findings []dtos.ClassifiedFinding, suppressed, excluded int, report dtos.NormalizedReport, gateResult dtos.GateResult) dtos.ScanStats {
	stats := dtos.ScanStats{
		Total:      len(findings),
		Suppressed: suppressed,
		Excluded:   excluded,
		Truncated:  report.Truncated,
		Forced:     report.IsForced,
		BySeverity: map[string]int{},
		ByCategory: map[string]int{},
		Gate:       gateResult,
	}
	for _, f := range findings {
		if f.IsNew {
			stats.New++
		} else {
			stats.Legacy++
		}
		stats.BySeverity[string(f.Severity)]++
		stats.ByCategory[string(f.Category)]++
	}
	return stats
}

func findingSource(report dtos.NormalizedReport) string {
	if report.IsSarif {
		return "sarif"
	}
	return "native"
}

func (s *scanService) buildResponse(project models.Project, scan models.Scan, report dtos.NormalizedReport, gateResult dtos.GateResult, baseline *models.Scan, mode dtos.DetectionMode, caps plans.Capabilities) dtos.ScanResponse {
	response := dtos.ScanResponse{
		// a forced report passes the pipeline on non strict projects, the decision itself is kept
		Success:     gateResult.Passed || (report.IsForced && !project.StrictMode),
		ScanID:      scan.ID,
		ScanIDSnake: scan.ID,
		QualityGate: dtos.QualityGateDTO{
			Passed:                  gateResult.Passed,
			NewViolations:           gateResult.NewViolations,
			SuppressedNewViolations: gateResult.SuppressedNewViolations,
			Message:                 gateResult.Message,
		},
		Explain: dtos.ExplainDTO{
			DetectionMode:           mode,
			SuppressionsEnabled:     caps.SuppressionsEnabled,
			StrictMode:              project.StrictMode,
			ForceDisabledWhenStrict: true,
			NewReasonValues:         dtos.NewReasons,
		},
		Plan: string(caps.Plan),
		Capabilities: dtos.CapabilitiesDTO{
			PRDiff:       caps.PRDiffEnabled,
			Suppressions: caps.SuppressionsEnabled,
			CheckRuns:    caps.CheckRunsEnabled,
			Slack:        caps.SlackEnabled,
			Discord:      caps.DiscordEnabled,
		},
	}
	if baseline != nil {
		response.Explain.Baseline = &dtos.BaselineDTO{
			ScanID:     baseline.ID,
			Branch:     baseline.Branch,
			CommitHash: baseline.CommitHash,
		}
	}
	if !caps.HasAllOptional() {
		response.UpgradeHint = upgradeHint
		response.UpgradeURL = s.upgradeURL
	}
	return response
}
