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
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/normalize"
	"github.com/l3montree-dev/qualitygate/plans"
	"github.com/l3montree-dev/qualitygate/shared"
)

const (
	ChannelSlack    = "slack"
	ChannelDiscord  = "discord"
	ChannelCheckRun = "check_run"
)

// ShouldNotify decides whether a chat channel is notified. isRecovery is only
// relevant for NotifyOnRecovery, an empty notifyOn behaves like NotifyOnFailure.
func ShouldNotify(notifyOn dtos.NotifyOn, enabled bool, passed bool, isRecovery bool) bool {
	if !enabled {
		return false
	}
	switch notifyOn {
	case dtos.NotifyOnAlways:
		return true
	case dtos.NotifyOnRecovery:
		return !passed || isRecovery
	default:
		return !passed
	}
}

// IsRecovery is true if the previous scan of the branch failed and the current one passed.
func IsRecovery(previous *models.Scan, passed bool) bool {
	return previous != nil && !previous.QualityGatePassed && passed
}

type notificationService struct {
	scanRepository shared.ScanRepository
	checkRunPoster shared.CheckRunPoster
	slack          shared.ChatNotifier
	discord        shared.ChatNotifier
}

func NewNotificationService(scanRepository shared.ScanRepository, checkRunPoster shared.CheckRunPoster, client *http.Client) *notificationService {
	return newNotificationService(scanRepository, checkRunPoster, NewSlackNotifier(client), NewDiscordNotifier(client))
}

func newNotificationService(scanRepository shared.ScanRepository, checkRunPoster shared.CheckRunPoster, slack, discord shared.ChatNotifier) *notificationService {
	return &notificationService{
		scanRepository: scanRepository,
		checkRunPoster: checkRunPoster,
		slack:          slack,
		discord:        discord,
	}
}

type chatChannel struct {
	name     string
	config   dtos.ChatChannelConfig
	enabled  bool
	notifier shared.ChatNotifier
}

// Effects returns the side effects of a persisted scan. Chat channels are independent of each other.
// The previous scan is only looked up if a channel notifies on recovery.
func (s *notificationService) Effects(project models.Project, scan models.Scan, gate dtos.GateResult, caps plans.Capabilities) []shared.Effect {
	integrations := project.GetIntegrations()
	channels := []chatChannel{
		{name: ChannelSlack, config: integrations.Slack, enabled: caps.SlackEnabled, notifier: s.slack},
		{name: ChannelDiscord, config: integrations.Discord, enabled: caps.DiscordEnabled, notifier: s.discord},
	}

	effects := make([]shared.Effect, 0, len(channels)+1)
	isRecovery, recoveryResolved := false, false

	for _, channel := range channels {
		if !channel.enabled || !channel.config.Enabled || channel.notifier == nil {
			continue
		}
		if err := shared.V.Struct(channel.config); err != nil {
			slog.Warn("skipping chat channel with invalid configuration", "channel", channel.name, "projectID", project.ID, "err", err)
			continue
		}

		if channel.config.NotifyOn == dtos.NotifyOnRecovery && !recoveryResolved {
			recoveryResolved = true
			previous, err := s.scanRepository.PreviousForBranch(project.ID, scan.Branch, scan.ID)
			if err != nil {
				slog.Warn("could not fetch previous scan, assuming no recovery", "projectID", project.ID, "scanID", scan.ID, "err", err)
			}
			isRecovery = IsRecovery(previous, gate.Passed)
		}

		if !ShouldNotify(channel.config.NotifyOn, true, gate.Passed, isRecovery) {
			continue
		}

		notification := newScanNotification(project, scan, gate, isRecovery && channel.config.NotifyOn == dtos.NotifyOnRecovery)
		notifier := channel.notifier
		webhookURL := channel.config.WebhookURL
		effects = append(effects, shared.Effect{
			Channel: channel.name,
			Run: func(ctx context.Context) error {
				return notifier.Notify(ctx, webhookURL, notification)
			},
		})
	}

	if caps.CheckRunsEnabled && s.checkRunPoster != nil && scan.CommitHash != normalize.DefaultCommitHash {
		effects = append(effects, shared.Effect{
			Channel: ChannelCheckRun,
			Run: func(ctx context.Context) error {
				return s.checkRunPoster.PostCheckRun(ctx, project, scan, gate)
			},
		})
	}

	return effects
}

func newScanNotification(project models.Project, scan models.Scan, gate dtos.GateResult, isRecovery bool) dtos.ScanNotification {
	return dtos.ScanNotification{
		ProjectID:     project.ID,
		ProjectName:   project.Name,
		ScanID:        scan.ID,
		Branch:        scan.Branch,
		CommitHash:    scan.CommitHash,
		Actor:         scan.Actor,
		Tool:          scan.Tool,
		Passed:        gate.Passed,
		IsRecovery:    isRecovery,
		NewViolations: gate.NewViolations,
		Total:         scan.Stats.Total,
		Message:       gate.Message,
	}
}
