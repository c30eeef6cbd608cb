package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	databasetypes "github.com/l3montree-dev/qualitygate/database/types"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/mocks"
	"github.com/l3montree-dev/qualitygate/plans"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShouldNotify(t *testing.T) {
	t.Run("should never notify disabled channels", func(t *testing.T) {
		assert.False(t, ShouldNotify(dtos.NotifyOnAlways, false, false, false))
	})
	t.Run("should always notify on always", func(t *testing.T) {
		assert.True(t, ShouldNotify(dtos.NotifyOnAlways, true, true, false))
	})
	t.Run("should notify on failure only if the gate failed", func(t *testing.T) {
		assert.True(t, ShouldNotify(dtos.NotifyOnFailure, true, false, false))
		assert.False(t, ShouldNotify(dtos.NotifyOnFailure, true, true, false))
		assert.False(t, ShouldNotify("", true, true, false))
	})
	t.Run("should notify on recovery if failed or recovered", func(t *testing.T) {
		assert.True(t, ShouldNotify(dtos.NotifyOnRecovery, true, false, false))
		assert.True(t, ShouldNotify(dtos.NotifyOnRecovery, true, true, true))
		assert.False(t, ShouldNotify(dtos.NotifyOnRecovery, true, true, false))
	})
}

func TestIsRecovery(t *testing.T) {
	assert.True(t, IsRecovery(&models.Scan{QualityGatePassed: false}, true))
	assert.False(t, IsRecovery(&models.Scan{QualityGatePassed: true}, true))
	assert.False(t, IsRecovery(nil, true))
	assert.False(t, IsRecovery(&models.Scan{QualityGatePassed: false}, false))
}

func projectWithIntegrations(cfg dtos.IntegrationConfig) models.Project {
	project := newProject("pro")
	project.Integrations = databasetypes.MustJSONBFromStruct(cfg)
	return project
}

func runEffects(t *testing.T, effects []shared.Effect) {
	t.Helper()
	for _, e := range effects {
		require.NoError(t, e.Run(context.Background()))
	}
}

func TestNotificationEffects(t *testing.T) {
	scan := models.Scan{Branch: "main", CommitHash: "abc"}
	scan.ID = uuid.New()
	pro := plans.Resolve("pro")

	t.Run("should notify on recovery with isRecovery set", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		slack := mocks.NewChatNotifier(t)
		project := projectWithIntegrations(dtos.IntegrationConfig{
			Slack: dtos.ChatChannelConfig{Enabled: true, WebhookURL: "https://hooks.slack.com/x", NotifyOn: dtos.NotifyOnRecovery},
		})
		scanRepository.On("PreviousForBranch", project.ID, "main", scan.ID).Return(&models.Scan{QualityGatePassed: false}, nil)
		slack.On("Notify", mock.Anything, "https://hooks.slack.com/x", mock.MatchedBy(func(n dtos.ScanNotification) bool {
			return n.IsRecovery && n.Passed
		})).Return(nil)

		s := newNotificationService(scanRepository, nil, slack, mocks.NewChatNotifier(t))
		effects := s.Effects(project, scan, dtos.GateResult{Passed: true}, pro)
		require.Len(t, effects, 1)
		assert.Equal(t, ChannelSlack, effects[0].Channel)
		runEffects(t, effects)
	})

	t.Run("should not notify if the previous scan passed as well", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		project := projectWithIntegrations(dtos.IntegrationConfig{
			Discord: dtos.ChatChannelConfig{Enabled: true, WebhookURL: "https://discord.com/api/webhooks/1", NotifyOn: dtos.NotifyOnRecovery},
		})
		scanRepository.On("PreviousForBranch", project.ID, "main", scan.ID).Return(&models.Scan{QualityGatePassed: true}, nil)

		s := newNotificationService(scanRepository, nil, mocks.NewChatNotifier(t), mocks.NewChatNotifier(t))
		assert.Empty(t, s.Effects(project, scan, dtos.GateResult{Passed: true}, pro))
	})

	t.Run("should handle both channels independently", func(t *testing.T) {
		slack := mocks.NewChatNotifier(t)
		discord := mocks.NewChatNotifier(t)
		project := projectWithIntegrations(dtos.IntegrationConfig{
			Slack:   dtos.ChatChannelConfig{Enabled: true, WebhookURL: "https://hooks.slack.com/x", NotifyOn: dtos.NotifyOnAlways},
			Discord: dtos.ChatChannelConfig{Enabled: true, WebhookURL: "https://discord.com/api/webhooks/1", NotifyOn: dtos.NotifyOnFailure},
		})
		slack.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("slack down"))

		s := newNotificationService(mocks.NewScanRepository(t), nil, slack, discord)
		effects := s.Effects(project, scan, dtos.GateResult{Passed: true}, pro)
		require.Len(t, effects, 1)
		assert.Error(t, effects[0].Run(context.Background()))
	})

	t.Run("should skip channels the plan does not include or which are misconfigured", func(t *testing.T) {
		project := projectWithIntegrations(dtos.IntegrationConfig{
			Slack:   dtos.ChatChannelConfig{Enabled: true, WebhookURL: "https://hooks.slack.com/x", NotifyOn: dtos.NotifyOnAlways},
			Discord: dtos.ChatChannelConfig{Enabled: true, WebhookURL: "not a url", NotifyOn: dtos.NotifyOnAlways},
		})
		s := newNotificationService(mocks.NewScanRepository(t), nil, mocks.NewChatNotifier(t), mocks.NewChatNotifier(t))

		assert.Empty(t, s.Effects(project, scan, dtos.GateResult{}, plans.Resolve("free")))

		effects := s.Effects(project, scan, dtos.GateResult{}, pro)
		require.Len(t, effects, 1)
		assert.Equal(t, ChannelSlack, effects[0].Channel)
	})

	t.Run("should post a check run only for real commits", func(t *testing.T) {
		checkRunPoster := mocks.NewCheckRunPoster(t)
		project := newProject("pro")
		checkRunPoster.On("PostCheckRun", mock.Anything, project, scan, mock.Anything).Return(nil)

		s := newNotificationService(mocks.NewScanRepository(t), checkRunPoster, nil, nil)
		effects := s.Effects(project, scan, dtos.GateResult{Passed: true}, pro)
		require.Len(t, effects, 1)
		assert.Equal(t, ChannelCheckRun, effects[0].Channel)
		runEffects(t, effects)

		local := scan
		local.CommitHash = "local"
		assert.Empty(t, s.Effects(project, local, dtos.GateResult{}, pro))
	})
}
