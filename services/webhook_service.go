// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/l3montree-dev/qualitygate/dtos"
)

const (
	discordColorPassed = 0x2ecc71
	discordColorFailed = 0xe74c3c
)

type chatWebhookClient struct {
	client *http.Client
	render func(n dtos.ScanNotification) any
}

// NewSlackNotifier posts scan results to a slack incoming webhook.
func NewSlackNotifier(client *http.Client) *chatWebhookClient {
	return &chatWebhookClient{client: client, render: renderSlackMessage}
}

// NewDiscordNotifier posts scan results to a discord webhook.
func NewDiscordNotifier(client *http.Client) *chatWebhookClient {
	return &chatWebhookClient{client: client, render: renderDiscordMessage}
}

func (c *chatWebhookClient) CreateRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}

// Notify sends exactly one request. There is no retry.
func (c *chatWebhookClient) Notify(ctx context.Context, webhookURL string, notification dtos.ScanNotification) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(c.render(notification)); err != nil {
		return err
	}

	resp, err := c.CreateRequest(ctx, http.MethodPost, webhookURL, &buf)
	if err != nil {
		return fmt.Errorf("could not send chat notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send chat notification, status: %s", resp.Status)
	}
	return nil
}

func statusText(n dtos.ScanNotification) string {
	switch {
	case n.IsRecovery:
		return "recovered"
	case n.Passed:
		return "passed"
	default:
		return "failed"
	}
}

func renderSlackMessage(n dtos.ScanNotification) any {
	return dtos.SlackMessage{
		Text: fmt.Sprintf("*%s*: quality gate %s on `%s` (%s) by %s\n%s\nNew violations: %d, total findings: %d",
			n.ProjectName, statusText(n), n.Branch, shortCommit(n.CommitHash), n.Actor, n.Message, n.NewViolations, n.Total),
	}
}

func renderDiscordMessage(n dtos.ScanNotification) any {
	color := discordColorFailed
	if n.Passed {
		color = discordColorPassed
	}
	return dtos.DiscordMessage{
		Embeds: []dtos.DiscordEmbed{{
			Title:       fmt.Sprintf("%s: quality gate %s", n.ProjectName, statusText(n)),
			Description: fmt.Sprintf("%s\nBranch `%s`, commit `%s`, actor %s\nNew violations: %d, total findings: %d", n.Message, n.Branch, shortCommit(n.CommitHash), n.Actor, n.NewViolations, n.Total),
			Color:       color,
		}},
	}
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
