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

package dtos

import "github.com/google/uuid"

// ScanNotification carries everything a channel needs to render a message.
type ScanNotification struct {
	ProjectID     uuid.UUID `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	ScanID        uuid.UUID `json:"scan_id"`
	Branch        string    `json:"branch"`
	CommitHash    string    `json:"commit_hash"`
	Actor         string    `json:"actor"`
	Tool          string    `json:"tool"`
	Passed        bool      `json:"passed"`
	IsRecovery    bool      `json:"is_recovery"`
	NewViolations int       `json:"new_violations"`
	Total         int       `json:"total"`
	Message       string    `json:"message"`
}

type SlackMessage struct {
	Text string `json:"text"`
}

type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

type DiscordMessage struct {
	Content string         `json:"content"`
	Embeds  []DiscordEmbed `json:"embeds,omitempty"`
}
