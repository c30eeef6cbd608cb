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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("MAX_FINDINGS", "")
		cfg := Load()
		assert.Equal(t, int64(5*1024*1024), cfg.MaxReportBytes)
		assert.Equal(t, 5000, cfg.MaxFindings)
		assert.Equal(t, 500, cfg.GroupLinkBatchSize)
		assert.Equal(t, "Quality Gate", cfg.CheckRunName)
		assert.Equal(t, int32(25), cfg.DBMaxOpenConns)
		assert.Equal(t, 4*time.Hour, cfg.DBConnMaxLifetime)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	})

	t.Run("should read values from the environment", func(t *testing.T) {
		t.Setenv("MAX_FINDINGS", "10")
		t.Setenv("ENVIRONMENT", "Production")
		t.Setenv("ISSUE_GROUP_LINE_WINDOW", "3")
		cfg := Load()
		assert.Equal(t, 10, cfg.MaxFindings)
		assert.Equal(t, 3, cfg.IssueGroupLineWindow)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("should decode durations and comma separated lists", func(t *testing.T) {
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "90s")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://ci.example.com,")
		cfg := Load()
		assert.Equal(t, 90*time.Second, cfg.DBConnMaxIdleTime)
		assert.Equal(t, []string{"https://app.example.com", "https://ci.example.com"}, cfg.CORSAllowOrigins)
	})
}

func TestMissingStoreSettings(t *testing.T) {
	t.Run("should report every missing database setting", func(t *testing.T) {
		cfg := Config{PostgresHost: "localhost", PostgresUser: "qg"}
		assert.Equal(t, map[string]bool{"POSTGRES_PASSWORD": true, "POSTGRES_DB": true}, cfg.MissingStoreSettings())
	})

	t.Run("should return an empty map if everything is configured", func(t *testing.T) {
		cfg := Config{PostgresHost: "h", PostgresUser: "u", PostgresPassword: "p", PostgresDB: "d"}
		assert.Empty(t, cfg.MissingStoreSettings())
	})
}
