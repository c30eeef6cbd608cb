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
	"log/slog"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Will be filled at build time
var (
	Version   = "dev"
	Commit    = "unknown"
	Branch    = "unknown"
	BuildDate = "unknown"
)

const (
	EnvironmentProduction = "production"
	defaultMaxReportBytes = 5 * 1024 * 1024
)

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	CORSAllowOrigins []string `mapstructure:"CORS_ALLOW_ORIGINS"`

	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`

	DBMaxOpenConns    int32         `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMinConns        int32         `mapstructure:"DB_MIN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBConnMaxIdleTime time.Duration `mapstructure:"DB_CONN_MAX_IDLE_TIME"`

	DisableAutoMigrate bool `mapstructure:"DISABLE_AUTOMIGRATE"`

	MaxReportBytes       int64 `mapstructure:"MAX_REPORT_BYTES"`
	MaxFindings          int   `mapstructure:"MAX_FINDINGS"`
	IssueGroupLineWindow int   `mapstructure:"ISSUE_GROUP_LINE_WINDOW"`
	GroupLinkBatchSize   int   `mapstructure:"GROUP_LINK_BATCH_SIZE"`

	UpgradeURL string `mapstructure:"UPGRADE_URL"`

	GithubAppID       int64  `mapstructure:"GITHUB_APP_ID"`
	GithubPrivateKey  string `mapstructure:"GITHUB_PRIVATE_KEY"`
	GithubStatusToken string `mapstructure:"GITHUB_STATUS_TOKEN"`
	GithubAPIURL      string `mapstructure:"GITHUB_API_URL"`
	CheckRunName      string `mapstructure:"CHECK_RUN_NAME"`
	PRDiffCacheSize   int    `mapstructure:"PR_DIFF_CACHE_SIZE"`

	ErrorTrackingDSN string `mapstructure:"ERROR_TRACKING_DSN"`
}

var defaults = map[string]any{
	"ENVIRONMENT":             "dev",
	"PORT":                    "8080",
	"LOG_LEVEL":               "",
	"CORS_ALLOW_ORIGINS":      "*",
	"POSTGRES_HOST":           "",
	"POSTGRES_PORT":           "5432",
	"POSTGRES_USER":           "",
	"POSTGRES_PASSWORD":       "",
	"POSTGRES_DB":             "",
	"DB_MAX_OPEN_CONNS":       25,
	"DB_MIN_CONNS":            5,
	"DB_CONN_MAX_LIFETIME":    "4h",
	"DB_CONN_MAX_IDLE_TIME":   "15m",
	"DISABLE_AUTOMIGRATE":     false,
	"MAX_REPORT_BYTES":        defaultMaxReportBytes,
	"MAX_FINDINGS":            5000,
	"ISSUE_GROUP_LINE_WINDOW": 0,
	"GROUP_LINK_BATCH_SIZE":   500,
	"UPGRADE_URL":             "https://qualitygate.dev/pricing",
	"GITHUB_APP_ID":           0,
	"GITHUB_PRIVATE_KEY":      "",
	"GITHUB_STATUS_TOKEN":     "",
	"GITHUB_API_URL":          "",
	"CHECK_RUN_NAME":          "Quality Gate",
	"PR_DIFF_CACHE_SIZE":      512,
	"ERROR_TRACKING_DSN":      "",
}

// Load reads the optional .env file and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		panic(err)
	}
	return cfg.sanitize()
}

// decodeHook turns the plain strings of the environment into durations and comma separated lists
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func (c Config) sanitize() Config {
	if c.MaxReportBytes <= 0 {
		c.MaxReportBytes = defaultMaxReportBytes
	}
	if c.MaxFindings <= 0 {
		c.MaxFindings = 5000
	}
	if c.IssueGroupLineWindow < 0 {
		c.IssueGroupLineWindow = 0
	}
	if c.GroupLinkBatchSize <= 0 {
		c.GroupLinkBatchSize = 500
	}
	if c.DBMaxOpenConns <= 0 {
		c.DBMaxOpenConns = 25
	}
	if c.DBMinConns < 0 {
		c.DBMinConns = 0
	}
	if c.PRDiffCacheSize <= 0 {
		c.PRDiffCacheSize = 512
	}
	origins := make([]string, 0, len(c.CORSAllowOrigins))
	for _, origin := range c.CORSAllowOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSAllowOrigins = origins
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	return c
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// MissingStoreSettings reports every database setting required to reach the store which is not set.
func (c Config) MissingStoreSettings() map[string]bool {
	missing := map[string]bool{}
	for key, value := range map[string]string{
		"POSTGRES_HOST":     c.PostgresHost,
		"POSTGRES_USER":     c.PostgresUser,
		"POSTGRES_PASSWORD": c.PostgresPassword,
		"POSTGRES_DB":       c.PostgresDB,
	} {
		if strings.TrimSpace(value) == "" {
			missing[key] = true
		}
	}
	return missing
}
