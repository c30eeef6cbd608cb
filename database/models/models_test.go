package models

import (
	"testing"
	"time"

	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/stretchr/testify/assert"
)

func TestSuppressionIsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should be active without expiry and revocation", func(t *testing.T) {
		assert.True(t, Suppression{}.IsActive(now))
	})

	t.Run("should not be active if it expires exactly now", func(t *testing.T) {
		assert.False(t, Suppression{ExpiresAt: utils.Ptr(now)}.IsActive(now))
	})

	t.Run("should be active if it expires one second in the future", func(t *testing.T) {
		assert.True(t, Suppression{ExpiresAt: utils.Ptr(now.Add(time.Second))}.IsActive(now))
	})

	t.Run("should not be active once revoked", func(t *testing.T) {
		assert.False(t, Suppression{RevokedAt: utils.Ptr(now.Add(-time.Hour))}.IsActive(now))
	})
}

func TestRepositoryOwnerAndName(t *testing.T) {
	cases := map[string][2]string{
		"https://github.com/l3montree-dev/qualitygate":     {"l3montree-dev", "qualitygate"},
		"https://github.com/l3montree-dev/qualitygate.git": {"l3montree-dev", "qualitygate"},
		"git@github.com:l3montree-dev/qualitygate.git":     {"l3montree-dev", "qualitygate"},
		"https://github.com/l3montree-dev/qualitygate/":    {"l3montree-dev", "qualitygate"},
	}
	for repoURL, expected := range cases {
		owner, name, ok := Project{RepoURL: repoURL}.RepositoryOwnerAndName()
		assert.True(t, ok, repoURL)
		assert.Equal(t, expected[0], owner, repoURL)
		assert.Equal(t, expected[1], name, repoURL)
	}

	for _, repoURL := range []string{"", "https://github.com/", "https://github.com/only-owner", "git@github.com"} {
		_, _, ok := Project{RepoURL: repoURL}.RepositoryOwnerAndName()
		assert.False(t, ok, repoURL)
	}
}

func TestProjectDefaults(t *testing.T) {
	assert.Equal(t, "main", Project{}.GetDefaultBranch())
	assert.Equal(t, "develop", Project{DefaultBranch: "develop"}.GetDefaultBranch())
	assert.Empty(t, Project{}.GetIntegrations().Slack.WebhookURL)
}
