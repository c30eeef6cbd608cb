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

package githubint

import (
	"context"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

var (
	ErrNoRepository             = errors.New("project has no github repository configured")
	ErrNoGithubAppConfiguration = errors.New("GITHUB_APP_ID or GITHUB_PRIVATE_KEY is not set")
)

// wrapper around the github package - which provides only the methods
// we need
type githubClientFacade interface {
	ListCheckRunsForRef(ctx context.Context, owner, repo, ref string, opts *github.ListCheckRunsOptions) (*github.ListCheckRunsResults, *github.Response, error)
	CreateCheckRun(ctx context.Context, owner, repo string, opts github.CreateCheckRunOptions) (*github.CheckRun, *github.Response, error)
	UpdateCheckRun(ctx context.Context, owner, repo string, checkRunID int64, opts github.UpdateCheckRunOptions) (*github.CheckRun, *github.Response, error)
	CreateStatus(ctx context.Context, owner, repo, ref string, status *github.RepoStatus) (*github.RepoStatus, *github.Response, error)
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) ([]*github.PullRequest, *github.Response, error)
	ListPullRequestFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

type githubClient struct {
	*github.Client
}

var _ githubClientFacade = githubClient{}

func (client githubClient) ListCheckRunsForRef(ctx context.Context, owner, repo, ref string, opts *github.ListCheckRunsOptions) (*github.ListCheckRunsResults, *github.Response, error) {
	return client.Checks.ListCheckRunsForRef(ctx, owner, repo, ref, opts)
}

func (client githubClient) CreateCheckRun(ctx context.Context, owner, repo string, opts github.CreateCheckRunOptions) (*github.CheckRun, *github.Response, error) {
	return client.Checks.CreateCheckRun(ctx, owner, repo, opts)
}

func (client githubClient) UpdateCheckRun(ctx context.Context, owner, repo string, checkRunID int64, opts github.UpdateCheckRunOptions) (*github.CheckRun, *github.Response, error) {
	return client.Checks.UpdateCheckRun(ctx, owner, repo, checkRunID, opts)
}

func (client githubClient) CreateStatus(ctx context.Context, owner, repo, ref string, status *github.RepoStatus) (*github.RepoStatus, *github.Response, error) {
	return client.Repositories.CreateStatus(ctx, owner, repo, ref, status)
}

func (client githubClient) ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) ([]*github.PullRequest, *github.Response, error) {
	return client.PullRequests.ListPullRequestsWithCommit(ctx, owner, repo, sha, opts)
}

func (client githubClient) ListPullRequestFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error) {
	return client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
}

// clientFactory creates the clients used for a project. It is swapped in tests.
type clientFactory interface {
	installationClient(installationID int64) (githubClientFacade, error)
	statusClient(ctx context.Context) (githubClientFacade, bool)
}

type defaultClientFactory struct {
	cfg config.Config
}

func (f defaultClientFactory) installationClient(installationID int64) (githubClientFacade, error) {
	client, err := NewInstallationClient(f.cfg, installationID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (f defaultClientFactory) statusClient(ctx context.Context) (githubClientFacade, bool) {
	if f.cfg.GithubStatusToken == "" {
		return nil, false
	}
	client, err := NewStatusClient(ctx, f.cfg)
	if err != nil {
		return nil, false
	}
	return client, true
}

// NewInstallationClient authenticates as the github app installation of a project.
// GITHUB_PRIVATE_KEY holds the pem encoded key itself.
func NewInstallationClient(cfg config.Config, installationID int64) (githubClient, error) {
	if cfg.GithubAppID == 0 || cfg.GithubPrivateKey == "" {
		return githubClient{}, ErrNoGithubAppConfiguration
	}

	itr, err := ghinstallation.New(http.DefaultTransport, cfg.GithubAppID, installationID, []byte(cfg.GithubPrivateKey))
	if err != nil {
		return githubClient{}, errors.Wrap(err, "could not create installation transport")
	}

	apiURL := apiBaseURL(cfg)
	if apiURL != "" {
		itr.BaseURL = strings.TrimSuffix(apiURL, "/")
	}

	return newGithubClient(&http.Client{Transport: itr}, apiURL)
}

// NewStatusClient authenticates with a static token. It is used to post commit statuses
// for projects without an app installation.
func NewStatusClient(ctx context.Context, cfg config.Config) (githubClient, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GithubStatusToken})
	return newGithubClient(oauth2.NewClient(ctx, ts), apiBaseURL(cfg))
}

func newGithubClient(httpClient *http.Client, apiURL string) (githubClient, error) {
	client := github.NewClient(httpClient)
	if apiURL == "" {
		return githubClient{Client: client}, nil
	}
	client, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return githubClient{}, errors.Wrap(err, "invalid GITHUB_API_URL")
	}
	return githubClient{Client: client}, nil
}

// apiBaseURL returns an empty string for the public api.
func apiBaseURL(cfg config.Config) string {
	if cfg.GithubAPIURL == "" || strings.TrimSuffix(cfg.GithubAPIURL, "/") == "https://api.github.com" {
		return ""
	}
	return cfg.GithubAPIURL
}
