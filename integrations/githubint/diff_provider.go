// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package githubint

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/l3montree-dev/qualitygate/classify"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/normalize"
)

const (
	defaultDiffCacheSize = 512
	// github stops listing pull request files after 3000 entries
	maxPullRequestFilePages = 30
)

var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// DiffProvider resolves the changed lines of the open pull request a commit belongs to.
// Results are cached per project and commit since a commit never changes.
type DiffProvider struct {
	factory clientFactory
	cache   *lru.Cache[string, *classify.DiffScope]
}

func NewDiffProvider(cfg config.Config) (*DiffProvider, error) {
	return newDiffProvider(defaultClientFactory{cfg: cfg}, cfg.PRDiffCacheSize)
}

func newDiffProvider(factory clientFactory, cacheSize int) (*DiffProvider, error) {
	if cacheSize <= 0 {
		cacheSize = defaultDiffCacheSize
	}
	cache, err := lru.New[string, *classify.DiffScope](cacheSize)
	if err != nil {
		return nil, err
	}
	return &DiffProvider{factory: factory, cache: cache}, nil
}

// DiffScope returns nil without error if the project has no app installation, the commit is local
// or the commit is not part of an open pull request.
func (p *DiffProvider) DiffScope(ctx context.Context, project models.Project, commitHash string) (*classify.DiffScope, error) {
	installationID := project.GetIntegrations().Github.InstallationID
	if installationID == 0 || commitHash == "" || commitHash == normalize.DefaultCommitHash {
		return nil, nil
	}
	owner, repo, ok := project.RepositoryOwnerAndName()
	if !ok {
		return nil, ErrNoRepository
	}

	key := project.ID.String() + "|" + commitHash
	if scope, ok := p.cache.Get(key); ok {
		return scope, nil
	}

	client, err := p.factory.installationClient(installationID)
	if err != nil {
		return nil, err
	}

	prs, _, err := client.ListPullRequestsWithCommit(ctx, owner, repo, commitHash, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("could not list pull requests of commit: %w", err)
	}

	var pr *github.PullRequest
	for _, candidate := range prs {
		if candidate.GetState() == "open" {
			pr = candidate
			break
		}
	}
	if pr == nil {
		// not cached. the pull request might be opened later.
		return nil, nil
	}

	scope := classify.NewDiffScope()
	scope.PullRequestNumber = pr.GetNumber()
	scope.BaseSHA = pr.GetBase().GetSHA()
	scope.HeadSHA = pr.GetHead().GetSHA()

	opts := &github.ListOptions{PerPage: 100}
	for page := 0; page < maxPullRequestFilePages; page++ {
		files, resp, err := client.ListPullRequestFiles(ctx, owner, repo, pr.GetNumber(), opts)
		if err != nil {
			return nil, fmt.Errorf("could not list pull request files: %w", err)
		}
		for _, file := range files {
			addCommitFile(scope, file)
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	slog.Debug("resolved pull request diff", "projectID", project.ID, "pr", scope.PullRequestNumber, "files", len(scope.Files))
	p.cache.Add(key, scope)
	return scope, nil
}

func addCommitFile(scope *classify.DiffScope, file *github.CommitFile) {
	if file.GetStatus() == "removed" {
		return
	}
	patch := file.GetPatch()
	if patch == "" {
		// binary or too large to render
		scope.AddFile(file.GetFilename())
		return
	}
	lines := AddedLines(patch)
	if len(lines) == 0 {
		// pure deletions and renames do not introduce findings
		return
	}
	scope.AddFile(file.GetFilename(), lines...)
}

// AddedLines returns the line numbers in the new file version which a unified diff patch adds.
func AddedLines(patch string) []int {
	var lines []int
	current := 0
	inHunk := false

	for _, line := range strings.Split(patch, "\n") {
		if m := hunkHeader.FindStringSubmatch(line); m != nil {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				inHunk = false
				continue
			}
			current = start
			inHunk = true
			continue
		}
		if !inHunk || line == "" {
			continue
		}
		switch line[0] {
		case '+':
			lines = append(lines, current)
			current++
		case ' ':
			current++
		case '-', '\\':
			// removed lines and "no newline" markers do not exist in the new file
		}
	}
	return lines
}
