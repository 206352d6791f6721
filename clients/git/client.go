package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	goGit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// Client clones repositories, reads their head commit and publishes changes
//go:generate mockgen -package=git -destination ./mock.go -source=client.go
type Client interface {
	Clone(ctx context.Context, url, branch, dir string, depth int) (err error)
	HeadCommit(ctx context.Context, dir string) (commit api.Commit, err error)
	Checkout(ctx context.Context, dir, hash string) (err error)
	CommitAndPush(ctx context.Context, dir, message string, signature api.Signature) (pushed bool, err error)
}

// NewClient returns a new git.Client authenticating with username and token over https
func NewClient(ctx context.Context, username, token string, obfuscationClient obfuscation.Client) (Client, error) {
	return &client{
		username:          username,
		token:             token,
		obfuscationClient: obfuscationClient,
	}, nil
}

type client struct {
	username          string
	token             string
	obfuscationClient obfuscation.Client
}

func (c *client) Clone(ctx context.Context, url, branch, dir string, depth int) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "GitClone")
	defer span.Finish()
	span.SetTag("git-url", c.obfuscationClient.Obfuscate(url))
	span.SetTag("git-branch", branch)

	// a clone left behind by a previous run gets replaced
	if _, statErr := os.Stat(dir); statErr == nil {
		log.Info().Msgf("Deleting local repository %v", dir)
		if err = os.RemoveAll(dir); err != nil {
			return fmt.Errorf("deleting stale clone %v failed: %w", dir, err)
		}
	}

	if err = os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return fmt.Errorf("creating parent directory of %v failed: %w", dir, err)
	}

	log.Info().Msgf("Cloning %v branch %v into %v", c.obfuscationClient.Obfuscate(url), branch, dir)

	cloneOptions := &goGit.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         depth,
		Auth:          c.getAuthMethod(),
	}

	_, err = goGit.PlainCloneContext(ctx, dir, false, cloneOptions)
	if err != nil {
		return fmt.Errorf("cloning %v branch %v failed: %v", c.obfuscationClient.Obfuscate(url), branch, c.obfuscationClient.Obfuscate(err.Error()))
	}

	return nil
}

func (c *client) HeadCommit(ctx context.Context, dir string) (commit api.Commit, err error) {

	repo, err := goGit.PlainOpen(dir)
	if err != nil {
		return commit, fmt.Errorf("opening repository at %v failed: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return commit, fmt.Errorf("getting head of repository at %v failed: %w", dir, err)
	}

	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return commit, fmt.Errorf("getting head commit of repository at %v failed: %w", dir, err)
	}

	return api.Commit{
		Hash:     api.ShortHash(headCommit.Hash.String()),
		FullHash: headCommit.Hash.String(),
		Message:  strings.TrimSpace(headCommit.Message),
		Author:   headCommit.Author.Name,
		Email:    headCommit.Author.Email,
		Date:     headCommit.Author.When,
	}, nil
}

func (c *client) Checkout(ctx context.Context, dir, hash string) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "GitCheckout")
	defer span.Finish()
	span.SetTag("git-hash", hash)

	repo, err := goGit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("opening repository at %v failed: %w", dir, err)
	}

	// a shallow clone only holds the commits it was cloned at
	if _, err = repo.CommitObject(plumbing.NewHash(hash)); err != nil {
		return fmt.Errorf("commit %v is not in the clone at %v, the branch moved after cloning: %w", hash, dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree of repository at %v failed: %w", dir, err)
	}

	if err = worktree.Checkout(&goGit.CheckoutOptions{Hash: plumbing.NewHash(hash), Force: true}); err != nil {
		return fmt.Errorf("checking out %v in %v failed: %w", hash, dir, err)
	}

	log.Debug().Msgf("Checked out %v in %v", hash, dir)

	return nil
}

func (c *client) CommitAndPush(ctx context.Context, dir, message string, signature api.Signature) (pushed bool, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "GitCommitAndPush")
	defer span.Finish()

	repo, err := goGit.PlainOpen(dir)
	if err != nil {
		return false, fmt.Errorf("opening repository at %v failed: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree of %v failed: %w", dir, err)
	}

	// git add .
	err = worktree.AddWithOptions(&goGit.AddOptions{All: true})
	if err != nil {
		return false, fmt.Errorf("staging changes in %v failed: %w", dir, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("getting status of %v failed: %w", dir, err)
	}
	if status.IsClean() {
		log.Info().Msgf("Nothing to commit in %v", dir)
		return false, nil
	}

	hash, err := worktree.Commit(message, &goGit.CommitOptions{
		Author: &object.Signature{
			Name:  signature.Name,
			Email: signature.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("committing changes in %v failed: %w", dir, err)
	}

	log.Info().Msgf("Committed %v in %v: %v", api.ShortHash(hash.String()), dir, message)

	err = repo.PushContext(ctx, &goGit.PushOptions{
		RemoteName: "origin",
		Auth:       c.getAuthMethod(),
	})
	if err != nil && err != goGit.NoErrAlreadyUpToDate {
		return false, fmt.Errorf("pushing %v failed: %v", dir, c.obfuscationClient.Obfuscate(err.Error()))
	}

	return true, nil
}

func (c *client) getAuthMethod() transport.AuthMethod {
	if c.token == "" {
		return nil
	}

	username := c.username
	if username == "" {
		username = "x-access-token"
	}

	return &http.BasicAuth{
		Username: username,
		Password: c.token,
	}
}
