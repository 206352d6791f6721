package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/estafette/estafette-maven-builder/api"
	gogithub "github.com/google/go-github/v48/github"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public github rest api
const DefaultBaseURL = "https://api.github.com"

// Client retrieves commit details from the github rest api
//go:generate mockgen -package=github -destination ./mock.go -source=client.go
type Client interface {
	GetCommit(ctx context.Context, owner, repo, ref string) (commit api.Commit, err error)
}

// NewClient returns a new github.Client; the token is optional, without it requests are unauthenticated
func NewClient(ctx context.Context, baseURL, token string) (Client, error) {

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// the go-github client resolves relative paths, so the base url needs a trailing slash
	parsedBaseURL, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing github api url %v failed: %w", baseURL, err)
	}

	var transport http.RoundTripper = &nethttp.Transport{}
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}

	retryClient := pester.NewExtendedClient(&http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	})
	retryClient.MaxRetries = 3
	retryClient.Backoff = pester.ExponentialJitterBackoff
	retryClient.KeepLog = true

	githubClient := gogithub.NewClient(&http.Client{
		Transport: &retryTransport{client: retryClient},
	})
	githubClient.BaseURL = parsedBaseURL

	return &client{
		githubClient: githubClient,
	}, nil
}

type client struct {
	githubClient *gogithub.Client
}

func (c *client) GetCommit(ctx context.Context, owner, repo, ref string) (commit api.Commit, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "GitHubGetCommit")
	defer span.Finish()

	repositoryCommit, _, err := c.githubClient.Repositories.GetCommit(ctx, owner, repo, ref, nil)
	if err != nil {
		return commit, fmt.Errorf("retrieving commit %v of %v/%v failed: %w", ref, owner, repo, err)
	}

	log.Debug().Msgf("Retrieved commit %v of %v/%v", repositoryCommit.GetSHA(), owner, repo)

	author := repositoryCommit.GetCommit().GetAuthor()

	return api.Commit{
		Hash:     api.ShortHash(repositoryCommit.GetSHA()),
		FullHash: repositoryCommit.GetSHA(),
		Message:  strings.TrimSpace(repositoryCommit.GetCommit().GetMessage()),
		Author:   author.GetName(),
		Email:    author.GetEmail(),
		Date:     author.GetDate(),
	}, nil
}

// retryTransport sends the requests built by go-github through pester and adds a tracing span for each
type retryTransport struct {
	client *pester.Client
}

func (t *retryTransport) RoundTrip(request *http.Request) (*http.Response, error) {

	request, ht := nethttp.TraceRequest(opentracing.GlobalTracer(), request, nethttp.OperationName("GitHub::"+request.URL.Path))
	defer ht.Finish()

	return t.client.Do(request)
}
