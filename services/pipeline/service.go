package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/clients/git"
	"github.com/estafette/estafette-maven-builder/clients/github"
	"github.com/estafette/estafette-maven-builder/clients/maven"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/artifact"
	"github.com/estafette/estafette-maven-builder/services/gate"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Service clones, builds and transfers the configured repositories and publishes the builds repository
//go:generate mockgen -package=pipeline -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context, repositories []config.Repository) (results []api.RepositoryResult, err error)
	BuildAndTransfer(ctx context.Context, repository config.Repository) (result api.RepositoryResult)
}

// NewService returns a new pipeline.Service
func NewService(ctx context.Context, builderConfig config.BuilderConfig, envvarClient envvar.Client, gitClient git.Client, githubClient github.Client, mavenClient maven.Client, gateService gate.Service, artifactService artifact.Service) (Service, error) {
	if builderConfig.Concurrency < 1 {
		builderConfig.Concurrency = 1
	}

	return &service{
		builderConfig:   builderConfig,
		envvarClient:    envvarClient,
		gitClient:       gitClient,
		githubClient:    githubClient,
		mavenClient:     mavenClient,
		gateService:     gateService,
		artifactService: artifactService,
	}, nil
}

type service struct {
	builderConfig   config.BuilderConfig
	envvarClient    envvar.Client
	gitClient       git.Client
	githubClient    github.Client
	mavenClient     maven.Client
	gateService     gate.Service
	artifactService artifact.Service
}

func (s *service) Run(ctx context.Context, repositories []config.Repository) (results []api.RepositoryResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunPipeline")
	defer span.Finish()

	if len(repositories) == 0 {
		return nil, fmt.Errorf("no repositories configured, at least the builds repository is required")
	}

	builds := repositories[0]
	buildsDir := builds.LocalDir(s.builderConfig.WorkDir)

	// the builds repository needs its full history to push on top of
	err = s.gitClient.Clone(ctx, builds.HTTPSURL(), builds.Branch, buildsDir, 0)
	if err != nil {
		return nil, fmt.Errorf("cloning builds repository %v failed: %w", builds.FullName(), err)
	}

	results = make([]api.RepositoryResult, len(repositories)-1)
	pending := make([]int, 0, len(results))

	for i, r := range repositories[1:] {
		results[i] = api.RepositoryResult{Repository: r}

		if r.SameAs(builds) {
			log.Warn().Msgf("[%v] Repository is the builds repository, it never gets built", r.FullName())
			results[i].Status = api.StatusSkipped
			results[i].Reason = "builds repository"
			continue
		}

		start := time.Now()
		err := s.gitClient.Clone(ctx, r.HTTPSURL(), r.Branch, r.LocalDir(s.builderConfig.WorkDir), s.builderConfig.CloneDepth)
		if err != nil {
			log.Error().Err(err).Msgf("[%v] Cloning failed", r.FullName())
			results[i].Status = api.StatusErrored
			results[i].Reason = err.Error()
			results[i].Duration = time.Since(start)
			continue
		}

		pending = append(pending, i)
	}

	log.Info().Msgf("Building %v repositories with concurrency %v", len(pending), s.builderConfig.Concurrency)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.builderConfig.Concurrency)

	var mutex sync.Mutex
	for _, i := range pending {
		i := i
		repository := results[i].Repository
		g.Go(func() error {
			result := s.BuildAndTransfer(groupCtx, repository)

			mutex.Lock()
			defer mutex.Unlock()
			results[i] = result

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return results, err
	}

	err = s.publish(ctx, builds, buildsDir)

	return results, err
}

func (s *service) BuildAndTransfer(ctx context.Context, repository config.Repository) (result api.RepositoryResult) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "BuildAndTransfer")
	defer span.Finish()
	span.SetTag("repository", repository.FullName())

	result.Repository = repository
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		log.Info().Msgf("[%v] Finished with status %v in %v", repository.FullName(), result.Status, result.Duration)
	}()

	projectDir := repository.LocalDir(s.builderConfig.WorkDir)

	commit, err := s.getCommit(ctx, repository, projectDir)
	if err != nil {
		return errored(result, err)
	}
	result.Commit = commit

	decision, err := s.gateService.Check(ctx, repository, commit)
	if err != nil {
		return errored(result, err)
	}
	if decision.Skip {
		log.Info().Msgf("[%v] Skipping commit %v: %v", repository.FullName(), commit.Hash, decision.Reason)
		result.Status = api.StatusSkipped
		result.Reason = decision.Reason
		return
	}

	pom, err := maven.ReadPom(projectDir)
	if err != nil {
		s.discard(repository, decision.CommitDir)
		return errored(result, err)
	}

	log.Info().Msgf("[%v] Building %v at commit %v", repository.FullName(), maven.ArtifactName(pom), commit.Hash)

	buildErr := s.mavenClient.Package(ctx, projectDir)

	var mavenErr *maven.BuildError
	if buildErr != nil && !errors.As(buildErr, &mavenErr) {
		// maven never ran, so there's no log to keep
		s.discard(repository, decision.CommitDir)
		return errored(result, buildErr)
	}

	// the log is kept whether the build passed or not
	logPath, err := s.artifactService.MoveLog(ctx, projectDir, decision.CommitDir)
	if err != nil {
		log.Warn().Err(err).Msgf("[%v] Moving %v failed", repository.FullName(), maven.LogFileName)
	} else {
		result.Artifacts = append(result.Artifacts, logPath)
	}

	if buildErr != nil {
		log.Warn().Err(buildErr).Msgf("[%v] Build of commit %v failed", repository.FullName(), commit.Hash)
		result.Status = api.StatusFailed
		result.Reason = buildErr.Error()
		return
	}

	jarPath, err := s.artifactService.MoveJar(ctx, projectDir, pom, decision.CommitDir)
	if err != nil {
		s.discard(repository, decision.CommitDir)
		return errored(result, err)
	}
	result.Artifacts = append(result.Artifacts, jarPath)
	result.Status = api.StatusSucceeded

	return
}

func (s *service) getCommit(ctx context.Context, repository config.Repository, projectDir string) (api.Commit, error) {
	if s.builderConfig.CommitSource != config.CommitSourceAPI {
		return s.gitClient.HeadCommit(ctx, projectDir)
	}

	commit, err := s.githubClient.GetCommit(ctx, repository.Owner, repository.Name, repository.Branch)
	if err != nil {
		return commit, err
	}

	// the built tree has to match the hash the commit directory is named after
	if err = s.gitClient.Checkout(ctx, projectDir, commit.FullHash); err != nil {
		return commit, err
	}

	return commit, nil
}

func (s *service) discard(repository config.Repository, commitDir string) {
	if err := s.artifactService.Discard(commitDir); err != nil {
		log.Warn().Err(err).Msgf("[%v] Removing commit directory %v failed", repository.FullName(), commitDir)
	}
}

func (s *service) publish(ctx context.Context, builds config.Repository, buildsDir string) error {

	message := s.envvarClient.GetCommitMessage()

	pushed, err := s.gitClient.CommitAndPush(ctx, buildsDir, message, s.envvarClient.GetSignature(builds.Owner))
	if err != nil {
		return fmt.Errorf("publishing builds repository %v failed: %w", builds.FullName(), err)
	}

	if pushed {
		log.Info().Msgf("Pushed %v with message %v", builds.FullName(), message)
	} else {
		log.Info().Msgf("No new builds to push to %v", builds.FullName())
	}

	return nil
}

func errored(result api.RepositoryResult, err error) api.RepositoryResult {
	log.Error().Err(err).Msgf("[%v] Processing failed", result.Repository.FullName())
	result.Status = api.StatusErrored
	result.Reason = err.Error()
	return result
}
