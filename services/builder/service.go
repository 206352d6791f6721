package builder

import (
	"context"
	"io"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/pages"
	"github.com/estafette/estafette-maven-builder/services/pipeline"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Service runs the build and pages jobs
//go:generate mockgen -package=builder -destination ./mock.go -source=service.go
type Service interface {
	RunBuildJob(ctx context.Context, repositories []config.Repository)
	RunPagesJob(ctx context.Context)
	RunBuild(ctx context.Context, repositories []config.Repository) ([]api.RepositoryResult, error)
	RunPages(ctx context.Context) ([]api.RepositoryResult, error)
}

// NewService returns a new builder.Service
func NewService(ctx context.Context, applicationInfo foundation.ApplicationInfo, pipelineService pipeline.Service, pagesService pages.Service) (Service, error) {
	return &service{
		applicationInfo: applicationInfo,
		pipelineService: pipelineService,
		pagesService:    pagesService,
	}, nil
}

type service struct {
	applicationInfo foundation.ApplicationInfo
	pipelineService pipeline.Service
	pagesService    pages.Service
}

func (s *service) RunBuildJob(ctx context.Context, repositories []config.Repository) {

	closer := s.initJaeger(s.applicationInfo.App)

	results, err := s.RunBuild(ctx, repositories)

	api.RenderStats(results)

	// os.Exit skips deferred calls, flush the spans first
	closer.Close()

	api.HandleExit(results, err)
}

func (s *service) RunPagesJob(ctx context.Context) {

	closer := s.initJaeger(s.applicationInfo.App)

	results, err := s.RunPages(ctx)

	api.RenderStats(results)

	// os.Exit skips deferred calls, flush the spans first
	closer.Close()

	api.HandleExit(results, err)
}

func (s *service) RunBuild(ctx context.Context, repositories []config.Repository) (results []api.RepositoryResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunBuild")
	defer span.Finish()

	log.Info().Msgf("Starting %v version %v for %v repositories", s.applicationInfo.App, s.applicationInfo.Version, len(repositories))

	results, err = s.pipelineService.Run(ctx, repositories)
	if err != nil {
		log.Error().Err(err).Msg("Build run failed")
		return
	}

	log.Info().Msgf("Build run finished with status %v", api.AggregatedStatus(results))

	return
}

func (s *service) RunPages(ctx context.Context) (results []api.RepositoryResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunPages")
	defer span.Finish()

	log.Info().Msgf("Starting %v version %v for the builds page", s.applicationInfo.App, s.applicationInfo.Version)

	results, err = s.pagesService.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Updating builds page failed")
		return
	}

	log.Info().Msgf("Builds page finished with status %v", api.AggregatedStatus(results))

	return
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func (s *service) initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))

	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
