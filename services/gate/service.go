package gate

import (
	"context"
	"fmt"
	"strings"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/artifact"
	"github.com/estafette/estafette-maven-builder/services/evaluation"
	"github.com/rs/zerolog/log"
)

// DefaultSkipMarker in a commit message prevents building that commit
const DefaultSkipMarker = "[ci skip]"

// Decision is the outcome of checking a commit
type Decision struct {
	Skip      bool
	Reason    string
	CommitDir string
}

// Service decides whether a commit needs to be built
//go:generate mockgen -package=gate -destination ./mock.go -source=service.go
type Service interface {
	Check(ctx context.Context, repository config.Repository, commit api.Commit) (Decision, error)
}

// NewService returns a new gate.Service
func NewService(ctx context.Context, evaluationService evaluation.Service, artifactService artifact.Service, skipMarker string) (Service, error) {
	if skipMarker == "" {
		skipMarker = DefaultSkipMarker
	}

	return &service{
		evaluationService: evaluationService,
		artifactService:   artifactService,
		skipMarker:        skipMarker,
	}, nil
}

type service struct {
	evaluationService evaluation.Service
	artifactService   artifact.Service
	skipMarker        string
}

func (s *service) Check(ctx context.Context, repository config.Repository, commit api.Commit) (decision Decision, err error) {

	decision.CommitDir = s.artifactService.CommitDir(repository, commit.Hash)

	if strings.Contains(commit.Message, s.skipMarker) {
		decision.Skip = true
		decision.Reason = fmt.Sprintf("commit message contains %v", s.skipMarker)
		return
	}

	if s.artifactService.Exists(decision.CommitDir) {
		decision.Skip = true
		decision.Reason = fmt.Sprintf("commit %v has already been built", commit.Hash)
		return
	}

	if repository.When != "" {
		result, err := s.evaluationService.Evaluate(repository.FullName(), repository.When, s.evaluationService.GetParameters(repository, commit))
		if err != nil {
			return decision, fmt.Errorf("evaluating when clause of %v failed: %w", repository.FullName(), err)
		}
		if !result {
			decision.Skip = true
			decision.Reason = fmt.Sprintf("when clause %v is false", repository.When)
			return decision, nil
		}
	}

	log.Info().Msgf("[%v] Commit %v needs to be built", repository.FullName(), commit.Hash)

	if err = s.artifactService.Create(decision.CommitDir); err != nil {
		return decision, err
	}

	return decision, nil
}
