package evaluation

import (
	"context"
	"errors"
	"os"

	"github.com/Knetic/govaluate"
	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/rs/zerolog/log"
)

// Service evaluates the when clauses of configured repositories
//go:generate mockgen -package=evaluation -destination ./mock.go -source=service.go
type Service interface {
	Evaluate(string, string, map[string]interface{}) (bool, error)
	GetParameters(config.Repository, api.Commit) map[string]interface{}
}

// NewService returns a new evaluation.Service
func NewService(ctx context.Context, envvarClient envvar.Client, pipeline string) (Service, error) {
	return &service{
		envvarClient: envvarClient,
		pipeline:     pipeline,
	}, nil
}

type service struct {
	envvarClient envvar.Client
	pipeline     string
}

func (s *service) Evaluate(repositoryName, input string, parameters map[string]interface{}) (result bool, err error) {

	if input == "" {
		return false, errors.New("When expression is empty")
	}

	log.Info().Msgf("[%v] Evaluating when expression \"%v\" with parameters \"%v\"", repositoryName, input, parameters)

	// decrypt secrets and replace envvars in when clause, logs keep showing the encrypted form
	expanded := os.Expand(s.envvarClient.DecryptSecret(input, s.pipeline), s.envvarClient.GetEnv)

	expression, err := govaluate.NewEvaluableExpression(expanded)
	if err != nil {
		return
	}

	r, err := expression.Evaluate(parameters)

	log.Info().Msgf("[%v] Result of when expression \"%v\" is \"%v\"", repositoryName, input, r)

	if result, ok := r.(bool); ok {
		return result, err
	}

	return false, errors.New("Result of evaluating when expression is not of type boolean")
}

func (s *service) GetParameters(repository config.Repository, commit api.Commit) map[string]interface{} {

	parameters := make(map[string]interface{}, 6)
	parameters["owner"] = repository.Owner
	parameters["repo"] = repository.Name
	parameters["branch"] = repository.Branch
	parameters["hash"] = commit.Hash
	parameters["message"] = commit.Message
	parameters["action"] = s.envvarClient.GetActionName()

	return parameters
}
