package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/artifact"
	"github.com/estafette/estafette-maven-builder/services/evaluation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var relics = config.Repository{Owner: "FN-FAL113", Name: "RelicsOfCthonia", Branch: "main"}

func TestCheck(t *testing.T) {

	t.Run("SkipsIfMessageContainsSkipMarker", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateService, artifactService := getGateService(t, evaluation.NewMockService(ctrl))

		// act
		decision, err := gateService.Check(context.Background(), relics, api.Commit{Hash: "abc1234", Message: "Update readme [ci skip]"})

		assert.Nil(t, err)
		assert.True(t, decision.Skip)
		assert.False(t, artifactService.Exists(decision.CommitDir))
	})

	t.Run("SkipsIfCommitDirAlreadyExists", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateService, artifactService := getGateService(t, evaluation.NewMockService(ctrl))
		assert.Nil(t, artifactService.Create(artifactService.CommitDir(relics, "abc1234")))

		// act
		decision, err := gateService.Check(context.Background(), relics, api.Commit{Hash: "abc1234", Message: "Add new relic"})

		assert.Nil(t, err)
		assert.True(t, decision.Skip)
		assert.Contains(t, decision.Reason, "already been built")
	})

	t.Run("DoesNotSkipNewCommitAndCreatesCommitDir", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateService, artifactService := getGateService(t, evaluation.NewMockService(ctrl))

		// act
		decision, err := gateService.Check(context.Background(), relics, api.Commit{Hash: "abc1234", Message: "Add new relic"})

		assert.Nil(t, err)
		assert.False(t, decision.Skip)
		assert.Equal(t, artifactService.CommitDir(relics, "abc1234"), decision.CommitDir)
		assert.True(t, artifactService.Exists(decision.CommitDir))
	})

	t.Run("SkipsIfWhenClauseIsFalse", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repository := relics
		repository.When = "branch == 'release'"

		evaluationService := evaluation.NewMockService(ctrl)
		evaluationService.EXPECT().GetParameters(repository, gomock.Any()).Return(map[string]interface{}{"branch": "main"})
		evaluationService.EXPECT().Evaluate("FN-FAL113/RelicsOfCthonia", "branch == 'release'", gomock.Any()).Return(false, nil)

		gateService, artifactService := getGateService(t, evaluationService)

		// act
		decision, err := gateService.Check(context.Background(), repository, api.Commit{Hash: "abc1234", Message: "Add new relic"})

		assert.Nil(t, err)
		assert.True(t, decision.Skip)
		assert.False(t, artifactService.Exists(decision.CommitDir))
	})

	t.Run("DoesNotSkipIfWhenClauseIsTrue", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repository := relics
		repository.When = "branch == 'main'"

		evaluationService := evaluation.NewMockService(ctrl)
		evaluationService.EXPECT().GetParameters(repository, gomock.Any()).Return(map[string]interface{}{"branch": "main"})
		evaluationService.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		gateService, _ := getGateService(t, evaluationService)

		// act
		decision, err := gateService.Check(context.Background(), repository, api.Commit{Hash: "abc1234", Message: "Add new relic"})

		assert.Nil(t, err)
		assert.False(t, decision.Skip)
	})

	t.Run("ReturnsErrorIfWhenClauseFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repository := relics
		repository.When = "branch =="

		evaluationService := evaluation.NewMockService(ctrl)
		evaluationService.EXPECT().GetParameters(gomock.Any(), gomock.Any()).Return(map[string]interface{}{})
		evaluationService.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("unexpected end of expression"))

		gateService, _ := getGateService(t, evaluationService)

		// act
		_, err := gateService.Check(context.Background(), repository, api.Commit{Hash: "abc1234", Message: "Add new relic"})

		assert.NotNil(t, err)
	})

	t.Run("UsesConfiguredSkipMarker", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		artifactService, _ := artifact.NewService(context.Background(), t.TempDir())
		gateService, _ := NewService(context.Background(), evaluation.NewMockService(ctrl), artifactService, "[skip maven]")

		// act
		decision, err := gateService.Check(context.Background(), relics, api.Commit{Hash: "abc1234", Message: "Docs [skip maven]"})

		assert.Nil(t, err)
		assert.True(t, decision.Skip)
	})
}

func getGateService(t *testing.T, evaluationService evaluation.Service) (Service, artifact.Service) {
	artifactService, _ := artifact.NewService(context.Background(), t.TempDir())
	gateService, _ := NewService(context.Background(), evaluationService, artifactService, "")

	return gateService, artifactService
}
