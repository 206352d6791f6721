package pages

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/clients/git"
	"github.com/estafette/estafette-maven-builder/clients/github"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const buildsPage = `<!DOCTYPE html>
<html>
<head><title>Builds</title></head>
<body>
    <div class="container maindiv">
    </div>
</body>
</html>`

var (
	relics = config.Repository{Owner: "FN-FAL113", Name: "RelicsOfCthonia", Branch: "main"}

	pagesConfig = config.PagesConfig{
		Owner:            "FN-FAL113",
		PagesRepository:  "FN_FAL113-Pages",
		BuildsRepository: "MavenBuilds",
	}

	commitDate = time.Date(2022, 9, 14, 8, 30, 0, 0, time.UTC)
)

func TestCollectCommitDirs(t *testing.T) {

	t.Run("ReturnsDirectoriesHoldingFilesOrderedByPath", func(t *testing.T) {

		reposDir := t.TempDir()
		writeFiles(t, filepath.Join(reposDir, "FN-FAL113", "RelicsOfCthonia", "main", "def5678"), "build.txt")
		writeFiles(t, filepath.Join(reposDir, "FN-FAL113", "RelicsOfCthonia", "main", "abc1234"), "build.txt", "RelicsOfCthonia v1.2.0.jar")
		writeFiles(t, filepath.Join(reposDir, "FN-FAL113"), "README.md")

		// act
		commitDirs, err := CollectCommitDirs(reposDir)

		assert.Nil(t, err)
		if assert.Equal(t, 2, len(commitDirs)) {
			assert.Equal(t, "abc1234", commitDirs[0].Hash)
			assert.Equal(t, relics, commitDirs[0].Repository)
			assert.Equal(t, []string{"RelicsOfCthonia v1.2.0.jar", "build.txt"}, commitDirs[0].Files)
			assert.Equal(t, "def5678", commitDirs[1].Hash)
		}
	})

	t.Run("ReturnsEmptySliceIfReposDirDoesNotExist", func(t *testing.T) {

		// act
		commitDirs, err := CollectCommitDirs(filepath.Join(t.TempDir(), "repos"))

		assert.Nil(t, err)
		assert.Equal(t, 0, len(commitDirs))
	})
}

func TestTree(t *testing.T) {

	t.Run("RendersOwnerRepoBranchHashAndFiles", func(t *testing.T) {

		commitDirs := []CommitDir{
			{Repository: relics, Hash: "abc1234", Files: []string{"build.txt"}},
			{Repository: relics, Hash: "def5678", Files: []string{"build.txt"}},
		}

		// act
		tree := Tree("FN-FAL113/MavenBuilds", commitDirs)

		assert.True(t, strings.HasPrefix(tree, "FN-FAL113/MavenBuilds"))
		assert.Equal(t, 1, strings.Count(tree, "RelicsOfCthonia"))
		assert.Contains(t, tree, "abc1234")
		assert.Contains(t, tree, "def5678")
	})
}

func TestUpdatePage(t *testing.T) {

	t.Run("AppendsRepositoryHeaderAndCommitModal", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagePath := writePage(t, buildsPage)
		commitDirs := []CommitDir{{Repository: relics, Hash: "abc1234", Files: []string{"RelicsOfCthonia v1.2.0.jar", "build.txt"}}}

		m.githubClient.EXPECT().GetCommit(gomock.Any(), "FN-FAL113", "RelicsOfCthonia", "abc1234").Return(api.Commit{Hash: "abc1234", Message: "Add <b>new</b> relic", Date: commitDate}, nil)

		// act
		results, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)

		assert.Nil(t, err)
		if assert.Equal(t, 1, len(results)) {
			assert.Equal(t, api.StatusSucceeded, results[0].Status)
		}
		page := readPage(t, pagePath)
		assert.Contains(t, page, "relicsofcthonia")
		assert.Contains(t, page, "<h3 class=\"text-center text-dark mt-1\">RelicsOfCthonia</h3>")
		assert.Contains(t, page, "exampleModalabc1234")
		assert.Contains(t, page, "Success")
		assert.Contains(t, page, "https://github.com/FN-FAL113/MavenBuilds/raw/main/repos/FN-FAL113/RelicsOfCthonia/main/abc1234/RelicsOfCthonia%20v1.2.0.jar")
		assert.Contains(t, page, "Add &lt;b&gt;new&lt;/b&gt; relic")
		assert.Contains(t, page, "Wed Sep 14 2022 08:30:00 GMT+0000 (UTC)")
	})

	t.Run("MarksCommitWithSingleFileAsFailure", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagePath := writePage(t, buildsPage)
		commitDirs := []CommitDir{{Repository: relics, Hash: "abc1234", Files: []string{"build.txt"}}}

		m.githubClient.EXPECT().GetCommit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(api.Commit{Hash: "abc1234", Message: "Break build", Date: commitDate}, nil)

		// act
		_, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)

		assert.Nil(t, err)
		page := readPage(t, pagePath)
		assert.Contains(t, page, "Failure")
		assert.NotContains(t, page, "Success")
	})

	t.Run("SkipsCommitsAlreadyOnThePage", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagePath := writePage(t, buildsPage)
		commitDirs := []CommitDir{{Repository: relics, Hash: "abc1234", Files: []string{"build.txt"}}}

		m.githubClient.EXPECT().GetCommit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(api.Commit{Hash: "abc1234", Date: commitDate}, nil).Times(1)

		_, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)
		assert.Nil(t, err)
		firstRun := readPage(t, pagePath)

		// act
		results, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)

		assert.Nil(t, err)
		if assert.Equal(t, 1, len(results)) {
			assert.Equal(t, api.StatusSkipped, results[0].Status)
		}
		assert.Equal(t, firstRun, readPage(t, pagePath))
		assert.Equal(t, 1, strings.Count(readPage(t, pagePath), "id=\"exampleModalabc1234\""))
	})

	t.Run("AppendsOneModalPerNewCommitToTheSameRepositoryDiv", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagePath := writePage(t, buildsPage)
		commitDirs := []CommitDir{
			{Repository: relics, Hash: "abc1234", Files: []string{"build.txt"}},
			{Repository: relics, Hash: "def5678", Files: []string{"build.txt"}},
		}

		m.githubClient.EXPECT().GetCommit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(api.Commit{Date: commitDate}, nil).Times(2)

		// act
		results, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)

		assert.Nil(t, err)
		assert.Equal(t, 2, len(results))
		page := readPage(t, pagePath)
		assert.Equal(t, 1, strings.Count(page, "<h3 class=\"text-center text-dark mt-1\">RelicsOfCthonia</h3>"))
		assert.Contains(t, page, "exampleModalabc1234")
		assert.Contains(t, page, "exampleModaldef5678")
	})

	t.Run("ContinuesWithNextCommitIfCommitDetailsCannotBeFetched", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagePath := writePage(t, buildsPage)
		commitDirs := []CommitDir{
			{Repository: relics, Hash: "abc1234", Files: []string{"build.txt"}},
			{Repository: relics, Hash: "def5678", Files: []string{"build.txt"}},
		}

		m.githubClient.EXPECT().GetCommit(gomock.Any(), gomock.Any(), gomock.Any(), "abc1234").Return(api.Commit{}, errors.New("api rate limit exceeded"))
		m.githubClient.EXPECT().GetCommit(gomock.Any(), gomock.Any(), gomock.Any(), "def5678").Return(api.Commit{Date: commitDate}, nil)

		// act
		results, err := pagesService.UpdatePage(context.Background(), pagePath, commitDirs)

		assert.Nil(t, err)
		if assert.Equal(t, 2, len(results)) {
			assert.Equal(t, api.StatusErrored, results[0].Status)
			assert.Equal(t, api.StatusSucceeded, results[1].Status)
		}
		page := readPage(t, pagePath)
		assert.NotContains(t, page, "exampleModalabc1234")
		assert.Contains(t, page, "exampleModaldef5678")
	})

	t.Run("ReturnsErrorIfPageHasNoMainDiv", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, _ := getPagesService(t, ctrl)
		pagePath := writePage(t, "<html><body><div class=\"container\"></div></body></html>")

		// act
		_, err := pagesService.UpdatePage(context.Background(), pagePath, []CommitDir{})

		assert.NotNil(t, err)
	})
}

func TestRun(t *testing.T) {

	t.Run("ClonesBothRepositoriesUpdatesThePageAndPushes", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)
		pagesDir := filepath.Join(m.workDir, "FN-FAL113", "FN_FAL113-Pages")
		buildsDir := filepath.Join(m.workDir, "FN-FAL113", "MavenBuilds")
		signature := api.Signature{Name: "FN-FAL113", Email: "fn@example.com"}

		m.gitClient.EXPECT().Clone(gomock.Any(), "https://github.com/FN-FAL113/FN_FAL113-Pages.git", "main", pagesDir, 0).DoAndReturn(func(ctx context.Context, url, branch, dir string, depth int) error {
			writeFiles(t, filepath.Join(dir, "src"))
			return ioutil.WriteFile(filepath.Join(dir, "src", "builds.html"), []byte(buildsPage), 0644)
		})
		m.gitClient.EXPECT().Clone(gomock.Any(), "https://github.com/FN-FAL113/MavenBuilds.git", "main", buildsDir, 1).DoAndReturn(func(ctx context.Context, url, branch, dir string, depth int) error {
			writeFiles(t, filepath.Join(dir, "repos", "FN-FAL113", "RelicsOfCthonia", "main", "abc1234"), "build.txt", "RelicsOfCthonia v1.2.0.jar")
			return nil
		})
		m.githubClient.EXPECT().GetCommit(gomock.Any(), "FN-FAL113", "RelicsOfCthonia", "abc1234").Return(api.Commit{Date: commitDate}, nil)
		m.envvarClient.EXPECT().GetCommitMessage().Return("maven-builds #42")
		m.envvarClient.EXPECT().GetSignature("FN-FAL113").Return(signature)
		m.gitClient.EXPECT().CommitAndPush(gomock.Any(), pagesDir, "maven-builds #42", signature).Return(true, nil)

		// act
		results, err := pagesService.Run(context.Background())

		assert.Nil(t, err)
		if assert.Equal(t, 1, len(results)) {
			assert.Equal(t, api.StatusSucceeded, results[0].Status)
		}
		assert.Contains(t, readPage(t, filepath.Join(pagesDir, "src", "builds.html")), "exampleModalabc1234")
	})

	t.Run("ReturnsErrorIfPagesRepositoryCannotBeCloned", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		pagesService, m := getPagesService(t, ctrl)

		m.gitClient.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("repository not found"))
		m.gitClient.EXPECT().CommitAndPush(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		// act
		_, err := pagesService.Run(context.Background())

		assert.NotNil(t, err)
	})
}

type mocks struct {
	workDir      string
	envvarClient *envvar.MockClient
	gitClient    *git.MockClient
	githubClient *github.MockClient
}

func getPagesService(t *testing.T, ctrl *gomock.Controller) (Service, mocks) {

	m := mocks{
		workDir:      t.TempDir(),
		envvarClient: envvar.NewMockClient(ctrl),
		gitClient:    git.NewMockClient(ctrl),
		githubClient: github.NewMockClient(ctrl),
	}

	c := pagesConfig
	c.WorkDir = m.workDir

	pagesService, _ := NewService(context.Background(), c, m.envvarClient, m.gitClient, m.githubClient)

	return pagesService, m
}

func writeFiles(t *testing.T, dir string, names ...string) {
	assert.Nil(t, os.MkdirAll(dir, 0755))
	for _, n := range names {
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, n), []byte(n), 0644))
	}
}

func writePage(t *testing.T, content string) string {
	pagePath := filepath.Join(t.TempDir(), "builds.html")
	assert.Nil(t, ioutil.WriteFile(pagePath, []byte(content), 0644))
	return pagePath
}

func readPage(t *testing.T, pagePath string) string {
	content, err := ioutil.ReadFile(pagePath)
	assert.Nil(t, err)
	return string(content)
}
