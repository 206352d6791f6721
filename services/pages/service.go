package pages

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/clients/git"
	"github.com/estafette/estafette-maven-builder/clients/github"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/artifact"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

const (
	// DefaultPageFile is the builds page inside the pages repository
	DefaultPageFile = "src/builds.html"

	commitDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

// CommitDir is a directory in the builds repository holding the outputs of a single commit
type CommitDir struct {
	Repository config.Repository
	Hash       string
	Path       string
	Files      []string
}

// Service regenerates the builds page from the contents of the builds repository
//go:generate mockgen -package=pages -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context) (results []api.RepositoryResult, err error)
	UpdatePage(ctx context.Context, pagePath string, commitDirs []CommitDir) (results []api.RepositoryResult, err error)
}

// NewService returns a new pages.Service
func NewService(ctx context.Context, pagesConfig config.PagesConfig, envvarClient envvar.Client, gitClient git.Client, githubClient github.Client) (Service, error) {
	if pagesConfig.PageFile == "" {
		pagesConfig.PageFile = DefaultPageFile
	}
	if pagesConfig.PagesBranch == "" {
		pagesConfig.PagesBranch = config.DefaultBranch
	}
	if pagesConfig.BuildsBranch == "" {
		pagesConfig.BuildsBranch = config.DefaultBranch
	}

	return &service{
		pagesConfig:  pagesConfig,
		envvarClient: envvarClient,
		gitClient:    gitClient,
		githubClient: githubClient,
	}, nil
}

type service struct {
	pagesConfig  config.PagesConfig
	envvarClient envvar.Client
	gitClient    git.Client
	githubClient github.Client
}

func (s *service) Run(ctx context.Context) (results []api.RepositoryResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunPages")
	defer span.Finish()

	pages := s.pagesConfig.Pages()
	builds := s.pagesConfig.Builds()
	pagesDir := pages.LocalDir(s.pagesConfig.WorkDir)
	buildsDir := builds.LocalDir(s.pagesConfig.WorkDir)

	if err = s.gitClient.Clone(ctx, pages.HTTPSURL(), pages.Branch, pagesDir, 0); err != nil {
		return nil, err
	}
	if err = s.gitClient.Clone(ctx, builds.HTTPSURL(), builds.Branch, buildsDir, 1); err != nil {
		return nil, err
	}

	commitDirs, err := CollectCommitDirs(filepath.Join(buildsDir, artifact.ReposDir))
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("Found %v commit directories in %v", len(commitDirs), builds.FullName())

	if s.pagesConfig.PrintTree {
		log.Info().Msgf("Builds in %v:\n%v", builds.FullName(), Tree(builds.FullName(), commitDirs))
	}

	results, err = s.UpdatePage(ctx, filepath.Join(pagesDir, filepath.FromSlash(s.pagesConfig.PageFile)), commitDirs)
	if err != nil {
		return results, err
	}

	message := s.envvarClient.GetCommitMessage()
	pushed, err := s.gitClient.CommitAndPush(ctx, pagesDir, message, s.envvarClient.GetSignature(pages.Owner))
	if err != nil {
		return results, fmt.Errorf("publishing pages repository %v failed: %w", pages.FullName(), err)
	}
	if !pushed {
		log.Info().Msgf("Nothing to commit on %v", pages.FullName())
	}

	return results, nil
}

func (s *service) UpdatePage(ctx context.Context, pagePath string, commitDirs []CommitDir) (results []api.RepositoryResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "UpdatePage")
	defer span.Finish()

	doc, err := readDocument(pagePath)
	if err != nil {
		return nil, err
	}

	mainDiv := findDivByClass(doc, "maindiv")
	if mainDiv == nil {
		return nil, fmt.Errorf("page %v has no div.maindiv", pagePath)
	}

	results = make([]api.RepositoryResult, 0, len(commitDirs))

	for _, cd := range commitDirs {
		start := time.Now()
		result := api.RepositoryResult{
			Repository: cd.Repository,
			Commit:     api.Commit{Hash: cd.Hash},
			Artifacts:  cd.Files,
		}

		appended, err := s.appendCommit(ctx, mainDiv, cd)
		switch {
		case err != nil:
			log.Error().Err(err).Msgf("[%v] Adding commit %v to the builds page failed", cd.Repository.FullName(), cd.Hash)
			result.Status = api.StatusErrored
			result.Reason = err.Error()
		case appended:
			if err = writeDocument(pagePath, doc); err != nil {
				return results, err
			}
			log.Info().Msgf("[%v] Added commit %v to the builds page", cd.Repository.FullName(), cd.Hash)
			result.Status = api.StatusSucceeded
		default:
			result.Status = api.StatusSkipped
			result.Reason = "already on the builds page"
		}

		result.Duration = time.Since(start)
		results = append(results, result)
	}

	return results, nil
}

func (s *service) appendCommit(ctx context.Context, mainDiv *html.Node, cd CommitDir) (appended bool, err error) {

	class := strings.ToLower(cd.Repository.Name)

	repositoryDiv := findDivByClass(mainDiv, class)
	if repositoryDiv == nil {
		if err = appendFragment(mainDiv, repositoryHeaderTemplate, repositoryHeader{Class: class, Name: cd.Repository.Name}); err != nil {
			return false, err
		}
		repositoryDiv = findDivByClass(mainDiv, class)
		if repositoryDiv == nil {
			return false, fmt.Errorf("div.%v missing after adding it", class)
		}
	}

	inner, err := innerHTML(repositoryDiv)
	if err != nil {
		return false, err
	}
	if strings.Contains(inner, cd.Hash) {
		return false, nil
	}

	commit, err := s.githubClient.GetCommit(ctx, cd.Repository.Owner, cd.Repository.Name, cd.Hash)
	if err != nil {
		return false, err
	}

	if err = appendFragment(repositoryDiv, commitModalTemplate, s.newCommitModal(cd, commit)); err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) newCommitModal(cd CommitDir, commit api.Commit) commitModal {

	status := "Failure"
	if len(cd.Files) > 1 {
		status = "Success"
	}

	files := make([]buildFile, 0, len(cd.Files))
	for _, f := range cd.Files {
		files = append(files, buildFile{Name: f, URL: s.rawURL(cd, f)})
	}

	return commitModal{
		ID:      strings.ToLower(cd.Hash),
		Hash:    cd.Hash,
		Status:  status,
		Files:   files,
		Date:    commit.Date.UTC().Format(commitDateLayout),
		Message: commit.Message,
	}
}

func (s *service) rawURL(cd CommitDir, file string) string {
	return fmt.Sprintf("https://github.com/%v/%v/raw/%v/%v",
		s.pagesConfig.Owner,
		s.pagesConfig.BuildsRepository,
		s.pagesConfig.BuildsBranch,
		path.Join(artifact.ReposDir, cd.Repository.Owner, cd.Repository.Name, cd.Repository.Branch, cd.Hash, url.PathEscape(file)))
}

// CollectCommitDirs walks reposDir and returns every {owner}/{repo}/{branch}/{hash} directory holding files
func CollectCommitDirs(reposDir string) (commitDirs []CommitDir, err error) {

	commitDirs = []CommitDir{}

	if _, err = os.Stat(reposDir); os.IsNotExist(err) {
		log.Warn().Msgf("Directory %v does not exist, there are no builds yet", reposDir)
		return commitDirs, nil
	}

	err = filepath.WalkDir(reposDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return err
		}

		files := []string{}
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		if len(files) == 0 {
			return nil
		}

		rel, err := filepath.Rel(reposDir, p)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) != 4 {
			log.Warn().Msgf("Ignoring %v, it isn't an owner/repo/branch/hash directory", p)
			return nil
		}

		sort.Strings(files)
		commitDirs = append(commitDirs, CommitDir{
			Repository: config.Repository{Owner: parts[0], Name: parts[1], Branch: parts[2]},
			Hash:       parts[3],
			Path:       p,
			Files:      files,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %v failed: %w", reposDir, err)
	}

	sort.Slice(commitDirs, func(i, j int) bool {
		return commitDirs[i].Path < commitDirs[j].Path
	})

	return commitDirs, nil
}

// Tree renders the commit directories as owner/repo/branch/hash tree
func Tree(root string, commitDirs []CommitDir) string {

	tree := treeprint.NewWithRoot(root)
	branches := map[string]treeprint.Tree{}

	branchFor := func(parent treeprint.Tree, key, name string) treeprint.Tree {
		if b, ok := branches[key]; ok {
			return b
		}
		b := parent.AddBranch(name)
		branches[key] = b
		return b
	}

	for _, cd := range commitDirs {
		owner := branchFor(tree, cd.Repository.Owner, cd.Repository.Owner)
		repo := branchFor(owner, cd.Repository.FullName(), cd.Repository.Name)
		branch := branchFor(repo, cd.Repository.FullName()+"@"+cd.Repository.Branch, cd.Repository.Branch)
		commit := branch.AddBranch(cd.Hash)
		for _, f := range cd.Files {
			commit.AddNode(f)
		}
	}

	return tree.String()
}
