package main

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/alecthomas/kingpin"
	"github.com/estafette/estafette-maven-builder/clients/docker"
	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/clients/git"
	"github.com/estafette/estafette-maven-builder/clients/github"
	"github.com/estafette/estafette-maven-builder/clients/maven"
	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/estafette/estafette-maven-builder/services/artifact"
	"github.com/estafette/estafette-maven-builder/services/builder"
	"github.com/estafette/estafette-maven-builder/services/evaluation"
	"github.com/estafette/estafette-maven-builder/services/gate"
	"github.com/estafette/estafette-maven-builder/services/pages"
	"github.com/estafette/estafette-maven-builder/services/pipeline"
	crypt "github.com/estafette/estafette-ci-crypt"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/rs/zerolog/log"
)

var (
	appgroup  = "estafette"
	app       = "estafette-maven-builder"
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	decryptionKey = kingpin.Flag("decryption-key", "The AES-256 key used to decrypt secrets in environment variables.").Envar("DECRYPTION_KEY").String()
	envvarPrefix  = kingpin.Flag("envvar-prefix", "Prefix for the API_KEY, EMAIL, GIT_USER_NAME, ACTION_NAME and RUN_ID environment variables.").Envar("ENVVAR_PREFIX").String()
	workDir       = kingpin.Flag("work-dir", "Directory repositories get cloned into, as {work-dir}/{owner}/{repo}.").Default("./repos").Envar("WORK_DIR").String()
	githubAPIURL  = kingpin.Flag("github-api-url", "Base url of the github rest api.").Default(github.DefaultBaseURL).Envar("GITHUB_API_URL").String()

	buildCommand    = kingpin.Command("build", "Build new commits of the configured repositories and push the outputs to the builds repository.").Default()
	configPath      = buildCommand.Flag("config", "Path to the repositories config; the first entry is the builds repository.").Default("repos.json").Envar("REPOS_CONFIG").String()
	builderType     = buildCommand.Flag("builder", "Run maven on the host or inside a container.").Default(config.BuilderLocal).Envar("MAVEN_BUILDER").Enum(config.BuilderLocal, config.BuilderDocker)
	mavenExecutable = buildCommand.Flag("maven-executable", "Maven executable for the local builder.").Default("mvn").Envar("MAVEN_EXECUTABLE").String()
	mavenImage      = buildCommand.Flag("maven-image", "Maven image for the docker builder.").Default(maven.DefaultImage).Envar("MAVEN_IMAGE").String()
	mavenArgs       = buildCommand.Flag("maven-args", "Extra arguments appended to the maven goals.").Envar("MAVEN_ARGS").String()
	skipMarker      = buildCommand.Flag("skip-marker", "Commits with this text in their message don't get built.").Default(gate.DefaultSkipMarker).Envar("SKIP_MARKER").String()
	concurrency     = buildCommand.Flag("concurrency", "Number of repositories built at the same time.").Default("1").Envar("CONCURRENCY").Int()
	commitSource    = buildCommand.Flag("commit-source", "Read the head commit from the local clone or the github api.").Default(config.CommitSourceLocal).Envar("COMMIT_SOURCE").Enum(config.CommitSourceLocal, config.CommitSourceAPI)
	cloneDepth      = buildCommand.Flag("clone-depth", "Depth of the clones of repositories to build, 0 for full history.").Default("1").Envar("CLONE_DEPTH").Int()

	pagesCommand     = kingpin.Command("pages", "Add the commits in the builds repository to the builds page.")
	owner            = pagesCommand.Flag("owner", "Owner of the pages and builds repositories.").Default("FN-FAL113").Envar("PAGES_OWNER").String()
	pagesRepository  = pagesCommand.Flag("pages-repo", "Repository holding the builds page.").Default("FN_FAL113-Pages").Envar("PAGES_REPOSITORY").String()
	pagesBranch      = pagesCommand.Flag("pages-branch", "Branch of the pages repository.").Default(config.DefaultBranch).Envar("PAGES_BRANCH").String()
	pageFile         = pagesCommand.Flag("page-file", "Path of the builds page inside the pages repository.").Default(pages.DefaultPageFile).Envar("PAGE_FILE").String()
	buildsRepository = pagesCommand.Flag("builds-repo", "Repository holding the build outputs.").Default("MavenBuilds").Envar("BUILDS_REPOSITORY").String()
	buildsBranch     = pagesCommand.Flag("builds-branch", "Branch of the builds repository.").Default(config.DefaultBranch).Envar("BUILDS_BRANCH").String()
	printTree        = pagesCommand.Flag("print-tree", "Log the tree of commit directories found in the builds repository.").Envar("PRINT_TREE").Bool()
)

func main() {

	// parse command line parameters
	kingpin.Version(version)
	command := kingpin.Parse()

	// init log format from envvar ESTAFETTE_LOG_FORMAT
	applicationInfo := foundation.NewApplicationInfo(appgroup, app, version, branch, revision, buildDate)
	foundation.InitLoggingFromEnv(applicationInfo)

	// create context to cancel commands on sigterm
	ctx := foundation.InitCancellationContext(context.Background())

	secretHelper := crypt.NewSecretHelper(*decryptionKey, false)

	obfuscationClient, err := obfuscation.NewClient(ctx, secretHelper)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating obfuscation.Client")
	}

	envvarClient, err := envvar.NewClient(ctx, *envvarPrefix, app, secretHelper, obfuscationClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating envvar.Client")
	}

	apiKey := envvarClient.GetAPIKey()
	if apiKey == "" {
		log.Warn().Msg("API_KEY is not set, cloning and pushing without credentials")
	}

	githubClient, err := github.NewClient(ctx, *githubAPIURL, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating github.Client")
	}

	switch command {
	case pagesCommand.FullCommand():

		gitClient, err := git.NewClient(ctx, *owner, apiKey, obfuscationClient)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating git.Client")
		}

		pagesConfig := config.PagesConfig{
			WorkDir:          *workDir,
			Owner:            *owner,
			PagesRepository:  *pagesRepository,
			PagesBranch:      *pagesBranch,
			PageFile:         *pageFile,
			BuildsRepository: *buildsRepository,
			BuildsBranch:     *buildsBranch,
			PrintTree:        *printTree,
		}

		pagesService, err := pages.NewService(ctx, pagesConfig, envvarClient, gitClient, githubClient)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating pages.Service")
		}

		builderService, err := builder.NewService(ctx, applicationInfo, nil, pagesService)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating builder.Service")
		}

		builderService.RunPagesJob(ctx)

	default:

		repositories, err := readRepositories(*configPath, obfuscationClient, app)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed reading repositories config")
		}

		extraArgs, err := getMavenArgs(*mavenArgs, envvarClient, obfuscationClient, app)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed splitting maven arguments")
		}

		builderConfig := config.BuilderConfig{
			WorkDir:         *workDir,
			Builder:         *builderType,
			MavenExecutable: *mavenExecutable,
			MavenImage:      *mavenImage,
			MavenArgs:       extraArgs,
			SkipMarker:      *skipMarker,
			Concurrency:     *concurrency,
			CommitSource:    *commitSource,
			CloneDepth:      *cloneDepth,
			GitHubAPIURL:    *githubAPIURL,
		}

		gitClient, err := git.NewClient(ctx, repositories[0].Owner, apiKey, obfuscationClient)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating git.Client")
		}

		mavenClient := getMavenClient(ctx, builderConfig, obfuscationClient)

		evaluationService, err := evaluation.NewService(ctx, envvarClient, app)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating evaluation.Service")
		}

		artifactService, err := artifact.NewService(ctx, repositories[0].LocalDir(builderConfig.WorkDir))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating artifact.Service")
		}

		gateService, err := gate.NewService(ctx, evaluationService, artifactService, builderConfig.SkipMarker)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating gate.Service")
		}

		pipelineService, err := pipeline.NewService(ctx, builderConfig, envvarClient, gitClient, githubClient, mavenClient, gateService, artifactService)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating pipeline.Service")
		}

		builderService, err := builder.NewService(ctx, applicationInfo, pipelineService, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating builder.Service")
		}

		builderService.RunBuildJob(ctx, repositories)
	}
}

func getMavenClient(ctx context.Context, builderConfig config.BuilderConfig, obfuscationClient obfuscation.Client) maven.Client {

	if builderConfig.Builder == config.BuilderDocker {
		dockerClient, err := docker.NewClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating docker.Client")
		}

		mavenClient, err := maven.NewDockerClient(ctx, dockerClient, builderConfig.MavenImage, builderConfig.MavenArgs)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed creating maven.Client")
		}

		return mavenClient
	}

	mavenClient, err := maven.NewLocalClient(ctx, builderConfig.MavenExecutable, builderConfig.MavenArgs, obfuscationClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating maven.Client")
	}

	return mavenClient
}

// readRepositories registers the secrets in the config for obfuscation before parsing it
func readRepositories(path string, obfuscationClient obfuscation.Client, pipeline string) ([]config.Repository, error) {

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading repositories config %v failed: %w", path, err)
	}

	if err = obfuscationClient.CollectSecrets(string(data), pipeline); err != nil {
		return nil, fmt.Errorf("collecting secrets in repositories config %v failed: %w", path, err)
	}

	return config.ParseRepositories(data)
}

// getMavenArgs decrypts secrets in the extra maven arguments and splits them
func getMavenArgs(value string, envvarClient envvar.Client, obfuscationClient obfuscation.Client, pipeline string) ([]string, error) {

	if err := obfuscationClient.CollectSecrets(value, pipeline); err != nil {
		return nil, fmt.Errorf("collecting secrets in maven arguments failed: %w", err)
	}

	return maven.SplitArgs(envvarClient.DecryptSecret(value, pipeline))
}
