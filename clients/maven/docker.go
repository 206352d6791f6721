package maven

import (
	"context"
	"fmt"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/estafette/estafette-maven-builder/clients/docker"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultImage is the maven image used when building in docker
	DefaultImage = "maven:3-eclipse-temurin-17"

	containerProjectDir = "/project"

	// the host user has no passwd entry in the image, so maven gets a writable home of its own
	containerHomeDir = "/tmp/maven"
)

// NewDockerClient returns a maven.Client that runs maven inside a container with the project mounted
func NewDockerClient(ctx context.Context, dockerClient docker.Client, image string, extraArgs []string) (Client, error) {
	if image == "" {
		image = DefaultImage
	}

	return &containerClient{
		dockerClient: dockerClient,
		image:        image,
		extraArgs:    extraArgs,
		user:         containerUser(),
	}, nil
}

type containerClient struct {
	dockerClient docker.Client
	image        string
	extraArgs    []string
	user         string
}

func (c *containerClient) Package(ctx context.Context, projectDir string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "MavenPackageInDocker")
	defer span.Finish()
	span.SetTag("project-dir", projectDir)
	span.SetTag("docker-image", c.image)

	if !c.dockerClient.IsImagePulled(ctx, c.image) {
		if err = c.dockerClient.PullImage(ctx, c.image); err != nil {
			return err
		}
	}

	// docker needs an absolute host path to bind
	hostDir, err := filepath.Abs(projectDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path of %v failed: %w", projectDir, err)
	}

	log.Info().Msgf("Running mvn in container %v for %v", c.image, hostDir)

	exitCode, err := c.dockerClient.RunContainer(ctx, docker.RunOptions{
		Image: c.image,
		Cmd:   append([]string{"mvn", "-Duser.home=" + containerHomeDir}, Goals(c.extraArgs)...),
		Env: []string{
			"HOME=" + containerHomeDir,
			"MAVEN_CONFIG=" + containerHomeDir + "/.m2",
		},
		User:       c.user,
		WorkingDir: containerProjectDir,
		Binds:      map[string]string{hostDir: containerProjectDir},
		LogPrefix:  fmt.Sprintf("[%v]", filepath.Base(hostDir)),
	})
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &BuildError{ExitCode: exitCode}
	}

	return nil
}

// containerUser returns uid:gid of the current user, so files written to the mounted project stay owned by the runner
func containerUser() string {

	if runtime.GOOS == "windows" {
		log.Debug().Msg("Not setting docker user for windows")
		return ""
	}

	currentUser, err := user.Current()
	if err != nil || currentUser == nil {
		log.Debug().Err(err).Msg("Can't retrieve current user")
		return ""
	}

	containerUser := fmt.Sprintf("%v:%v", currentUser.Uid, currentUser.Gid)
	log.Debug().Msgf("Setting docker user to %v", containerUser)

	return containerUser
}
