package docker

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	dockerclient "github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// RunOptions describes a single container run
type RunOptions struct {
	Image string
	Cmd   []string
	Env   []string
	// User is passed as uid:gid, empty runs as the image's default user
	User       string
	WorkingDir string
	// Binds maps host paths to container paths
	Binds map[string]string
	// LogPrefix is prepended to every container output line that gets logged
	LogPrefix string
}

// Client runs build containers against the local docker daemon
//go:generate mockgen -package=docker -destination ./mock.go -source=client.go
type Client interface {
	IsImagePulled(ctx context.Context, image string) bool
	PullImage(ctx context.Context, image string) (err error)
	RunContainer(ctx context.Context, options RunOptions) (exitCode int64, err error)
}

// NewClient returns a new docker.Client configured from the DOCKER_* environment variables
func NewClient(ctx context.Context) (Client, error) {

	dockerClient, err := dockerclient.NewClientWithOpts(dockerclient.FromEnv, dockerclient.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}

	return &client{
		dockerClient: dockerClient,
	}, nil
}

type client struct {
	dockerClient *dockerclient.Client
}

func (c *client) IsImagePulled(ctx context.Context, image string) bool {

	images, err := c.dockerClient.ImageList(ctx, types.ImageListOptions{})
	if err != nil {
		log.Warn().Err(err).Msgf("Listing images failed, assuming %v is not pulled", image)
		return false
	}

	return imageInList(images, image)
}

func (c *client) PullImage(ctx context.Context, image string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "PullImage")
	defer span.Finish()
	span.SetTag("docker-image", image)

	log.Info().Msgf("Pulling docker image %v", image)

	rc, err := c.dockerClient.ImagePull(ctx, image, types.ImagePullOptions{})
	if err != nil {
		return fmt.Errorf("pulling image %v failed: %w", image, err)
	}
	defer rc.Close()

	// wait for image pull to finish
	_, err = ioutil.ReadAll(rc)

	return err
}

func (c *client) RunContainer(ctx context.Context, options RunOptions) (exitCode int64, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunContainer")
	defer span.Finish()
	span.SetTag("docker-image", options.Image)

	resp, err := c.dockerClient.ContainerCreate(ctx, &container.Config{
		Image:        options.Image,
		Cmd:          options.Cmd,
		Env:          options.Env,
		User:         options.User,
		WorkingDir:   options.WorkingDir,
		AttachStdout: true,
		AttachStderr: true,
	}, &container.HostConfig{
		Binds: toBinds(options.Binds),
	}, &network.NetworkingConfig{}, nil, "")
	if err != nil {
		return -1, fmt.Errorf("creating container for image %v failed: %w", options.Image, err)
	}

	defer func() {
		removeErr := c.dockerClient.ContainerRemove(context.Background(), resp.ID, types.ContainerRemoveOptions{Force: true, RemoveVolumes: true})
		if removeErr != nil {
			log.Warn().Err(removeErr).Msgf("Removing container %v failed", resp.ID)
		}
	}()

	if err = c.dockerClient.ContainerStart(ctx, resp.ID, types.ContainerStartOptions{}); err != nil {
		return -1, fmt.Errorf("starting container for image %v failed: %w", options.Image, err)
	}

	// tail logs until the container exits
	rc, err := c.dockerClient.ContainerLogs(ctx, resp.ID, types.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return -1, fmt.Errorf("reading logs of container %v failed: %w", resp.ID, err)
	}
	defer rc.Close()

	var output bytes.Buffer
	if _, err = stdcopy.StdCopy(&output, &output, rc); err != nil && err != io.EOF {
		log.Warn().Err(err).Msgf("Reading logs of container %v failed", resp.ID)
	}
	logLines(options.LogPrefix, &output)

	statusCh, errCh := c.dockerClient.ContainerWait(ctx, resp.ID, container.WaitConditionNotRunning)
	select {
	case err = <-errCh:
		if err != nil {
			return -1, fmt.Errorf("waiting for container %v failed: %w", resp.ID, err)
		}
	case status := <-statusCh:
		exitCode = status.StatusCode
	}

	return exitCode, nil
}

func imageInList(images []types.ImageSummary, image string) bool {

	if !strings.Contains(image, ":") {
		image += ":latest"
	}

	for _, i := range images {
		for _, tag := range i.RepoTags {
			if tag == image {
				return true
			}
		}
	}

	return false
}

func toBinds(binds map[string]string) []string {
	result := make([]string, 0, len(binds))
	for hostPath, containerPath := range binds {
		result = append(result, fmt.Sprintf("%v:%v", hostPath, containerPath))
	}
	return result
}

func logLines(prefix string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		log.Debug().Msgf("%v %v", prefix, scanner.Text())
	}
}
