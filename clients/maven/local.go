package maven

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// NewLocalClient returns a maven.Client that runs the maven executable on the host
func NewLocalClient(ctx context.Context, executable string, extraArgs []string, obfuscationClient obfuscation.Client) (Client, error) {
	if executable == "" {
		executable = "mvn"
	}

	return &localClient{
		executable:        executable,
		extraArgs:         extraArgs,
		obfuscationClient: obfuscationClient,
	}, nil
}

type localClient struct {
	executable        string
	extraArgs         []string
	obfuscationClient obfuscation.Client
}

func (c *localClient) Package(ctx context.Context, projectDir string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "MavenPackage")
	defer span.Finish()
	span.SetTag("project-dir", projectDir)

	args := Goals(c.extraArgs)

	log.Info().Msgf("Running %v %v in %v", c.executable, c.obfuscationClient.Obfuscate(strings.Join(args, " ")), projectDir)

	cmd := exec.CommandContext(ctx, c.executable, args...)
	cmd.Dir = projectDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = cmd.Run()
	if output.Len() > 0 {
		log.Debug().Msg(c.obfuscationClient.Obfuscate(output.String()))
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildError{ExitCode: int64(exitErr.ExitCode())}
		}
		return fmt.Errorf("running %v in %v failed: %w", c.executable, projectDir, err)
	}

	return nil
}
