package maven

import (
	"context"
	"fmt"

	"github.com/google/shlex"
)

// LogFileName is the file maven writes its build output to, inside the project directory
const LogFileName = "build.txt"

// Client compiles and packages a maven project
//go:generate mockgen -package=maven -destination ./mock.go -source=client.go
type Client interface {
	Package(ctx context.Context, projectDir string) (err error)
}

// BuildError is returned when maven ran but did not finish successfully
type BuildError struct {
	ExitCode int64
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("maven exited with code %v", e.ExitCode)
}

// Goals returns the arguments for a clean package run that logs to LogFileName
func Goals(extraArgs []string) []string {
	args := []string{"clean", "package", "-l", LogFileName, "-DskipTests=false"}
	return append(args, extraArgs...)
}

// SplitArgs splits a MAVEN_ARGS style string the way a shell would
func SplitArgs(args string) ([]string, error) {
	return shlex.Split(args)
}
