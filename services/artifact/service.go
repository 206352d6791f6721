package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/estafette/estafette-maven-builder/clients/maven"
	"github.com/estafette/estafette-maven-builder/config"
	"github.com/otiai10/copy"
	"github.com/rs/zerolog/log"
)

// ReposDir is the directory inside the builds repository holding all build outputs
const ReposDir = "repos"

var (
	rename = os.Rename
	remove = os.Remove
)

// Service places build outputs in the builds repository under repos/{owner}/{repo}/{branch}/{hash}
//go:generate mockgen -package=artifact -destination ./mock.go -source=service.go
type Service interface {
	CommitDir(repository config.Repository, hash string) string
	Exists(commitDir string) bool
	Create(commitDir string) error
	MoveJar(ctx context.Context, projectDir string, pom maven.Pom, commitDir string) (string, error)
	MoveLog(ctx context.Context, projectDir, commitDir string) (string, error)
	Discard(commitDir string) error
}

// NewService returns a new artifact.Service writing into buildsDir
func NewService(ctx context.Context, buildsDir string) (Service, error) {
	return &service{
		buildsDir: buildsDir,
	}, nil
}

type service struct {
	buildsDir string
}

func (s *service) CommitDir(repository config.Repository, hash string) string {
	return filepath.Join(s.buildsDir, ReposDir, repository.Owner, repository.Name, repository.Branch, hash)
}

func (s *service) Exists(commitDir string) bool {
	info, err := os.Stat(commitDir)
	return err == nil && info.IsDir()
}

func (s *service) Create(commitDir string) error {
	if err := os.MkdirAll(commitDir, 0755); err != nil {
		return fmt.Errorf("creating commit directory %v failed: %w", commitDir, err)
	}
	return nil
}

func (s *service) MoveJar(ctx context.Context, projectDir string, pom maven.Pom, commitDir string) (string, error) {

	jarPath, err := maven.BuiltJarPath(projectDir, pom)
	if err != nil {
		return "", err
	}

	target := filepath.Join(commitDir, maven.ArtifactName(pom))
	if err = move(jarPath, target); err != nil {
		return "", err
	}

	log.Info().Msgf("Moved %v to %v", jarPath, target)

	return target, nil
}

func (s *service) MoveLog(ctx context.Context, projectDir, commitDir string) (string, error) {

	source := filepath.Join(projectDir, maven.LogFileName)
	target := filepath.Join(commitDir, maven.LogFileName)

	if err := move(source, target); err != nil {
		return "", err
	}

	log.Info().Msgf("Moved %v to %v", source, target)

	return target, nil
}

func (s *service) Discard(commitDir string) error {

	entries, err := os.ReadDir(commitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// only an empty directory gets removed, outputs that made it are kept
	if len(entries) > 0 {
		return nil
	}

	return os.Remove(commitDir)
}

// move renames source to target and falls back to copy and remove when both live on different devices
func move(source, target string) error {

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %v failed: %w", target, err)
	}

	err := rename(source, target)
	if err == nil {
		return nil
	}
	if _, statErr := os.Stat(source); statErr != nil {
		return fmt.Errorf("moving %v to %v failed: %w", source, target, err)
	}

	log.Debug().Err(err).Msgf("Renaming %v failed, copying instead", source)

	if err = copy.Copy(source, target); err != nil {
		return fmt.Errorf("copying %v to %v failed: %w", source, target, err)
	}

	// the output is in place, a source left behind only costs disk space
	if err = remove(source); err != nil {
		log.Warn().Err(err).Msgf("Removing %v after copying it to %v failed", source, target)
	}

	return nil
}
