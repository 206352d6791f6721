package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultBranch is used for repositories that don't specify a branch
	DefaultBranch = "main"

	// BuilderLocal runs maven from the local PATH
	BuilderLocal = "local"
	// BuilderDocker runs maven inside a container
	BuilderDocker = "docker"

	// CommitSourceLocal reads the commit from the fresh clone
	CommitSourceLocal = "local"
	// CommitSourceAPI reads the commit from the github commits endpoint
	CommitSourceAPI = "api"
)

// Repository describes a github repository to build; the first one in the config file is the builds repository
type Repository struct {
	Owner  string `yaml:"github_username" json:"github_username"`
	Name   string `yaml:"repository" json:"repository"`
	Branch string `yaml:"branch" json:"branch"`
	When   string `yaml:"when,omitempty" json:"when,omitempty"`
}

// FullName returns owner/name
func (r Repository) FullName() string {
	return fmt.Sprintf("%v/%v", r.Owner, r.Name)
}

// HTTPSURL returns the https clone url without credentials
func (r Repository) HTTPSURL() string {
	return fmt.Sprintf("https://github.com/%v/%v.git", r.Owner, r.Name)
}

// LocalDir returns the directory the repository gets cloned into
func (r Repository) LocalDir(workDir string) string {
	return filepath.Join(workDir, r.Owner, r.Name)
}

// SameAs compares owner and name case-insensitively, like github does
func (r Repository) SameAs(other Repository) bool {
	return strings.EqualFold(r.Owner, other.Owner) && strings.EqualFold(r.Name, other.Name)
}

// ParseRepositories unmarshals and validates the repository list
func ParseRepositories(data []byte) (repositories []Repository, err error) {

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		err = json.Unmarshal(trimmed, &repositories)
	} else {
		err = yaml.Unmarshal(trimmed, &repositories)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshalling repositories config failed: %w", err)
	}

	if len(repositories) == 0 {
		return nil, fmt.Errorf("repositories config has no entries, at least the builds repository is required")
	}

	for i := range repositories {
		repositories[i].Owner = strings.TrimSpace(repositories[i].Owner)
		repositories[i].Name = strings.TrimSpace(repositories[i].Name)
		repositories[i].Branch = strings.TrimSpace(repositories[i].Branch)

		if repositories[i].Owner == "" || repositories[i].Name == "" {
			return nil, fmt.Errorf("repository at index %v is missing github_username or repository", i)
		}
		if repositories[i].Branch == "" {
			repositories[i].Branch = DefaultBranch
		}
	}

	return repositories, nil
}

// BuilderConfig parameterizes a build run
type BuilderConfig struct {
	WorkDir         string
	Builder         string
	MavenExecutable string
	MavenImage      string
	MavenArgs       []string
	SkipMarker      string
	Concurrency     int
	CommitSource    string
	CloneDepth      int
	GitHubAPIURL    string
}

// PagesConfig parameterizes the builds page regeneration
type PagesConfig struct {
	WorkDir          string
	Owner            string
	PagesRepository  string
	PagesBranch      string
	PageFile         string
	BuildsRepository string
	BuildsBranch     string
	PrintTree        bool
}

// Pages returns the repository holding the builds page
func (c PagesConfig) Pages() Repository {
	return Repository{Owner: c.Owner, Name: c.PagesRepository, Branch: c.PagesBranch}
}

// Builds returns the repository holding the build artifacts
func (c PagesConfig) Builds() Repository {
	return Repository{Owner: c.Owner, Name: c.BuildsRepository, Branch: c.BuildsBranch}
}
