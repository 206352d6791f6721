package api

import (
	"time"

	"github.com/estafette/estafette-maven-builder/config"
)

// Status is the outcome of processing a single repository
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusErrored   Status = "errored"
)

// Commit references the commit a build is made for
type Commit struct {
	Hash     string    `json:"hash"`
	FullHash string    `json:"fullHash,omitempty"`
	Message  string    `json:"message"`
	Author   string    `json:"author,omitempty"`
	Email    string    `json:"email,omitempty"`
	Date     time.Time `json:"date"`
}

// Signature identifies the committer of the builds repository
type Signature struct {
	Name  string
	Email string
}

// RepositoryResult summarizes what happened to a repository during a run
type RepositoryResult struct {
	Repository config.Repository
	Commit     Commit
	Status     Status
	Reason     string
	Duration   time.Duration
	Artifacts  []string
}

// ShortHashLength is the length of the commit hash used as directory name
const ShortHashLength = 7

// ShortHash truncates a commit hash to ShortHashLength characters
func ShortHash(hash string) string {
	if len(hash) > ShortHashLength {
		return hash[:ShortHashLength]
	}
	return hash
}
