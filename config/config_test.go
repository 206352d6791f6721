package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseRepositories(t *testing.T) {

	t.Run("ReturnsRepositoriesFromJsonArray", func(t *testing.T) {

		data := []byte(`[
	{"github_username": "FN-FAL113", "repository": "MavenBuilds", "branch": "main"},
	{"github_username": "FN-FAL113", "repository": "FN-FAL-s-Amplifications", "branch": "main"}
]`)

		// act
		repositories, err := ParseRepositories(data)

		assert.Nil(t, err)
		assert.Equal(t, 2, len(repositories))
		assert.Equal(t, "FN-FAL113", repositories[0].Owner)
		assert.Equal(t, "MavenBuilds", repositories[0].Name)
		assert.Equal(t, "FN-FAL-s-Amplifications", repositories[1].Name)
	})

	t.Run("ReturnsRepositoriesFromYaml", func(t *testing.T) {

		data := []byte(`
- github_username: FN-FAL113
  repository: MavenBuilds
  branch: main
- github_username: FN-FAL113
  repository: RelicsOfCthonia
  branch: dev
  when: branch == 'dev'
`)

		// act
		repositories, err := ParseRepositories(data)

		assert.Nil(t, err)
		expected := []Repository{
			{Owner: "FN-FAL113", Name: "MavenBuilds", Branch: "main"},
			{Owner: "FN-FAL113", Name: "RelicsOfCthonia", Branch: "dev", When: "branch == 'dev'"},
		}
		if diff := cmp.Diff(expected, repositories); diff != "" {
			t.Errorf("ParseRepositories() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("DefaultsEmptyBranchToMain", func(t *testing.T) {

		data := []byte(`[{"github_username": "owner", "repository": "builds"}]`)

		// act
		repositories, err := ParseRepositories(data)

		assert.Nil(t, err)
		assert.Equal(t, "main", repositories[0].Branch)
	})

	t.Run("ReturnsErrorIfListIsEmpty", func(t *testing.T) {

		// act
		_, err := ParseRepositories([]byte(`[]`))

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorIfRepositoryNameIsMissing", func(t *testing.T) {

		// act
		_, err := ParseRepositories([]byte(`[{"github_username": "owner", "branch": "main"}]`))

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorForMalformedJson", func(t *testing.T) {

		// act
		_, err := ParseRepositories([]byte(`[{"github_username": "owner",`))

		assert.NotNil(t, err)
	})
}

func TestRepository(t *testing.T) {

	t.Run("HTTPSURLHasNoCredentials", func(t *testing.T) {

		repository := Repository{Owner: "owner", Name: "repo", Branch: "main"}

		// act
		url := repository.HTTPSURL()

		assert.Equal(t, "https://github.com/owner/repo.git", url)
	})

	t.Run("LocalDirIsWorkDirOwnerName", func(t *testing.T) {

		repository := Repository{Owner: "owner", Name: "repo", Branch: "main"}

		// act
		dir := repository.LocalDir("/work")

		assert.Equal(t, filepath.Join("/work", "owner", "repo"), dir)
	})

	t.Run("SameAsIgnoresCase", func(t *testing.T) {

		a := Repository{Owner: "FN-FAL113", Name: "MavenBuilds"}
		b := Repository{Owner: "fn-fal113", Name: "mavenbuilds", Branch: "other"}

		assert.True(t, a.SameAs(b))
		assert.False(t, a.SameAs(Repository{Owner: "FN-FAL113", Name: "Pages"}))
	})
}
