package main

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/estafette/estafette-maven-builder/clients/envvar"
	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/stretchr/testify/assert"
)

const testDecryptionKey = "SazbwMf3NZxVVbBqQHebPcXCqrVn3DDp"

func TestReadRepositories(t *testing.T) {

	t.Run("ReadsRepositoriesFromFile", func(t *testing.T) {

		obfuscationClient, _ := getClients()
		path := filepath.Join(t.TempDir(), "repos.json")
		err := ioutil.WriteFile(path, []byte(`[{"github_username": "owner", "repository": "builds", "branch": "main"}]`), 0644)
		assert.Nil(t, err)

		// act
		repositories, err := readRepositories(path, obfuscationClient, app)

		assert.Nil(t, err)
		assert.Equal(t, "owner/builds", repositories[0].FullName())
	})

	t.Run("ReturnsErrorIfFileDoesNotExist", func(t *testing.T) {

		obfuscationClient, _ := getClients()

		// act
		_, err := readRepositories(filepath.Join(t.TempDir(), "missing.json"), obfuscationClient, app)

		assert.NotNil(t, err)
	})

	t.Run("ObfuscatesSecretsInWhenClauses", func(t *testing.T) {

		obfuscationClient, _ := getClients()
		envelope, err := crypt.NewSecretHelper(testDecryptionKey, false).EncryptEnvelope("release-token", crypt.DefaultPipelineAllowList)
		assert.Nil(t, err)
		path := filepath.Join(t.TempDir(), "repos.json")
		err = ioutil.WriteFile(path, []byte(`[{"github_username": "owner", "repository": "builds", "when": "message != '`+envelope+`'"}]`), 0644)
		assert.Nil(t, err)

		// act
		_, err = readRepositories(path, obfuscationClient, app)

		assert.Nil(t, err)
		assert.Equal(t, "message != '***'", obfuscationClient.Obfuscate("message != 'release-token'"))
	})
}

func TestGetMavenArgs(t *testing.T) {

	t.Run("SplitsPlainArguments", func(t *testing.T) {

		obfuscationClient, envvarClient := getClients()

		// act
		args, err := getMavenArgs(`-B -Drevision="1.2 beta"`, envvarClient, obfuscationClient, app)

		assert.Nil(t, err)
		assert.Equal(t, []string{"-B", "-Drevision=1.2 beta"}, args)
	})

	t.Run("DecryptsAndObfuscatesSecretArguments", func(t *testing.T) {

		obfuscationClient, envvarClient := getClients()
		envelope, err := crypt.NewSecretHelper(testDecryptionKey, false).EncryptEnvelope("s3cr3t-password", crypt.DefaultPipelineAllowList)
		assert.Nil(t, err)

		// act
		args, err := getMavenArgs("-B -Drepo.password="+envelope, envvarClient, obfuscationClient, app)

		assert.Nil(t, err)
		assert.Equal(t, []string{"-B", "-Drepo.password=s3cr3t-password"}, args)
		assert.Equal(t, "-Drepo.password=***", obfuscationClient.Obfuscate("-Drepo.password=s3cr3t-password"))
	})
}

func getClients() (obfuscation.Client, envvar.Client) {
	ctx := context.Background()
	secretHelper := crypt.NewSecretHelper(testDecryptionKey, false)
	obfuscationClient, _ := obfuscation.NewClient(ctx, secretHelper)
	envvarClient, _ := envvar.NewClient(ctx, "TESTPREFIX_", app, secretHelper, obfuscationClient)
	return obfuscationClient, envvarClient
}
