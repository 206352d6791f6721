package envvar

import (
	"context"
	"os"
	"testing"

	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {

	t.Run("ReadsPrefixedEnvvar", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()
		os.Setenv("TESTPREFIX_EMAIL", " builder@example.com ")
		defer os.Unsetenv("TESTPREFIX_EMAIL")

		// act
		email := envvarClient.GetEmail()

		assert.Equal(t, "builder@example.com", email)
	})
}

func TestGetCommitMessage(t *testing.T) {

	t.Run("ComposesActionNameAndRunID", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()
		os.Setenv("TESTPREFIX_ACTION_NAME", "Maven Builds")
		os.Setenv("TESTPREFIX_RUN_ID", "1234")
		defer os.Unsetenv("TESTPREFIX_ACTION_NAME")
		defer os.Unsetenv("TESTPREFIX_RUN_ID")

		// act
		message := envvarClient.GetCommitMessage()

		assert.Equal(t, "Maven Builds #1234", message)
	})

	t.Run("FallsBackToDefaultsWhenCiMetadataIsMissing", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()

		// act
		message := envvarClient.GetCommitMessage()

		assert.Equal(t, "maven-builds #local", message)
	})
}

func TestGetSignature(t *testing.T) {

	t.Run("UsesFallbackNameIfGitUserNameIsNotSet", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()
		os.Setenv("TESTPREFIX_EMAIL", "builder@example.com")
		defer os.Unsetenv("TESTPREFIX_EMAIL")

		// act
		signature := envvarClient.GetSignature("FN-FAL113")

		assert.Equal(t, "FN-FAL113", signature.Name)
		assert.Equal(t, "builder@example.com", signature.Email)
	})

	t.Run("UsesGitUserNameIfSet", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()
		os.Setenv("TESTPREFIX_GIT_USER_NAME", "builder-bot")
		defer os.Unsetenv("TESTPREFIX_GIT_USER_NAME")

		// act
		signature := envvarClient.GetSignature("FN-FAL113")

		assert.Equal(t, "builder-bot", signature.Name)
	})
}

func TestGetAPIKey(t *testing.T) {

	t.Run("RegistersApiKeyForObfuscation", func(t *testing.T) {

		envvarClient, obfuscationClient := getEnvvarClient()
		os.Setenv("TESTPREFIX_API_KEY", "ghp_supersecrettoken")
		defer os.Unsetenv("TESTPREFIX_API_KEY")

		// act
		apiKey := envvarClient.GetAPIKey()

		assert.Equal(t, "ghp_supersecrettoken", apiKey)
		assert.Equal(t, "token=***", obfuscationClient.Obfuscate("token=ghp_supersecrettoken"))
	})
}

func TestDecryptSecret(t *testing.T) {

	t.Run("ReturnsPlainValueUnchanged", func(t *testing.T) {

		envvarClient, _ := getEnvvarClient()

		// act
		value := envvarClient.DecryptSecret("plain-value", "github.com/owner/repo")

		assert.Equal(t, "plain-value", value)
	})
}

func getEnvvarClient() (Client, obfuscation.Client) {
	ctx := context.Background()
	secretHelper := crypt.NewSecretHelper("SazbwMf3NZxVVbBqQHebPcXCqrVn3DDp", false)
	obfuscationClient, _ := obfuscation.NewClient(ctx, secretHelper)
	envvarClient, _ := NewClient(ctx, "TESTPREFIX_", "github.com/owner/builds", secretHelper, obfuscationClient)

	return envvarClient, obfuscationClient
}
