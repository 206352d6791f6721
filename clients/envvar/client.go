package envvar

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/estafette/estafette-maven-builder/api"
	"github.com/estafette/estafette-maven-builder/clients/obfuscation"
	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/rs/zerolog/log"
)

const (
	defaultActionName = "maven-builds"
	defaultRunID      = "local"
)

// Client is the interface for retrieving the api key, committer and ci metadata from environment variables
//go:generate mockgen -package=envvar -destination ./mock.go -source=client.go
type Client interface {
	GetEnv(key string) string
	GetAPIKey() string
	GetEmail() string
	GetUserName(fallback string) string
	GetActionName() string
	GetRunID() string
	GetCommitMessage() string
	GetSignature(fallbackName string) api.Signature
	DecryptSecret(value, pipeline string) string
}

// NewClient returns a new envvar.Client; prefix is prepended to every environment variable name
func NewClient(ctx context.Context, prefix string, pipeline string, secretHelper crypt.SecretHelper, obfuscationClient obfuscation.Client) (Client, error) {
	return &client{
		prefix:            prefix,
		pipeline:          pipeline,
		secretHelper:      secretHelper,
		obfuscationClient: obfuscationClient,
	}, nil
}

type client struct {
	prefix            string
	pipeline          string
	secretHelper      crypt.SecretHelper
	obfuscationClient obfuscation.Client
}

func (c *client) GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

func (c *client) GetAPIKey() string {

	apiKey := c.DecryptSecret(c.GetEnv("API_KEY"), c.pipeline)

	// never let the token show up in any log line
	c.obfuscationClient.AddSecrets(apiKey)

	return apiKey
}

func (c *client) GetEmail() string {
	return c.GetEnv("EMAIL")
}

func (c *client) GetUserName(fallback string) string {
	if userName := c.GetEnv("GIT_USER_NAME"); userName != "" {
		return userName
	}
	return fallback
}

func (c *client) GetActionName() string {
	if actionName := c.GetEnv("ACTION_NAME"); actionName != "" {
		return actionName
	}
	return defaultActionName
}

func (c *client) GetRunID() string {
	if runID := c.GetEnv("RUN_ID"); runID != "" {
		return runID
	}
	return defaultRunID
}

func (c *client) GetCommitMessage() string {
	return fmt.Sprintf("%v #%v", c.GetActionName(), c.GetRunID())
}

func (c *client) GetSignature(fallbackName string) api.Signature {
	return api.Signature{
		Name:  c.GetUserName(fallbackName),
		Email: c.GetEmail(),
	}
}

func (c *client) DecryptSecret(value, pipeline string) string {

	if !strings.Contains(value, "estafette.secret(") {
		return value
	}

	decryptedValue, err := c.secretHelper.DecryptAllEnvelopes(value, pipeline)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed decrypting secret %v", c.obfuscationClient.ObfuscateSecrets(value))
		return value
	}

	c.obfuscationClient.AddSecrets(decryptedValue)

	return decryptedValue
}
