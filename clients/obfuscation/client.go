package obfuscation

import (
	"context"
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
	"sync"

	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/rs/zerolog/log"
)

const maxLengthToSkipObfuscation = 3

var secretEnvelopeRegex = regexp.MustCompile(`estafette\.secret\(([a-zA-Z0-9.=_-]+)\)`)

// Client hides the api token and other sensitive values from the logs
//go:generate mockgen -package=obfuscation -destination ./mock.go -source=client.go
type Client interface {
	CollectSecrets(input string, pipeline string) (err error)
	AddSecrets(values ...string)
	Obfuscate(input string) string
	ObfuscateSecrets(input string) string
}

// NewClient returns a new obfuscation.Client
func NewClient(ctx context.Context, secretHelper crypt.SecretHelper) (Client, error) {
	return &client{
		secretHelper: secretHelper,
		replacer:     strings.NewReplacer(),
	}, nil
}

type client struct {
	secretHelper    crypt.SecretHelper
	replacerStrings []string
	replacer        *strings.Replacer
	mutex           sync.RWMutex
}

func (c *client) CollectSecrets(input string, pipeline string) (err error) {

	values, err := c.secretHelper.GetAllSecretValues(input, pipeline)
	if err != nil {
		return err
	}

	log.Debug().Msgf("Collected %v secrets for pipeline %v...", len(values), pipeline)

	c.AddSecrets(values...)

	return nil
}

func (c *client) AddSecrets(values ...string) {

	replacerStrings := c.getReplacerStrings(values)
	if len(replacerStrings) == 0 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.replacerStrings = append(c.replacerStrings, replacerStrings...)
	c.replacer = strings.NewReplacer(c.replacerStrings...)
}

func (c *client) getReplacerStrings(values []string) (replacerStrings []string) {

	replacerStrings = []string{}

	for _, v := range values {
		valueLines := strings.Split(v, "\n")
		for _, l := range valueLines {
			if len(l) > maxLengthToSkipObfuscation {
				// obfuscate plain secret value
				replacerStrings = append(replacerStrings, l, "***")

				// obfuscate secret value in base64 encoding
				replacerStrings = append(replacerStrings, base64.StdEncoding.EncodeToString([]byte(l)), "***")

				// tokens embedded in urls get escaped
				if escaped := url.QueryEscape(l); escaped != l {
					replacerStrings = append(replacerStrings, escaped, "***")
				}
			}
		}
	}

	return replacerStrings
}

func (c *client) Obfuscate(input string) string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.replacer.Replace(input)
}

func (c *client) ObfuscateSecrets(input string) string {
	return secretEnvelopeRegex.ReplaceAllString(input, "***")
}
