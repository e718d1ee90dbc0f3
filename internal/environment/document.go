package environment

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
	"github.com/rousage/coffeeshop/internal/appvalidator"
)

// Document is the serialized form of an Environment, in the shape the
// front-end bootstrap reads.
type Document struct {
	Production   bool        `json:"production" yaml:"production"`
	APIServerURL string      `json:"apiServerUrl" yaml:"apiServerUrl" validate:"required,http_url"`
	Auth0        Auth0Params `json:"auth0" yaml:"auth0"`
}

type Auth0Params struct {
	URL         string `json:"url" yaml:"url" validate:"required,hostname_rfc1123"`
	Audience    string `json:"audience" yaml:"audience" validate:"required"`
	ClientID    string `json:"clientId" yaml:"clientId" validate:"required,alphanum"`
	CallbackURL string `json:"callbackURL" yaml:"callbackURL" validate:"required,http_url"`
}

func (e Environment) Document() Document {
	return Document{
		Production:   e.production,
		APIServerURL: e.apiServerURL,
		Auth0: Auth0Params{
			URL:         e.identityProvider.domainPrefix,
			Audience:    e.identityProvider.audience,
			ClientID:    e.identityProvider.clientID,
			CallbackURL: e.identityProvider.callbackURL,
		},
	}
}

func (e Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Document())
}

func (e Environment) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(e.Document())
}

// Validate reports whether the environment is usable by a client: every field
// is set and the URLs are absolute http(s) URLs.
func (e Environment) Validate() error {
	return appvalidator.New().Validate(e.Document())
}
