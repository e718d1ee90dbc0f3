//go:build prod

package environment

// BuildMode identifies the compiled environment.
const BuildMode = "production"

// Set at link time, e.g.
//
//	go build -tags prod -ldflags "-X github.com/rousage/coffeeshop/internal/environment.apiServerURL=https://api.example.com"
var (
	apiServerURL string
	domainPrefix string
	audience     string
	clientID     string
	callbackURL  string
)

var current = Environment{
	production:   true,
	apiServerURL: apiServerURL,
	identityProvider: IdentityProvider{
		domainPrefix: domainPrefix,
		audience:     audience,
		clientID:     clientID,
		callbackURL:  callbackURL,
	},
}
