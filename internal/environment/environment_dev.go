//go:build !prod

package environment

// BuildMode identifies the compiled environment.
const BuildMode = "development"

// Placeholder values for local development. Replace them with the settings
// of your own Auth0 tenant and application.
var current = Environment{
	production:   false,
	apiServerURL: "http://127.0.0.1:5000",
	identityProvider: IdentityProvider{
		domainPrefix: "dev-tv8ilm54.us",
		audience:     "cafee",
		clientID:     "c7JLjTI1xwXnM2dR1Lu2tTjlN8C9RPbe",
		callbackURL:  "http://localhost:8100",
	},
}
