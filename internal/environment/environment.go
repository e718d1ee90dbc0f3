// Package environment holds the deployment settings a client application is
// built against: where the API server lives and how to reach the Auth0 tenant
// that issues its tokens.
//
// Exactly one Environment is compiled into a binary. The default build carries
// the development values; building with the prod tag selects the production
// record, whose values are injected with -ldflags at link time.
package environment

import "fmt"

// IdentityProvider describes the Auth0 application the client logs in with.
type IdentityProvider struct {
	domainPrefix string
	audience     string
	clientID     string
	callbackURL  string
}

// DomainPrefix is the tenant part of the Auth0 domain, e.g. "dev-abc.us".
func (p IdentityProvider) DomainPrefix() string {
	return p.domainPrefix
}

// Audience is the identifier of the API the issued access tokens target.
func (p IdentityProvider) Audience() string {
	return p.audience
}

// ClientID is the public identifier of the registered client application.
func (p IdentityProvider) ClientID() string {
	return p.clientID
}

// CallbackURL is where Auth0 redirects back to after login.
func (p IdentityProvider) CallbackURL() string {
	return p.callbackURL
}

// Domain returns the full tenant domain.
func (p IdentityProvider) Domain() string {
	return fmt.Sprintf("%s.auth0.com", p.domainPrefix)
}

// Issuer returns the issuer URL tokens from the tenant are signed with.
func (p IdentityProvider) Issuer() string {
	return fmt.Sprintf("https://%s/", p.Domain())
}

// Environment is an immutable set of client deployment settings.
type Environment struct {
	production       bool
	apiServerURL     string
	identityProvider IdentityProvider
}

// Current returns the environment compiled into this binary.
// The returned value is a copy, changing it does not affect later calls.
func Current() Environment {
	return current
}

func (e Environment) ProductionMode() bool {
	return e.production
}

func (e Environment) APIServerURL() string {
	return e.apiServerURL
}

func (e Environment) IdentityProvider() IdentityProvider {
	return e.identityProvider
}
