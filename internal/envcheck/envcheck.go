// Package envcheck verifies that the compiled client environment works
// against the services it points to: the API server and the Auth0 tenant.
package envcheck

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-resty/resty/v2"
	"github.com/rousage/coffeeshop/internal/auth"
	"github.com/rousage/coffeeshop/internal/environment"
	"github.com/rousage/coffeeshop/internal/generator"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
)

var tracer = otel.Tracer("github.com/rousage/coffeeshop/internal/envcheck")

// Tenant reads the Auth0 settings the front-end depends on.
type Tenant interface {
	ClientCallbacks(ctx context.Context, clientID string) ([]string, error)
	APIPermissions(ctx context.Context, audience string) ([]string, error)
}

type Result struct {
	Name    string `json:"name" yaml:"name"`
	OK      bool   `json:"ok" yaml:"ok"`
	Skipped bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Detail  string `json:"detail" yaml:"detail"`
}

type Report struct {
	Results      []Result `json:"results" yaml:"results"`
	AuthorizeURL string   `json:"authorizeUrl,omitempty" yaml:"authorizeUrl,omitempty"`
}

// OK reports whether every check that ran passed.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK && !res.Skipped {
			return false
		}
	}

	return true
}

type Option func(*Checker)

// WithIssuer replaces the issuer derived from the identity provider.
func WithIssuer(issuer string) Option {
	return func(c *Checker) {
		c.issuer = issuer
	}
}

// WithAPIServerURL replaces the API server URL of the environment.
func WithAPIServerURL(url string) Option {
	return func(c *Checker) {
		c.apiServerURL = url
	}
}

// WithTenant enables the checks against the Auth0 Management API.
func WithTenant(tenant Tenant) Option {
	return func(c *Checker) {
		c.tenant = tenant
	}
}

// WithRetries sets how often a failing health request is retried.
func WithRetries(count int) Option {
	return func(c *Checker) {
		c.http.SetRetryCount(count)
	}
}

type Checker struct {
	env          environment.Environment
	logger       zerolog.Logger
	issuer       string
	apiServerURL string
	tenant       Tenant
	http         *resty.Client
}

func New(env environment.Environment, logger zerolog.Logger, opts ...Option) *Checker {
	c := &Checker{
		env:          env,
		logger:       logger,
		issuer:       env.IdentityProvider().Issuer(),
		apiServerURL: env.APIServerURL(),
	}

	c.http = resty.New().
		SetTimeout(5*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(isRetryable).
		AddRetryHook(func(resp *resty.Response, err error) {
			if err != nil {
				c.logger.Warn().Err(err).Msg("request failed, retrying")
			} else if resp != nil {
				c.logger.Warn().Int("status", resp.StatusCode()).Msg("request failed, retrying")
			}
		})

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func isRetryable(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusGatewayTimeout:
		return true
	}

	return false
}

// Run executes every check. Checks after a failed one still run so the
// report lists all problems at once.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{}

	report.Results = append(report.Results, c.Validate(), c.Health(ctx))

	discovery, authorizeURL := c.Discovery(ctx)
	report.Results = append(report.Results, discovery)
	report.AuthorizeURL = authorizeURL

	report.Results = append(report.Results, c.Tenant(ctx)...)

	return report
}

func (c *Checker) Validate() Result {
	res := Result{Name: "record"}
	if err := c.env.Validate(); err != nil {
		res.Detail = err.Error()
		return res
	}

	res.OK = true
	res.Detail = "all fields present and well formed"

	return res
}

// Health calls GET /health on the API server.
func (c *Checker) Health(ctx context.Context) Result {
	ctx, span := tracer.Start(ctx, "envcheck.Health")
	defer span.End()

	res := Result{Name: "api"}
	target := strings.TrimSuffix(c.apiServerURL, "/") + "/health"

	var stats map[string]string
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get(target)
	if err != nil {
		span.SetStatus(codes.Error, "health request failed")
		span.RecordError(err)
		res.Detail = fmt.Sprintf("GET %s failed: %v", target, err)
		return res
	}
	if resp.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, "api unhealthy")
		res.Detail = fmt.Sprintf("GET %s returned %d: %s", target, resp.StatusCode(), resp.String())
		return res
	}

	res.OK = stats["status"] == "up"
	res.Detail = fmt.Sprintf("status %s", stats["status"])
	if cache, ok := stats["cache"]; ok {
		res.Detail += fmt.Sprintf(", cache %s", cache)
	}

	return res
}

// Discovery resolves the tenant's OpenID configuration and builds the
// authorize URL the front-end sends users to.
func (c *Checker) Discovery(ctx context.Context) (Result, string) {
	ctx, span := tracer.Start(ctx, "envcheck.Discovery")
	defer span.End()

	res := Result{Name: "issuer"}
	idp := c.env.IdentityProvider()

	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, c.http.GetClient()), c.issuer)
	if err != nil {
		span.SetStatus(codes.Error, "discovery failed")
		span.RecordError(err)
		res.Detail = fmt.Sprintf("failed to resolve %s: %v", c.issuer, err)
		return res, ""
	}

	state, err := generator.ID(ctx, 0)
	if err != nil {
		res.Detail = fmt.Sprintf("failed to generate state: %v", err)
		return res, ""
	}

	oauth2Config := oauth2.Config{
		ClientID:    idp.ClientID(),
		RedirectURL: idp.CallbackURL(),
		Endpoint:    provider.Endpoint(),
		Scopes:      []string{oidc.ScopeOpenID, "profile", "email"},
	}

	var claims struct {
		JWKSURI string `json:"jwks_uri"`
	}
	if err := provider.Claims(&claims); err != nil {
		c.logger.Debug().Err(err).Msg("failed to decode discovery claims")
	}

	res.OK = true
	res.Detail = fmt.Sprintf("issuer %s, jwks %s", c.issuer, claims.JWKSURI)

	return res, oauth2Config.AuthCodeURL(state, oauth2.SetAuthURLParam("audience", idp.Audience()))
}

// Tenant verifies the client's callback URLs and the API permissions.
// Skipped when no management credentials are configured.
func (c *Checker) Tenant(ctx context.Context) []Result {
	if c.tenant == nil {
		return []Result{{Name: "tenant", Skipped: true, Detail: "no management credentials configured"}}
	}

	ctx, span := tracer.Start(ctx, "envcheck.Tenant")
	defer span.End()

	idp := c.env.IdentityProvider()

	callbacks := Result{Name: "callback"}
	registered, err := c.tenant.ClientCallbacks(ctx, idp.ClientID())
	switch {
	case err != nil:
		callbacks.Detail = fmt.Sprintf("failed to read client %s: %v", idp.ClientID(), err)
	case !slices.Contains(registered, idp.CallbackURL()):
		callbacks.Detail = fmt.Sprintf("%s is not an allowed callback of client %s", idp.CallbackURL(), idp.ClientID())
	default:
		callbacks.OK = true
		callbacks.Detail = fmt.Sprintf("%s is allowed", idp.CallbackURL())
	}

	permissions := Result{Name: "audience"}
	defined, err := c.tenant.APIPermissions(ctx, idp.Audience())
	if err != nil {
		permissions.Detail = fmt.Sprintf("failed to read API %s: %v", idp.Audience(), err)
	} else {
		var missing []string
		for _, p := range auth.AllPermissions {
			if !slices.Contains(defined, string(p)) {
				missing = append(missing, string(p))
			}
		}

		if len(missing) > 0 {
			permissions.Detail = fmt.Sprintf("API %s lacks permissions %s", idp.Audience(), strings.Join(missing, ", "))
		} else {
			permissions.OK = true
			permissions.Detail = fmt.Sprintf("API %s defines all %d permissions", idp.Audience(), len(auth.AllPermissions))
		}
	}

	if !callbacks.OK || !permissions.OK {
		span.SetStatus(codes.Error, "tenant misconfigured")
	}

	return []Result{callbacks, permissions}
}
