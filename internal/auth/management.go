package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/auth0/go-auth0/management"
	"github.com/rousage/coffeeshop/internal/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNotFound = errors.New("not found in tenant")

// Management reads tenant settings through the Auth0 Management API.
type Management struct {
	mgmt *management.Management
}

func NewManagement(cfg config.Auth, opts ...management.Option) (*Management, error) {
	opts = append([]management.Option{
		management.WithClientCredentials(context.Background(), cfg.Auth0ClientID, cfg.Auth0ClientSecret),
	}, opts...)

	mgmt, err := management.New(cfg.Auth0Domain, opts...)
	if err != nil {
		return nil, err
	}

	return &Management{
		mgmt: mgmt,
	}, nil
}

// ClientCallbacks returns the allowed callback URLs of an application.
func (m *Management) ClientCallbacks(ctx context.Context, clientID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "auth.ClientCallbacks")
	defer span.End()

	span.SetAttributes(attribute.String("clientID", clientID))

	client, err := m.mgmt.Client.Read(ctx, clientID)
	if err != nil {
		span.SetStatus(codes.Error, "failed to read the client")
		span.RecordError(err)
		return nil, notFound(err)
	}
	if client.Callbacks == nil {
		return []string{}, nil
	}

	return *client.Callbacks, nil
}

// APIPermissions returns the permissions defined by the API with the given audience.
func (m *Management) APIPermissions(ctx context.Context, audience string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "auth.APIPermissions")
	defer span.End()

	span.SetAttributes(attribute.String("audience", audience))

	api, err := m.mgmt.ResourceServer.Read(ctx, audience)
	if err != nil {
		span.SetStatus(codes.Error, "failed to read the resource server")
		span.RecordError(err)
		return nil, notFound(err)
	}
	if api.Scopes == nil {
		return []string{}, nil
	}

	permissions := make([]string, 0, len(*api.Scopes))
	for _, scope := range *api.Scopes {
		permissions = append(permissions, scope.GetValue())
	}

	return permissions, nil
}

func notFound(err error) error {
	var mErr management.Error
	if errors.As(err, &mErr) && mErr.Status() == http.StatusNotFound {
		return errors.Join(ErrNotFound, err)
	}

	return err
}
