package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rousage/coffeeshop/internal/auth"
	"github.com/rousage/coffeeshop/internal/config"
	"github.com/rousage/coffeeshop/internal/envcheck"
	"github.com/rousage/coffeeshop/internal/environment"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagCheckTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the client environment against the API server and the Auth0 tenant",
	Long: `Validates the compiled client environment, checks the API server's
health endpoint and resolves the tenant's OpenID configuration.

When AUTH0_CLIENT_ID and AUTH0_CLIENT_SECRET hold machine-to-machine
credentials, the callback URL and the API permissions are also verified
through the Auth0 Management API.`,
	RunE: runCheckCmd,
}

func init() {
	checkCmd.Flags().DurationVar(&flagCheckTimeout, "timeout", 30*time.Second, "Maximum time for all checks")
	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), flagCheckTimeout)
	defer cancel()

	env := environment.Current()
	log.Info().
		Str("build", environment.BuildMode).
		Str("api", env.APIServerURL()).
		Str("issuer", env.IdentityProvider().Issuer()).
		Msg("checking client environment")

	opts := []envcheck.Option{}

	authCfg, err := config.ParseAuth()
	if err != nil {
		return err
	}
	if authCfg.HasManagementCredentials() {
		// The management API lives on the tenant of the compiled environment
		authCfg.Auth0Domain = env.IdentityProvider().Domain()
		mgmt, err := auth.NewManagement(authCfg)
		if err != nil {
			return fmt.Errorf("failed to create management client: %w", err)
		}
		opts = append(opts, envcheck.WithTenant(mgmt))
	}

	report := envcheck.New(env, log.Logger, opts...).Run(ctx)
	for _, res := range report.Results {
		switch {
		case res.Skipped:
			log.Info().Str("check", res.Name).Msgf("skipped: %s", res.Detail)
		case res.OK:
			log.Info().Str("check", res.Name).Msgf("ok: %s", res.Detail)
		default:
			log.Error().Str("check", res.Name).Msgf("failed: %s", res.Detail)
		}
	}

	if report.AuthorizeURL != "" {
		fmt.Fprintln(cmd.OutOrStdout(), report.AuthorizeURL)
	}

	if !report.OK() {
		return errors.New("client environment check failed")
	}

	return nil
}
