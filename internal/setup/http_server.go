package setup

import (
	"context"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/http"
	"github.com/bornholm/notes/internal/http/handler/metrics"
	"github.com/bornholm/notes/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	sessionAuthenticator, err := getSessionAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session authenticator from config")
	}

	authnMiddleware := authn.Middleware(sessionAuthenticator)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/metrics", metrics.NewHandler()),
		http.WithMount("/", authnMiddleware(api)),
	}

	server := http.NewServer(options...)

	return server, nil
}
