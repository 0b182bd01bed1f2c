package setup

import (
	"context"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/http/handler/api"
	"github.com/pkg/errors"
)

var getAPIHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	accountManager, err := getAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	noteStore, err := getNoteStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionAuthenticator, err := getSessionAuthenticatorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(accountManager, noteStore, sessionAuthenticator), nil
})
