package setup

import (
	"context"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/http/middleware/authn/session"
	"github.com/pkg/errors"
)

var getSessionAuthenticatorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Authenticator, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authenticator := session.NewAuthenticator(
		sessionStore, userStore,
		session.WithSessionName(conf.HTTP.Session.Cookie.Name),
	)

	return authenticator, nil
})
