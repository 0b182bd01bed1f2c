package setup

import (
	"context"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/core/service"
	"github.com/pkg/errors"
)

var getAccountManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AccountManager, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewAccountManager(userStore), nil
})
