package setup

import (
	"context"

	"github.com/bornholm/notes/internal/config"
	"github.com/bornholm/notes/internal/seed"
	"github.com/pkg/errors"
)

func NewSeederFromConfig(ctx context.Context, conf *config.Config) (*seed.Seeder, error) {
	accountManager, err := getAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	noteStore, err := getNoteStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return seed.NewSeeder(accountManager, userStore, noteStore), nil
}
