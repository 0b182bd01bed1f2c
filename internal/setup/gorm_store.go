package setup

import (
	"context"

	"github.com/bornholm/notes/internal/adapter/gorm"
	"github.com/bornholm/notes/internal/config"
	"github.com/pkg/errors"
)

var getGormStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gorm.NewStore(db), nil
})
