package setup

import (
	"context"
	"sync"

	"github.com/bornholm/notes/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes a config-driven constructor so that the
// wired services share their dependencies.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})
		if err != nil {
			var zero T
			return zero, errors.WithStack(err)
		}

		return value, nil
	}
}
