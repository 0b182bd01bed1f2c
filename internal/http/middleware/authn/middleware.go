package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"

	"github.com/bornholm/notes/internal/core/model"
	httpCtx "github.com/bornholm/notes/internal/http/context"
)

type Authenticator interface {
	// Authenticate identifies the user carried by the request, or returns
	// nil when the request is anonymous
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

// Middleware resolves the request identity through the given
// authenticators, in order. Anonymous requests go through untouched;
// rejecting them is left to the authorization layer.
func Middleware(authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(errors.WithStack(err)))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				if user == nil {
					continue
				}

				ctx := httpCtx.SetUser(r.Context(), user)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}
