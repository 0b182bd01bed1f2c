package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/port"
	"github.com/bornholm/notes/internal/http/middleware/authn"
)

const keyUserID = "user_id"

// Authenticator resolves the session cookie to a stored user. It is also
// the write side of the session: login and signup handlers use it to bind
// or clear the cookie.
type Authenticator struct {
	sessionStore sessions.Store
	sessionName  string
	userStore    port.UserStore
}

// Authenticate implements [authn.Authenticator].
func (a *Authenticator) Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error) {
	session, err := a.sessionStore.Get(r, a.sessionName)
	if err != nil {
		// A cookie signed with a stale key is an anonymous request, not
		// a server error
		return nil, nil
	}

	rawUserID, ok := session.Values[keyUserID].(string)
	if !ok || rawUserID == "" {
		return nil, nil
	}

	user, err := a.userStore.GetUserByID(r.Context(), model.UserID(rawUserID))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

// StoreUserID binds the session cookie to the given user.
func (a *Authenticator) StoreUserID(w http.ResponseWriter, r *http.Request, userID model.UserID) error {
	session, _ := a.sessionStore.Get(r, a.sessionName)

	session.Values[keyUserID] = string(userID)

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Clear invalidates the session cookie.
func (a *Authenticator) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := a.sessionStore.Get(r, a.sessionName)

	delete(session.Values, keyUserID)
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewAuthenticator(sessionStore sessions.Store, userStore port.UserStore, funcs ...OptionFunc) *Authenticator {
	opts := NewOptions(funcs...)
	return &Authenticator{
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		userStore:    userStore,
	}
}

var _ authn.Authenticator = &Authenticator{}
