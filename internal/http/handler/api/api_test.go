package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	adapterGorm "github.com/bornholm/notes/internal/adapter/gorm"
	"github.com/bornholm/notes/internal/core/service"
	"github.com/bornholm/notes/internal/http/middleware/authn"
	"github.com/bornholm/notes/internal/http/middleware/authn/session"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(gormlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	store := adapterGorm.NewStore(db)

	sessionStore := sessions.NewCookieStore([]byte("itsaseekreet-itsaseekreet-secret"))

	authenticator := session.NewAuthenticator(sessionStore, store)

	handler := NewHandler(service.NewAccountManager(store), store, authenticator)

	server := httptest.NewServer(authn.Middleware(authenticator)(handler))

	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method string, url string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res.StatusCode, data
}

func signup(t *testing.T, client *http.Client, baseURL string, username string, password string) UserResponse {
	t.Helper()

	status, body := doJSON(t, client, http.MethodPost, baseURL+"/signup", map[string]string{
		"username": username,
		"password": password,
	})
	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("signup status: expected %d, got %d (%s)", e, g, body)
	}

	var user UserResponse
	if err := json.Unmarshal(body, &user); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return user
}

func TestAuthFlow(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	// Anonymous session check returns an empty object
	status, body := doJSON(t, client, http.MethodGet, server.URL+"/check_session", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("check_session status: expected %d, got %d", e, g)
	}

	var anonymous map[string]any
	if err := json.Unmarshal(body, &anonymous); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(anonymous); e != g {
		t.Errorf("anonymous check_session body: expected empty object, got %s", body)
	}

	user := signup(t, client, server.URL, "alice", "password123")

	if user.ID == "" {
		t.Error("expected signup response to contain an id")
	}

	if e, g := "alice", user.Username; e != g {
		t.Errorf("user.Username: expected '%s', got '%s'", e, g)
	}

	// Signup opens a session
	status, body = doJSON(t, client, http.MethodGet, server.URL+"/check_session", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("check_session status: expected %d, got %d", e, g)
	}

	var sessionUser UserResponse
	if err := json.Unmarshal(body, &sessionUser); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID, sessionUser.ID; e != g {
		t.Errorf("sessionUser.ID: expected '%s', got '%s'", e, g)
	}

	// Duplicate username
	status, body = doJSON(t, newTestClient(t), http.MethodPost, server.URL+"/signup", map[string]string{
		"username": "alice",
		"password": "other",
	})
	if e, g := http.StatusConflict, status; e != g {
		t.Fatalf("duplicate signup status: expected %d, got %d (%s)", e, g, body)
	}

	status, _ = doJSON(t, client, http.MethodDelete, server.URL+"/logout", nil)
	if e, g := http.StatusNoContent, status; e != g {
		t.Fatalf("logout status: expected %d, got %d", e, g)
	}

	status, body = doJSON(t, client, http.MethodGet, server.URL+"/check_session", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("check_session status: expected %d, got %d", e, g)
	}

	anonymous = nil
	if err := json.Unmarshal(body, &anonymous); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(anonymous); e != g {
		t.Errorf("check_session after logout: expected empty object, got %s", body)
	}

	status, _ = doJSON(t, client, http.MethodPost, server.URL+"/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	if e, g := http.StatusUnauthorized, status; e != g {
		t.Fatalf("login with bad password status: expected %d, got %d", e, g)
	}

	status, body = doJSON(t, client, http.MethodPost, server.URL+"/login", map[string]string{
		"username": "alice",
		"password": "password123",
	})
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("login status: expected %d, got %d (%s)", e, g, body)
	}
}

func TestSignupValidation(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	status, body := doJSON(t, client, http.MethodPost, server.URL+"/signup", map[string]string{
		"username": "   ",
		"password": "",
	})
	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("signup status: expected %d, got %d", e, g)
	}

	var res struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(res.Errors); e != g {
		t.Errorf("len(res.Errors): expected %d, got %d (%v)", e, g, res.Errors)
	}

	status, _ = doJSON(t, client, http.MethodPost, server.URL+"/signup", map[string]string{
		"username":              "bob",
		"password":              "password123",
		"password_confirmation": "something-else",
	})
	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("signup with mismatched confirmation status: expected %d, got %d", e, g)
	}
}

func TestNotesRequireAuthentication(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	status, body := doJSON(t, client, http.MethodGet, server.URL+"/notes", nil)
	if e, g := http.StatusUnauthorized, status; e != g {
		t.Fatalf("list notes status: expected %d, got %d (%s)", e, g, body)
	}

	status, _ = doJSON(t, client, http.MethodPost, server.URL+"/notes", map[string]string{
		"title":   "Nope",
		"content": "Should not pass",
	})
	if e, g := http.StatusUnauthorized, status; e != g {
		t.Fatalf("create note status: expected %d, got %d", e, g)
	}
}

func TestNotesCRUD(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	user := signup(t, client, server.URL, "alice", "password123")

	status, body := doJSON(t, client, http.MethodPost, server.URL+"/notes", map[string]string{
		"title":   "  Groceries  ",
		"content": "Eggs, milk.",
	})
	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("create note status: expected %d, got %d (%s)", e, g, body)
	}

	var note NoteResponse
	if err := json.Unmarshal(body, &note); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Groceries", note.Title; e != g {
		t.Errorf("note.Title: expected '%s', got '%s'", e, g)
	}

	if e, g := user.ID, note.UserID; e != g {
		t.Errorf("note.UserID: expected '%s', got '%s'", e, g)
	}

	// Missing fields are rejected with one message each
	status, _ = doJSON(t, client, http.MethodPost, server.URL+"/notes", map[string]string{
		"title":   "",
		"content": "",
	})
	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("create empty note status: expected %d, got %d", e, g)
	}

	status, body = doJSON(t, client, http.MethodGet, server.URL+"/notes", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("list notes status: expected %d, got %d", e, g)
	}

	var list ListNotesResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), list.Total; e != g {
		t.Errorf("list.Total: expected %d, got %d", e, g)
	}

	// Partial update keeps the untouched field
	status, body = doJSON(t, client, http.MethodPatch, server.URL+"/notes/"+note.ID, map[string]string{
		"title": "Shopping",
	})
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("update note status: expected %d, got %d (%s)", e, g, body)
	}

	var updated NoteResponse
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Shopping", updated.Title; e != g {
		t.Errorf("updated.Title: expected '%s', got '%s'", e, g)
	}

	if e, g := "Eggs, milk.", updated.Content; e != g {
		t.Errorf("updated.Content: expected '%s', got '%s'", e, g)
	}

	status, _ = doJSON(t, client, http.MethodDelete, server.URL+"/notes/"+note.ID, nil)
	if e, g := http.StatusNoContent, status; e != g {
		t.Fatalf("delete note status: expected %d, got %d", e, g)
	}

	status, _ = doJSON(t, client, http.MethodPatch, server.URL+"/notes/"+note.ID, map[string]string{
		"title": "Ghost",
	})
	if e, g := http.StatusNotFound, status; e != g {
		t.Fatalf("update deleted note status: expected %d, got %d", e, g)
	}
}

func TestNotesOwnership(t *testing.T) {
	server := newTestServer(t)

	alice := newTestClient(t)
	bob := newTestClient(t)

	signup(t, alice, server.URL, "alice", "password123")
	signup(t, bob, server.URL, "bob", "password123")

	status, body := doJSON(t, alice, http.MethodPost, server.URL+"/notes", map[string]string{
		"title":   "Private",
		"content": "Alice only.",
	})
	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("create note status: expected %d, got %d", e, g)
	}

	var note NoteResponse
	if err := json.Unmarshal(body, &note); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Another user's notes stay invisible
	status, body = doJSON(t, bob, http.MethodGet, server.URL+"/notes", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("list notes status: expected %d, got %d", e, g)
	}

	var list ListNotesResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), list.Total; e != g {
		t.Errorf("list.Total: expected %d, got %d", e, g)
	}

	status, _ = doJSON(t, bob, http.MethodPatch, server.URL+"/notes/"+note.ID, map[string]string{
		"title": "Hijacked",
	})
	if e, g := http.StatusNotFound, status; e != g {
		t.Fatalf("cross-user update status: expected %d, got %d", e, g)
	}

	status, _ = doJSON(t, bob, http.MethodDelete, server.URL+"/notes/"+note.ID, nil)
	if e, g := http.StatusNotFound, status; e != g {
		t.Fatalf("cross-user delete status: expected %d, got %d", e, g)
	}
}

func TestNotesPagination(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	signup(t, client, server.URL, "alice", "password123")

	total := 25
	for i := 0; i < total; i++ {
		status, body := doJSON(t, client, http.MethodPost, server.URL+"/notes", map[string]string{
			"title":   fmt.Sprintf("Note %d", i),
			"content": fmt.Sprintf("Content %d", i),
		})
		if e, g := http.StatusCreated, status; e != g {
			t.Fatalf("create note status: expected %d, got %d (%s)", e, g, body)
		}
	}

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		status, body := doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/notes?page=%d&per_page=10", server.URL, page), nil)
		if e, g := http.StatusOK, status; e != g {
			t.Fatalf("list notes status: expected %d, got %d", e, g)
		}

		var list ListNotesResponse
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := int64(total), list.Total; e != g {
			t.Errorf("page %d: list.Total: expected %d, got %d", page, e, g)
		}

		if e, g := 3, list.Pages; e != g {
			t.Errorf("page %d: list.Pages: expected %d, got %d", page, e, g)
		}

		expectedItems := 10
		if page == 3 {
			expectedItems = 5
		}

		if e, g := expectedItems, len(list.Items); e != g {
			t.Errorf("page %d: len(list.Items): expected %d, got %d", page, e, g)
		}

		for _, item := range list.Items {
			if seen[item.ID] {
				t.Errorf("page %d: note '%s' already seen on a previous page", page, item.ID)
			}

			seen[item.ID] = true
		}
	}

	if e, g := total, len(seen); e != g {
		t.Errorf("total distinct notes across pages: expected %d, got %d", e, g)
	}

	// Oversized page sizes are clamped
	status, body := doJSON(t, client, http.MethodGet, server.URL+"/notes?per_page=500", nil)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("list notes status: expected %d, got %d", e, g)
	}

	var list ListNotesResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := maxPerPage, list.PerPage; e != g {
		t.Errorf("list.PerPage: expected %d, got %d", e, g)
	}

	if e, g := total, len(list.Items); e != g {
		t.Errorf("len(list.Items): expected %d, got %d", e, g)
	}
}

func TestInvalidJSONPayload(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/signup", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusBadRequest, res.StatusCode; e != g {
		t.Fatalf("signup status: expected %d, got %d", e, g)
	}
}
