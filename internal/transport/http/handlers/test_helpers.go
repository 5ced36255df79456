package http_handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ndraey/bookstore-api/internal/application/auth"
	"github.com/ndraey/bookstore-api/internal/application/books"
	"github.com/ndraey/bookstore-api/internal/domain"
	"github.com/ndraey/bookstore-api/internal/infrastructure/memory"
	"github.com/ndraey/bookstore-api/internal/infrastructure/security"
	"github.com/ndraey/bookstore-api/internal/transport/http/middleware"
	"github.com/ndraey/bookstore-api/internal/transport/http/response"
)

// testEnv wires real services over in-memory stores behind a real router,
// so handler tests cover the whole request path short of the database.
type testEnv struct {
	router *chi.Mux
	users  *memory.UserRepo
	books  *memory.BookRepo
	tokens *security.JWTService
	auth   *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	bookRepo := memory.NewBookRepo()
	hasher := security.NewSHA256Hasher()

	tokens, err := security.NewJWTService("test-secret", "bookstore-test", "bookstore-clients", time.Hour)
	require.NoError(t, err)

	authSvc := auth.NewService(users, hasher, tokens, auth.Config{TokenExpiry: time.Hour})
	bookSvc := books.NewService(bookRepo)

	authH := NewAuthHandler(authSvc)
	bookH := NewBookHandler(bookSvc)
	healthH := NewHealthHandler(nil)

	authMW := middleware.Auth(tokens, response.WriteError)
	userOrAdmin := middleware.RequirePolicy(domain.PolicyUserOrAdmin, response.WriteError)
	adminOnly := middleware.RequirePolicy(domain.PolicyAdminOnly, response.WriteError)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Get("/healthz", healthH.Healthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.With(authMW).Get("/auth/profile", authH.Profile)

		r.Get("/books", bookH.List)
		r.Get("/books/{id}", bookH.Get)
		r.With(authMW, userOrAdmin).Post("/books", bookH.Create)
		r.With(authMW, userOrAdmin).Put("/books/{id}", bookH.Update)
		r.With(authMW, adminOnly).Delete("/books/{id}", bookH.Delete)
	})

	return &testEnv{router: r, users: users, books: bookRepo, tokens: tokens, auth: authSvc}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(rr.Body.String()))
	require.NoError(t, dec.Decode(dst), "body: %s", rr.Body.String())
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Meta    map[string]string `json:"meta"`
	} `json:"error"`
}

// registerAndLogin creates a user via the API and returns its session token.
func (e *testEnv) registerAndLogin(t *testing.T, email, password, role string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":     email,
		"password":  password,
		"firstName": "Test",
		"lastName":  "User",
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "register: %s", rr.Body.String())

	rr = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code, "login: %s", rr.Body.String())

	var env envelope
	decodeBody(t, rr, &env)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}
