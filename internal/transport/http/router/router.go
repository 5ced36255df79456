package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type BookHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Books  BookHandler

	RequestIDMW   func(http.Handler) http.Handler
	AuthMW        func(http.Handler) http.Handler
	UserOrAdminMW func(http.Handler) http.Handler
	AdminOnlyMW   func(http.Handler) http.Handler

	CORSOrigins []string
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Books == nil {
		return nil, fmt.Errorf("nil Books handler")
	}
	if deps.RequestIDMW == nil {
		return nil, fmt.Errorf("nil RequestID middleware")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.UserOrAdminMW == nil {
		return nil, fmt.Errorf("nil UserOrAdmin middleware")
	}
	if deps.AdminOnlyMW == nil {
		return nil, fmt.Errorf("nil AdminOnly middleware")
	}

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(deps.RequestIDMW)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Auth ---
		r.Post("/auth/register", deps.Auth.Register)
		r.Post("/auth/login", deps.Auth.Login)
		r.With(deps.AuthMW).Get("/auth/profile", deps.Auth.Profile)

		// --- Books ---
		r.Get("/books", deps.Books.List)
		r.Get("/books/{id}", deps.Books.Get)
		r.With(deps.AuthMW, deps.UserOrAdminMW).Post("/books", deps.Books.Create)
		r.With(deps.AuthMW, deps.UserOrAdminMW).Put("/books/{id}", deps.Books.Update)
		r.With(deps.AuthMW, deps.AdminOnlyMW).Delete("/books/{id}", deps.Books.Delete)
	})

	return r, nil
}
