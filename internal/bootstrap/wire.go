package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/ndraey/bookstore-api/internal/application/auth"
	"github.com/ndraey/bookstore-api/internal/application/books"
	"github.com/ndraey/bookstore-api/internal/config"
	"github.com/ndraey/bookstore-api/internal/domain"
	"github.com/ndraey/bookstore-api/internal/infrastructure/db/postgres"
	"github.com/ndraey/bookstore-api/internal/infrastructure/memory"
	"github.com/ndraey/bookstore-api/internal/infrastructure/security"
	"github.com/ndraey/bookstore-api/internal/logger"
	http_handlers "github.com/ndraey/bookstore-api/internal/transport/http/handlers"
	"github.com/ndraey/bookstore-api/internal/transport/http/middleware"
	"github.com/ndraey/bookstore-api/internal/transport/http/response"
	"github.com/ndraey/bookstore-api/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string) (DBCloser, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) hasher, selected by config
	var hasher auth.PasswordHasher
	switch cfg.PasswordScheme {
	case config.SchemeBcrypt:
		hasher = security.NewBcryptHasher(0)
	default:
		hasher = security.NewSHA256Hasher()
	}

	// 2) token service
	tokens, err := security.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenExpiry)
	if err != nil {
		return nil, nil, err
	}

	// 3) storage: postgres, with an in-memory fallback in dev only
	var (
		userRepo auth.UserRepo
		bookRepo books.BookRepo
		sqlDB    *sql.DB
	)

	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		if cfg.Env != "dev" {
			return nil, nil, err
		}

		logger.Logger.Warn().Err(err).Msg("database unavailable; using in-memory storage")
		memUsers := memory.NewUserRepo()
		memBooks := memory.NewBookRepo()
		memory.SeedUsers(context.Background(), memUsers, hasher)
		memory.SeedBooks(context.Background(), memBooks)
		userRepo = memUsers
		bookRepo = memBooks
	} else {
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		var ok bool
		sqlDB, ok = db.(*sql.DB)
		if !ok {
			runCleanup(cleanupFns)
			return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, sqlDB); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}

		pgUsers := postgres.NewUserRepo(sqlDB)
		userRepo = pgUsers
		bookRepo = postgres.NewBookRepo(sqlDB)

		// seed (dev only)
		if cfg.Env == "dev" {
			postgres.SeedUsers(context.Background(), pgUsers, hasher)
		}
	}

	// 4) services
	authSvc := auth.NewService(userRepo, hasher, tokens, auth.Config{
		TokenExpiry: cfg.TokenExpiry,
	})
	bookSvc := books.NewService(bookRepo)

	// 5) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	bookH := http_handlers.NewBookHandler(bookSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(tokens, response.WriteError)
	userOrAdminMW := middleware.RequirePolicy(domain.PolicyUserOrAdmin, response.WriteError)
	adminOnlyMW := middleware.RequirePolicy(domain.PolicyAdminOnly, response.WriteError)

	// 6) router
	mux, err := deps.NewRouter(router.Deps{
		Health: healthH,
		Auth:   authH,
		Books:  bookH,

		RequestIDMW:   middleware.RequestID,
		AuthMW:        authMW,
		UserOrAdminMW: userOrAdminMW,
		AdminOnlyMW:   adminOnlyMW,

		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 7) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(dsn string) (DBCloser, error) {
			return config.NewDB(dsn)
		},
		NewRouter: router.New,
	}
}

func runCleanup(fns []func()) {
	// run in reverse registration order
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
