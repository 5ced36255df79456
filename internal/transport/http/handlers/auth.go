package http_handlers

import (
	"net/http"

	"github.com/ndraey/bookstore-api/internal/application/auth"
	"github.com/ndraey/bookstore-api/internal/domain"
	"github.com/ndraey/bookstore-api/internal/logger"
	"github.com/ndraey/bookstore-api/internal/transport/http/dto"
	"github.com/ndraey/bookstore-api/internal/transport/http/middleware"
	"github.com/ndraey/bookstore-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("email", res.Email).
		Str("role", res.Role).
		Msg("user_registered")

	response.CreatedWithMessage(w, dto.NewAuthData(res), "Registration successful")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		// The payload shape is the client's fault, but the outcome must stay
		// indistinguishable from a failed credential check.
		response.WriteError(w, r, domain.ErrInvalidCredentials())
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("email", res.Email).
		Msg("user_logged_in")

	response.OKWithMessage(w, dto.NewAuthData(res), "Login successful")
}

// Profile projects the validated claim set back to the caller.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid(nil))
		return
	}

	response.OK(w, dto.NewProfileData(claims))
}
