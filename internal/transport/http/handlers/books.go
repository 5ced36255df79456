package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndraey/bookstore-api/internal/application/books"
	"github.com/ndraey/bookstore-api/internal/logger"
	"github.com/ndraey/bookstore-api/internal/transport/http/dto"
	"github.com/ndraey/bookstore-api/internal/transport/http/response"
)

type BookHandler struct {
	svc *books.Service
}

func NewBookHandler(svc *books.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewBookList(all))
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewBookData(b))
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), books.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		TotalPages:  req.TotalPages,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("book_id", b.ID).
		Str("title", b.Title).
		Msg("book_created")

	response.Created(w, dto.NewBookData(b))
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.BookRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Update(r.Context(), id, books.UpdateInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		TotalPages:  req.TotalPages,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewBookData(b))
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("book_id", id).
		Msg("book_deleted")

	response.NoContent(w)
}
