package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sungheeyun-bit/tracker/internal/category"
	"github.com/sungheeyun-bit/tracker/internal/http/auth"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{name}", h.delete)
}

type categoryResponse struct {
	Name      string           `json:"name"`
	Type      transaction.Type `json:"type"`
	Icon      string           `json:"icon"`
	CreatedAt time.Time        `json:"created_at"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		Name:      c.Name,
		Type:      c.Type,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
	}
}

type createCategoryRequest struct {
	Name string           `json:"name"`
	Type transaction.Type `json:"type"`
	Icon string           `json:"icon"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), userID, category.CreateParams{
		Name: req.Name,
		Type: req.Type,
		Icon: req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, category.ErrExists):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, transaction.ErrMissingCategory),
			errors.Is(err, transaction.ErrInvalidType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var typ *transaction.Type

	if s := r.URL.Query().Get("type"); s != "" {
		t := transaction.Type(s)
		if !t.Valid() {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}

		typ = &t
	}

	cats, err := h.svc.List(r.Context(), userID, typ)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	typ := transaction.Type(r.URL.Query().Get("type"))
	if !typ.Valid() {
		http.Error(w, "invalid type", http.StatusBadRequest)
		return
	}

	name := chi.URLParam(r, "name")

	if err := h.svc.Delete(r.Context(), userID, name, typ); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
