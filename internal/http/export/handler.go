package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sungheeyun-bit/tracker/internal/export"
	"github.com/sungheeyun-bit/tracker/internal/http/auth"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = &t
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = &t
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().UTC().Format("20060102")))

	if err := h.svc.Export(r.Context(), userID, filter, w); err != nil {
		// Headers are already out; the truncated body is the best signal left.
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
