package stats

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sungheeyun-bit/tracker/internal/http/auth"
	"github.com/sungheeyun-bit/tracker/internal/stats"
)

type Handler struct {
	svc *stats.Service
}

func NewHandler(svc *stats.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats/balance", h.balance)
	r.Get("/stats/categories", h.categories)
	r.Get("/history", h.history)
	r.Get("/history/periods", h.periods)
}

// parseRange reads the from/to query params as calendar days. Both are
// required for range endpoints.
func parseRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid or missing from")
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid or missing to")
	}

	return from, to, nil
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := h.svc.Balance(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(balance); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	groups, err := h.svc.Categories(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	if groups == nil {
		groups = []stats.CategoryStat{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(groups); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tf := stats.Timeframe(r.URL.Query().Get("timeframe"))

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid or missing year", http.StatusBadRequest)
		return
	}

	period := stats.Period{Year: year}

	if tf == stats.TimeframeMonth {
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			http.Error(w, "invalid or missing month", http.StatusBadRequest)
			return
		}

		period.Month = time.Month(month)
	}

	points, err := h.svc.History(r.Context(), userID, tf, period)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(points); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) periods(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	years, err := h.svc.Periods(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(years); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stats.ErrInvalidRange),
		errors.Is(err, stats.ErrInvalidTimeframe):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
