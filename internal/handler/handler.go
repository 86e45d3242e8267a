package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/middleware"
	"github.com/Dan9191/expense-forecast/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
	now func() time.Time
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

// Health reports that the server is up
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WeeklyPrediction handles next-week spend prediction
func (h *Handler) WeeklyPrediction(w http.ResponseWriter, r *http.Request) {
	h.predict(w, r, forecast.Weekly)
}

// MonthlyPrediction handles next-month spend prediction
func (h *Handler) MonthlyPrediction(w http.ResponseWriter, r *http.Request) {
	h.predict(w, r, forecast.Monthly)
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request, period forecast.Period) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	result, err := h.svc.PredictNext(r.Context(), userID, period)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListPredictions handles listing of recorded predictions
func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorBody("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	logs, err := h.svc.ListPredictions(r.Context(), userID, r.URL.Query().Get("period"), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// PredictionAccuracy handles the accuracy summary of reconciled predictions
func (h *Handler) PredictionAccuracy(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	accuracy, err := h.svc.PredictionAccuracy(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accuracy)
}

// WeeklySpending handles per-day spending of the current week
func (h *Handler) WeeklySpending(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	days, err := h.svc.WeeklySpending(r.Context(), userID, h.now())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// TopExpenses handles the largest expenses of the current month
func (h *Handler) TopExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	top, err := h.svc.TopExpenses(r.Context(), userID, h.now())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// CategorySpending handles current month spending per category
func (h *Handler) CategorySpending(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	categories, err := h.svc.CategorySpending(r.Context(), userID, h.now())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody(err.Error()))
		return 0, false
	}
	return userID, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, forecast.ErrUnknownPeriod):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, forecast.ErrRecordPrediction):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("prediction could not be recorded, try again later"))
	default:
		h.log.Errorf("Request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
