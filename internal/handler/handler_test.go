package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Dan9191/expense-forecast/internal/config"
	"github.com/Dan9191/expense-forecast/internal/forecast"
	"github.com/Dan9191/expense-forecast/internal/models"
	"github.com/Dan9191/expense-forecast/internal/repository"
	"github.com/Dan9191/expense-forecast/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "handler-test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret, CORSOrigins: []string{"http://localhost:3000"}}
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func newTestServer(t *testing.T, store repository.Store) (http.Handler, *Handler) {
	t.Helper()
	log := testLogger()
	h := NewHandler(service.NewService(store, log), log)
	h.now = func() time.Time { return time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC) }
	return NewRouter(h, testConfig()), h
}

func seededStore() *repository.MemoryStore {
	store := repository.NewMemoryStore()
	for _, e := range []struct {
		amount   string
		category string
		date     time.Time
	}{
		{"10", "Food", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"20", "Food", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"30", "Rent", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"6", "Fuel", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
	} {
		store.AddExpense(models.Expense{UserID: 1, Amount: decimal.RequireFromString(e.amount), Category: e.category, Date: e.date})
	}
	return store
}

func do(t *testing.T, srv http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, repository.NewMemoryStore())
	rec := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPredictionRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t, repository.NewMemoryStore())
	rec := do(t, srv, http.MethodGet, "/predictions/monthly", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMonthlyPredictionAndList(t *testing.T) {
	srv, _ := newTestServer(t, seededStore())

	rec := do(t, srv, http.MethodGet, "/predictions/monthly", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.ForecastResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Prediction)
	require.Len(t, result.History, 3)
	assert.Equal(t, "2024-03-01", result.History[2].Period)
	assert.True(t, decimal.NewFromInt(36).Equal(*result.History[2].Actual))
	assert.Nil(t, result.History[2].Predicted)
	assert.Equal(t, "2024-03-31", result.NextPeriod)

	rec = do(t, srv, http.MethodGet, "/predictions?period=monthly&limit=5", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []models.PredictionLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.True(t, result.Prediction.Equal(logs[0].PredictedAmount))
	assert.Nil(t, logs[0].ActualAmount)

	// other users see nothing
	rec = do(t, srv, http.MethodGet, "/predictions", bearer(t, 2))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWeeklyPredictionNotEnoughData(t *testing.T) {
	srv, _ := newTestServer(t, repository.NewMemoryStore())

	rec := do(t, srv, http.MethodGet, "/predictions/weekly", bearer(t, 5))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["prediction"])
	assert.Equal(t, []any{}, body["history"])
	assert.Contains(t, body["message"], "weekly")
	assert.NotContains(t, body, "next_period")
}

func TestListPredictionsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, repository.NewMemoryStore())

	rec := do(t, srv, http.MethodGet, "/predictions?period=yearly", bearer(t, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/predictions?limit=many", bearer(t, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/predictions/accuracy?period=daily", bearer(t, 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictionRecorderUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := repository.NewMockStore(ctrl)
	srv, _ := newTestServer(t, mockStore)

	mockStore.EXPECT().ListObservations(gomock.Any(), int64(1)).Return([]forecast.Observation{
		{Amount: decimal.NewFromInt(1), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(2), Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(3), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}, nil)
	mockStore.EXPECT().CreatePredictionLog(gomock.Any(), gomock.Any()).Return(errors.New("too many connections"))

	rec := do(t, srv, http.MethodGet, "/predictions/weekly", bearer(t, 1))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPredictionStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := repository.NewMockStore(ctrl)
	srv, _ := newTestServer(t, mockStore)

	mockStore.EXPECT().ListObservations(gomock.Any(), int64(1)).Return(nil, errors.New("no route to host"))

	rec := do(t, srv, http.MethodGet, "/predictions/monthly", bearer(t, 1))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestAnalyticsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, seededStore())

	rec := do(t, srv, http.MethodGet, "/analytics/weekly-spending", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	var days []models.DaySpending
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 7)
	assert.Equal(t, "2024-03-11", days[0].Date)
	assert.True(t, decimal.NewFromInt(6).Equal(days[1].Amount))

	rec = do(t, srv, http.MethodGet, "/analytics/top-expenses", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	var top []models.TopExpense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 2)
	assert.Equal(t, "Rent", top[0].Name)

	rec = do(t, srv, http.MethodGet, "/analytics/category-spending", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []models.CategorySpending
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Rent", categories[0].Category)
	assert.True(t, decimal.RequireFromString("83.33").Equal(categories[0].Percentage))
}

func TestPredictionAccuracyEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, seededStore())

	rec := do(t, srv, http.MethodGet, "/predictions/accuracy?period=monthly", bearer(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	var accuracy models.PredictionAccuracy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accuracy))
	assert.Equal(t, "monthly", accuracy.PeriodType)
	assert.Zero(t, accuracy.Reconciled)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, repository.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/predictions/weekly", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
