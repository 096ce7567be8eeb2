package get_analytics_report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
	uc "github.com/m04kA/Salon-AnalyticsService/internal/usecase/get_analytics_report"
)

type fakeUseCase struct {
	report  *uc.Report
	err     error
	lastReq *uc.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *uc.Request) (*uc.Report, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func defaultReport() *uc.Report {
	return &uc.Report{
		Seasonal:    uc.DefaultSeasonalSection(),
		Customers:   uc.DefaultCustomersSection(),
		Operational: uc.DefaultOperationalSection(),
		Forecasting: uc.DefaultForecastSection(),
	}
}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OKJSON(t *testing.T) {
	fake := &fakeUseCase{report: defaultReport()}
	h := NewHandler(fake, 30, noopLogger{})

	rec := doRequest(h, "/api/v1/analytics/report?startDate=2024-01-01&endDate=2024-03-31")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, section := range []string{"seasonal", "customers", "operational", "forecasting"} {
		assert.Contains(t, body, section)
	}

	require.NotNil(t, fake.lastReq)
	assert.Equal(t, "2024-01-01", fake.lastReq.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2024-03-31", fake.lastReq.EndDate.Format(domain.DateFormat))
}

func TestHandle_DefaultWindow(t *testing.T) {
	fake := &fakeUseCase{report: defaultReport()}
	h := NewHandler(fake, 90, noopLogger{})

	rec := doRequest(h, "/api/v1/analytics/report")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.lastReq)

	// endDate = сегодня, startDate = endDate - lookback
	assert.Equal(t, 90*24*time.Hour, fake.lastReq.EndDate.Sub(fake.lastReq.StartDate))
	assert.Equal(t, time.Now().Format(domain.DateFormat), fake.lastReq.EndDate.Format(domain.DateFormat))
}

func TestHandle_BadDates(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "bad startDate", target: "/api/v1/analytics/report?startDate=01.02.2024"},
		{name: "bad endDate", target: "/api/v1/analytics/report?endDate=not-a-date"},
		{name: "bad format", target: "/api/v1/analytics/report?format=xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUseCase{report: defaultReport()}
			h := NewHandler(fake, 30, noopLogger{})

			rec := doRequest(h, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// До use case запрос не дошел
			assert.Nil(t, fake.lastReq)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
			assert.Contains(t, body, "timestamp")
		})
	}
}

func TestHandle_InvalidRange(t *testing.T) {
	fake := &fakeUseCase{err: uc.ErrInvalidInput}
	h := NewHandler(fake, 30, noopLogger{})

	rec := doRequest(h, "/api/v1/analytics/report?startDate=2024-03-31&endDate=2024-01-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RetrievalFailure(t *testing.T) {
	fake := &fakeUseCase{err: errors.New("db is down")}
	h := NewHandler(fake, 30, noopLogger{})

	rec := doRequest(h, "/api/v1/analytics/report")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestHandle_CSVFormat(t *testing.T) {
	fake := &fakeUseCase{report: defaultReport()}
	h := NewHandler(fake, 30, noopLogger{})

	rec := doRequest(h, "/api/v1/analytics/report?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "analytics-report.csv")
	assert.Contains(t, rec.Body.String(), "section,forecast")
}
