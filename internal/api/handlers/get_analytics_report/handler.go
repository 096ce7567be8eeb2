package get_analytics_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Salon-AnalyticsService/internal/api/handlers"
	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
	uc "github.com/m04kA/Salon-AnalyticsService/internal/usecase/get_analytics_report"
)

const (
	msgInvalidStartDate = "некорректный параметр startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный параметр endDate, ожидается YYYY-MM-DD"
	msgInvalidRange     = "некорректный диапазон дат"
	msgInvalidFormat    = "некорректный параметр format, допустимы json и csv"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	usecase      AnalyticsUseCase
	lookbackDays int
	logger       Logger
}

func NewHandler(usecase AnalyticsUseCase, lookbackDays int, logger Logger) *Handler {
	return &Handler{
		usecase:      usecase,
		lookbackDays: lookbackDays,
		logger:       logger,
	}
}

// Handle GET /api/v1/analytics/report?startDate=&endDate=&format=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Дефолтное окно: endDate = сегодня, startDate = endDate - lookback
	endDate := truncateToDay(time.Now())
	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /analytics/report - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		endDate = parsed
	}

	startDate := endDate.AddDate(0, 0, -h.lookbackDays)
	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /analytics/report - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		startDate = parsed
	}

	format := formatJSON
	if raw := query.Get("format"); raw != "" {
		if raw != formatJSON && raw != formatCSV {
			h.logger.Warn("GET /analytics/report - Invalid format: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFormat)
			return
		}
		format = raw
	}

	report, err := h.usecase.Execute(r.Context(), &uc.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("GET /analytics/report - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /analytics/report - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/report - Report built: period=%s..%s, format=%s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), format)

	if format == formatCSV {
		body, err := uc.RenderCSV(report)
		if err != nil {
			h.logger.Error("GET /analytics/report - Failed to render csv: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondCSV(w, "analytics-report.csv", body)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
