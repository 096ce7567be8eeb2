package get_analytics_report

import (
	"context"

	uc "github.com/m04kA/Salon-AnalyticsService/internal/usecase/get_analytics_report"
)

type AnalyticsUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
