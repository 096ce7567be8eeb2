package get_analytics_report

import (
	"context"
	"time"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// AppointmentRepository интерфейс загрузчика снапшотов записей
type AppointmentRepository interface {
	// ListByDateRange получает снапшоты записей за включительный диапазон дат
	// вместе с позициями услуг и товаров
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.AppointmentSnapshot, error)
}

// Metrics интерфейс для регистрации деградировавших секций отчета
type Metrics interface {
	IncSectionDegraded(section string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
