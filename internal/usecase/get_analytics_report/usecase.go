package get_analytics_report

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// Имена секций для логов и метрик деградации
const (
	sectionSeasonal    = "seasonal"
	sectionCustomers   = "customers"
	sectionOperational = "operational"
	sectionForecasting = "forecasting"
)

// UseCase use case построения аналитического отчета за период
type UseCase struct {
	appointmentRepo AppointmentRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute строит полный отчет за запрошенный период.
//
// Двухуровневая политика ошибок:
//   - ошибка загрузки снапшотов фатальна, запрос завершается ошибкой;
//   - ошибка внутри любой производной секции гасится локально,
//     секция заменяется своим нулевым дефолтом, отчет отдается дальше.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Report, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAnalyticsReport: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAnalyticsReport: period=%s..%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 2. Загружаем снапшоты - единственная фатальная точка пайплайна
	snapshots, err := uc.appointmentRepo.ListByDateRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetAnalyticsReport: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	uc.logger.Info("GetAnalyticsReport: loaded %d snapshots", len(snapshots))

	// 3. Три независимые свёртки читают один и тот же неизменяемый слайс,
	// поэтому выполняются параллельно и без блокировок
	report := &Report{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		report.Seasonal = uc.seasonalSection(snapshots)
	}()
	go func() {
		defer wg.Done()
		report.Customers = uc.customersSection(snapshots)
	}()
	go func() {
		defer wg.Done()
		report.Operational = uc.operationalSection(snapshots)
	}()

	wg.Wait()

	// 4. Прогноз зависит от недельной серии и считается после join.
	// Деградировавшая seasonal-секция дает пустую серию и нулевой прогноз.
	report.Forecasting = uc.forecastSection(report.Seasonal.WeeklyTrends)

	uc.logger.Info("GetAnalyticsReport: report ready, weeks=%d, customers=%d",
		len(report.Seasonal.WeeklyTrends), report.Customers.TotalCustomers)

	return report, nil
}

// Секционные обёртки: паника внутри свёртки гасится локально,
// секция заменяется нулевым дефолтом, деградация попадает в лог и метрики.

func (uc *UseCase) seasonalSection(snapshots []*domain.AppointmentSnapshot) (section SeasonalSection) {
	defer uc.recoverSection(sectionSeasonal, func() {
		section = DefaultSeasonalSection()
	})
	return buildSeasonalSection(snapshots)
}

func (uc *UseCase) customersSection(snapshots []*domain.AppointmentSnapshot) (section CustomersSection) {
	defer uc.recoverSection(sectionCustomers, func() {
		section = DefaultCustomersSection()
	})
	return buildCustomersSection(snapshots)
}

func (uc *UseCase) operationalSection(snapshots []*domain.AppointmentSnapshot) (section OperationalSection) {
	defer uc.recoverSection(sectionOperational, func() {
		section = DefaultOperationalSection()
	})
	return buildOperationalSection(snapshots)
}

func (uc *UseCase) forecastSection(weekly []WeeklyTrend) (section ForecastSection) {
	defer uc.recoverSection(sectionForecasting, func() {
		section = DefaultForecastSection()
	})
	return buildForecastSection(weekly)
}

// recoverSection возвращает deferred-функцию деградации секции
func (uc *UseCase) recoverSection(name string, applyDefault func()) {
	if r := recover(); r != nil {
		uc.logger.Warn("GetAnalyticsReport: section %s failed, using zero default: %v", name, r)
		if uc.metrics != nil {
			uc.metrics.IncSectionDegraded(name)
		}
		applyDefault()
	}
}
