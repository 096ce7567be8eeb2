package get_analytics_report

import "time"

// ForecastMethodLabel пометка для потребителей: прогноз наивный,
// это не статистическая модель временных рядов
const ForecastMethodLabel = "naive moving-average trend extrapolation, not a statistical forecast"

// Request запрос на построение аналитического отчета
// Диапазон дат включительный, startDate <= endDate
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Report полный отчет фиксированной формы.
// Каждая секция присутствует всегда: при ошибке вычисления или пустом входе
// секция равна своему нулевому дефолту, потребителям не нужны null-проверки.
type Report struct {
	Seasonal    SeasonalSection    `json:"seasonal"`
	Customers   CustomersSection   `json:"customers"`
	Operational OperationalSection `json:"operational"`
	Forecasting ForecastSection    `json:"forecasting"`
}

// SeasonalSection недельные тренды выручки
type SeasonalSection struct {
	WeeklyTrends []WeeklyTrend `json:"weeklyTrends"`
}

// WeeklyTrend агрегат одной календарной недели (неделя начинается с воскресенья)
type WeeklyTrend struct {
	WeekStart        string         `json:"weekStart"` // ISO-дата воскресенья
	AppointmentCount int            `json:"appointmentCount"`
	Revenue          float64        `json:"revenue"`
	Services         map[string]int `json:"services"`
}

// CustomersSection сегментация клиентов и оценки ценности
type CustomersSection struct {
	TotalCustomers    int           `json:"totalCustomers"`
	Segments          SegmentCounts `json:"segments"`
	AvgLifetimeValue  float64       `json:"avgLifetimeValue"`
	AvgBookingGapDays float64       `json:"avgBookingGapDays"`
	TopCustomers      []TopCustomer `json:"topCustomers"`
}

// SegmentCounts количества клиентов по сегментам.
// Сегменты не взаимоисключающие, сумма не обязана равняться totalCustomers.
type SegmentCounts struct {
	HighValue    int `json:"highValue"`
	Regular      int `json:"regular"`
	NewCustomers int `json:"newCustomers"`
	Registered   int `json:"registered"`
}

// TopCustomer клиент из топа по потраченной сумме
type TopCustomer struct {
	Key                string  `json:"key"`
	BookingCount       int     `json:"bookingCount"`
	TotalSpent         float64 `json:"totalSpent"`
	IsRegistered       bool    `json:"isRegistered"`
	AvgSpentPerBooking float64 `json:"avgSpentPerBooking"`
	EstimatedLTV       float64 `json:"estimatedLtv"`
}

// OperationalSection операционные метрики
type OperationalSection struct {
	AvgLeadTimeDays      float64                            `json:"avgLeadTimeDays"`
	CancellationRate     float64                            `json:"cancellationRate"` // проценты
	CancellationPatterns CancellationPatterns               `json:"cancellationPatterns"`
	ServiceEfficiency    map[string]ServiceEfficiencyEntry `json:"serviceEfficiency"`
}

// CancellationPatterns распределения отмен и no-show
type CancellationPatterns struct {
	ByTime       map[string]int `json:"byTime"`    // точная строка времени -> количество
	ByWeekday    map[string]int `json:"byWeekday"` // имя дня недели -> количество
	LeadTimeDays []int          `json:"leadTimeDays"`
}

// ServiceEfficiencyEntry операционный агрегат одной услуги
type ServiceEfficiencyEntry struct {
	BookingsCount  int            `json:"bookingsCount"`
	PopularTimes   map[string]int `json:"popularTimes"`
	RevenuePerHour float64        `json:"revenuePerHour"`
}

// ForecastSection наивный прогноз выручки на следующий период
type ForecastSection struct {
	Method              string             `json:"method"`
	MonthlyGrowthRate   float64            `json:"monthlyGrowthRate"` // проценты
	PredictedRevenue    float64            `json:"predictedRevenue"`
	AvgWeeklyRevenue    float64            `json:"avgWeeklyRevenue"`
	SeasonalMultipliers map[string]float64 `json:"seasonalMultipliers"`
}

// Нулевые дефолты секций.
// Возвращаются при пустом входе и при деградации секции после ошибки.
// Карты и слайсы не nil, чтобы JSON отдавал {} и [] вместо null.

// DefaultSeasonalSection нулевой дефолт секции недельных трендов
func DefaultSeasonalSection() SeasonalSection {
	return SeasonalSection{WeeklyTrends: []WeeklyTrend{}}
}

// DefaultCustomersSection нулевой дефолт секции клиентов
func DefaultCustomersSection() CustomersSection {
	return CustomersSection{TopCustomers: []TopCustomer{}}
}

// DefaultOperationalSection нулевой дефолт операционной секции
func DefaultOperationalSection() OperationalSection {
	return OperationalSection{
		CancellationPatterns: CancellationPatterns{
			ByTime:       map[string]int{},
			ByWeekday:    map[string]int{},
			LeadTimeDays: []int{},
		},
		ServiceEfficiency: map[string]ServiceEfficiencyEntry{},
	}
}

// DefaultForecastSection нулевой дефолт секции прогноза
func DefaultForecastSection() ForecastSection {
	return ForecastSection{
		Method:              ForecastMethodLabel,
		SeasonalMultipliers: map[string]float64{},
	}
}
