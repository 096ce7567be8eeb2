package domain

import "time"

// WeekBucket accumulates appointments of one Sunday-starting calendar week
type WeekBucket struct {
	WeekStart        string // ISO-дата воскресенья, начинающего неделю
	AppointmentCount int
	Revenue          float64
	Services         map[string]int // имя услуги -> количество бронирований
}

// NewWeekBucket создает пустой бакет недели
func NewWeekBucket(weekStart string) *WeekBucket {
	return &WeekBucket{
		WeekStart: weekStart,
		Services:  make(map[string]int),
	}
}

// CustomerProfile is a per-customer aggregate derived from snapshots.
// Profiles are built fresh per report and are never persisted.
type CustomerProfile struct {
	Key              string
	BookingCount     int
	TotalSpent       float64
	FirstBookingDate *time.Time
	LastBookingDate  *time.Time

	// Фиксируется при первом появлении ключа и дальше не меняется,
	// даже если последующие записи противоречат
	IsRegistered bool

	// Порядковый номер первого появления во входных данных,
	// используется для стабильного разрешения ничьих в топе клиентов
	FirstSeen int
}

// IsHighValue returns true for customers above the high-value spend threshold
func (p *CustomerProfile) IsHighValue() bool {
	return p.TotalSpent > HighValueSpendThreshold
}

// IsRegular returns true for repeat customers below the high-value threshold
func (p *CustomerProfile) IsRegular() bool {
	return p.BookingCount >= RegularMinBookings && p.TotalSpent <= HighValueSpendThreshold
}

// IsNewCustomer returns true for single-booking customers
func (p *CustomerProfile) IsNewCustomer() bool {
	return p.BookingCount == 1
}

// BookingGapDays возвращает средний интервал между бронированиями в днях.
// 0 для клиентов с одной бронью или без пары дат.
func (p *CustomerProfile) BookingGapDays() float64 {
	if p.BookingCount <= 1 || p.FirstBookingDate == nil || p.LastBookingDate == nil {
		return 0
	}
	days := p.LastBookingDate.Sub(*p.FirstBookingDate).Hours() / 24
	return days / float64(p.BookingCount-1)
}

// AvgSpentPerBooking возвращает среднюю выручку с одной брони клиента
func (p *CustomerProfile) AvgSpentPerBooking() float64 {
	if p.BookingCount == 0 {
		return 0
	}
	return p.TotalSpent / float64(p.BookingCount)
}

// EstimatedLTV экстраполирует годовую ценность клиента из среднего чека
// и частоты бронирований. Без положительного интервала между бронями
// экстраполировать нечего, возвращается фактически потраченное.
func (p *CustomerProfile) EstimatedLTV() float64 {
	gap := p.BookingGapDays()
	if gap > 0 {
		return p.AvgSpentPerBooking() * (DaysPerYear / gap)
	}
	return p.TotalSpent
}
