package domain

// Segmentation thresholds
const (
	HighValueSpendThreshold = 50000.0
	RegularMinBookings      = 3
)

// Report shape constants
const (
	TopCustomersLimit   = 10
	ForecastWindowWeeks = 8
	DaysPerYear         = 365.0
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// CancellationStatuses статусы, которые считаются отменой
// при расчете cancellation rate и паттернов отмен
var CancellationStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
