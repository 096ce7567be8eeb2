package get_analytics_report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RenderCSV отдает отчет в виде текстового экспорта с размеченными секциями.
// Числа выводятся как есть, без символов валюты и округления.
func RenderCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	writeWeeklyTrendsBlock(w, report.Seasonal)
	writeCustomersBlock(w, report.Customers)
	writeOperationalBlock(w, report.Operational)
	writeForecastBlock(w, report.Forecasting)

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeWeeklyTrendsBlock(w *csv.Writer, seasonal SeasonalSection) {
	w.Write([]string{"section", "weekly_trends"})
	w.Write([]string{"week_start", "appointment_count", "revenue", "services"})
	for _, week := range seasonal.WeeklyTrends {
		w.Write([]string{
			week.WeekStart,
			strconv.Itoa(week.AppointmentCount),
			formatFloat(week.Revenue),
			formatCounts(week.Services),
		})
	}
}

func writeCustomersBlock(w *csv.Writer, customers CustomersSection) {
	w.Write([]string{"section", "customer_summary"})
	w.Write([]string{
		"total_customers", "high_value", "regular", "new_customers", "registered",
		"avg_lifetime_value", "avg_booking_gap_days",
	})
	w.Write([]string{
		strconv.Itoa(customers.TotalCustomers),
		strconv.Itoa(customers.Segments.HighValue),
		strconv.Itoa(customers.Segments.Regular),
		strconv.Itoa(customers.Segments.NewCustomers),
		strconv.Itoa(customers.Segments.Registered),
		formatFloat(customers.AvgLifetimeValue),
		formatFloat(customers.AvgBookingGapDays),
	})

	w.Write([]string{"section", "top_customers"})
	w.Write([]string{"customer", "bookings", "total_spent", "registered", "avg_spent_per_booking", "estimated_ltv"})
	for _, c := range customers.TopCustomers {
		w.Write([]string{
			c.Key,
			strconv.Itoa(c.BookingCount),
			formatFloat(c.TotalSpent),
			strconv.FormatBool(c.IsRegistered),
			formatFloat(c.AvgSpentPerBooking),
			formatFloat(c.EstimatedLTV),
		})
	}
}

func writeOperationalBlock(w *csv.Writer, operational OperationalSection) {
	w.Write([]string{"section", "operational"})
	w.Write([]string{"avg_lead_time_days", "cancellation_rate"})
	w.Write([]string{
		formatFloat(operational.AvgLeadTimeDays),
		formatFloat(operational.CancellationRate),
	})

	w.Write([]string{"section", "cancellations_by_time"})
	w.Write([]string{"time", "count"})
	for _, key := range sortedKeys(operational.CancellationPatterns.ByTime) {
		w.Write([]string{key, strconv.Itoa(operational.CancellationPatterns.ByTime[key])})
	}

	w.Write([]string{"section", "cancellations_by_weekday"})
	w.Write([]string{"weekday", "count"})
	// Дни недели в календарном порядке, а не по алфавиту
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := day.String()
		if count, ok := operational.CancellationPatterns.ByWeekday[name]; ok {
			w.Write([]string{name, strconv.Itoa(count)})
		}
	}

	w.Write([]string{"section", "service_efficiency"})
	w.Write([]string{"service", "bookings", "revenue_per_hour", "popular_times"})
	names := make([]string, 0, len(operational.ServiceEfficiency))
	for name := range operational.ServiceEfficiency {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := operational.ServiceEfficiency[name]
		w.Write([]string{
			name,
			strconv.Itoa(entry.BookingsCount),
			formatFloat(entry.RevenuePerHour),
			formatCounts(entry.PopularTimes),
		})
	}
}

func writeForecastBlock(w *csv.Writer, forecast ForecastSection) {
	w.Write([]string{"section", "forecast"})
	w.Write([]string{"method", "monthly_growth_rate", "predicted_revenue", "avg_weekly_revenue"})
	w.Write([]string{
		forecast.Method,
		formatFloat(forecast.MonthlyGrowthRate),
		formatFloat(forecast.PredictedRevenue),
		formatFloat(forecast.AvgWeeklyRevenue),
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCounts сводит гистограмму в одну ячейку вида "a:1; b:2"
// с детерминированным порядком ключей
func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s:%d", key, counts[key]))
	}
	return strings.Join(parts, "; ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
