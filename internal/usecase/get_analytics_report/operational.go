package get_analytics_report

import (
	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// efficiencyAccumulator промежуточный агрегат одной услуги.
// revenuePerHour считается как среднее по всем записям с этой услугой:
// накапливаем сумму ставок и количество, делим в конце.
type efficiencyAccumulator struct {
	bookings     int
	popularTimes map[string]int
	rateSum      float64
	rateCount    int
}

// buildOperationalSection считает lead time, долю отмен, паттерны отмен
// и эффективность услуг за один проход по снапшотам
func buildOperationalSection(snapshots []*domain.AppointmentSnapshot) OperationalSection {
	section := DefaultOperationalSection()

	var (
		leadSum    int
		leadCount  int
		cancelled  int
		efficiency = make(map[string]*efficiencyAccumulator)
	)

	for _, snap := range snapshots {
		// Lead time: отрицательные значения - создано позже даты записи,
		// это мусорные данные, а не валидное упреждение
		if lead, ok := snap.LeadTimeDays(); ok && lead >= 0 {
			leadSum += lead
			leadCount++

			if snap.IsCancellation() {
				section.CancellationPatterns.LeadTimeDays = append(section.CancellationPatterns.LeadTimeDays, lead)
			}
		}

		if snap.IsCancellation() {
			cancelled++
			if snap.Time != "" {
				section.CancellationPatterns.ByTime[snap.Time]++
			}
			if snap.HasDate() {
				section.CancellationPatterns.ByWeekday[snap.Date.Weekday().String()]++
			}
		}

		for _, item := range snap.Items {
			if !item.IsService() {
				continue
			}

			acc, ok := efficiency[item.Name]
			if !ok {
				acc = &efficiencyAccumulator{popularTimes: make(map[string]int)}
				efficiency[item.Name] = acc
			}

			acc.bookings++
			if snap.Time != "" {
				acc.popularTimes[snap.Time]++
			}
			if item.DurationMinutes > 0 {
				acc.rateSum += item.UnitPrice / float64(item.DurationMinutes) * 60
				acc.rateCount++
			}
		}
	}

	if leadCount > 0 {
		section.AvgLeadTimeDays = float64(leadSum) / float64(leadCount)
	}

	// Guard: при пустой выборке доля отмен ровно 0, а не NaN
	if len(snapshots) > 0 {
		section.CancellationRate = float64(cancelled) / float64(len(snapshots)) * 100
	}

	for name, acc := range efficiency {
		entry := ServiceEfficiencyEntry{
			BookingsCount: acc.bookings,
			PopularTimes:  acc.popularTimes,
		}
		if acc.rateCount > 0 {
			entry.RevenuePerHour = acc.rateSum / float64(acc.rateCount)
		}
		section.ServiceEfficiency[name] = entry
	}

	return section
}
