package get_analytics_report

import (
	"sort"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// buildCustomersSection строит профили клиентов и производные метрики:
// сегменты, средний LTV, средний интервал между бронями и топ клиентов
func buildCustomersSection(snapshots []*domain.AppointmentSnapshot) CustomersSection {
	profiles := foldProfiles(snapshots)
	if len(profiles) == 0 {
		return DefaultCustomersSection()
	}

	section := CustomersSection{
		TotalCustomers: len(profiles),
		TopCustomers:   topCustomers(profiles),
	}

	var (
		totalSpent   float64
		gapSum       float64
		multiBooking int
	)

	for _, p := range profiles {
		// Сегменты не взаимоисключающие: один клиент может попасть в несколько
		if p.IsHighValue() {
			section.Segments.HighValue++
		}
		if p.IsRegular() {
			section.Segments.Regular++
		}
		if p.IsNewCustomer() {
			section.Segments.NewCustomers++
		}
		if p.IsRegistered {
			section.Segments.Registered++
		}

		totalSpent += p.TotalSpent

		if p.BookingCount > 1 {
			gapSum += p.BookingGapDays()
			multiBooking++
		}
	}

	section.AvgLifetimeValue = totalSpent / float64(len(profiles))
	if multiBooking > 0 {
		section.AvgBookingGapDays = gapSum / float64(multiBooking)
	}

	return section
}

// foldProfiles сворачивает снапшоты в профили клиентов.
// Возвращает профили в порядке первого появления ключа во входных данных.
func foldProfiles(snapshots []*domain.AppointmentSnapshot) []*domain.CustomerProfile {
	byKey := make(map[string]*domain.CustomerProfile)
	ordered := make([]*domain.CustomerProfile, 0)

	for _, snap := range snapshots {
		key := snap.CustomerKey()

		profile, ok := byKey[key]
		if !ok {
			profile = &domain.CustomerProfile{
				Key: key,
				// Флаг регистрации фиксируется при первом появлении ключа
				// и не меняется при противоречивых повторах
				IsRegistered: snap.IsRegistered(),
				FirstSeen:    len(ordered),
			}
			byKey[key] = profile
			ordered = append(ordered, profile)
		}

		profile.BookingCount++
		profile.TotalSpent += snap.Revenue()

		if snap.HasDate() {
			date := *snap.Date
			if profile.FirstBookingDate == nil || date.Before(*profile.FirstBookingDate) {
				profile.FirstBookingDate = &date
			}
			if profile.LastBookingDate == nil || date.After(*profile.LastBookingDate) {
				profile.LastBookingDate = &date
			}
		}
	}

	return ordered
}

// topCustomers возвращает до TopCustomersLimit клиентов с наибольшей
// потраченной суммой. Ничьи разрешаются порядком первого появления.
func topCustomers(profiles []*domain.CustomerProfile) []TopCustomer {
	ranked := make([]*domain.CustomerProfile, len(profiles))
	copy(ranked, profiles)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	limit := domain.TopCustomersLimit
	if limit > len(ranked) {
		limit = len(ranked)
	}

	top := make([]TopCustomer, 0, limit)
	for _, p := range ranked[:limit] {
		top = append(top, TopCustomer{
			Key:                p.Key,
			BookingCount:       p.BookingCount,
			TotalSpent:         p.TotalSpent,
			IsRegistered:       p.IsRegistered,
			AvgSpentPerBooking: p.AvgSpentPerBooking(),
			EstimatedLTV:       p.EstimatedLTV(),
		})
	}

	return top
}
