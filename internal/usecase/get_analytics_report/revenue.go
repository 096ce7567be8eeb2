package get_analytics_report

import (
	"sort"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// buildSeasonalSection сворачивает снапшоты в недельные бакеты.
// Чистая свёртка: идемпотентна и не зависит от порядка входа.
//
// Снапшоты без даты в недельные агрегаты не попадают.
// Запись без позиций увеличивает счетчик недели, но не выручку.
func buildSeasonalSection(snapshots []*domain.AppointmentSnapshot) SeasonalSection {
	buckets := make(map[string]*domain.WeekBucket)

	for _, snap := range snapshots {
		if !snap.HasDate() {
			continue
		}

		key := domain.WeekStartOf(*snap.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = domain.NewWeekBucket(key)
			buckets[key] = bucket
		}

		bucket.AppointmentCount++
		bucket.Revenue += snap.Revenue()

		for _, item := range snap.Items {
			if item.IsService() {
				bucket.Services[item.Name]++
			}
		}
	}

	// ISO-ключи YYYY-MM-DD: лексикографический порядок совпадает с хронологическим
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	trends := make([]WeeklyTrend, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		trends = append(trends, WeeklyTrend{
			WeekStart:        bucket.WeekStart,
			AppointmentCount: bucket.AppointmentCount,
			Revenue:          bucket.Revenue,
			Services:         bucket.Services,
		})
	}

	return SeasonalSection{WeeklyTrends: trends}
}
