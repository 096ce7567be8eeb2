package get_analytics_report

import (
	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

// buildForecastSection строит наивный прогноз выручки по восходящей
// недельной серии: последние ForecastWindowWeeks недель делятся пополам,
// темп роста - относительное изменение средних половин.
// Это трендовая экстраполяция, не статистическая модель.
func buildForecastSection(weekly []WeeklyTrend) ForecastSection {
	section := DefaultForecastSection()

	// Меньше двух недель - тренд не определен, отдаем нулевой дефолт
	if len(weekly) < 2 {
		return section
	}

	window := weekly
	if len(window) > domain.ForecastWindowWeeks {
		window = window[len(window)-domain.ForecastWindowWeeks:]
	}

	revenues := make([]float64, len(window))
	for i, week := range window {
		revenues[i] = week.Revenue
	}

	avgRevenue := mean(revenues)

	mid := len(revenues) / 2
	firstHalfAvg := mean(revenues[:mid])
	secondHalfAvg := mean(revenues[mid:])

	// Guard: нулевая первая половина дает нулевой темп, а не деление на ноль
	if firstHalfAvg != 0 {
		section.MonthlyGrowthRate = (secondHalfAvg - firstHalfAvg) / firstHalfAvg * 100
	}

	section.AvgWeeklyRevenue = avgRevenue
	section.PredictedRevenue = avgRevenue * (1 + section.MonthlyGrowthRate/100)

	return section
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
