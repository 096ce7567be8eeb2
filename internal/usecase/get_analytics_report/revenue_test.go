package get_analytics_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func serviceItem(name string, price float64, minutes int) domain.LineItem {
	return domain.LineItem{
		Type:            domain.LineItemService,
		Name:            name,
		UnitPrice:       price,
		DurationMinutes: minutes,
	}
}

func productItem(name string, price float64, quantity int) domain.LineItem {
	return domain.LineItem{
		Type:      domain.LineItemProduct,
		Name:      name,
		UnitPrice: price,
		Quantity:  quantity,
	}
}

func TestBuildSeasonalSection_WeekBucketing(t *testing.T) {
	snapshots := []*domain.AppointmentSnapshot{
		{ID: 1, Date: date(2024, time.January, 1), Items: []domain.LineItem{serviceItem("Haircut", 100, 60)}},
		{ID: 2, Date: date(2024, time.January, 3), Items: []domain.LineItem{serviceItem("Manicure", 50, 30)}},
		{ID: 3, Date: date(2024, time.January, 8), Items: []domain.LineItem{serviceItem("Haircut", 200, 60)}},
	}

	section := buildSeasonalSection(snapshots)
	require.Len(t, section.WeeklyTrends, 2)

	// 1 и 3 января попадают в неделю воскресенья 2023-12-31
	first := section.WeeklyTrends[0]
	assert.Equal(t, "2023-12-31", first.WeekStart)
	assert.Equal(t, 2, first.AppointmentCount)
	assert.Equal(t, 150.0, first.Revenue)
	assert.Equal(t, map[string]int{"Haircut": 1, "Manicure": 1}, first.Services)

	second := section.WeeklyTrends[1]
	assert.Equal(t, "2024-01-07", second.WeekStart)
	assert.Equal(t, 1, second.AppointmentCount)
	assert.Equal(t, 200.0, second.Revenue)
}

func TestBuildSeasonalSection_WeeksAscending(t *testing.T) {
	// Вход нарочно перемешан: порядок выхода не зависит от порядка входа
	snapshots := []*domain.AppointmentSnapshot{
		{ID: 1, Date: date(2024, time.March, 20)},
		{ID: 2, Date: date(2024, time.January, 5)},
		{ID: 3, Date: date(2024, time.February, 14)},
	}

	section := buildSeasonalSection(snapshots)
	require.Len(t, section.WeeklyTrends, 3)

	for i := 1; i < len(section.WeeklyTrends); i++ {
		assert.Less(t, section.WeeklyTrends[i-1].WeekStart, section.WeeklyTrends[i].WeekStart)
	}
}

func TestBuildSeasonalSection_UndatedSkipped(t *testing.T) {
	snapshots := []*domain.AppointmentSnapshot{
		{ID: 1, Items: []domain.LineItem{serviceItem("Haircut", 100, 60)}},
		{ID: 2, Date: date(2024, time.January, 1), Items: []domain.LineItem{serviceItem("Haircut", 50, 60)}},
	}

	section := buildSeasonalSection(snapshots)
	require.Len(t, section.WeeklyTrends, 1)
	assert.Equal(t, 1, section.WeeklyTrends[0].AppointmentCount)
	assert.Equal(t, 50.0, section.WeeklyTrends[0].Revenue)
}

func TestBuildSeasonalSection_NoLineItems(t *testing.T) {
	// Запись без позиций увеличивает счетчик недели, но не выручку
	snapshots := []*domain.AppointmentSnapshot{
		{ID: 1, Date: date(2024, time.January, 1)},
	}

	section := buildSeasonalSection(snapshots)
	require.Len(t, section.WeeklyTrends, 1)
	assert.Equal(t, 1, section.WeeklyTrends[0].AppointmentCount)
	assert.Equal(t, 0.0, section.WeeklyTrends[0].Revenue)
	assert.Empty(t, section.WeeklyTrends[0].Services)
}

func TestBuildSeasonalSection_ProductsCountTowardRevenueOnly(t *testing.T) {
	snapshots := []*domain.AppointmentSnapshot{
		{ID: 1, Date: date(2024, time.January, 1), Items: []domain.LineItem{
			serviceItem("Haircut", 100, 60),
			productItem("Shampoo", 15, 2),
		}},
	}

	section := buildSeasonalSection(snapshots)
	require.Len(t, section.WeeklyTrends, 1)
	assert.Equal(t, 130.0, section.WeeklyTrends[0].Revenue)
	// Товары не попадают в распределение услуг
	assert.Equal(t, map[string]int{"Haircut": 1}, section.WeeklyTrends[0].Services)
}

func TestBuildSeasonalSection_Empty(t *testing.T) {
	section := buildSeasonalSection(nil)
	assert.NotNil(t, section.WeeklyTrends)
	assert.Empty(t, section.WeeklyTrends)
}
