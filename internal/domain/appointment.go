package domain

import (
	"fmt"
	"math"
	"time"
)

// AppointmentStatus represents the status of an appointment snapshot
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// LineItemType тип позиции записи: услуга или товар
type LineItemType string

const (
	LineItemService LineItemType = "service"
	LineItemProduct LineItemType = "product"
)

// LineItem represents a service or product entry attached to an appointment
type LineItem struct {
	Type      LineItemType
	Name      string
	UnitPrice float64

	// Только для услуг
	DurationMinutes int

	// Только для товаров
	Quantity int
}

// Revenue возвращает вклад позиции в выручку:
// цена услуги как есть, цена товара умножается на количество
func (li LineItem) Revenue() float64 {
	if li.Type == LineItemProduct {
		return li.UnitPrice * float64(li.Quantity)
	}
	return li.UnitPrice
}

// IsService returns true if the line item is a service line
func (li LineItem) IsService() bool {
	return li.Type == LineItemService
}

// AppointmentSnapshot is an immutable read projection of an appointment
// used for aggregation. Nil Date/CreatedAt mean the stored value is missing
// or was not parseable; such snapshots are skipped by date-keyed metrics
// but still count toward overall totals.
type AppointmentSnapshot struct {
	ID        int64
	Date      *time.Time // календарная дата записи
	Time      string     // локальное время записи как есть, например "14:30"
	Status    AppointmentStatus
	CreatedAt *time.Time // момент создания брони

	CustomerEmail *string
	UserRef       *int64 // ссылка на аккаунт, если клиент зарегистрирован

	Items []LineItem
}

// Revenue возвращает суммарную выручку по всем позициям записи
func (a *AppointmentSnapshot) Revenue() float64 {
	var total float64
	for _, item := range a.Items {
		total += item.Revenue()
	}
	return total
}

// HasDate returns true if the snapshot carries a usable calendar date
func (a *AppointmentSnapshot) HasDate() bool {
	return a.Date != nil
}

// IsCancellation returns true for cancelled and no-show appointments
func (a *AppointmentSnapshot) IsCancellation() bool {
	for _, status := range CancellationStatuses {
		if a.Status == status {
			return true
		}
	}
	return false
}

// IsRegistered returns true if the appointment is linked to a user account
func (a *AppointmentSnapshot) IsRegistered() bool {
	return a.UserRef != nil
}

// CustomerKey возвращает ключ клиента: email, иначе ссылка на аккаунт,
// иначе синтетический одиночный ключ по ID записи.
// Гости без идентификатора намеренно НЕ сливаются в один общий профиль:
// общий "anonymous" раздувал бы счетчики одного псевдоклиента.
func (a *AppointmentSnapshot) CustomerKey() string {
	if a.CustomerEmail != nil && *a.CustomerEmail != "" {
		return *a.CustomerEmail
	}
	if a.UserRef != nil {
		return fmt.Sprintf("user:%d", *a.UserRef)
	}
	return fmt.Sprintf("anon:%d", a.ID)
}

// LeadTimeDays возвращает время упреждения брони в днях (с округлением вверх).
// Второе значение false, если дата или момент создания отсутствуют.
// Отрицательное значение означает createdAt позже даты записи и трактуется
// вызывающим кодом как некорректные данные.
func (a *AppointmentSnapshot) LeadTimeDays() (int, bool) {
	if a.Date == nil || a.CreatedAt == nil {
		return 0, false
	}
	days := a.Date.Sub(*a.CreatedAt).Hours() / 24
	return int(math.Ceil(days)), true
}

// WeekStartOf возвращает ISO-дату воскресенья, начинающего неделю даты.
// Ключи недель в формате YYYY-MM-DD сортируются лексикографически
// в хронологическом порядке.
func WeekStartOf(date time.Time) string {
	sunday := date.AddDate(0, 0, -int(date.Weekday()))
	return sunday.Format(DateFormat)
}
