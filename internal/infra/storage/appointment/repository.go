package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-AnalyticsService/internal/domain"
	"github.com/m04kA/Salon-AnalyticsService/pkg/psqlbuilder"
)

// Repository read-only репозиторий снапшотов записей салона.
// Аналитическое ядро никогда не пишет в хранилище.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDateRange получает снапшоты записей за включительный диапазон дат
// вместе с позициями (услуги и товары).
// Порядок результата не является частью контракта; сортировка по дате
// добавлена только для детерминизма.
//
// Строки с NULL-датой или NULL-временем создания не отбрасываются:
// агрегации сами решают, в каких метриках такая запись участвует.
func (r *Repository) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.AppointmentSnapshot, error) {
	snapshots, err := r.listAppointments(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if len(snapshots) == 0 {
		return snapshots, nil
	}

	if err := r.attachLineItems(ctx, snapshots); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (r *Repository) listAppointments(ctx context.Context, startDate, endDate time.Time) ([]*domain.AppointmentSnapshot, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_date",
		"start_time",
		"status",
		"customer_email",
		"user_id",
		"created_at",
	).
		From("appointments").
		Where(squirrel.GtOrEq{"booking_date": startDate}).
		Where(squirrel.LtOrEq{"booking_date": endDate}).
		OrderBy("booking_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// attachLineItems загружает позиции всех записей одним IN-запросом
// и раскладывает их по снапшотам
func (r *Repository) attachLineItems(ctx context.Context, snapshots []*domain.AppointmentSnapshot) error {
	ids := make([]int64, 0, len(snapshots))
	byID := make(map[int64]*domain.AppointmentSnapshot, len(snapshots))
	for _, snap := range snapshots {
		ids = append(ids, snap.ID)
		byID[snap.ID] = snap
	}

	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"item_type",
		"name",
		"unit_price",
		"duration_minutes",
		"quantity",
	).
		From("appointment_items").
		Where(squirrel.Eq{"appointment_id": ids}).
		OrderBy("appointment_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachLineItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachLineItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			appointmentID   int64
			itemType        string
			name            sql.NullString
			unitPrice       sql.NullFloat64
			durationMinutes sql.NullInt64
			quantity        sql.NullInt64
		)

		if err := rows.Scan(&appointmentID, &itemType, &name, &unitPrice, &durationMinutes, &quantity); err != nil {
			return fmt.Errorf("%w: attachLineItems - scan row: %v", ErrScanRow, err)
		}

		snap, ok := byID[appointmentID]
		if !ok {
			continue
		}
		snap.Items = append(snap.Items, toLineItem(itemType, name, unitPrice, durationMinutes, quantity))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachLineItems - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanAppointments сканирует строки в снапшоты через единый адаптер,
// изолируя агрегации от схемы хранилища
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.AppointmentSnapshot, error) {
	snapshots := make([]*domain.AppointmentSnapshot, 0)

	for rows.Next() {
		var (
			id          int64
			bookingDate sql.NullTime
			startTime   sql.NullString
			status      sql.NullString
			email       sql.NullString
			userID      sql.NullInt64
			createdAt   sql.NullTime
		)

		err := rows.Scan(&id, &bookingDate, &startTime, &status, &email, &userID, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		snapshots = append(snapshots, toSnapshot(id, bookingDate, startTime, status, email, userID, createdAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return snapshots, nil
}

// toSnapshot единый адаптер строки запроса в доменный снапшот
func toSnapshot(
	id int64,
	bookingDate sql.NullTime,
	startTime sql.NullString,
	status sql.NullString,
	email sql.NullString,
	userID sql.NullInt64,
	createdAt sql.NullTime,
) *domain.AppointmentSnapshot {
	snap := &domain.AppointmentSnapshot{
		ID:     id,
		Time:   startTime.String,
		Status: domain.AppointmentStatus(status.String),
	}

	if bookingDate.Valid {
		date := bookingDate.Time
		snap.Date = &date
	}
	if createdAt.Valid {
		created := createdAt.Time
		snap.CreatedAt = &created
	}
	if email.Valid && email.String != "" {
		mail := email.String
		snap.CustomerEmail = &mail
	}
	if userID.Valid {
		ref := userID.Int64
		snap.UserRef = &ref
	}

	return snap
}

func toLineItem(
	itemType string,
	name sql.NullString,
	unitPrice sql.NullFloat64,
	durationMinutes sql.NullInt64,
	quantity sql.NullInt64,
) domain.LineItem {
	item := domain.LineItem{
		Type:      domain.LineItemType(itemType),
		Name:      name.String,
		UnitPrice: unitPrice.Float64,
	}

	switch item.Type {
	case domain.LineItemProduct:
		item.Quantity = int(quantity.Int64)
	default:
		item.DurationMinutes = int(durationMinutes.Int64)
	}

	return item
}
