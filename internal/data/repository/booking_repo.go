package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	AddRooms(ctx context.Context, bookingID uuid.UUID, roomIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByShareToken(ctx context.Context, token uuid.UUID) (*entity.Booking, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, int, error)
	RoomIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (bool, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, guestCount int, totalPrice float64, specialRequests *string) error
	SetQRCode(ctx context.Context, id uuid.UUID, url string) error
	FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (*entity.Booking, error)
	FindActiveDueForPromotion(ctx context.Context, before time.Time) ([]*entity.Booking, error)
	FindOverdue(ctx context.Context, cutoff time.Time) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_id, check_in_date, check_out_date, total_price, guest_count, status, special_requests, share_token, qr_code_url, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.TotalPrice,
		booking.GuestCount,
		booking.Status,
		booking.SpecialRequests,
		booking.ShareToken,
		booking.QRCodeURL,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking", zap.Error(err), zap.String("customer_id", booking.CustomerID.String()))
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) AddRooms(ctx context.Context, bookingID uuid.UUID, roomIDs []uuid.UUID) error {
	query := `
		INSERT INTO booking_rooms (id, booking_id, room_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	for _, roomID := range roomIDs {
		if _, err := r.db.Exec(ctx, query, uuid.New(), bookingID, roomID); err != nil {
			r.log.Error("Failed to attach room to booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.String("room_id", roomID.String()),
			)
			return fmt.Errorf("attach room %s to booking %s: %w", roomID.String(), bookingID.String(), err)
		}
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *bookingRepository) FindByShareToken(ctx context.Context, token uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE share_token = $1`
	return r.scanOne(ctx, query, token)
}

func (r *bookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM bookings
		WHERE customer_id = $1 AND ($2 = '' OR status = $2)
	`
	if err := r.db.QueryRow(ctx, countQuery, customerID, status).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, customerID, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepository) RoomIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT room_id FROM booking_rooms
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to load booking rooms", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("load booking rooms: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booking room row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// UpdateStatus moves a booking from one of the expected statuses to the
// target status. It reports false without error when the booking is not in
// any of the expected statuses.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)
	`

	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	tag, err := r.db.Exec(ctx, query, to, id, statuses)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking %s to %s: %w", id.String(), to, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *bookingRepository) UpdateDetails(ctx context.Context, id uuid.UUID, guestCount int, totalPrice float64, specialRequests *string) error {
	query := `
		UPDATE bookings
		SET guest_count = $1, total_price = $2, special_requests = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, guestCount, totalPrice, specialRequests, id)
	if err != nil {
		r.log.Error("Failed to update booking details", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("update booking %s: %w", id.String(), err)
	}

	return nil
}

func (r *bookingRepository) SetQRCode(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE bookings SET qr_code_url = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, url, id); err != nil {
		r.log.Error("Failed to set booking QR code", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("set qr code for booking %s: %w", id.String(), err)
	}

	return nil
}

// FindConflicting returns one active booking whose stay overlaps the half
// open interval [checkIn, checkOut) on any of the given rooms. excludeID
// skips the caller's own booking when re-pricing an update.
func (r *bookingRepository) FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (*entity.Booking, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + prefixColumns("b", bookingColumns) + `
		FROM bookings b
		JOIN booking_rooms br ON br.booking_id = b.id
		WHERE br.room_id = ANY($1)
		  AND b.status IN ('pending', 'confirmed', 'checked_in')
		  AND b.check_in_date < $3
		  AND b.check_out_date > $2
		  AND ($4::uuid IS NULL OR b.id <> $4)
		LIMIT 1
	`

	return r.scanOne(ctx, query, roomIDs, checkIn, checkOut, excludeID)
}

// FindActiveDueForPromotion lists pending and confirmed bookings whose
// check-in date falls before the given boundary, so the sweep can move
// their rooms to booked. Callers pass the start of tomorrow in the hotel
// timezone to cover everything due today or earlier.
func (r *bookingRepository) FindActiveDueForPromotion(ctx context.Context, before time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status IN ('pending', 'confirmed') AND check_in_date < $1
		ORDER BY check_in_date
	`

	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		r.log.Error("Failed to list bookings due for promotion", zap.Error(err))
		return nil, fmt.Errorf("list bookings due for promotion: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindOverdue lists pending and confirmed bookings whose check-in moment
// passed the no-show cutoff without the guest arriving.
func (r *bookingRepository) FindOverdue(ctx context.Context, cutoff time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status IN ('pending', 'confirmed') AND check_in_date <= $1
		ORDER BY check_in_date
	`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		r.log.Error("Failed to list overdue bookings", zap.Error(err))
		return nil, fmt.Errorf("list overdue bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) scanOne(ctx context.Context, query string, args ...any) (*entity.Booking, error) {
	var b entity.Booking
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&b.ID,
		&b.CustomerID,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.TotalPrice,
		&b.GuestCount,
		&b.Status,
		&b.SpecialRequests,
		&b.ShareToken,
		&b.QRCodeURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", zap.Error(err))
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return &b, nil
}

// prefixColumns qualifies a comma separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		err := rows.Scan(
			&b.ID,
			&b.CustomerID,
			&b.CheckInDate,
			&b.CheckOutDate,
			&b.TotalPrice,
			&b.GuestCount,
			&b.Status,
			&b.SpecialRequests,
			&b.ShareToken,
			&b.QRCodeURL,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}
