package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrRoomOccupied is returned when attaching a room to a rental while
// another open rental already holds it. The partial unique index on
// rental_rooms is the last line of defence behind the in-transaction check.
var ErrRoomOccupied = errors.New("room already has an open rental")

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.RoomRental) error
	AddRooms(ctx context.Context, rentalID uuid.UUID, roomIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRental, error)
	FindOpenByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.RoomRental, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.RoomRental, int, error)
	RoomIDs(ctx context.Context, rentalID uuid.UUID) ([]uuid.UUID, error)
	Close(ctx context.Context, id uuid.UUID, actualCheckOut time.Time, finalPrice float64) (bool, error)
	FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) (*entity.RoomRental, error)
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

const rentalColumns = `id, booking_id, customer_id, check_in_date, check_out_date, actual_check_out, total_price, guest_count, created_at, updated_at`

func (r *rentalRepository) Create(ctx context.Context, rental *entity.RoomRental) error {
	query := `
		INSERT INTO room_rentals (` + rentalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.BookingID,
		rental.CustomerID,
		rental.CheckInDate,
		rental.CheckOutDate,
		rental.ActualCheckOut,
		rental.TotalPrice,
		rental.GuestCount,
		rental.CreatedAt,
		rental.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create rental", zap.Error(err), zap.String("customer_id", rental.CustomerID.String()))
		return fmt.Errorf("create rental: %w", err)
	}

	return nil
}

func (r *rentalRepository) AddRooms(ctx context.Context, rentalID uuid.UUID, roomIDs []uuid.UUID) error {
	query := `
		INSERT INTO rental_rooms (id, rental_id, room_id, is_open, created_at)
		VALUES ($1, $2, $3, TRUE, NOW())
	`

	for _, roomID := range roomIDs {
		if _, err := r.db.Exec(ctx, query, uuid.New(), rentalID, roomID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return fmt.Errorf("%w: room %s", ErrRoomOccupied, roomID.String())
			}
			r.log.Error("Failed to attach room to rental",
				zap.Error(err),
				zap.String("rental_id", rentalID.String()),
				zap.String("room_id", roomID.String()),
			)
			return fmt.Errorf("attach room %s to rental %s: %w", roomID.String(), rentalID.String(), err)
		}
	}

	return nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRental, error) {
	query := `SELECT ` + rentalColumns + ` FROM room_rentals WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *rentalRepository) FindOpenByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.RoomRental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM room_rentals
		WHERE booking_id = $1 AND actual_check_out IS NULL
	`
	return r.scanOne(ctx, query, bookingID)
}

func (r *rentalRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.RoomRental, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM room_rentals WHERE customer_id = $1`, customerID).Scan(&total); err != nil {
		r.log.Error("Failed to count rentals", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, 0, fmt.Errorf("count rentals: %w", err)
	}

	query := `
		SELECT ` + rentalColumns + `
		FROM room_rentals
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rentals", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, 0, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*entity.RoomRental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rental)
	}

	return rentals, total, rows.Err()
}

func (r *rentalRepository) RoomIDs(ctx context.Context, rentalID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT room_id FROM rental_rooms
		WHERE rental_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, rentalID)
	if err != nil {
		r.log.Error("Failed to load rental rooms", zap.Error(err), zap.String("rental_id", rentalID.String()))
		return nil, fmt.Errorf("load rental rooms: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan rental room row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close stamps the actual checkout moment and the final settled price, and
// releases the room holds. It reports false when the rental was already
// closed, so a second checkout of the same rental is a no-op.
func (r *rentalRepository) Close(ctx context.Context, id uuid.UUID, actualCheckOut time.Time, finalPrice float64) (bool, error) {
	query := `
		UPDATE room_rentals
		SET actual_check_out = $1, total_price = $2, updated_at = NOW()
		WHERE id = $3 AND actual_check_out IS NULL
	`

	tag, err := r.db.Exec(ctx, query, actualCheckOut, finalPrice, id)
	if err != nil {
		r.log.Error("Failed to close rental", zap.Error(err), zap.String("rental_id", id.String()))
		return false, fmt.Errorf("close rental %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `UPDATE rental_rooms SET is_open = FALSE WHERE rental_id = $1`, id); err != nil {
		r.log.Error("Failed to release rental rooms", zap.Error(err), zap.String("rental_id", id.String()))
		return false, fmt.Errorf("release rooms of rental %s: %w", id.String(), err)
	}

	return true, nil
}

// FindConflicting returns one open rental whose stay overlaps the half open
// interval [checkIn, checkOut) on any of the given rooms.
func (r *rentalRepository) FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) (*entity.RoomRental, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + prefixColumns("rr", rentalColumns) + `
		FROM room_rentals rr
		JOIN rental_rooms rm ON rm.rental_id = rr.id
		WHERE rm.room_id = ANY($1)
		  AND rr.actual_check_out IS NULL
		  AND rr.check_in_date < $3
		  AND rr.check_out_date > $2
		LIMIT 1
	`

	return r.scanOne(ctx, query, roomIDs, checkIn, checkOut)
}

func (r *rentalRepository) scanOne(ctx context.Context, query string, args ...any) (*entity.RoomRental, error) {
	rental, err := scanRental(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental", zap.Error(err))
		return nil, fmt.Errorf("find rental: %w", err)
	}

	return rental, nil
}

func scanRental(row pgx.Row) (*entity.RoomRental, error) {
	var rental entity.RoomRental
	err := row.Scan(
		&rental.ID,
		&rental.BookingID,
		&rental.CustomerID,
		&rental.CheckInDate,
		&rental.CheckOutDate,
		&rental.ActualCheckOut,
		&rental.TotalPrice,
		&rental.GuestCount,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}
