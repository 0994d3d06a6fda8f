package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context, status string, roomTypeID *uuid.UUID, limit, offset int) ([]*entity.RoomWithType, int, error)
	FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RoomWithType, error)
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Room, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.RoomStatus, to entity.RoomStatus) (bool, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, room_type_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.RoomTypeID,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: room number %s", ErrDuplicate, room.RoomNumber)
		}
		r.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", room.RoomNumber))
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, room_number, room_type_id, status, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomNumber,
		&room.RoomTypeID,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", id.String()))
		return nil, fmt.Errorf("find room %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, status string, roomTypeID *uuid.UUID, limit, offset int) ([]*entity.RoomWithType, int, error) {
	baseQuery := `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE ($1 = '' OR r.status = $1)
		  AND ($2::uuid IS NULL OR r.room_type_id = $2)
	`

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, status, roomTypeID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}

	query := `
		SELECT r.id, r.room_number, r.room_type_id, r.status, r.created_at, r.updated_at,
		       rt.name, rt.base_price, rt.max_guests, rt.extra_guest_surcharge
	` + baseQuery + `
		ORDER BY r.room_number
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, status, roomTypeID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms, err := scanRoomsWithType(rows)
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// FindWithTypeByIDs preserves the order of ids in the result so callers can
// keep the positional semantics of a multi-room request.
func (r *roomRepository) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RoomWithType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT r.id, r.room_number, r.room_type_id, r.status, r.created_at, r.updated_at,
		       rt.name, rt.base_price, rt.max_guests, rt.extra_guest_surcharge
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to load rooms by ids", zap.Error(err))
		return nil, fmt.Errorf("load rooms by ids: %w", err)
	}
	defer rows.Close()

	rooms, err := scanRoomsWithType(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.RoomWithType, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	ordered := make([]*entity.RoomWithType, 0, len(ids))
	for _, id := range ids {
		if room, ok := byID[id]; ok {
			ordered = append(ordered, room)
		}
	}

	return ordered, nil
}

// LockByIDs takes row locks on the given rooms for the duration of the
// enclosing transaction. Rooms are locked in a fixed order to avoid
// deadlocks between concurrent bookings touching the same set.
func (r *roomRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, room_number, room_type_id, status, created_at, updated_at
		FROM rooms
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to lock rooms", zap.Error(err))
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.RoomTypeID,
			&room.Status,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan locked room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}

// TransitionStatus moves a room from one of the expected statuses to the
// target status. It reports false without error when the room is not in any
// of the expected statuses, which keeps retried transitions idempotent.
func (r *roomRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.RoomStatus, to entity.RoomStatus) (bool, error) {
	query := `
		UPDATE rooms
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)
	`

	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	tag, err := r.db.Exec(ctx, query, to, id, statuses)
	if err != nil {
		r.log.Error("Failed to transition room status",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition room %s to %s: %w", id.String(), to, err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanRoomsWithType(rows pgx.Rows) ([]*entity.RoomWithType, error) {
	var rooms []*entity.RoomWithType
	for rows.Next() {
		var room entity.RoomWithType
		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.RoomTypeID,
			&room.Status,
			&room.CreatedAt,
			&room.UpdatedAt,
			&room.RoomTypeName,
			&room.BasePrice,
			&room.MaxGuests,
			&room.ExtraSurcharge,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
