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

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindAll(ctx context.Context) ([]*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, description, base_price, max_guests, extra_guest_surcharge, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.BasePrice,
		roomType.MaxGuests,
		roomType.ExtraGuestSurcharge,
		roomType.Amenities,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: room type %s", ErrDuplicate, roomType.Name)
		}
		r.log.Error("Failed to create room type", zap.Error(err), zap.String("name", roomType.Name))
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `
		SELECT id, name, description, base_price, max_guests, extra_guest_surcharge, amenities, created_at, updated_at
		FROM room_types
		WHERE id = $1
	`

	var rt entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rt.ID,
		&rt.Name,
		&rt.Description,
		&rt.BasePrice,
		&rt.MaxGuests,
		&rt.ExtraGuestSurcharge,
		&rt.Amenities,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type", zap.Error(err), zap.String("room_type_id", id.String()))
		return nil, fmt.Errorf("find room type %s: %w", id.String(), err)
	}

	return &rt, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context) ([]*entity.RoomType, error) {
	query := `
		SELECT id, name, description, base_price, max_guests, extra_guest_surcharge, amenities, created_at, updated_at
		FROM room_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list room types", zap.Error(err))
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		var rt entity.RoomType
		err := rows.Scan(
			&rt.ID,
			&rt.Name,
			&rt.Description,
			&rt.BasePrice,
			&rt.MaxGuests,
			&rt.ExtraGuestSurcharge,
			&rt.Amenities,
			&rt.CreatedAt,
			&rt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, &rt)
	}

	return roomTypes, rows.Err()
}
