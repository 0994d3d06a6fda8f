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

type DiscountRepository interface {
	Create(ctx context.Context, code *entity.DiscountCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error)
	FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.DiscountCode, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
	DecrementUsage(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type discountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDiscountRepository(db database.PgxIface, log *zap.Logger) DiscountRepository {
	return &discountRepository{
		db:  db,
		log: log.With(zap.String("repository", "discount")),
	}
}

const discountColumns = `id, code, discount_percentage, valid_from, valid_to, max_uses, used_count, is_active, created_at, updated_at`

func (r *discountRepository) Create(ctx context.Context, code *entity.DiscountCode) error {
	query := `
		INSERT INTO discount_codes (` + discountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.Code,
		code.DiscountPercentage,
		code.ValidFrom,
		code.ValidTo,
		code.MaxUses,
		code.UsedCount,
		code.IsActive,
		code.CreatedAt,
		code.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: discount code %s", ErrDuplicate, code.Code)
		}
		r.log.Error("Failed to create discount code", zap.Error(err), zap.String("code", code.Code))
		return fmt.Errorf("create discount code %s: %w", code.Code, err)
	}

	return nil
}

func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *discountRepository) FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM discount_codes WHERE code = $1`
	return r.scanOne(ctx, query, code)
}

func (r *discountRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.DiscountCode, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM discount_codes
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		r.log.Error("Failed to list discount codes", zap.Error(err))
		return nil, fmt.Errorf("list discount codes: %w", err)
	}
	defer rows.Close()

	var codes []*entity.DiscountCode
	for rows.Next() {
		code, err := scanDiscount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan discount code row: %w", err)
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

// IncrementUsage consumes one use of the code. The max_uses guard inside the
// UPDATE means two concurrent consumers cannot push used_count past the
// limit; the loser sees false and must reject the code.
func (r *discountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE discount_codes
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
		  AND (max_uses IS NULL OR used_count < max_uses)
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment discount usage", zap.Error(err), zap.String("discount_id", id.String()))
		return false, fmt.Errorf("increment usage of discount %s: %w", id.String(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// DecrementUsage gives a consumed use back when the payment it was attached
// to fails before completion.
func (r *discountRepository) DecrementUsage(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE discount_codes
		SET used_count = GREATEST(used_count - 1, 0), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to decrement discount usage", zap.Error(err), zap.String("discount_id", id.String()))
		return fmt.Errorf("decrement usage of discount %s: %w", id.String(), err)
	}

	return nil
}

func (r *discountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE discount_codes SET is_active = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, active, id); err != nil {
		r.log.Error("Failed to update discount code", zap.Error(err), zap.String("discount_id", id.String()))
		return fmt.Errorf("update discount %s: %w", id.String(), err)
	}

	return nil
}

func (r *discountRepository) scanOne(ctx context.Context, query string, args ...any) (*entity.DiscountCode, error) {
	code, err := scanDiscount(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount code", zap.Error(err))
		return nil, fmt.Errorf("find discount code: %w", err)
	}

	return code, nil
}

func scanDiscount(row pgx.Row) (*entity.DiscountCode, error) {
	var d entity.DiscountCode
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.DiscountPercentage,
		&d.ValidFrom,
		&d.ValidTo,
		&d.MaxUses,
		&d.UsedCount,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
