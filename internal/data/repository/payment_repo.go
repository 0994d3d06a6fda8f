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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*entity.Payment, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error)
	DetachDiscount(ctx context.Context, id uuid.UUID) (bool, error)
	SumPaidByCustomer(ctx context.Context, customerID uuid.UUID) (float64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, rental_id, customer_id, amount, payment_method, status, paid_at, transaction_id, discount_code_id, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.RentalID,
		payment.CustomerID,
		payment.Amount,
		payment.Method,
		payment.Paid,
		payment.PaidAt,
		payment.TransactionID,
		payment.DiscountCodeID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: transaction %s", ErrDuplicate, payment.TransactionID)
		}
		r.log.Error("Failed to create payment", zap.Error(err), zap.String("transaction_id", payment.TransactionID))
		return fmt.Errorf("create payment %s: %w", payment.TransactionID, err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	return r.scanOne(ctx, query, transactionID)
}

func (r *paymentRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE rental_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, rentalID)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err), zap.String("rental_id", rentalID.String()))
		return nil, fmt.Errorf("list payments of rental %s: %w", rentalID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// MarkPaid flips an unpaid payment to paid and stamps paid_at. The guard on
// status makes gateway callbacks replay-safe: the first confirmation wins
// and later ones report false.
func (r *paymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = TRUE, paid_at = $1, updated_at = NOW()
		WHERE id = $2 AND status = FALSE
	`

	tag, err := r.db.Exec(ctx, query, paidAt, id)
	if err != nil {
		r.log.Error("Failed to mark payment paid", zap.Error(err), zap.String("payment_id", id.String()))
		return false, fmt.Errorf("mark payment %s paid: %w", id.String(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// DetachDiscount clears the discount code of a still-unpaid payment.
// The guard on status and on a non-null code means only one caller ever
// sees true, however often a failure callback is replayed.
func (r *paymentRepository) DetachDiscount(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE payments
		SET discount_code_id = NULL, updated_at = NOW()
		WHERE id = $1 AND status = FALSE AND discount_code_id IS NOT NULL
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to detach discount", zap.Error(err), zap.String("payment_id", id.String()))
		return false, fmt.Errorf("detach discount of payment %s: %w", id.String(), err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *paymentRepository) SumPaidByCustomer(ctx context.Context, customerID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE customer_id = $1 AND status = TRUE
	`

	var total float64
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&total); err != nil {
		r.log.Error("Failed to sum payments", zap.Error(err), zap.String("customer_id", customerID.String()))
		return 0, fmt.Errorf("sum payments of customer %s: %w", customerID.String(), err)
	}

	return total, nil
}

func (r *paymentRepository) scanOne(ctx context.Context, query string, args ...any) (*entity.Payment, error) {
	payment, err := scanPayment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err))
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return payment, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID,
		&p.RentalID,
		&p.CustomerID,
		&p.Amount,
		&p.Method,
		&p.Paid,
		&p.PaidAt,
		&p.TransactionID,
		&p.DiscountCodeID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
