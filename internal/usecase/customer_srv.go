package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tier thresholds, first match wins.
const (
	superVIPBookings = 20
	superVIPSpent    = 50_000_000
	vipBookings      = 10
	vipSpent         = 20_000_000
	regularBookings  = 3
)

// tierFor maps lifetime stats onto a customer tier.
func tierFor(totalBookings int, totalSpent float64) entity.CustomerType {
	switch {
	case totalBookings >= superVIPBookings || totalSpent >= superVIPSpent:
		return entity.CustomerSuperVIP
	case totalBookings >= vipBookings || totalSpent >= vipSpent:
		return entity.CustomerVIP
	case totalBookings >= regularBookings:
		return entity.CustomerRegular
	default:
		return entity.CustomerNew
	}
}

// recomputeCustomerStats rebuilds the cached customer aggregate from the
// booking and payment history. The cached columns are a read model, never
// a source of truth, so the whole computation is a plain overwrite and is
// safe to call any number of times. Bookings of every status count,
// cancelled included: the lifetime count never shrinks. Spend is the sum
// of paid payments only.
func recomputeCustomerStats(ctx context.Context, repo *repository.Repository, customerID uuid.UUID) error {
	bookings, err := repo.User.CountBookings(ctx, customerID)
	if err != nil {
		return fmt.Errorf("recompute stats for %s: %w", customerID.String(), err)
	}

	spent, err := repo.Payment.SumPaidByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("recompute stats for %s: %w", customerID.String(), err)
	}

	tier := tierFor(int(bookings), spent)
	if err := repo.User.UpdateCustomerStats(ctx, customerID, int(bookings), spent, tier); err != nil {
		return fmt.Errorf("recompute stats for %s: %w", customerID.String(), err)
	}

	return nil
}

type CustomerService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	RecomputeStats(ctx context.Context, customerID string) (*response.UserResponse, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *customerService) RecomputeStats(ctx context.Context, customerID string) (*response.UserResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	if err := recomputeCustomerStats(ctx, s.repo, customerUUID); err != nil {
		s.log.Error("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", customerID))
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, customerUUID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}

	s.log.Info("Customer stats recomputed",
		zap.String("customer_id", customerID),
		zap.Int("total_bookings", user.TotalBookings),
		zap.Float64("total_spent", user.TotalSpent),
		zap.String("tier", string(user.CustomerType)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
