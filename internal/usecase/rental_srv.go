package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// settlement bundles what closing a rental produced.
type settlement struct {
	Rental  *entity.RoomRental
	Payment *entity.Payment
	RoomIDs []uuid.UUID
}

func (s *settlement) RoomIDStrings() []string {
	ids := make([]string, len(s.RoomIDs))
	for i, id := range s.RoomIDs {
		ids[i] = id.String()
	}
	return ids
}

// settleRental closes an open rental: stamps the actual checkout moment,
// recomputes the final price over the actually elapsed days and the
// rental's guest count, applies an optional discount code, creates
// exactly one Payment and frees the rooms. Runs inside the caller's
// transaction; a rental that is already closed settles nothing and no
// second Payment is ever created.
func settleRental(ctx context.Context, repo *repository.Repository, rental *entity.RoomRental, method entity.PaymentMethod, discountCodeID *uuid.UUID, now time.Time) (*settlement, error) {
	if !rental.Open() {
		return nil, fmt.Errorf("%w: rental %s is already checked out", ErrConflict, rental.ID.String())
	}

	roomIDs, err := repo.Rental.RoomIDs(ctx, rental.ID)
	if err != nil {
		return nil, err
	}
	rooms, err := repo.Room.FindWithTypeByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("load room pricing: %w", err)
	}

	var discountPct float64
	if discountCodeID != nil {
		code, err := repo.Discount.FindByID(ctx, *discountCodeID)
		if err != nil {
			return nil, fmt.Errorf("find discount code: %w", err)
		}
		if code == nil {
			return nil, fmt.Errorf("%w: discount code %s", ErrNotFound, discountCodeID.String())
		}
		if !code.Valid(now) {
			return nil, fmt.Errorf("%w: discount code %s is not currently valid", ErrValidation, code.Code)
		}
		ok, err := repo.Discount.IncrementUsage(ctx, code.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: discount code %s has no uses left", ErrValidation, code.Code)
		}
		discountPct = code.DiscountPercentage
	}

	price, err := CalculatePrice(rooms, rental.CheckInDate, now, rental.GuestCount, discountPct)
	if err != nil {
		return nil, err
	}

	closed, err := repo.Rental.Close(ctx, rental.ID, now, price.Total)
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, fmt.Errorf("%w: rental %s is already checked out", ErrConflict, rental.ID.String())
	}
	rental.ActualCheckOut = &now
	rental.TotalPrice = price.Total

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RentalID:       rental.ID,
		CustomerID:     rental.CustomerID,
		Amount:         price.Total,
		Method:         method,
		TransactionID:  utils.GenerateTransactionID(),
		DiscountCodeID: discountCodeID,
	}
	// Cash settles on the spot; gateway methods stay unpaid until the
	// provider's confirmation callback arrives.
	if !method.Gateway() {
		payment.Paid = true
		payment.PaidAt = &now
	}

	if err := repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := releaseOccupiedRooms(ctx, repo, roomIDs); err != nil {
		return nil, err
	}

	return &settlement{Rental: rental, Payment: payment, RoomIDs: roomIDs}, nil
}

type RentalService interface {
	CreateWalkIn(ctx context.Context, req *request.CreateWalkInRequest) (*response.RentalResponse, error)
	GetRental(ctx context.Context, rentalID string) (*response.RentalResponse, error)
	GetCustomerRentals(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RentalResponse], error)
	CheckOutRental(ctx context.Context, rentalID string, req *request.CheckOutRequest) (*response.CheckOutResponse, error)
}

type rentalService struct {
	db     database.PgxIface
	repo   *repository.Repository
	notifs NotificationSender
	log    *zap.Logger
}

func NewRentalService(db database.PgxIface, repo *repository.Repository, notifs NotificationSender, log *zap.Logger) RentalService {
	return &rentalService{
		db:     db,
		repo:   repo,
		notifs: notifs,
		log:    log.With(zap.String("service", "rental")),
	}
}

// CreateWalkIn starts a stay for a guest with no prior booking. The same
// availability and capacity rules as booking creation apply; the rooms
// go straight to occupied.
func (s *rentalService) CreateWalkIn(ctx context.Context, req *request.CreateWalkInRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create walk-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, req.CustomerID)
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out_date must be RFC 3339, got %q", ErrValidation, req.CheckOut)
	}

	now := time.Now()
	if !now.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-out must be in the future", ErrValidation)
	}

	customer, err := s.repo.User.FindByID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, req.CustomerID)
	}

	roomIDs := make([]uuid.UUID, len(req.RoomIDs))
	for i, idStr := range req.RoomIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, idStr)
		}
		roomIDs[i] = id
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	locked, err := txRepo.Room.LockByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	if len(locked) != len(roomIDs) {
		return nil, fmt.Errorf("%w: one or more rooms do not exist", ErrNotFound)
	}
	for _, room := range locked {
		if room.Status == entity.RoomStatusOccupied {
			return nil, fmt.Errorf("%w: room %s is occupied", ErrConflict, room.RoomNumber)
		}
	}

	if conflict, err := txRepo.Booking.FindConflicting(ctx, roomIDs, now, checkOut, nil); err != nil {
		return nil, fmt.Errorf("check booking conflicts: %w", err)
	} else if conflict != nil {
		return nil, fmt.Errorf("%w: booking %s already holds a requested room %s to %s",
			ErrConflict, conflict.ID.String(),
			conflict.CheckInDate.Format("2006-01-02"), conflict.CheckOutDate.Format("2006-01-02"))
	}
	if conflict, err := txRepo.Rental.FindConflicting(ctx, roomIDs, now, checkOut); err != nil {
		return nil, fmt.Errorf("check rental conflicts: %w", err)
	} else if conflict != nil {
		return nil, fmt.Errorf("%w: rental %s already occupies a requested room", ErrConflict, conflict.ID.String())
	}

	rooms, err := txRepo.Room.FindWithTypeByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("load room pricing: %w", err)
	}

	price, err := CalculatePrice(rooms, now, checkOut, req.GuestCount, 0)
	if err != nil {
		return nil, err
	}

	rental := &entity.RoomRental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:   customerUUID,
		CheckInDate:  now,
		CheckOutDate: checkOut,
		TotalPrice:   price.Total,
		GuestCount:   req.GuestCount,
	}

	if err := txRepo.Rental.Create(ctx, rental); err != nil {
		return nil, err
	}
	if err := txRepo.Rental.AddRooms(ctx, rental.ID, roomIDs); err != nil {
		if errors.Is(err, repository.ErrRoomOccupied) {
			return nil, fmt.Errorf("%w: %s", ErrConflict, err)
		}
		return nil, err
	}

	if err := occupyRooms(ctx, txRepo, roomIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit walk-in: %w", err)
	}

	s.notifs.Notify(ctx, customerUUID, entity.NotificationCheckInReminder,
		"Checked in",
		fmt.Sprintf("Welcome! You are checked in until %s.", checkOut.Format("2006-01-02")))

	if err := recomputeCustomerStats(ctx, s.repo, customerUUID); err != nil {
		s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", req.CustomerID))
	}

	s.log.Info("Walk-in rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("customer_id", req.CustomerID),
		zap.Int("rooms", len(roomIDs)),
		zap.Float64("quoted_price", price.Total),
	)

	resp := response.RentalToResponse(rental, req.RoomIDs)
	return &resp, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID string) (*response.RentalResponse, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rental ID %s", ErrValidation, rentalID)
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rental: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("%w: rental %s", ErrNotFound, rentalID)
	}

	roomIDs, err := s.repo.Rental.RoomIDs(ctx, rental.ID)
	if err != nil {
		return nil, err
	}
	roomIDStrings := make([]string, len(roomIDs))
	for i, rid := range roomIDs {
		roomIDStrings[i] = rid.String()
	}

	resp := response.RentalToResponse(rental, roomIDStrings)
	return &resp, nil
}

func (s *rentalService) GetCustomerRentals(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RentalResponse], error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	rentals, total, err := s.repo.Rental.FindByCustomer(ctx, customerUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list rentals", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("list rentals: %w", err)
	}

	items := make([]response.RentalResponse, len(rentals))
	for i, rental := range rentals {
		items[i] = response.RentalToResponse(rental, nil)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, int64(total)), nil
}

// CheckOutRental settles a rental directly, the staff path for walk-ins.
// Rentals attached to a booking also move the booking to checked_out.
func (s *rentalService) CheckOutRental(ctx context.Context, rentalID string, req *request.CheckOutRequest) (*response.CheckOutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rental ID %s", ErrValidation, rentalID)
	}

	var discountCodeID *uuid.UUID
	if req.DiscountCodeID != nil {
		codeID, err := uuid.Parse(*req.DiscountCodeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid discount code ID %s", ErrValidation, *req.DiscountCodeID)
		}
		discountCodeID = &codeID
	}

	now := time.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	rental, err := txRepo.Rental.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rental: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("%w: rental %s", ErrNotFound, rentalID)
	}

	settlement, err := settleRental(ctx, txRepo, rental, entity.PaymentMethod(req.PaymentMethod), discountCodeID, now)
	if err != nil {
		return nil, err
	}

	if rental.BookingID != nil {
		if _, err := txRepo.Booking.UpdateStatus(ctx, *rental.BookingID,
			[]entity.BookingStatus{entity.BookingStatusCheckedIn}, entity.BookingStatusCheckedOut); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit check-out: %w", err)
	}

	s.notifs.Notify(ctx, rental.CustomerID, entity.NotificationCheckOutReminder,
		"Checked out",
		fmt.Sprintf("Thank you for staying with us. Your bill is %.2f.", settlement.Payment.Amount))

	if settlement.Payment.Paid {
		if err := recomputeCustomerStats(ctx, s.repo, rental.CustomerID); err != nil {
			s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", rental.CustomerID.String()))
		}
	}

	s.log.Info("Rental checked out",
		zap.String("rental_id", rentalID),
		zap.String("payment_method", req.PaymentMethod),
		zap.Float64("amount", settlement.Payment.Amount),
		zap.Bool("paid", settlement.Payment.Paid),
	)

	return &response.CheckOutResponse{
		Rental:  response.RentalToResponse(settlement.Rental, settlement.RoomIDStrings()),
		Payment: response.PaymentToResponse(settlement.Payment),
	}, nil
}
