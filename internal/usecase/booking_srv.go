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
	"hotel-booking/internal/gateway"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingByShareToken(ctx context.Context, token string) (*response.BookingResponse, error)
	GetCustomerBookings(ctx context.Context, customerID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID string, req *request.CheckInRequest) (*response.CheckInResponse, error)
	CheckOut(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*response.CheckOutResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	notifs NotificationSender
	qr     gateway.QRGenerator
	loc    *time.Location
	log    *zap.Logger
}

func NewBookingService(
	db database.PgxIface,
	repo *repository.Repository,
	config *utils.Config,
	notifs NotificationSender,
	qr gateway.QRGenerator,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		db:     db,
		repo:   repo,
		config: config,
		notifs: notifs,
		qr:     qr,
		loc:    config.Hotel.Location(),
		log:    log.With(zap.String("service", "booking")),
	}
}

// dateOnly truncates a timestamp to its calendar date in the given zone.
// Every "today" comparison in the booking lifecycle goes through this so
// the check-in guard and the reconciliation sweep agree on what day it is.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// rentalCheckOut returns the scheduled check-out for a rental opened at
// now. A late arrival on or past the booked check-out date still gets a
// stay, ending at the next hotel-time midnight, so the rental's checkout
// always lies after its check-in.
func rentalCheckOut(now, scheduled time.Time, loc *time.Location) time.Time {
	if now.Before(scheduled) {
		return scheduled
	}
	return dateOnly(now, loc).AddDate(0, 0, 1)
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in_date must be RFC 3339, got %q", ErrValidation, req.CheckIn)
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out_date must be RFC 3339, got %q", ErrValidation, req.CheckOut)
	}

	now := time.Now()
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-in %s is not before check-out %s",
			ErrValidation, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	}
	if dateOnly(checkIn, s.loc).Before(dateOnly(now, s.loc)) {
		return nil, fmt.Errorf("%w: check-in date is in the past", ErrValidation)
	}
	horizon := dateOnly(now, s.loc).AddDate(0, 0, s.config.Hotel.BookingHorizonDays)
	if dateOnly(checkIn, s.loc).After(horizon) {
		return nil, fmt.Errorf("%w: check-in more than %d days ahead",
			ErrValidation, s.config.Hotel.BookingHorizonDays)
	}

	roomIDs := make([]uuid.UUID, len(req.RoomIDs))
	for i, idStr := range req.RoomIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, idStr)
		}
		roomIDs[i] = id
	}

	var discountPct float64
	if req.DiscountCode != nil {
		code, err := s.repo.Discount.FindByCode(ctx, *req.DiscountCode)
		if err != nil {
			return nil, fmt.Errorf("find discount code: %w", err)
		}
		if code == nil {
			return nil, fmt.Errorf("%w: discount code %s", ErrNotFound, *req.DiscountCode)
		}
		if !code.Valid(now) {
			return nil, fmt.Errorf("%w: discount code %s is not currently valid", ErrValidation, *req.DiscountCode)
		}
		discountPct = code.DiscountPercentage
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	// Row locks on the rooms make the availability read-check-write
	// race-free: of two concurrent creates on the same room, the second
	// blocks here and then sees the first one's booking.
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

	if conflict, err := txRepo.Booking.FindConflicting(ctx, roomIDs, checkIn, checkOut, nil); err != nil {
		return nil, fmt.Errorf("check booking conflicts: %w", err)
	} else if conflict != nil {
		return nil, fmt.Errorf("%w: booking %s already holds a requested room %s to %s",
			ErrConflict, conflict.ID.String(),
			conflict.CheckInDate.Format("2006-01-02"), conflict.CheckOutDate.Format("2006-01-02"))
	}

	if conflict, err := txRepo.Rental.FindConflicting(ctx, roomIDs, checkIn, checkOut); err != nil {
		return nil, fmt.Errorf("check rental conflicts: %w", err)
	} else if conflict != nil {
		return nil, fmt.Errorf("%w: rental %s already occupies a requested room", ErrConflict, conflict.ID.String())
	}

	rooms, err := txRepo.Room.FindWithTypeByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("load room pricing: %w", err)
	}

	price, err := CalculatePrice(rooms, checkIn, checkOut, req.GuestCount, discountPct)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:      customerUUID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalPrice:      price.Total,
		GuestCount:      req.GuestCount,
		Status:          entity.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		ShareToken:      uuid.New(),
	}

	if err := txRepo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}
	if err := txRepo.Booking.AddRooms(ctx, booking.ID, roomIDs); err != nil {
		return nil, err
	}

	// Same-day bookings claim their rooms immediately; future-dated ones
	// leave rooms available until the reconciliation sweep promotes them.
	if !dateOnly(checkIn, s.loc).After(dateOnly(now, s.loc)) {
		if _, err := promoteRoomsToBooked(ctx, txRepo, roomIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	s.notifs.Notify(ctx, customerUUID, entity.NotificationBookingConfirmation,
		"Booking received",
		fmt.Sprintf("Your booking from %s to %s has been received and is pending confirmation.",
			checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02")))

	if err := recomputeCustomerStats(ctx, s.repo, customerUUID); err != nil {
		s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", customerID))
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID),
		zap.Int("rooms", len(roomIDs)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, req.RoomIDs)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) GetBookingByShareToken(ctx context.Context, token string) (*response.BookingResponse, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid share token", ErrValidation)
	}

	booking, err := s.repo.Booking.FindByShareToken(ctx, tokenUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking by share token: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: no booking for this token", ErrNotFound)
	}

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) GetCustomerBookings(ctx context.Context, customerID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	bookings, total, err := s.repo.Booking.FindByCustomer(ctx, customerUUID, status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list customer bookings", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp, err := s.buildBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		items[i] = *resp
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, int64(total)), nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	booking, err := txRepo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can be confirmed", ErrState, booking.Status)
	}

	roomIDs, err := txRepo.Booking.RoomIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	locked, err := txRepo.Room.LockByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	for _, room := range locked {
		if room.Status == entity.RoomStatusOccupied {
			return nil, fmt.Errorf("%w: room %s is occupied by another stay", ErrConflict, room.RoomNumber)
		}
	}

	ok, err := txRepo.Booking.UpdateStatus(ctx, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusPending}, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking is no longer pending", ErrState)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}
	booking.Status = entity.BookingStatusConfirmed

	// QR generation happens outside the transaction; a slow or failed
	// external call must not hold locks or undo the confirm.
	if url := s.qr.BookingQRURL(booking.ShareToken.String()); url != "" {
		if err := s.repo.Booking.SetQRCode(ctx, booking.ID, url); err != nil {
			s.log.Warn("Failed to store QR code URL", zap.Error(err), zap.String("booking_id", bookingID))
		} else {
			booking.QRCodeURL = &url
		}
	}

	s.notifs.Notify(ctx, booking.CustomerID, entity.NotificationBookingConfirmation,
		"Booking confirmed",
		fmt.Sprintf("Your booking from %s to %s is confirmed. Present your QR code at check-in.",
			booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02")))

	s.log.Info("Booking confirmed", zap.String("booking_id", bookingID))

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string, req *request.CheckInRequest) (*response.CheckInResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	now := time.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	booking, err := txRepo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s, only confirmed bookings can check in", ErrState, booking.Status)
	}

	// No early check-in; late arrival within the no-show window is fine.
	if dateOnly(now, s.loc).Before(dateOnly(booking.CheckInDate, s.loc)) {
		return nil, fmt.Errorf("%w: check-in starts on %s", ErrState, booking.CheckInDate.In(s.loc).Format("2006-01-02"))
	}

	roomIDs, err := txRepo.Booking.RoomIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	locked, err := txRepo.Room.LockByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("lock rooms: %w", err)
	}
	for _, room := range locked {
		if room.Status == entity.RoomStatusOccupied {
			return nil, fmt.Errorf("%w: room %s is occupied by another stay", ErrConflict, room.RoomNumber)
		}
	}

	rooms, err := txRepo.Room.FindWithTypeByIDs(ctx, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("load room pricing: %w", err)
	}

	// The actual headcount may differ from the quote, so the price is
	// recomputed here and becomes the booking's total.
	price, err := CalculatePrice(rooms, booking.CheckInDate, booking.CheckOutDate, req.ActualGuestCount, 0)
	if err != nil {
		return nil, err
	}

	rental := &entity.RoomRental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:    &booking.ID,
		CustomerID:   booking.CustomerID,
		CheckInDate:  now,
		CheckOutDate: rentalCheckOut(now, booking.CheckOutDate, s.loc),
		TotalPrice:   price.Total,
		GuestCount:   req.ActualGuestCount,
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

	ok, err := txRepo.Booking.UpdateStatus(ctx, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusConfirmed}, entity.BookingStatusCheckedIn)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking is no longer confirmed", ErrState)
	}
	if err := txRepo.Booking.UpdateDetails(ctx, booking.ID, req.ActualGuestCount, price.Total, booking.SpecialRequests); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit check-in: %w", err)
	}

	booking.Status = entity.BookingStatusCheckedIn
	booking.GuestCount = req.ActualGuestCount
	booking.TotalPrice = price.Total

	s.notifs.Notify(ctx, booking.CustomerID, entity.NotificationCheckInReminder,
		"Checked in",
		fmt.Sprintf("Welcome! You are checked in until %s.", booking.CheckOutDate.In(s.loc).Format("2006-01-02")))

	if err := recomputeCustomerStats(ctx, s.repo, booking.CustomerID); err != nil {
		s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", booking.CustomerID.String()))
	}

	s.log.Info("Booking checked in",
		zap.String("booking_id", bookingID),
		zap.String("rental_id", rental.ID.String()),
		zap.Int("actual_guests", req.ActualGuestCount),
		zap.Float64("total_price", price.Total),
	)

	roomIDStrings := make([]string, len(roomIDs))
	for i, rid := range roomIDs {
		roomIDStrings[i] = rid.String()
	}

	return &response.CheckInResponse{
		Booking: response.BookingToResponse(booking, roomIDStrings),
		Rental:  response.RentalToResponse(rental, roomIDStrings),
	}, nil
}

func (s *bookingService) CheckOut(ctx context.Context, bookingID string, req *request.CheckOutRequest) (*response.CheckOutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
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

	booking, err := txRepo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	rental, err := txRepo.Rental.FindOpenByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("find rental: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("%w: booking %s has no open rental", ErrConflict, bookingID)
	}

	settlement, err := settleRental(ctx, txRepo, rental, entity.PaymentMethod(req.PaymentMethod), discountCodeID, now)
	if err != nil {
		return nil, err
	}

	ok, err := txRepo.Booking.UpdateStatus(ctx, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusCheckedIn}, entity.BookingStatusCheckedOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking is %s, cannot check out", ErrState, booking.Status)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit check-out: %w", err)
	}

	s.notifs.Notify(ctx, booking.CustomerID, entity.NotificationCheckOutReminder,
		"Checked out",
		fmt.Sprintf("Thank you for staying with us. Your bill is %.2f.", settlement.Payment.Amount))

	if settlement.Payment.Paid {
		if err := recomputeCustomerStats(ctx, s.repo, booking.CustomerID); err != nil {
			s.log.Warn("Failed to recompute customer stats", zap.Error(err), zap.String("customer_id", booking.CustomerID.String()))
		}
	}

	s.log.Info("Booking checked out",
		zap.String("booking_id", bookingID),
		zap.String("rental_id", rental.ID.String()),
		zap.String("payment_method", req.PaymentMethod),
		zap.Float64("amount", settlement.Payment.Amount),
		zap.Bool("paid", settlement.Payment.Paid),
	)

	return &response.CheckOutResponse{
		Rental:  response.RentalToResponse(settlement.Rental, settlement.RoomIDStrings()),
		Payment: response.PaymentToResponse(settlement.Payment),
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	txRepo := s.repo.WithTx(tx)

	booking, err := txRepo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s, cannot cancel", ErrState, booking.Status)
	}

	ok, err := txRepo.Booking.UpdateStatus(ctx, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed},
		entity.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking is no longer cancellable", ErrState)
	}

	roomIDs, err := txRepo.Booking.RoomIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if _, err := releaseBookedRooms(ctx, txRepo, roomIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.notifs.Notify(ctx, booking.CustomerID, entity.NotificationBookingConfirmation,
		"Booking cancelled",
		fmt.Sprintf("Your booking from %s to %s has been cancelled.",
			booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02")))

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	roomIDs, err := s.repo.Booking.RoomIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	roomIDStrings := make([]string, len(roomIDs))
	for i, id := range roomIDs {
		roomIDStrings[i] = id.String()
	}

	resp := response.BookingToResponse(booking, roomIDStrings)
	return &resp, nil
}
