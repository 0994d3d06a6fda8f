package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository stubs for service tests. Each stub keeps just
// enough state to reproduce the guarded-UPDATE semantics of the real
// SQL: a write whose precondition no longer holds reports false and
// changes nothing.

type stubRoomRepo struct {
	statuses map[uuid.UUID]entity.RoomStatus
	rooms    []*entity.RoomWithType
}

func (s *stubRoomRepo) Create(ctx context.Context, room *entity.Room) error { return nil }

func (s *stubRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) FindAll(ctx context.Context, status string, roomTypeID *uuid.UUID, limit, offset int) ([]*entity.RoomWithType, int, error) {
	return nil, 0, nil
}

func (s *stubRoomRepo) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RoomWithType, error) {
	return s.rooms, nil
}

func (s *stubRoomRepo) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Room, error) {
	return nil, nil
}

func (s *stubRoomRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.RoomStatus, to entity.RoomStatus) (bool, error) {
	current := s.statuses[id]
	for _, f := range from {
		if current == f {
			s.statuses[id] = to
			return true, nil
		}
	}
	return false, nil
}

type stubBookingRepo struct {
	statuses map[uuid.UUID]entity.BookingStatus
	roomIDs  map[uuid.UUID][]uuid.UUID
	due      []*entity.Booking
	overdue  []*entity.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error { return nil }

func (s *stubBookingRepo) AddRooms(ctx context.Context, bookingID uuid.UUID, roomIDs []uuid.UUID) error {
	return nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) FindByShareToken(ctx context.Context, token uuid.UUID) (*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, status string, limit, offset int) ([]*entity.Booking, int, error) {
	return nil, 0, nil
}

func (s *stubBookingRepo) RoomIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return s.roomIDs[bookingID], nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (bool, error) {
	current := s.statuses[id]
	for _, f := range from {
		if current == f {
			s.statuses[id] = to
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBookingRepo) UpdateDetails(ctx context.Context, id uuid.UUID, guestCount int, totalPrice float64, specialRequests *string) error {
	return nil
}

func (s *stubBookingRepo) SetQRCode(ctx context.Context, id uuid.UUID, url string) error {
	return nil
}

func (s *stubBookingRepo) FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) FindActiveDueForPromotion(ctx context.Context, before time.Time) ([]*entity.Booking, error) {
	return s.due, nil
}

func (s *stubBookingRepo) FindOverdue(ctx context.Context, cutoff time.Time) ([]*entity.Booking, error) {
	return s.overdue, nil
}

type stubRentalRepo struct {
	open       map[uuid.UUID]bool
	roomIDs    map[uuid.UUID][]uuid.UUID
	closeCalls int
}

func (s *stubRentalRepo) Create(ctx context.Context, rental *entity.RoomRental) error { return nil }

func (s *stubRentalRepo) AddRooms(ctx context.Context, rentalID uuid.UUID, roomIDs []uuid.UUID) error {
	return nil
}

func (s *stubRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRental, error) {
	return nil, nil
}

func (s *stubRentalRepo) FindOpenByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.RoomRental, error) {
	return nil, nil
}

func (s *stubRentalRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.RoomRental, int, error) {
	return nil, 0, nil
}

func (s *stubRentalRepo) RoomIDs(ctx context.Context, rentalID uuid.UUID) ([]uuid.UUID, error) {
	return s.roomIDs[rentalID], nil
}

func (s *stubRentalRepo) Close(ctx context.Context, id uuid.UUID, actualCheckOut time.Time, finalPrice float64) (bool, error) {
	s.closeCalls++
	if s.open[id] {
		s.open[id] = false
		return true, nil
	}
	return false, nil
}

func (s *stubRentalRepo) FindConflicting(ctx context.Context, roomIDs []uuid.UUID, checkIn, checkOut time.Time) (*entity.RoomRental, error) {
	return nil, nil
}

type stubPaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	byTxnRef map[string]*entity.Payment
	created  []*entity.Payment
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	s.created = append(s.created, payment)
	return nil
}

func (s *stubPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return s.payments[id], nil
}

func (s *stubPaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	return s.byTxnRef[transactionID], nil
}

func (s *stubPaymentRepo) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*entity.Payment, error) {
	return nil, nil
}

func (s *stubPaymentRepo) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	p := s.payments[id]
	if p == nil || p.Paid {
		return false, nil
	}
	p.Paid = true
	p.PaidAt = &paidAt
	return true, nil
}

func (s *stubPaymentRepo) DetachDiscount(ctx context.Context, id uuid.UUID) (bool, error) {
	p := s.payments[id]
	if p == nil || p.Paid || p.DiscountCodeID == nil {
		return false, nil
	}
	p.DiscountCodeID = nil
	return true, nil
}

func (s *stubPaymentRepo) SumPaidByCustomer(ctx context.Context, customerID uuid.UUID) (float64, error) {
	var total float64
	for _, p := range s.payments {
		if p.CustomerID == customerID && p.Paid {
			total += p.Amount
		}
	}
	return total, nil
}

type stubDiscountRepo struct {
	codes      map[uuid.UUID]*entity.DiscountCode
	decrements int
}

func (s *stubDiscountRepo) Create(ctx context.Context, code *entity.DiscountCode) error { return nil }

func (s *stubDiscountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error) {
	return s.codes[id], nil
}

func (s *stubDiscountRepo) FindByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	return nil, nil
}

func (s *stubDiscountRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.DiscountCode, error) {
	return nil, nil
}

func (s *stubDiscountRepo) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	code := s.codes[id]
	if code == nil {
		return false, nil
	}
	if code.MaxUses != nil && code.UsedCount >= *code.MaxUses {
		return false, nil
	}
	code.UsedCount++
	return true, nil
}

func (s *stubDiscountRepo) DecrementUsage(ctx context.Context, id uuid.UUID) error {
	s.decrements++
	if code := s.codes[id]; code != nil && code.UsedCount > 0 {
		code.UsedCount--
	}
	return nil
}

func (s *stubDiscountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return nil
}

type stubUserRepo struct {
	bookings   int64
	statsCalls int
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountBookings(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return s.bookings, nil
}

func (s *stubUserRepo) UpdateCustomerStats(ctx context.Context, id uuid.UUID, totalBookings int, totalSpent float64, customerType entity.CustomerType) error {
	s.statsCalls++
	return nil
}

type stubNotifier struct {
	sent int
}

func (s *stubNotifier) Notify(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string) {
	s.sent++
}

// stubDB fails every call. Sweep tests use it to prove that a booking
// whose transaction cannot even start is reported, not silently dropped.
type stubDB struct {
	err error
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, s.err
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, s.err
}

func (s *stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, s.err }

func (s *stubDB) Ping(ctx context.Context) error { return s.err }

func (s *stubDB) Close() {}
