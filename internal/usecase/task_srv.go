package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService runs the scheduled reconciliation sweep. The caller is an
// external scheduler with at-least-once delivery, so every step must be
// a no-op when re-run with no time having passed.
type TaskService interface {
	RunReconciliation(ctx context.Context) (*response.SweepReportResponse, error)
}

type taskService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	notifs NotificationSender
	loc    *time.Location
	log    *zap.Logger
}

func NewTaskService(db database.PgxIface, repo *repository.Repository, config *utils.Config, notifs NotificationSender, log *zap.Logger) TaskService {
	return &taskService{
		db:     db,
		repo:   repo,
		config: config,
		notifs: notifs,
		loc:    config.Hotel.Location(),
		log:    log.With(zap.String("service", "task")),
	}
}

// RunReconciliation does two passes. Phase 1 promotes the rooms of
// active bookings whose check-in date has arrived from available to
// booked. Phase 2 turns bookings that blew past the no-show grace
// window into no_show and releases their rooms. One item's failure is
// recorded and the sweep moves on.
func (s *taskService) RunReconciliation(ctx context.Context) (*response.SweepReportResponse, error) {
	now := time.Now()
	report := &response.SweepReportResponse{}

	// A booking can show up in both passes. Count it once.
	seen := make(map[uuid.UUID]struct{})
	scan := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		report.BookingsScanned++
	}

	// Everything with a check-in date of today or earlier, hotel time.
	tomorrow := dateOnly(now, s.loc).AddDate(0, 0, 1)

	due, err := s.repo.Booking.FindActiveDueForPromotion(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("list bookings due for promotion: %w", err)
	}

	for _, booking := range due {
		scan(booking.ID)

		roomIDs, err := s.repo.Booking.RoomIDs(ctx, booking.ID)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("booking %s: %v", booking.ID.String(), err))
			continue
		}

		promoted, err := promoteRoomsToBooked(ctx, s.repo, roomIDs)
		report.RoomsPromoted += promoted
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("booking %s: %v", booking.ID.String(), err))
		}
	}

	grace := time.Duration(s.config.Hotel.NoShowGraceHours) * time.Hour
	cutoff := now.Add(-grace)

	overdue, err := s.repo.Booking.FindOverdue(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list overdue bookings: %w", err)
	}

	for _, booking := range overdue {
		scan(booking.ID)

		released, err := s.markNoShow(ctx, booking)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("booking %s: %v", booking.ID.String(), err))
			continue
		}

		report.NoShows++
		report.RoomsReleased += released

		s.notifs.Notify(ctx, booking.CustomerID, entity.NotificationBookingConfirmation,
			"Booking marked as no-show",
			fmt.Sprintf("Your booking from %s was cancelled because check-in did not happen within %d hours.",
				booking.CheckInDate.In(s.loc).Format("2006-01-02"), s.config.Hotel.NoShowGraceHours))
	}

	s.log.Info("Reconciliation sweep finished",
		zap.Int("bookings_scanned", report.BookingsScanned),
		zap.Int("rooms_promoted", report.RoomsPromoted),
		zap.Int("no_shows", report.NoShows),
		zap.Int("rooms_released", report.RoomsReleased),
		zap.Int("errors", len(report.Errors)),
	)

	return report, nil
}

// markNoShow moves one overdue booking to no_show and frees its booked
// rooms, atomically. The guarded status update makes a concurrent sweep
// or a just-in-time check-in win cleanly: zero rows changed means
// nothing to do.
func (s *taskService) markNoShow(ctx context.Context, booking *entity.Booking) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	released, err := noShowBooking(ctx, s.repo.WithTx(tx), booking.ID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit no-show: %w", err)
	}

	return released, nil
}

// noShowBooking is the transactional body of markNoShow: the guarded
// status update, then a release of the rooms still in booked state.
// Running it a second time finds the booking already in no_show and
// changes nothing.
func noShowBooking(ctx context.Context, repo *repository.Repository, bookingID uuid.UUID) (int, error) {
	ok, err := repo.Booking.UpdateStatus(ctx, bookingID,
		[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed},
		entity.BookingStatusNoShow)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: booking is no longer pending or confirmed", ErrState)
	}

	roomIDs, err := repo.Booking.RoomIDs(ctx, bookingID)
	if err != nil {
		return 0, err
	}

	return releaseBookedRooms(ctx, repo, roomIDs)
}
