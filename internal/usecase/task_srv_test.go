package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoShowBookingIdempotent(t *testing.T) {
	bookingID := uuid.New()
	bookedRoom := uuid.New()
	occupiedRoom := uuid.New()

	bookings := &stubBookingRepo{
		statuses: map[uuid.UUID]entity.BookingStatus{bookingID: entity.BookingStatusConfirmed},
		roomIDs:  map[uuid.UUID][]uuid.UUID{bookingID: {bookedRoom, occupiedRoom}},
	}
	rooms := &stubRoomRepo{
		statuses: map[uuid.UUID]entity.RoomStatus{
			bookedRoom:   entity.RoomStatusBooked,
			occupiedRoom: entity.RoomStatusOccupied,
		},
	}
	repo := &repository.Repository{Booking: bookings, Room: rooms}

	released, err := noShowBooking(context.Background(), repo, bookingID)
	require.NoError(t, err)

	assert.Equal(t, 1, released)
	assert.Equal(t, entity.BookingStatusNoShow, bookings.statuses[bookingID])
	assert.Equal(t, entity.RoomStatusAvailable, rooms.statuses[bookedRoom])
	// The room running an unrelated stay stays untouched.
	assert.Equal(t, entity.RoomStatusOccupied, rooms.statuses[occupiedRoom])

	// A second sweep finds the booking already terminal and changes
	// nothing.
	released, err = noShowBooking(context.Background(), repo, bookingID)
	assert.ErrorIs(t, err, ErrState)
	assert.Equal(t, 0, released)
	assert.Equal(t, entity.RoomStatusOccupied, rooms.statuses[occupiedRoom])
}

func TestPromoteRoomsToBookedIdempotent(t *testing.T) {
	available := uuid.New()
	occupied := uuid.New()
	rooms := &stubRoomRepo{
		statuses: map[uuid.UUID]entity.RoomStatus{
			available: entity.RoomStatusAvailable,
			occupied:  entity.RoomStatusOccupied,
		},
	}
	repo := &repository.Repository{Room: rooms}

	changed, err := promoteRoomsToBooked(context.Background(), repo, []uuid.UUID{available, occupied})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, entity.RoomStatusBooked, rooms.statuses[available])

	changed, err = promoteRoomsToBooked(context.Background(), repo, []uuid.UUID{available, occupied})
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestRunReconciliationCountsBookingOnce(t *testing.T) {
	roomID := uuid.New()
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		CustomerID:  uuid.New(),
		CheckInDate: time.Now().Add(-48 * time.Hour),
		Status:      entity.BookingStatusConfirmed,
	}

	bookings := &stubBookingRepo{
		statuses: map[uuid.UUID]entity.BookingStatus{booking.ID: entity.BookingStatusConfirmed},
		roomIDs:  map[uuid.UUID][]uuid.UUID{booking.ID: {roomID}},
		due:      []*entity.Booking{booking},
		overdue:  []*entity.Booking{booking},
	}
	rooms := &stubRoomRepo{
		statuses: map[uuid.UUID]entity.RoomStatus{roomID: entity.RoomStatusAvailable},
	}
	repo := &repository.Repository{Booking: bookings, Room: rooms}

	notifier := &stubNotifier{}
	config := &utils.Config{Hotel: utils.HotelConfig{Timezone: "UTC", NoShowGraceHours: 2}}
	db := &stubDB{err: errors.New("connection refused")}
	svc := NewTaskService(db, repo, config, notifier, zap.NewNop())

	report, err := svc.RunReconciliation(context.Background())
	require.NoError(t, err)

	// Due for promotion and overdue at once, still one booking.
	assert.Equal(t, 1, report.BookingsScanned)
	assert.Equal(t, 1, report.RoomsPromoted)
	assert.Equal(t, 0, report.NoShows)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 0, notifier.sent)
}
