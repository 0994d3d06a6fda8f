package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// Room status transitions. Room.status has exactly one writer: these
// functions, invoked from the booking/rental transitions and the
// reconciliation sweep. Every transition is conditional on the current
// status, so an event whose precondition no longer holds is a no-op,
// never an error. In particular a room occupied by an unrelated stay is
// never force-released by another booking's cancellation.

// promoteRoomsToBooked moves available rooms to booked when their
// booking's check-in date has arrived. Returns how many rooms actually
// changed.
func promoteRoomsToBooked(ctx context.Context, repo *repository.Repository, roomIDs []uuid.UUID) (int, error) {
	var changed int
	for _, id := range roomIDs {
		ok, err := repo.Room.TransitionStatus(ctx, id, []entity.RoomStatus{entity.RoomStatusAvailable}, entity.RoomStatusBooked)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
		}
	}
	return changed, nil
}

// occupyRooms marks rooms occupied at check-in, whatever their prior
// status.
func occupyRooms(ctx context.Context, repo *repository.Repository, roomIDs []uuid.UUID) error {
	from := []entity.RoomStatus{entity.RoomStatusAvailable, entity.RoomStatusBooked, entity.RoomStatusOccupied}
	for _, id := range roomIDs {
		if _, err := repo.Room.TransitionStatus(ctx, id, from, entity.RoomStatusOccupied); err != nil {
			return err
		}
	}
	return nil
}

// releaseOccupiedRooms frees rooms when their rental closes.
func releaseOccupiedRooms(ctx context.Context, repo *repository.Repository, roomIDs []uuid.UUID) error {
	for _, id := range roomIDs {
		if _, err := repo.Room.TransitionStatus(ctx, id, []entity.RoomStatus{entity.RoomStatusOccupied}, entity.RoomStatusAvailable); err != nil {
			return err
		}
	}
	return nil
}

// releaseBookedRooms frees booked rooms on cancel or no-show. Occupied
// rooms are left alone. Returns how many rooms actually changed.
func releaseBookedRooms(ctx context.Context, repo *repository.Repository, roomIDs []uuid.UUID) (int, error) {
	var changed int
	for _, id := range roomIDs {
		ok, err := repo.Room.TransitionStatus(ctx, id, []entity.RoomStatus{entity.RoomStatusBooked}, entity.RoomStatusAvailable)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
		}
	}
	return changed, nil
}
