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
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	GetRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                req.Name,
		Description:         req.Description,
		BasePrice:           req.BasePrice,
		MaxGuests:           req.MaxGuests,
		ExtraGuestSurcharge: req.ExtraGuestSurcharge,
		Amenities:           req.Amenities,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: room type %s already exists", ErrConflict, req.Name)
		}
		s.log.Error("Failed to create room type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("name", roomType.Name))

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) GetRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list room types", zap.Error(err))
		return nil, fmt.Errorf("list room types: %w", err)
	}

	responses := make([]response.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		responses[i] = response.RoomTypeToResponse(rt)
	}

	return responses, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room type ID %s", ErrValidation, req.RoomTypeID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find room type: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("%w: room type %s", ErrNotFound, req.RoomTypeID)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber: req.RoomNumber,
		RoomTypeID: roomTypeID,
		Status:     entity.RoomStatusAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: room number %s already exists", ErrConflict, req.RoomNumber)
		}
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber))

	resp := response.RoomToResponse(room)
	resp.RoomType = roomType.Name
	resp.BasePrice = roomType.BasePrice
	resp.MaxGuests = roomType.MaxGuests
	return &resp, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	rooms, err := s.repo.Room.FindWithTypeByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}

	resp := response.RoomWithTypeToResponse(rooms[0])
	return &resp, nil
}

func (s *roomService) GetRooms(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	var roomTypeID *uuid.UUID
	if req.RoomTypeID != nil {
		id, err := uuid.Parse(*req.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room type ID %s", ErrValidation, *req.RoomTypeID)
		}
		roomTypeID = &id
	}

	rooms, total, err := s.repo.Room.FindAll(ctx, req.Status, roomTypeID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	items := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = response.RoomWithTypeToResponse(room)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, int64(total)), nil
}
