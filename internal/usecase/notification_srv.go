package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationSender is the fire-and-forget message sink the state
// machines emit into. Delivery failures are logged, never propagated:
// a missing notification must not fail a check-in.
type NotificationSender interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string)
}

type notificationSender struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationSender(repo *repository.Repository, log *zap.Logger) NotificationSender {
	return &notificationSender{
		repo: repo,
		log:  log.With(zap.String("service", "notifier")),
	}
}

func (s *notificationSender) Notify(ctx context.Context, userID uuid.UUID, notifType entity.NotificationType, title, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to deliver notification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("type", string(notifType)),
		)
	}
}

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	notifications, total, err := s.repo.Notification.FindByUser(ctx, userUUID, unreadOnly, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	items := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = response.NotificationToResponse(n)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, int64(total)), nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	notifUUID, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("%w: invalid notification ID %s", ErrValidation, notificationID)
	}

	ok, err := s.repo.Notification.MarkRead(ctx, notifUUID, userUUID, time.Now())
	if err != nil {
		s.log.Error("Failed to mark notification read", zap.Error(err), zap.String("notification_id", notificationID))
		return fmt.Errorf("mark notification read: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: notification %s", ErrNotFound, notificationID)
	}

	return nil
}
