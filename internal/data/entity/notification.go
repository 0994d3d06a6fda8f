package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingConfirmation NotificationType = "booking_confirmation"
	NotificationCheckInReminder     NotificationType = "check_in_reminder"
	NotificationCheckOutReminder    NotificationType = "check_out_reminder"
	NotificationPromotion           NotificationType = "promotion"
)

type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Type    NotificationType `db:"type"`
	Title   string           `db:"title"`
	Message string           `db:"message"`
	IsRead  bool             `db:"is_read"`
	ReadAt  *time.Time       `db:"read_at"`
}
