package middleware

import (
	"net/http"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Permission names gate individual actions. The mapping below is the
// single source of truth for role-based access; handlers never check
// role strings themselves.
const (
	PermManageUsers        = "can_manage_users"
	PermManageRooms        = "can_manage_rooms"
	PermManageBookings     = "can_manage_bookings"
	PermManagePayments     = "can_manage_payments"
	PermCreateDiscountCode = "can_create_discount_code"
	PermViewStats          = "can_view_stats"
	PermCheckIn            = "can_check_in"
	PermCheckOut           = "can_check_out"
	PermConfirmBooking     = "can_confirm_booking"
	PermCreateNotification = "can_create_notification"
	PermModifyRoomType     = "can_modify_room_type"
	PermAccessAllBookings  = "can_access_all_bookings"
	PermAccessAllRentals   = "can_access_all_rentals"
	PermAccessAllPayments  = "can_access_all_payments"
	PermCreateBooking      = "can_create_booking"
)

// RolePermissions maps role -> allowed actions.
var RolePermissions = map[string][]string{
	"admin": {
		PermManageUsers,
		PermManageRooms,
		PermManageBookings,
		PermManagePayments,
		PermCreateDiscountCode,
		PermViewStats,
		PermCheckIn,
		PermCheckOut,
		PermConfirmBooking,
		PermCreateNotification,
		PermModifyRoomType,
		PermAccessAllBookings,
		PermAccessAllRentals,
		PermAccessAllPayments,
		PermCreateBooking,
	},
	"owner": {
		PermManageRooms,
		PermManageBookings,
		PermManagePayments,
		PermCreateDiscountCode,
		PermViewStats,
		PermCheckIn,
		PermCheckOut,
		PermConfirmBooking,
		PermCreateNotification,
		PermModifyRoomType,
		PermAccessAllBookings,
		PermAccessAllRentals,
		PermAccessAllPayments,
		PermCreateBooking,
	},
	"staff": {
		PermManageRooms,
		PermManageBookings,
		PermManagePayments,
		PermCheckIn,
		PermCheckOut,
		PermConfirmBooking,
		PermAccessAllBookings,
		PermAccessAllRentals,
		PermAccessAllPayments,
		PermCreateBooking,
	},
	"customer": {
		PermCreateBooking,
	},
}

// HasPermission consults the policy table.
func HasPermission(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// RequirePermission gates a route on a policy-table permission. Must run
// after AuthSession.
func RequirePermission(permission string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !HasPermission(role, permission) {
				logger.Warn("Permission denied",
					zap.String("role", role),
					zap.String("permission", permission),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// APIKey guards machine-to-machine task endpoints (external cron).
func APIKey(key string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || r.Header.Get("X-API-Key") != key {
				logger.Warn("Task endpoint rejected: bad API key", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
