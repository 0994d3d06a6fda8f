package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Hotel    HotelConfig
	Task     TaskConfig
	VNPay    VNPayConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// HotelConfig carries the booking policy knobs. Timezone is the single
// local-time base used for every "today" comparison (interactive check-in
// guard and reconciliation sweep alike).
type HotelConfig struct {
	Timezone           string
	BookingHorizonDays int
	NoShowGraceHours   int
	SessionExpiryHours int
}

// Location resolves the configured timezone, falling back to UTC when
// the name cannot be loaded.
func (h HotelConfig) Location() *time.Location {
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type TaskConfig struct {
	APIKey string
}

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("HOTEL_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 28)
	viper.SetDefault("NO_SHOW_GRACE_HOURS", 6)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("VNPAY_BASE_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Hotel: HotelConfig{
			Timezone:           viper.GetString("HOTEL_TIMEZONE"),
			BookingHorizonDays: viper.GetInt("BOOKING_HORIZON_DAYS"),
			NoShowGraceHours:   viper.GetInt("NO_SHOW_GRACE_HOURS"),
			SessionExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Task: TaskConfig{
			APIKey: viper.GetString("TASK_API_KEY"),
		},
		VNPay: VNPayConfig{
			TmnCode:    viper.GetString("VNPAY_TMN_CODE"),
			HashSecret: viper.GetString("VNPAY_HASH_SECRET"),
			BaseURL:    viper.GetString("VNPAY_BASE_URL"),
			ReturnURL:  viper.GetString("VNPAY_RETURN_URL"),
		},
	}

	return config, nil
}
