package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-clocker/internal/timesheet"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// AttendanceConfig holds the policy values handed to the attendance,
// payroll and report services.
type AttendanceConfig struct {
	Location         *time.Location
	LateThreshold    timesheet.TimeOfDay
	DefaultWorkplace timesheet.Workplace
	// Holidays are YYYY-MM-DD dates excluded from the absence report.
	Holidays map[string]bool
}

// IsHoliday reports whether day (already in Location) is a configured holiday.
func (a AttendanceConfig) IsHoliday(day time.Time) bool {
	return a.Holidays[day.Format(timesheet.DateLayout)]
}

type FaceConfig struct {
	ServiceURL    string
	MinConfidence float64
	Timeout       time.Duration
}

// BootstrapAdminConfig seeds the first administrator of a company on start.
// Nothing is seeded unless all three values are set.
type BootstrapAdminConfig struct {
	CompanyID string
	Email     string
	Password  string
}

func (b BootstrapAdminConfig) Enabled() bool {
	return b.CompanyID != "" && b.Email != "" && b.Password != ""
}

type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	QRSecret    string
	QRTokenTTL  time.Duration
	RedisAddr   string
	KafkaBroker string
	DB          DatabaseConfig
	Attendance  AttendanceConfig
	Face        FaceConfig
	Admin       BootstrapAdminConfig
	PolicyFile  string
}

var defaults = map[string]string{
	"PORT":                "3000",
	"APP_ENV":             "development",
	"DB_SSLMODE":          "disable",
	"REDIS_ADDR":          "localhost:6379",
	"QR_TOKEN_TTL":        "30s",
	"LATE_THRESHOLD":      "10:00",
	"TIMEZONE":            "Asia/Jakarta",
	"DEFAULT_WORKPLACE":   "office",
	"FACE_MIN_CONFIDENCE": "0.8",
	"FACE_TIMEOUT":        "10s",
}

func getenv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaults[key]
}

// Load reads the process environment. godotenv.Load is expected to have run
// already in main.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         getenv("APP_ENV"),
		Port:        getenv("PORT"),
		JWTSecret:   getenv("JWT_SECRET"),
		QRSecret:    getenv("QR_SECRET"),
		RedisAddr:   getenv("REDIS_ADDR"),
		KafkaBroker: getenv("KAFKA_BROKER"),
		DB: DatabaseConfig{
			Host:     getenv("DB_HOST"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			Port:     getenv("DB_PORT"),
			SSLMode:  getenv("DB_SSLMODE"),
		},
		Face: FaceConfig{
			ServiceURL: getenv("FACE_SERVICE_URL"),
		},
		Admin: BootstrapAdminConfig{
			CompanyID: getenv("BOOTSTRAP_COMPANY_ID"),
			Email:     getenv("BOOTSTRAP_ADMIN_EMAIL"),
			Password:  getenv("BOOTSTRAP_ADMIN_PASSWORD"),
		},
		PolicyFile: getenv("POLICY_FILE"),
	}

	var err error
	if cfg.QRTokenTTL, err = time.ParseDuration(getenv("QR_TOKEN_TTL")); err != nil {
		return nil, fmt.Errorf("QR_TOKEN_TTL: %w", err)
	}
	if cfg.Face.Timeout, err = time.ParseDuration(getenv("FACE_TIMEOUT")); err != nil {
		return nil, fmt.Errorf("FACE_TIMEOUT: %w", err)
	}
	if cfg.Face.MinConfidence, err = strconv.ParseFloat(getenv("FACE_MIN_CONFIDENCE"), 64); err != nil {
		return nil, fmt.Errorf("FACE_MIN_CONFIDENCE: %w", err)
	}

	if cfg.Attendance, err = loadAttendance(); err != nil {
		return nil, err
	}
	if cfg.PolicyFile != "" {
		if err := ApplyPolicyFile(cfg.PolicyFile, &cfg.Attendance); err != nil {
			return nil, fmt.Errorf("POLICY_FILE: %w", err)
		}
	}
	return cfg, nil
}

func loadAttendance() (AttendanceConfig, error) {
	loc, err := time.LoadLocation(getenv("TIMEZONE"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("TIMEZONE: %w", err)
	}
	threshold, err := timesheet.ParseTimeOfDay(getenv("LATE_THRESHOLD"))
	if err != nil {
		return AttendanceConfig{}, fmt.Errorf("LATE_THRESHOLD: %w", err)
	}
	workplace := timesheet.Workplace(getenv("DEFAULT_WORKPLACE"))
	if !workplace.Valid() {
		return AttendanceConfig{}, fmt.Errorf("DEFAULT_WORKPLACE: unknown workplace %q", workplace)
	}
	return AttendanceConfig{
		Location:         loc,
		LateThreshold:    threshold,
		DefaultWorkplace: workplace,
		Holidays:         map[string]bool{},
	}, nil
}

// DefaultAttendance is the policy used when nothing is configured.
func DefaultAttendance() AttendanceConfig {
	return AttendanceConfig{
		Location:         time.UTC,
		LateThreshold:    timesheet.DefaultLateThreshold,
		DefaultWorkplace: timesheet.WorkplaceOffice,
		Holidays:         map[string]bool{},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
