package app

import (
	"go-clocker/internal/attendance"
	"go-clocker/internal/auth"
	"go-clocker/internal/employee"
	"go-clocker/internal/leave"

	"gorm.io/gorm"
)

// Tables written with raw SQL have no gorm model and are created here.
var rawSchema = []string{
	`CREATE TABLE IF NOT EXISTS company_counters (
	company_id uuid NOT NULL,
	counter_type varchar(50) NOT NULL,
	last_value bigint NOT NULL DEFAULT 0,
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (company_id, counter_type)
)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id text,
	aggregate_type varchar(50) NOT NULL,
	aggregate_id uuid NOT NULL,
	event_type varchar(100) NOT NULL,
	topic varchar(200) NOT NULL,
	payload jsonb NOT NULL,
	status varchar(20) NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	next_retry_at timestamptz,
	error_message text,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created ON outbox_events (status, created_at)`,
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&auth.User{},
		&attendance.Event{},
		&leave.Leave{},
	); err != nil {
		return err
	}
	for _, stmt := range rawSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
