package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_employee_number,priority:1"`
	EmployeeNumber   string    `gorm:"uniqueIndex:uq_employee_number,priority:2"`
	FullName         string
	Email            string  `gorm:"uniqueIndex:uq_employee_email"`
	HourlyRate       float64 `gorm:"type:numeric(12,2);not null;default:0"`
	DefaultWorkplace string  `gorm:"type:varchar(10);not null;default:'office'"`
	IsActive         bool    `gorm:"default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
