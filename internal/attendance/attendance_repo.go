package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-clocker/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter narrows the paginated event listing. Zero values mean "any".
type ListFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// LockEmployee serialises writers for one employee until the
	// surrounding transaction ends.
	LockEmployee(ctx context.Context, employeeID string) error
	Create(ctx context.Context, e *Event) error
	LastByEmployee(ctx context.Context, companyID, employeeID string) (*Event, error)
	// FindByEmployeeBetween returns events with from <= occurred_at < to.
	FindByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Event, error)
	FindByCompanyBetween(ctx context.Context, companyID string, from, to time.Time) ([]Event, error)
	// FirstAfter returns, per employee, the earliest event at or after at.
	// Employees with nothing recorded since are left out.
	FirstAfter(ctx context.Context, companyID string, employeeIDs []string, at time.Time) ([]Event, error)
	FindPage(ctx context.Context, companyID string, filter ListFilter) ([]Event, int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return tenant.Conn(ctx, r.db, r.tx)
}

// chronological keeps ties in insertion order so pairing is deterministic.
func chronological(db *gorm.DB) *gorm.DB {
	return db.Order("occurred_at ASC, created_at ASC, id ASC")
}

func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", employeeID).Error
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) LastByEmployee(ctx context.Context, companyID, employeeID string) (*Event, error) {
	var e Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("occurred_at DESC, created_at DESC, id DESC").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Event, error) {
	var rows []Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), chronological).
		Where("employee_id = ?", employeeID).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByCompanyBetween(ctx context.Context, companyID string, from, to time.Time) ([]Event, error) {
	var rows []Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), chronological).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FirstAfter(ctx context.Context, companyID string, employeeIDs []string, at time.Time) ([]Event, error) {
	if len(employeeIDs) == 0 {
		return []Event{}, nil
	}
	var rows []Event
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("DISTINCT ON (employee_id) *").
		Where("employee_id IN ?", employeeIDs).
		Where("occurred_at >= ?", at).
		Order("employee_id, occurred_at ASC, created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPage(ctx context.Context, companyID string, filter ListFilter) ([]Event, int64, error) {
	q := r.conn(ctx).Model(&Event{}).Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("occurred_at < ?", *filter.To)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Event
	err := q.Preload("Employee").
		Order("occurred_at DESC, created_at DESC, id DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}
