package employee

import (
	"context"

	domain "gymdesk/internal/domain/employee"
)

// Store persists Employee state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	Save(ctx context.Context, value domain.Employee) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Employee, error)
	UpsertAttendance(ctx context.Context, employeeID string, rec domain.AttendanceRecord) error
	DeleteAttendanceByDate(ctx context.Context, employeeID string, date string) error
}
