package member

import (
	"context"

	domain "gymdesk/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Member, error)
	AppendAttendance(ctx context.Context, memberID string, entry domain.AttendanceEntry) error
	DeleteAttendance(ctx context.Context, memberID string, attendanceID string) error
	CountAttendanceByDate(ctx context.Context, date string) (int, error)
}
