package employee

import (
	"errors"
	"strings"
)

// Employee roles, as displayed on the reception screen.
const (
	RoleTrainer      = "مدرب"
	RoleReceptionist = "موظف استقبال"
	RoleManager      = "مدير"
	RoleCleaner      = "عامل نظافة"
)

// DateLayout is the calendar-date format used for attendance records.
const DateLayout = "2006-01-02"

// Daily attendance statuses.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
)

// AttendanceRecord is one calendar day of employee attendance.
// At most one record exists per date: inserting for a date already
// present replaces the existing record.
type AttendanceRecord struct {
	Date    string // YYYY-MM-DD
	CheckIn string // wall-clock display time, empty for ABSENT
	Status  string
}

// Employee holds state for a gym staff member.
type Employee struct {
	ID         string
	Name       string
	Role       string
	BaseSalary float64
	Email      string
	Phone      string
	JoinDate   string // YYYY-MM-DD
	Attendance []AttendanceRecord
}

// Validate checks if the Employee has valid data.
// PRE: Employee struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: ID, Name and Role must not be empty
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("employee id cannot be empty")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("employee name cannot be empty")
	}
	if strings.TrimSpace(e.Role) == "" {
		return errors.New("employee role cannot be empty")
	}
	if e.Email != "" && !strings.Contains(e.Email, "@") {
		return errors.New("employee email must be valid")
	}
	return nil
}

// AttendanceOn returns the attendance record for the given date, if any.
// PRE: date is YYYY-MM-DD
// POST: Returns the record and true, or a zero record and false
func (e *Employee) AttendanceOn(date string) (AttendanceRecord, bool) {
	for _, a := range e.Attendance {
		if a.Date == date {
			return a, true
		}
	}
	return AttendanceRecord{}, false
}
