package employee_test

import (
	"testing"

	"gymdesk/internal/domain/employee"
)

func TestValidate(t *testing.T) {
	valid := employee.Employee{ID: "E1", Name: "Sara", Role: employee.RoleTrainer}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		e    employee.Employee
	}{
		{"empty id", employee.Employee{Name: "x", Role: employee.RoleTrainer}},
		{"empty name", employee.Employee{ID: "E1", Role: employee.RoleTrainer}},
		{"empty role", employee.Employee{ID: "E1", Name: "x"}},
		{"bad email", employee.Employee{ID: "E1", Name: "x", Role: employee.RoleTrainer, Email: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.e.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAttendanceOn(t *testing.T) {
	e := employee.Employee{
		ID: "E1", Name: "Sara", Role: employee.RoleReceptionist,
		Attendance: []employee.AttendanceRecord{
			{Date: "2026-03-10", CheckIn: "09:15 ص", Status: employee.StatusPresent},
		},
	}

	rec, ok := e.AttendanceOn("2026-03-10")
	if !ok || rec.CheckIn != "09:15 ص" {
		t.Errorf("expected record for 2026-03-10, got %+v ok=%v", rec, ok)
	}
	if _, ok := e.AttendanceOn("2026-03-11"); ok {
		t.Error("expected no record for 2026-03-11")
	}
}
