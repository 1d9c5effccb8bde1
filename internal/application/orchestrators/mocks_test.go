package orchestrators

import (
	"context"
	"errors"
	"sort"

	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

var errNotFound = errors.New("not found")

type mockMemberStore struct {
	members map[string]member.Member
}

func newMockMemberStore(members ...member.Member) *mockMemberStore {
	s := &mockMemberStore{members: make(map[string]member.Member)}
	for _, m := range members {
		s.members[m.ID] = m
	}
	return s
}

func (s *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return member.Member{}, errNotFound
	}
	return m, nil
}

func (s *mockMemberStore) Save(_ context.Context, m member.Member) error {
	s.members[m.ID] = m
	return nil
}

func (s *mockMemberStore) ListAll(_ context.Context) ([]member.Member, error) {
	var out []member.Member
	for _, m := range s.members {
		out = append(out, m)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (s *mockMemberStore) AppendAttendance(_ context.Context, memberID string, entry member.AttendanceEntry) error {
	m, ok := s.members[memberID]
	if !ok {
		return errNotFound
	}
	m.AttendanceHistory = append([]member.AttendanceEntry{entry}, m.AttendanceHistory...)
	s.members[memberID] = m
	return nil
}

func (s *mockMemberStore) DeleteAttendance(_ context.Context, memberID string, attendanceID string) error {
	m, ok := s.members[memberID]
	if !ok {
		return errNotFound
	}
	kept := m.AttendanceHistory[:0]
	for _, e := range m.AttendanceHistory {
		if e.ID != attendanceID {
			kept = append(kept, e)
		}
	}
	m.AttendanceHistory = kept
	s.members[memberID] = m
	return nil
}

type mockEmployeeStore struct {
	employees map[string]employee.Employee
}

func newMockEmployeeStore(employees ...employee.Employee) *mockEmployeeStore {
	s := &mockEmployeeStore{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		s.employees[e.ID] = e
	}
	return s
}

func (s *mockEmployeeStore) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, errNotFound
	}
	return e, nil
}

func (s *mockEmployeeStore) ListAll(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (s *mockEmployeeStore) UpsertAttendance(_ context.Context, employeeID string, rec employee.AttendanceRecord) error {
	e, ok := s.employees[employeeID]
	if !ok {
		return errNotFound
	}
	for i, a := range e.Attendance {
		if a.Date == rec.Date {
			e.Attendance[i] = rec
			s.employees[employeeID] = e
			return nil
		}
	}
	e.Attendance = append(e.Attendance, rec)
	s.employees[employeeID] = e
	return nil
}

func (s *mockEmployeeStore) DeleteAttendanceByDate(_ context.Context, employeeID string, date string) error {
	e, ok := s.employees[employeeID]
	if !ok {
		return errNotFound
	}
	kept := e.Attendance[:0]
	for _, a := range e.Attendance {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	e.Attendance = kept
	s.employees[employeeID] = e
	return nil
}

type mockLedgerStore struct {
	entries []checkin.LedgerEntry
}

func (s *mockLedgerStore) Append(_ context.Context, entry checkin.LedgerEntry) error {
	s.entries = append([]checkin.LedgerEntry{entry}, s.entries...)
	return nil
}

func (s *mockLedgerStore) Delete(_ context.Context, id string) error {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

func (s *mockLedgerStore) ListByDate(_ context.Context, date string) ([]checkin.LedgerEntry, error) {
	var out []checkin.LedgerEntry
	for _, e := range s.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *mockLedgerStore) DeleteOtherDates(_ context.Context, date string) (int, error) {
	kept := s.entries[:0]
	pruned := 0
	for _, e := range s.entries {
		if e.Date == date {
			kept = append(kept, e)
		} else {
			pruned++
		}
	}
	s.entries = kept
	return pruned, nil
}

type mockAuditStore struct {
	entries []audit.Entry
}

func (s *mockAuditStore) Save(_ context.Context, entry audit.Entry) error {
	s.entries = append(s.entries, entry)
	return nil
}

type mockPlanStore struct {
	configs map[string]plan.Config
}

func newMockPlanStore(configs ...plan.Config) *mockPlanStore {
	s := &mockPlanStore{configs: make(map[string]plan.Config)}
	for _, c := range configs {
		s.configs[c.Name] = c
	}
	return s
}

func (s *mockPlanStore) GetConfig(_ context.Context, name string) (plan.Config, error) {
	c, ok := s.configs[name]
	if !ok {
		return plan.Config{}, errNotFound
	}
	return c, nil
}

func (s *mockPlanStore) ListConfigs(_ context.Context) ([]plan.Config, error) {
	var out []plan.Config
	for _, c := range s.configs {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Rank < out[b].Rank })
	return out, nil
}

func (s *mockPlanStore) SaveConfig(_ context.Context, c plan.Config) error {
	s.configs[c.Name] = c
	return nil
}

type mockFinanceStore struct {
	payments   []payment.Payment
	deductions []payment.Deduction
}

func (s *mockFinanceStore) SavePayment(_ context.Context, p payment.Payment) error {
	s.payments = append(s.payments, p)
	return nil
}

func (s *mockFinanceStore) SaveDeduction(_ context.Context, d payment.Deduction) error {
	s.deductions = append(s.deductions, d)
	return nil
}
