package checkin_test

import (
	"testing"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/member"
)

func TestIndexLookupByIDAndPhone(t *testing.T) {
	members := []member.Member{
		{ID: "M1", Name: "Ahmed", Phone: "0501234567"},
	}
	employees := []employee.Employee{
		{ID: "E1", Name: "Sara", Phone: "0559876543"},
	}
	idx := checkin.NewIndex(members, employees)

	tests := []struct {
		input    string
		wantKind checkin.TargetKind
		wantName string
	}{
		{"M1", checkin.TargetMember, "Ahmed"},
		{"m1", checkin.TargetMember, "Ahmed"},
		{"  M1  ", checkin.TargetMember, "Ahmed"},
		{"0501234567", checkin.TargetMember, "Ahmed"},
		{"E1", checkin.TargetEmployee, "Sara"},
		{"0559876543", checkin.TargetEmployee, "Sara"},
	}
	for _, tt := range tests {
		target, ok := idx.Lookup(tt.input)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.input)
			continue
		}
		if target.Kind != tt.wantKind || target.Name() != tt.wantName {
			t.Errorf("Lookup(%q) = kind %d name %q", tt.input, target.Kind, target.Name())
		}
	}

	if _, ok := idx.Lookup("ZZZ"); ok {
		t.Error("unknown key should not resolve")
	}
	if idx.Len() != 4 {
		t.Errorf("expected 4 keys, got %d", idx.Len())
	}
}

func TestIndexCollisionLastWriteWins(t *testing.T) {
	// Same key registered by a member and then an employee: employees
	// are inserted second, so the employee wins silently.
	members := []member.Member{{ID: "X9", Name: "Member"}}
	employees := []employee.Employee{{ID: "X9", Name: "Employee"}}
	idx := checkin.NewIndex(members, employees)

	target, ok := idx.Lookup("X9")
	if !ok {
		t.Fatal("expected key to resolve")
	}
	if target.Kind != checkin.TargetEmployee || target.Name() != "Employee" {
		t.Errorf("expected employee to win collision, got kind %d name %q", target.Kind, target.Name())
	}
}

func TestIndexSkipsEmptyKeys(t *testing.T) {
	members := []member.Member{{ID: "M1", Name: "NoPhone"}}
	idx := checkin.NewIndex(members, nil)
	if idx.Len() != 1 {
		t.Errorf("empty phone must not register a key, got %d keys", idx.Len())
	}
	if _, ok := idx.Lookup(""); ok {
		t.Error("empty input should not resolve")
	}
}
