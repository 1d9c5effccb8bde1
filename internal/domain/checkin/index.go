package checkin

import (
	"strings"

	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/member"
)

// TargetKind tags the two entity kinds a scan can resolve to.
type TargetKind int

const (
	TargetMember TargetKind = iota + 1
	TargetEmployee
)

// Target is a tagged reference to exactly one member or one employee.
type Target struct {
	Kind     TargetKind
	Member   *member.Member
	Employee *employee.Employee
}

// ID returns the identifier of the referenced entity.
func (t Target) ID() string {
	switch t.Kind {
	case TargetMember:
		return t.Member.ID
	case TargetEmployee:
		return t.Employee.ID
	}
	return ""
}

// Name returns the display name of the referenced entity.
func (t Target) Name() string {
	switch t.Kind {
	case TargetMember:
		return t.Member.Name
	case TargetEmployee:
		return t.Employee.Name
	}
	return ""
}

// NormalizeKey trims and lowercases a raw identifier or phone number.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Index maps normalized ids and phone numbers to scan targets. It is a
// derived, ephemeral structure: rebuild it whenever the member or
// employee collections change.
type Index struct {
	entries map[string]Target
}

// NewIndex builds the lookup index. Both the id and the phone number of
// every entity are registered. Members are registered first, then
// employees; on key collision the later insertion wins with no error.
// PRE: none
// POST: Returns an index covering all given entities
func NewIndex(members []member.Member, employees []employee.Employee) *Index {
	idx := &Index{entries: make(map[string]Target, 2*(len(members)+len(employees)))}
	for i := range members {
		m := &members[i]
		if m.ID != "" {
			idx.entries[NormalizeKey(m.ID)] = Target{Kind: TargetMember, Member: m}
		}
		if m.Phone != "" {
			idx.entries[NormalizeKey(m.Phone)] = Target{Kind: TargetMember, Member: m}
		}
	}
	for i := range employees {
		e := &employees[i]
		if e.ID != "" {
			idx.entries[NormalizeKey(e.ID)] = Target{Kind: TargetEmployee, Employee: e}
		}
		if e.Phone != "" {
			idx.entries[NormalizeKey(e.Phone)] = Target{Kind: TargetEmployee, Employee: e}
		}
	}
	return idx
}

// Lookup resolves a raw input string to a target. Matching is
// case-insensitive and whitespace-trimmed.
// PRE: none
// POST: Returns the target and true, or a zero target and false
func (i *Index) Lookup(raw string) (Target, bool) {
	t, ok := i.entries[NormalizeKey(raw)]
	return t, ok
}

// Len returns the number of registered keys.
func (i *Index) Len() int {
	return len(i.entries)
}
