package account

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role constants
const (
	RoleOwner     = "OWNER"
	RoleReception = "RECEPTION"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleOwner, RoleReception}

// Domain errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrInvalidRole   = errors.New("role must be one of: OWNER, RECEPTION")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrWrongPassword = errors.New("incorrect password")
)

// Permissions gates which sections of the desk an account can use.
type Permissions struct {
	ManageMembers   bool
	ManageCheckIn   bool
	ManageEmployees bool
	ViewReports     bool
	ViewFinancials  bool
	ManageSettings  bool
	ManagePayments  bool
}

// OwnerPermissions returns the full permission set granted to owners.
func OwnerPermissions() Permissions {
	return Permissions{
		ManageMembers:   true,
		ManageCheckIn:   true,
		ManageEmployees: true,
		ViewReports:     true,
		ViewFinancials:  true,
		ManageSettings:  true,
		ManagePayments:  true,
	}
}

// ReceptionPermissions returns the default permission set for
// front-desk accounts: member management and check-in only.
func ReceptionPermissions() Permissions {
	return Permissions{
		ManageMembers: true,
		ManageCheckIn: true,
	}
}

// Account holds state for a desk login.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Permissions  Permissions
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrEmptyUsername
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to the bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
// PRE: PasswordHash is set
// POST: Returns nil on match, ErrWrongPassword otherwise
func (a *Account) CheckPassword(plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsOwner returns true for owner accounts.
// INVARIANT: Role field is not mutated
func (a *Account) IsOwner() bool {
	return a.Role == RoleOwner
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
