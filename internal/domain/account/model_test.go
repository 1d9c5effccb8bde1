package account_test

import (
	"testing"

	"gymdesk/internal/domain/account"
)

func TestPasswordRoundTrip(t *testing.T) {
	a := account.Account{Username: "front", Role: account.RoleReception}
	if err := a.SetPassword("correct horse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PasswordHash == "correct horse" {
		t.Fatal("password must be stored hashed")
	}
	if err := a.CheckPassword("correct horse"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := a.CheckPassword("wrong"); err != account.ErrWrongPassword {
		t.Errorf("expected account.ErrWrongPassword, got %v", err)
	}
}

func TestSetPasswordRejectsEmpty(t *testing.T) {
	var a account.Account
	if err := a.SetPassword(""); err != account.ErrEmptyPassword {
		t.Errorf("expected account.ErrEmptyPassword, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	good := account.Account{Username: "boss", Role: account.RoleOwner}
	if err := good.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noName := account.Account{Role: account.RoleOwner}
	if err := noName.Validate(); err != account.ErrEmptyUsername {
		t.Errorf("expected account.ErrEmptyUsername, got %v", err)
	}

	badRole := account.Account{Username: "x", Role: "SUPERVISOR"}
	if err := badRole.Validate(); err != account.ErrInvalidRole {
		t.Errorf("expected account.ErrInvalidRole, got %v", err)
	}
}

func TestRolePermissions(t *testing.T) {
	owner := account.OwnerPermissions()
	if !owner.ManageSettings || !owner.ViewFinancials || !owner.ManagePayments {
		t.Error("owner must hold every permission")
	}

	reception := account.ReceptionPermissions()
	if reception.ManageSettings || reception.ViewFinancials {
		t.Error("reception must not touch settings or financials")
	}
	if !reception.ManageCheckIn || !reception.ManageMembers {
		t.Error("reception must run check-in and member management")
	}

	a := account.Account{Role: account.RoleOwner}
	if !a.IsOwner() {
		t.Error("owner role should report IsOwner")
	}
}
