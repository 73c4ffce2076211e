package service

import (
	"testing"

	"github.com/greenpark/cms/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func TestSignUpHashesPassword(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.SignUp(SignUpInput{Name: "Jane", Email: "Jane@Example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}

	if user.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Password == "supersecret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(user.Password)); err != nil || cost != bcryptCost {
		t.Fatalf("expected bcrypt cost %d, got %d (%v)", bcryptCost, cost, err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.SignUp(SignUpInput{Name: "A", Email: "dup@example.com", Password: "password1"}); err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}
	if _, err := svc.SignUp(SignUpInput{Name: "B", Email: "DUP@example.com", Password: "password2"}); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	var count int64
	if err := gdb.Model(&db.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 user after rejected duplicate, got %d", count)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.SignUp(SignUpInput{Name: "Before", Email: "p@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("failed to sign up: %v", err)
	}

	name := "After"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}
	if updated.Name != "After" {
		t.Fatalf("expected name After, got %q", updated.Name)
	}
	if updated.Email != "p@example.com" {
		t.Fatalf("email should be untouched, got %q", updated.Email)
	}
}

func TestEnsureAdmin(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewUserService(gdb)

	if err := svc.EnsureAdmin("admin@greenparkpeyzaj.com", "secret123"); err != nil {
		t.Fatalf("failed to ensure admin: %v", err)
	}
	// second call is a no-op
	if err := svc.EnsureAdmin("admin@greenparkpeyzaj.com", "secret123"); err != nil {
		t.Fatalf("repeat ensure failed: %v", err)
	}

	var admin db.User
	if err := gdb.Where("email = ?", "admin@greenparkpeyzaj.com").First(&admin).Error; err != nil {
		t.Fatalf("admin row missing: %v", err)
	}
	if admin.Role != db.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}

	var count int64
	if err := gdb.Model(&db.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single admin row, got %d", count)
	}
}
