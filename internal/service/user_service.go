package service

import (
	"errors"
	"strings"

	"github.com/greenpark/cms/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// bcryptCost matches the hash strength the site has always used.
const bcryptCost = 12

// UserService wraps account operations.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// SignUpInput represents fields accepted on registration.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdateInput carries a partial profile update.
type ProfileUpdateInput struct {
	Name   *string
	Avatar *string
}

// SignUp registers an account with a bcrypt-hashed password. The email must
// not be registered already.
func (s *UserService) SignUp(input SignUpInput) (*db.User, error) {
	if s.db == nil {
		return nil, nil
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := s.db.Model(&db.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hashed),
		Role:     db.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Get fetches an account by id.
func (s *UserService) Get(id uint) (*db.User, error) {
	if s.db == nil {
		return nil, ErrUserNotFound
	}

	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the caller's own record.
func (s *UserService) UpdateProfile(id uint, input ProfileUpdateInput) (*db.User, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.User
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}

	if len(updates) > 0 {
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &existing, nil
}

// EnsureAdmin creates or promotes the configured admin account so authored
// posts have a real row to reference. Blank credentials are a no-op.
func (s *UserService) EnsureAdmin(email, password string) error {
	if s.db == nil {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var existing db.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.Role == db.RoleAdmin {
			return nil
		}
		return s.db.Model(&existing).Update("role", db.RoleAdmin).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	return s.db.Create(&db.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hashed),
		Role:     db.RoleAdmin,
	}).Error
}
