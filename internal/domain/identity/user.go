package identity

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleStaff UserRole = "STAFF"
)

// IsValid checks if the role is a valid UserRole
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff:
		return true
	}
	return false
}

// String returns the string representation of UserRole
func (r UserRole) String() string {
	return string(r)
}

// User represents a back-office login account
type User struct {
	shared.BaseEntity
	Username     string   `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string   `gorm:"size:200;not null"`
	DisplayName  string   `gorm:"size:200;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	Active       bool     `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(username, password, displayName string, role UserRole) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Username cannot be empty")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	if displayName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Display name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Role is not valid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         role,
		Active:       true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash
func (u *User) ChangePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
}
