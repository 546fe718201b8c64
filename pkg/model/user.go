package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a row in the auth_user table.
type User struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Username    string     `gorm:"column:username;uniqueIndex" json:"username"`
	Email       string     `gorm:"column:email" json:"email"`
	Password    string     `gorm:"column:password" json:"-"`
	FirstName   string     `gorm:"column:first_name" json:"first_name"`
	LastName    string     `gorm:"column:last_name" json:"last_name"`
	IsActive    bool       `gorm:"column:is_active" json:"is_active"`
	IsStaff     bool       `gorm:"column:is_staff" json:"is_staff"`
	IsSuperuser bool       `gorm:"column:is_superuser" json:"is_superuser"`
	DateJoined  time.Time  `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
	LastLogin   *time.Time `gorm:"column:last_login" json:"last_login"`
}

func (User) TableName() string {
	return "auth_user"
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SetPassword hashes the plaintext password with bcrypt and stores it.
func (u *User) SetPassword(plaintext string) error {
	hash, err := HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// CheckPassword reports whether the plaintext password matches the
// stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}

// FullName returns the user's first and last name joined with a space.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
