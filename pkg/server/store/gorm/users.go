package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/quevon24/webbase/pkg/model"
	"github.com/quevon24/webbase/pkg/server/store"
)

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// UserStore implements store.UserStore using GORM
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ByUsername retrieves a user by username
func (s *UserStore) ByUsername(username string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("username = ?", username).First(&user)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &user, nil
}

// ByID retrieves a user by primary key
func (s *UserStore) ByID(id int64) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", id).First(&user)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &user, nil
}

// Create inserts a new user
func (s *UserStore) Create(user *model.User) error {
	return s.db.Create(user).Error
}

// UpdatePassword replaces the stored password hash for a username
func (s *UserStore) UpdatePassword(username string, passwordHash string) error {
	tx := s.db.Model(&model.User{}).Where("username = ?", username).
		Update("password", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchLastLogin stamps last_login with the current time
func (s *UserStore) TouchLastLogin(id int64) error {
	return s.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

// Exists reports whether a username is taken
func (s *UserStore) Exists(username string) (bool, error) {
	var count int64
	tx := s.db.Model(&model.User{}).Where("username = ?", username).Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}
