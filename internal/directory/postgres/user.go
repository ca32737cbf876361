package postgres

import (
	"errors"

	"gorm.io/gorm"

	internal "github.com/yarnuri/stampclock/internal"
	"github.com/yarnuri/stampclock/internal/directory"
)

// UserRepository implements the directory.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new roster repository. The gorm handle must be
// opened with TranslateError so unique violations and missing rows map to
// gorm sentinel errors on both the Postgres and SQLite drivers.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List() ([]*directory.User, error) {
	var users []*directory.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(id int64) (*directory.User, error) {
	var user directory.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*directory.User, error) {
	var user directory.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(u *directory.User) error {
	err := r.db.Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrDuplicateUsername
	}
	return err
}

func (r *UserRepository) Update(u *directory.User) error {
	err := r.db.Save(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrDuplicateUsername
	}
	return err
}

func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&directory.User{}, id).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&directory.User{}).Count(&count).Error
	return count, err
}
