package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("email = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertByEmail inserts the user unless the email is already registered.
// Returns the stored record and whether a new row was created.
func (r *UserRepository) UpsertByEmail(user *entity.User) (*entity.User, bool, error) {
	user.Email = strings.ToLower(user.Email)

	existing, err := r.FindByEmail(user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if user.Role == "" {
		user.Role = "guest"
	}
	if err := r.DB.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepository) GrantAdminByID(id uint) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", "admin")
	return res.RowsAffected, res.Error
}

func (r *UserRepository) IsAdmin(email string) (bool, error) {
	u, err := r.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == "admin", nil
}

func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}
