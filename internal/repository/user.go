package repository

import (
	"github.com/gatherly/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user model.User) (model.User, error)
	GetByID(id uint) (model.User, error)
	GetByUsername(username string) (model.User, error)
	GetByIDs(ids []uint) ([]model.User, error)
	Save(user model.User) (model.User, error)
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) Create(user model.User) (model.User, error) {
	result := u.db.Create(&user)
	if result.Error != nil {
		return model.User{}, wrapDBError(result.Error)
	}

	return user, nil
}

func (u *user) GetByID(id uint) (model.User, error) {
	var user model.User
	result := u.db.First(&user, id)
	if result.Error != nil {
		return model.User{}, wrapDBError(result.Error)
	}

	return user, nil
}

func (u *user) GetByUsername(username string) (model.User, error) {
	var user model.User
	result := u.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return model.User{}, wrapDBError(result.Error)
	}

	return user, nil
}

func (u *user) GetByIDs(ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []model.User
	result := u.db.Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		return nil, wrapDBError(result.Error)
	}

	return users, nil
}

func (u *user) Save(user model.User) (model.User, error) {
	result := u.db.Save(&user)
	if result.Error != nil {
		return model.User{}, wrapDBError(result.Error)
	}

	return user, nil
}
