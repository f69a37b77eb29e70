package service

import (
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
)

type UserService interface {
	GetProfile(id uint) (dto.ProfileResponse, error)
}

type userService struct {
	userRepository repository.UserRepository
}

func newUserService(userRepository repository.UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (u *userService) GetProfile(id uint) (dto.ProfileResponse, error) {
	user, err := u.userRepository.GetByID(id)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	return dto.ProfileResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Bio:        user.Bio,
		Location:   user.Location,
		PictureURL: user.PictureURL,
		CreatedAt:  user.CreatedAt,
	}, nil
}
