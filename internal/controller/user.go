package controller

import (
	"net/http"

	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserController interface {
	Profile(c echo.Context) error
}

type userController struct {
	userService service.UserService
}

func newUserController(userService service.UserService) UserController {
	return &userController{
		userService: userService,
	}
}

func (u *userController) Profile(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	profile, err := u.userService.GetProfile(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}
