package controller

import (
	"net/http"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthController interface {
	Register(c echo.Context) error
	Token(c echo.Context) error
	Refresh(c echo.Context) error
}

type authController struct {
	authService service.AuthService
}

func newAuthController(authService service.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func (a *authController) Register(c echo.Context) error {
	var request dto.RegisterRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	user, err := a.authService.Register(request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (a *authController) Token(c echo.Context) error {
	var request dto.TokenRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	pair, err := a.authService.IssueTokens(request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

func (a *authController) Refresh(c echo.Context) error {
	var request dto.RefreshRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	pair, err := a.authService.Refresh(request.Refresh)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}
