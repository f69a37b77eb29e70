package controller

import (
	"fmt"
	"strings"

	ctx "github.com/gatherly/backend/internal/context"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := authenticate(c, authService)
			if err != nil {
				return err
			}
			ctx.SetUser(c, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the bearer token when one is present and lets
// anonymous requests through. A token that is present but invalid is still
// an authentication failure.
func OptionalAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			user, err := authenticate(c, authService)
			if err != nil {
				return err
			}
			ctx.SetUser(c, user)
			return next(c)
		}
	}
}

func authenticate(c echo.Context, authService service.AuthService) (ctx.User, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ctx.User{}, fmt.Errorf("%w: missing authorization header", dto.ErrNotAuthenticated)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ctx.User{}, fmt.Errorf("%w: invalid authorization format", dto.ErrNotAuthenticated)
	}

	return authService.ValidateAccessToken(token)
}
