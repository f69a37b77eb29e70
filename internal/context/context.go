package ctx

import (
	"github.com/gatherly/backend/internal/model"
	"github.com/labstack/echo/v4"
)

const UserContextKey = "user"

type User = model.User

func GetUser(c echo.Context) (User, bool) {
	user, ok := c.Get(UserContextKey).(User)
	return user, ok
}

func SetUser(c echo.Context, user User) {
	c.Set(UserContextKey, user)
}
