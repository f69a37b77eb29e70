package controller

import (
	"fmt"
	"strconv"

	ctx "github.com/gatherly/backend/internal/context"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type Controllers interface {
	Auth() AuthController
	User() UserController
	Event() EventController
	RSVP() RSVPController
	Review() ReviewController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	authService service.AuthService

	authController   AuthController
	userController   UserController
	eventController  EventController
	rsvpController   RSVPController
	reviewController ReviewController
	infoController   InfoController
}

func NewControllers(services service.Services) Controllers {
	return &controllers{
		authService:      services.Auth(),
		authController:   newAuthController(services.Auth()),
		userController:   newUserController(services.User()),
		eventController:  newEventController(services.Event()),
		rsvpController:   newRSVPController(services.RSVP()),
		reviewController: newReviewController(services.Review()),
		infoController:   newInfoController(),
	}
}

func (c controllers) Auth() AuthController {
	return c.authController
}

func (c controllers) User() UserController {
	return c.userController
}

func (c controllers) Event() EventController {
	return c.eventController
}

func (c controllers) RSVP() RSVPController {
	return c.rsvpController
}

func (c controllers) Review() ReviewController {
	return c.reviewController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = newRequestValidator()

	required := RequireAuth(c.authService)
	optional := OptionalAuth(c.authService)

	e.GET("/", c.infoController.Info)

	auth := e.Group("/auth")
	auth.POST("/register", c.authController.Register)
	auth.POST("/token", c.authController.Token)
	auth.POST("/token/refresh", c.authController.Refresh)

	events := e.Group("/events")
	events.GET("", c.eventController.List, optional)
	events.POST("", c.eventController.Create, required)
	events.GET("/:id", c.eventController.Get, optional)
	events.PUT("/:id", c.eventController.Update, required)
	events.DELETE("/:id", c.eventController.Delete, required)
	events.POST("/:id/rsvp", c.rsvpController.Create, required)
	events.PATCH("/:id/rsvp/:user_id", c.rsvpController.Update, required)
	events.GET("/:id/reviews", c.reviewController.List, optional)
	events.POST("/:id/reviews", c.reviewController.Create, required)

	e.GET("/users/:id", c.userController.Profile, required)
}

func bindRequest(c echo.Context, target interface{}) error {
	if err := c.Bind(target); err != nil {
		return fmt.Errorf("%w: %v", dto.ErrValidation, err)
	}
	return c.Validate(target)
}

func paramUint(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", dto.ErrNotFound, name)
	}
	return uint(value), nil
}

func requireActor(c echo.Context) (model.User, error) {
	user, ok := ctx.GetUser(c)
	if !ok {
		return model.User{}, fmt.Errorf("%w: no user in context", dto.ErrNotAuthenticated)
	}
	return user, nil
}

func optionalActor(c echo.Context) *model.User {
	if user, ok := ctx.GetUser(c); ok {
		return &user
	}
	return nil
}
