package controller

import (
	"net/http"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type RSVPController interface {
	Create(c echo.Context) error
	Update(c echo.Context) error
}

type rsvpController struct {
	rsvpService service.RSVPService
}

func newRSVPController(rsvpService service.RSVPService) RSVPController {
	return &rsvpController{
		rsvpService: rsvpService,
	}
}

func (r *rsvpController) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	eventID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var request dto.RSVPRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	rsvp, err := r.rsvpService.CreateRSVP(actor, eventID, request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, rsvp)
}

func (r *rsvpController) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	eventID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	userID, err := paramUint(c, "user_id")
	if err != nil {
		return err
	}

	var request dto.RSVPRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	rsvp, err := r.rsvpService.UpdateRSVP(actor, eventID, userID, request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rsvp)
}
