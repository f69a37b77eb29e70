package controller

import (
	"net/http"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type EventController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type eventController struct {
	eventService service.EventService
}

func newEventController(eventService service.EventService) EventController {
	return &eventController{
		eventService: eventService,
	}
}

func (e *eventController) List(c echo.Context) error {
	var filter dto.EventFilter
	if err := c.Bind(&filter); err != nil {
		return err
	}

	page, err := e.eventService.ListEvents(optionalActor(c), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func (e *eventController) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var request dto.EventRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	event, err := e.eventService.CreateEvent(actor, request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, event)
}

func (e *eventController) Get(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	event, err := e.eventService.GetEvent(optionalActor(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, event)
}

func (e *eventController) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var request dto.EventRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	event, err := e.eventService.UpdateEvent(actor, id, request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, event)
}

func (e *eventController) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	if err := e.eventService.DeleteEvent(actor, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
