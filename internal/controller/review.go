package controller

import (
	"net/http"
	"strconv"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
}

type reviewController struct {
	reviewService service.ReviewService
}

func newReviewController(reviewService service.ReviewService) ReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (r *reviewController) List(c echo.Context) error {
	eventID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	reviews, err := r.reviewService.ListReviews(optionalActor(c), eventID, dto.NewPagination(page, pageSize))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (r *reviewController) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	eventID, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	var request dto.ReviewRequest
	if err := bindRequest(c, &request); err != nil {
		return err
	}

	review, err := r.reviewService.CreateReview(actor, eventID, request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}
