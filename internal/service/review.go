package service

import (
	"errors"
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/policy"
	"github.com/gatherly/backend/internal/repository"
)

type ReviewService interface {
	CreateReview(actor model.User, eventID uint, request dto.ReviewRequest) (dto.ReviewResponse, error)
	ListReviews(actor *model.User, eventID uint, pagination dto.Pagination) (dto.Page, error)
	UpdateReview(actor model.User, eventID, userID uint, request dto.ReviewRequest) (dto.ReviewResponse, error)
}

type reviewService struct {
	eventRepository  repository.EventRepository
	reviewRepository repository.ReviewRepository
	notifier         Notifier
}

func newReviewService(eventRepository repository.EventRepository, reviewRepository repository.ReviewRepository, notifier Notifier) ReviewService {
	return &reviewService{
		eventRepository:  eventRepository,
		reviewRepository: reviewRepository,
		notifier:         notifier,
	}
}

func (r *reviewService) CreateReview(actor model.User, eventID uint, request dto.ReviewRequest) (dto.ReviewResponse, error) {
	event, err := r.eventRepository.GetByID(eventID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}

	if decision := policy.Decide(&actor, policy.ReviewCreate, event); !decision.Allowed {
		return dto.ReviewResponse{}, policyDenied(&actor, decision)
	}

	if err := validateRating(request.Rating); err != nil {
		return dto.ReviewResponse{}, err
	}

	if _, err := r.reviewRepository.GetByEventAndUser(eventID, actor.ID); err == nil {
		return dto.ReviewResponse{}, fmt.Errorf("%w: already reviewed this event", dto.ErrConflict)
	} else if !errors.Is(err, dto.ErrNotFound) {
		return dto.ReviewResponse{}, err
	}

	review, err := r.reviewRepository.Create(model.Review{
		EventID: eventID,
		UserID:  actor.ID,
		Rating:  request.Rating,
		Comment: request.Comment,
	})
	if err != nil {
		if errors.Is(err, dto.ErrConflict) {
			return dto.ReviewResponse{}, fmt.Errorf("%w: already reviewed this event", dto.ErrConflict)
		}
		return dto.ReviewResponse{}, err
	}

	r.notifier.ReviewReceived(event, review, actor)

	return reviewResponse(review, event, actor), nil
}

func (r *reviewService) ListReviews(actor *model.User, eventID uint, pagination dto.Pagination) (dto.Page, error) {
	event, err := r.eventRepository.GetByID(eventID)
	if err != nil {
		return dto.Page{}, err
	}

	if decision := policy.Decide(actor, policy.EventRead, event); !decision.Allowed {
		return dto.Page{}, policyDenied(actor, decision)
	}

	reviews, total, err := r.reviewRepository.ListByEvent(eventID, pagination)
	if err != nil {
		return dto.Page{}, err
	}

	results := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, reviewResponse(review, event, review.User))
	}

	return dto.Page{Count: total, Results: results}, nil
}

func (r *reviewService) UpdateReview(actor model.User, eventID, userID uint, request dto.ReviewRequest) (dto.ReviewResponse, error) {
	event, err := r.eventRepository.GetByID(eventID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}

	review, err := r.reviewRepository.GetByEventAndUser(eventID, userID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}

	if decision := policy.Decide(&actor, policy.ReviewUpdate, review); !decision.Allowed {
		return dto.ReviewResponse{}, policyDenied(&actor, decision)
	}

	if err := validateRating(request.Rating); err != nil {
		return dto.ReviewResponse{}, err
	}

	review.Rating = request.Rating
	review.Comment = request.Comment
	review, err = r.reviewRepository.Save(review)
	if err != nil {
		return dto.ReviewResponse{}, err
	}

	return reviewResponse(review, event, actor), nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", dto.ErrValidation)
	}
	return nil
}
