package service

import (
	"testing"

	"github.com/gatherly/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRatingBounds(t *testing.T) {
	services, _ := newTestServices(t)

	organizer := registerUser(t, services, "organizer")
	reviewer := registerUser(t, services, "reviewer")
	event := createTestEvent(t, services, organizer, true)

	for _, rating := range []int{0, 6, -1} {
		_, err := services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: rating, Comment: "x"})
		assert.ErrorIs(t, err, dto.ErrValidation, "rating %d", rating)
	}

	review, err := services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewDuplicate(t *testing.T) {
	services, _ := newTestServices(t)

	organizer := registerUser(t, services, "organizer")
	reviewer := registerUser(t, services, "reviewer")
	event := createTestEvent(t, services, organizer, true)

	_, err := services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: 4, Comment: "nice"})
	require.NoError(t, err)

	_, err = services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: 1, Comment: "again"})
	assert.ErrorIs(t, err, dto.ErrConflict)
}

func TestCreateReviewNotifiesOrganizer(t *testing.T) {
	services, queue := newTestServices(t)

	organizer := registerUser(t, services, "organizer")
	reviewer := registerUser(t, services, "reviewer")
	event := createTestEvent(t, services, organizer, true)

	_, err := services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: 4, Comment: "nice"})
	require.NoError(t, err)

	var found bool
	for _, job := range queue.jobs(t) {
		if job.Kind == dto.NotificationReviewReceived {
			found = true
			assert.Equal(t, organizer.Email, job.Recipient)
			assert.Equal(t, reviewer.Username, job.ReviewerName)
			assert.Equal(t, 4, job.Rating)
		}
	}
	assert.True(t, found)
}

func TestListReviewsFollowsVisibility(t *testing.T) {
	services, _ := newTestServices(t)

	organizer := registerUser(t, services, "organizer")
	stranger := registerUser(t, services, "stranger")
	event := createTestEvent(t, services, organizer, false)

	_, err := services.Review().ListReviews(&stranger, event.ID, dto.NewPagination(1, 10))
	assert.ErrorIs(t, err, dto.ErrNotAuthorized)

	page, err := services.Review().ListReviews(&organizer, event.ID, dto.NewPagination(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Count)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	services, _ := newTestServices(t)

	organizer := registerUser(t, services, "organizer")
	reviewer := registerUser(t, services, "reviewer")
	event := createTestEvent(t, services, organizer, true)

	_, err := services.Review().CreateReview(reviewer, event.ID, dto.ReviewRequest{Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	_, err = services.Review().UpdateReview(organizer, event.ID, reviewer.ID, dto.ReviewRequest{Rating: 5, Comment: "hijacked"})
	assert.ErrorIs(t, err, dto.ErrNotAuthorized)

	updated, err := services.Review().UpdateReview(reviewer, event.ID, reviewer.ID, dto.ReviewRequest{Rating: 5, Comment: "improved"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "improved", updated.Comment)
}
