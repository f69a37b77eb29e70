package repository

import (
	"fmt"
	"testing"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDuplicateIsConflict(t *testing.T) {
	repos := newTestRepositories(t)

	organizer := createUser(t, repos, "organizer")
	reviewer := createUser(t, repos, "reviewer")
	event := createEvent(t, repos, organizer, "party", true)

	_, err := repos.Review().Create(model.Review{EventID: event.ID, UserID: reviewer.ID, Rating: 4, Comment: "nice"})
	require.NoError(t, err)

	_, err = repos.Review().Create(model.Review{EventID: event.ID, UserID: reviewer.ID, Rating: 2, Comment: "changed my mind"})
	assert.ErrorIs(t, err, dto.ErrConflict)
}

func TestReviewAverageRating(t *testing.T) {
	repos := newTestRepositories(t)

	organizer := createUser(t, repos, "organizer")
	event := createEvent(t, repos, organizer, "party", true)

	avg, err := repos.Review().AverageRating(event.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)

	for i, rating := range []int{4, 5} {
		user := createUser(t, repos, fmt.Sprintf("reviewer%d", i))
		_, err := repos.Review().Create(model.Review{EventID: event.ID, UserID: user.ID, Rating: rating, Comment: "ok"})
		require.NoError(t, err)
	}

	avg, err = repos.Review().AverageRating(event.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 4.5, *avg, 0.001)
}

func TestReviewListByEvent(t *testing.T) {
	repos := newTestRepositories(t)

	organizer := createUser(t, repos, "organizer")
	event := createEvent(t, repos, organizer, "party", true)

	for i := 0; i < 3; i++ {
		user := createUser(t, repos, fmt.Sprintf("reviewer%d", i))
		_, err := repos.Review().Create(model.Review{EventID: event.ID, UserID: user.ID, Rating: 3, Comment: "fine"})
		require.NoError(t, err)
	}

	reviews, total, err := repos.Review().ListByEvent(event.ID, dto.NewPagination(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, reviews, 2)
	assert.NotEmpty(t, reviews[0].User.Username)
}
