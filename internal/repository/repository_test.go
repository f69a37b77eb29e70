package repository

import (
	"testing"
	"time"

	"github.com/gatherly/backend/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewRepositories(db)
}

func createUser(t *testing.T, repos Repositories, username string) model.User {
	t.Helper()

	user, err := repos.User().Create(model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return user
}

func createEvent(t *testing.T, repos Repositories, organizer model.User, title string, public bool) model.Event {
	t.Helper()

	start := time.Now().Add(48 * time.Hour)
	event, err := repos.Event().Create(model.Event{
		Title:       title,
		Description: "description of " + title,
		Location:    "Warsaw",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		IsPublic:    public,
		OrganizerID: organizer.ID,
	})
	require.NoError(t, err)
	return event
}
