package service

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQueue struct {
	mu        sync.Mutex
	published [][]byte
}

func (f *fakeQueue) Publish(message []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, message)
	return nil
}

func (f *fakeQueue) Consume(string) (<-chan []byte, error) {
	return make(chan []byte), nil
}

func (f *fakeQueue) StopConsuming(string) error { return nil }

func (f *fakeQueue) Close() error { return nil }

func (f *fakeQueue) jobs(t *testing.T) []dto.NotificationJob {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	jobs := make([]dto.NotificationJob, 0, len(f.published))
	for _, payload := range f.published {
		var job dto.NotificationJob
		require.NoError(t, json.Unmarshal(payload, &job))
		jobs = append(jobs, job)
	}
	return jobs
}

type fakeEmail struct{}

func (fakeEmail) Send(string, string, string) error { return nil }

type fakeClients struct {
	queue *fakeQueue
}

func (f *fakeClients) Queue() client.QueueClient { return f.queue }
func (f *fakeClients) Email() client.EmailClient { return fakeEmail{} }

func testConfig() dto.Config {
	return dto.Config{
		JWTSecret:       "test-secret",
		JWTIssuer:       "test",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func newTestServices(t *testing.T) (Services, *fakeQueue) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	queue := &fakeQueue{}
	services := NewServices(repository.NewRepositories(db), testConfig(), &fakeClients{queue: queue})
	return services, queue
}

func registerUser(t *testing.T, services Services, username string) model.User {
	t.Helper()

	user, err := services.Auth().Register(dto.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		Password2: "password123",
	})
	require.NoError(t, err)
	return user
}

func eventRequest(public bool) dto.EventRequest {
	start := time.Now().Add(48 * time.Hour)
	return dto.EventRequest{
		Title:       "Summer picnic",
		Description: "Bring snacks",
		Location:    "Central Park",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		IsPublic:    &public,
	}
}

func createTestEvent(t *testing.T, services Services, organizer model.User, public bool) dto.EventDetailResponse {
	t.Helper()

	event, err := services.Event().CreateEvent(organizer, eventRequest(public))
	require.NoError(t, err)
	return event
}
