package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"learnity/dto"
	"learnity/models"
	"learnity/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeNotifier) SendVideoRequestAck(email, name, topic string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, email)
}

func newVideoRequestService(t *testing.T) (VideoRequestService, *fakeNotifier, *gorm.DB, models.User) {
	t.Helper()

	db := setupTestDB(t)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")
	notifier := &fakeNotifier{}
	svc := NewVideoRequestService(repository.NewVideoRequestRepository(db), notifier)
	return svc, notifier, db, user
}

func TestVideoRequestCreateForcesPendingStatus(t *testing.T) {
	svc, notifier, _, user := newVideoRequestService(t)

	created, err := svc.Create(context.Background(), dto.VideoRequestModel{
		UserID: user.ID,
		Topic:  "Go generics deep dive",
		Status: models.VideoRequestPublished, // must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, models.VideoRequestPending, created.Status)
	assert.Equal(t, "Ada, Lovelace", created.UserName)
	assert.Equal(t, []string{"ada@example.com"}, notifier.calls)
}

func TestVideoRequestCreateRequiresTopic(t *testing.T) {
	svc, _, _, user := newVideoRequestService(t)

	_, err := svc.Create(context.Background(), dto.VideoRequestModel{UserID: user.ID, Topic: "  "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVideoRequestUpdateNotFound(t *testing.T) {
	svc, _, _, _ := newVideoRequestService(t)

	_, err := svc.Update(context.Background(), 404, dto.VideoRequestModel{Topic: "anything"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVideoRequestDeleteIdempotent(t *testing.T) {
	svc, _, _, _ := newVideoRequestService(t)

	require.NoError(t, svc.Delete(context.Background(), 404))
}

func TestListStalePendingFiltersByAgeAndStatus(t *testing.T) {
	svc, _, db, user := newVideoRequestService(t)

	old := models.VideoRequest{UserID: user.ID, Topic: "old pending", Status: models.VideoRequestPending}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().Add(-72*time.Hour)).Error)

	oldApproved := models.VideoRequest{UserID: user.ID, Topic: "old approved", Status: models.VideoRequestApproved}
	require.NoError(t, db.Create(&oldApproved).Error)
	require.NoError(t, db.Model(&oldApproved).Update("created_at", time.Now().Add(-72*time.Hour)).Error)

	fresh := models.VideoRequest{UserID: user.ID, Topic: "fresh pending", Status: models.VideoRequestPending}
	require.NoError(t, db.Create(&fresh).Error)

	stale, err := svc.ListStalePending(context.Background(), time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "old pending", stale[0].Topic)
}
