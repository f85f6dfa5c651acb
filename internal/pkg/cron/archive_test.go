package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/schedule"
)

type fakeBuilder struct {
	err error
}

func (b *fakeBuilder) BuildMonth(ctx context.Context, departmentID string, year, month int) ([]byte, string, error) {
	if b.err != nil {
		return nil, "", b.err
	}
	return []byte("workbook"), "2024.03 Production.xlsx", nil
}

type fakeSessionRepo struct {
	expired []schedule.EditSession
	deleted []string
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, s schedule.EditSession) (schedule.EditSession, error) {
	return s, nil
}

func (r *fakeSessionRepo) GetExpired(ctx context.Context, now time.Time) ([]schedule.EditSession, error) {
	return r.expired, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeStore struct {
	written []string
	err     error
}

func (s *fakeStore) WriteUnique(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.written = append(s.written, dir+"/"+filename)
	return dir + "/" + filename, nil
}

func (s *fakeStore) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

type fakeUploader struct {
	uploaded []string
	err      error
}

func (u *fakeUploader) Upload(ctx context.Context, dir, filename string, data []byte) error {
	if u.err != nil {
		return u.err
	}
	u.uploaded = append(u.uploaded, dir+"/"+filename)
	return nil
}

func expiredSession(id string) schedule.EditSession {
	return schedule.EditSession{
		ID:           id,
		DepartmentID: "d1",
		Year:         2024,
		Month:        3,
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
}

func TestArchiveExpiredSessionsHappyPath(t *testing.T) {
	sessions := &fakeSessionRepo{expired: []schedule.EditSession{expiredSession("s1")}}
	store := &fakeStore{}
	uploader := &fakeUploader{}
	jobs := NewArchiveJobs(&fakeBuilder{}, sessions, store, uploader)

	err := jobs.ArchiveExpiredSessions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2024/03. March/2024.03 Production.xlsx"}, store.written)
	assert.Equal(t, []string{"2024/03. March/2024.03 Production.xlsx"}, uploader.uploaded)
	assert.Equal(t, []string{"s1"}, sessions.deleted)
}

func TestArchiveKeepsSessionWhenLocalWriteFails(t *testing.T) {
	sessions := &fakeSessionRepo{expired: []schedule.EditSession{expiredSession("s1")}}
	store := &fakeStore{err: errors.New("disk full")}
	uploader := &fakeUploader{}
	jobs := NewArchiveJobs(&fakeBuilder{}, sessions, store, uploader)

	err := jobs.ArchiveExpiredSessions(context.Background())
	require.Error(t, err)

	assert.Empty(t, uploader.uploaded, "NAS upload should not run after a local failure")
	assert.Empty(t, sessions.deleted, "session must survive so the sweep retries")
}

func TestArchiveKeepsSessionWhenUploadFails(t *testing.T) {
	sessions := &fakeSessionRepo{expired: []schedule.EditSession{expiredSession("s1")}}
	store := &fakeStore{}
	uploader := &fakeUploader{err: errors.New("gateway down")}
	jobs := NewArchiveJobs(&fakeBuilder{}, sessions, store, uploader)

	err := jobs.ArchiveExpiredSessions(context.Background())
	require.Error(t, err)

	assert.Len(t, store.written, 1, "local copy is written before the upload attempt")
	assert.Empty(t, sessions.deleted, "session must survive so the sweep retries")
}

func TestArchiveOneFailureDoesNotBlockOthers(t *testing.T) {
	sessions := &fakeSessionRepo{expired: []schedule.EditSession{
		expiredSession("s1"),
		expiredSession("s2"),
	}}
	store := &fakeStore{}
	uploader := &failFirstUploader{}
	jobs := NewArchiveJobs(&fakeBuilder{}, sessions, store, uploader)

	err := jobs.ArchiveExpiredSessions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, []string{"s2"}, sessions.deleted)
}

type failFirstUploader struct {
	calls int
}

func (u *failFirstUploader) Upload(ctx context.Context, dir, filename string, data []byte) error {
	u.calls++
	if u.calls == 1 {
		return errors.New("transient failure")
	}
	return nil
}

func TestArchiveNoExpiredSessions(t *testing.T) {
	sessions := &fakeSessionRepo{}
	jobs := NewArchiveJobs(&fakeBuilder{}, sessions, &fakeStore{}, &fakeUploader{})

	require.NoError(t, jobs.ArchiveExpiredSessions(context.Background()))
	assert.Empty(t, sessions.deleted)
}
