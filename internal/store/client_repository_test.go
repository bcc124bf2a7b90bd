package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "client.db") + "?_foreign_keys=on"
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return NewClientStorages(db, logger.Nop())
}

func TestSqliteFilePath(t *testing.T) {
	assert.Equal(t, "policy-desk.db", sqliteFilePath("file:policy-desk.db?_foreign_keys=on"))
	assert.Equal(t, "/tmp/a.db", sqliteFilePath("/tmp/a.db"))
}

func TestEnsurePrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	require.NoError(t, ensurePrivateFile(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))
	require.NoError(t, ensurePrivateFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestLocalSession_SaveGetClear(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	_, err := storages.Sessions.Get(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	saved := models.LocalSession{Token: "tok-1", UserID: "u-1", Email: "asha@example.com", SavedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, storages.Sessions.Save(ctx, saved))

	replaced := saved
	replaced.Token = "tok-2"
	require.NoError(t, storages.Sessions.Save(ctx, replaced))

	got, err := storages.Sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.Token)
	assert.Equal(t, saved.Identity(), got.Identity())

	require.NoError(t, storages.Sessions.Clear(ctx))
	_, err = storages.Sessions.Get(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSnapshot_RoundTripKeepsLocalPayloads(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	form := models.NewFormData()
	form.Personal.FirstName = "Asha"
	form.Documents = append(form.Documents, models.NewFileDocument("id.pdf", "application/pdf", []byte("%PDF")))

	snapshot := models.WizardSnapshot{
		Ref:      models.NotPersisted(),
		Status:   models.StatusDraft,
		Step:     models.StepDocuments,
		FormData: form,
	}
	require.NoError(t, storages.Snapshots.Save(ctx, snapshot))

	got, err := storages.Snapshots.Get(ctx, models.NewApplicationKey)
	require.NoError(t, err)

	assert.False(t, got.Ref.IsPersisted())
	assert.Equal(t, models.StepDocuments, got.Step)
	assert.Equal(t, "Asha", got.FormData.Personal.FirstName)
	require.Len(t, got.FormData.Documents, 1)
	assert.Equal(t, models.DocumentLocal, got.FormData.Documents[0].State())
	assert.Equal(t, []byte("%PDF"), got.FormData.Documents[0].Local.Bytes)
}

func TestSnapshot_PersistedKeyAndDelete(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	snapshot := models.WizardSnapshot{
		Ref:      models.Persisted("p-1"),
		Status:   models.StatusSubmitted,
		Step:     models.StepSummary,
		ReadOnly: true,
		FormData: models.NewFormData(),
	}
	require.NoError(t, storages.Snapshots.Save(ctx, snapshot))

	got, err := storages.Snapshots.Get(ctx, "p-1")
	require.NoError(t, err)
	id, ok := got.Ref.ID()
	assert.True(t, ok)
	assert.Equal(t, "p-1", id)
	assert.True(t, got.ReadOnly)

	require.NoError(t, storages.Snapshots.Delete(ctx, "p-1"))
	_, err = storages.Snapshots.Get(ctx, "p-1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
