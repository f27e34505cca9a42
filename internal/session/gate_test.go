package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestGate(t *testing.T, now *time.Time) (*Gate, *FileStore) {
	t.Helper()
	fs := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	g := NewGate(fs, 24*time.Hour, WithClock(func() time.Time { return *now }))
	return g, fs
}

func TestValidateCredentials(t *testing.T) {
	g := NewGate(NewFileStore(filepath.Join(t.TempDir(), "s.json")), 24*time.Hour)

	assert.True(t, g.ValidateCredentials("saied", "saied"))
	assert.False(t, g.ValidateCredentials("saied", "wrong"))
	assert.False(t, g.ValidateCredentials("admin", "saied"))
	assert.False(t, g.ValidateCredentials("", ""))
}

func TestValidateCredentialsWithBcryptOverride(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	g := NewGate(NewFileStore(filepath.Join(t.TempDir(), "s.json")), 24*time.Hour,
		WithPasswordHash(string(hash)))

	assert.True(t, g.ValidateCredentials("saied", "s3cret"))
	assert.False(t, g.ValidateCredentials("saied", "saied"), "encoded default is disabled by the override")
}

func TestSessionLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, _ := newTestGate(t, &now)
	ctx := context.Background()

	assert.False(t, g.IsSessionValid(ctx), "no session yet")

	rec, err := g.CreateSession(ctx, "saied")
	require.NoError(t, err)
	assert.Equal(t, "saied", rec.Username)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, now.UnixMilli(), rec.CreatedAtMillis)

	got, ok := g.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, rec.ID, got.ID)

	require.NoError(t, g.Logout(ctx))
	assert.False(t, g.IsSessionValid(ctx))
}

func TestSessionTTLBoundary(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := created
	g, _ := newTestGate(t, &now)
	ctx := context.Background()

	_, err := g.CreateSession(ctx, "saied")
	require.NoError(t, err)

	now = created.Add(24*time.Hour - time.Second)
	assert.True(t, g.IsSessionValid(ctx), "valid at T+23h59m59s")

	now = created.Add(24*time.Hour + time.Second)
	assert.False(t, g.IsSessionValid(ctx), "invalid at T+24h00m01s")

	// Expiry cleared the record: rewinding the clock does not revive it.
	now = created
	assert.False(t, g.IsSessionValid(ctx))
}

func TestSessionOverwritesPrior(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, _ := newTestGate(t, &now)
	ctx := context.Background()

	first, err := g.CreateSession(ctx, "saied")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	second, err := g.CreateSession(ctx, "saied")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	got, ok := g.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
}

func TestCorruptRecordTreatedAsLoggedOut(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, fs := newTestGate(t, &now)
	ctx := context.Background()

	require.NoError(t, fs.Put(ctx, sessionKey, []byte(`"not a session object"`)))
	assert.False(t, g.IsSessionValid(ctx))

	// The corrupt value was cleared on read.
	_, err := fs.Get(ctx, sessionKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCorruptStoreFileTreatedAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0644))

	g := NewGate(NewFileStore(path), 24*time.Hour)
	assert.False(t, g.IsSessionValid(context.Background()))
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nested", "kv.json"))
	ctx := context.Background()

	_, err := fs.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fs.Put(ctx, "k", []byte(`{"a":1}`)))
	got, err := fs.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, fs.Delete(ctx, "k"))
	_, err = fs.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, fs.Delete(ctx, "k"))
}
