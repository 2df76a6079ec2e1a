package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueward/access-system/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func TestFileStore_RoundTrip(t *testing.T) {
	store := New(t.TempDir(), discardLogger)

	in := domain.User{
		ID:        3,
		Username:  "bob_guest",
		FullName:  "Bob Johnson",
		Role:      domain.RoleGuest,
		Friends:   []int{1, 2},
		Residence: "A101",
	}
	require.True(t, store.Set("currentUser", in))

	var out domain.User
	require.True(t, store.Get("currentUser", &out))
	assert.Equal(t, in, out)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store := New(dir, discardLogger)
	require.True(t, store.Set("language", "es"))

	// A fresh store over the same directory sees the value without any cache.
	reopened := New(dir, discardLogger)
	var lang string
	require.True(t, reopened.Get("language", &lang))
	assert.Equal(t, "es", lang)
}

func TestFileStore_MissingKey(t *testing.T) {
	store := New(t.TempDir(), discardLogger)

	var out string
	assert.False(t, store.Get("nope", &out))
	assert.Empty(t, out)
}

func TestFileStore_Remove(t *testing.T) {
	store := New(t.TempDir(), discardLogger)

	require.True(t, store.Set("language", "en"))
	require.True(t, store.Remove("language"))

	var out string
	assert.False(t, store.Get("language", &out))

	// Removing an absent key still succeeds.
	assert.True(t, store.Remove("language"))
	assert.True(t, store.Remove("never-existed"))
}

func TestFileStore_CorruptFileReportsFalse(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, discardLogger)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	var out map[string]string
	assert.False(t, store.Get("broken", &out))
}

func TestFileStore_KeyCannotEscapeDirectory(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, discardLogger)

	require.True(t, store.Set("../escape/attempt", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), string(filepath.Separator))
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	store := New(t.TempDir(), discardLogger)

	require.True(t, store.Set("language", "en"))
	require.True(t, store.Set("language", "es"))

	var out string
	require.True(t, store.Get("language", &out))
	assert.Equal(t, "es", out)
}
