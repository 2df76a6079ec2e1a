package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/infrastructure/storage"
)

func newLocaleHarness(t *testing.T) (*LocaleService, *storage.FileStore) {
	t.Helper()
	store := storage.New(t.TempDir(), discardLogger)
	return NewLocaleService(store, "en", discardLogger), store
}

func TestLocale_DefaultsToEnglish(t *testing.T) {
	svc, _ := newLocaleHarness(t)

	assert.Equal(t, "en", svc.Current())
	assert.Equal(t, "Cancel", svc.Translations().Get("common", "cancel"))
}

func TestLocale_SwitchAndPersist(t *testing.T) {
	svc, store := newLocaleHarness(t)

	require.True(t, svc.SetLocale("es"))
	assert.Equal(t, "es", svc.Current())
	assert.Equal(t, "Cancelar", svc.Translations().Get("common", "cancel"))

	require.True(t, svc.SetLocale("en"))
	assert.Equal(t, "en", svc.Current())
	assert.Equal(t, "Cancel", svc.Translations().Get("common", "cancel"))

	// Preference survives a restart.
	require.True(t, svc.SetLocale("es"))
	restored := NewLocaleService(store, "en", discardLogger)
	assert.Equal(t, "es", restored.Current())
	assert.Equal(t, "Cancelar", restored.Translations().Get("common", "cancel"))
}

func TestLocale_UnsupportedCodeLeavesStateUnchanged(t *testing.T) {
	svc, _ := newLocaleHarness(t)
	require.True(t, svc.SetLocale("es"))

	assert.False(t, svc.SetLocale("fr"))
	assert.False(t, svc.SetLocale(""))
	assert.False(t, svc.SetLocale("zz-ZZ"))

	assert.Equal(t, "es", svc.Current())
	assert.Equal(t, "Cancelar", svc.Translations().Get("common", "cancel"))
}

func TestLocale_RegionalVariantCollapses(t *testing.T) {
	svc, _ := newLocaleHarness(t)

	require.True(t, svc.SetLocale("es-MX"))
	assert.Equal(t, "es", svc.Current())
}

func TestLocale_CorruptPersistedValueIgnored(t *testing.T) {
	store := storage.New(t.TempDir(), discardLogger)
	require.True(t, store.Set(ports.KeyLanguage, "klingon"))

	svc := NewLocaleService(store, "en", discardLogger)
	assert.Equal(t, "en", svc.Current())
}
