package service

import (
	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/i18n"
)

// LocaleService holds the selected language and its resolved translation
// table. The choice is persisted so it survives restarts; an unsupported
// code is rejected without touching the active locale.
type LocaleService struct {
	store ports.KeyValueStore
	log   zerolog.Logger

	code  string
	table i18n.Table
}

// NewLocaleService restores the persisted language preference, falling back
// to defaultCode and finally to the first supported locale. A corrupt or
// unsupported persisted value is ignored.
func NewLocaleService(store ports.KeyValueStore, defaultCode string, log zerolog.Logger) *LocaleService {
	s := &LocaleService{store: store, log: log}

	var saved string
	if store.Get(ports.KeyLanguage, &saved) {
		if code, ok := i18n.Resolve(saved); ok && s.activate(code) {
			return s
		}
		log.Warn().Str("language", saved).Msg("ignoring unsupported persisted language")
	}
	if code, ok := i18n.Resolve(defaultCode); ok && s.activate(code) {
		return s
	}
	if !s.activate(i18n.Supported[0]) {
		// Embedded tables are part of the binary; failing to parse them is a
		// build defect, not a runtime condition to recover from.
		panic("i18n: default translation table failed to load")
	}
	return s
}

// Current returns the active locale code.
func (s *LocaleService) Current() string { return s.code }

// Translations returns the active translation table.
func (s *LocaleService) Translations() i18n.Table { return s.table }

// SetLocale switches the active language and persists the choice. Returns
// false and leaves the current locale unchanged when the code is not in the
// supported set.
func (s *LocaleService) SetLocale(code string) bool {
	resolved, ok := i18n.Resolve(code)
	if !ok {
		s.log.Error().Str("language", code).Msg("language is not supported")
		return false
	}
	if !s.activate(resolved) {
		return false
	}
	if !s.store.Set(ports.KeyLanguage, resolved) {
		s.log.Warn().Str("language", resolved).Msg("language preference not persisted")
	}
	s.log.Info().Str("language", resolved).Msg("language changed")
	return true
}

func (s *LocaleService) activate(code string) bool {
	table, err := i18n.Load(code)
	if err != nil {
		s.log.Error().Err(err).Str("language", code).Msg("failed to load translation table")
		return false
	}
	s.code = code
	s.table = table
	return true
}
