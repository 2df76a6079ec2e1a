// Package i18n embeds the BlueWard translation tables and resolves locale
// codes against the supported set.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// Supported lists the locale codes with a translation table, in matcher
// priority order. The first entry is the default.
var Supported = []string{"en", "es"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
})

// Table is a nested category.key -> string mapping. Lookups on missing
// categories or keys return the empty string; UI templates interpolate
// translation values inline and must never panic on a gap.
type Table map[string]map[string]string

// Get returns the translation for category/key, or "" when absent.
func (t Table) Get(category, key string) string {
	return t[category][key]
}

// Lookup resolves a dotted path like "auth.username". Malformed paths and
// missing keys return "".
func (t Table) Lookup(path string) string {
	category, key, ok := strings.Cut(path, ".")
	if !ok {
		return ""
	}
	return t.Get(category, key)
}

// Resolve normalizes a locale code against the supported set. Region and
// script subtags collapse to their base language ("es-MX" resolves to "es").
// Unsupported or unparseable codes report ok=false.
func Resolve(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Supported[idx], true
}

// Load parses the embedded table for a supported locale code.
func Load(code string) (Table, error) {
	raw, err := tablesFS.ReadFile("tables/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: no table for %q: %w", code, err)
	}
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("i18n: parse table %q: %w", code, err)
	}
	return t, nil
}
