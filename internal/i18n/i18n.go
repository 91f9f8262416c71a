// Package i18n holds the English and French text of the site and the
// visitor's language preference.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"

	Default = English
)

var ErrUnknownLanguage = errors.New("i18n: unknown language")

// Languages lists the supported languages in display order.
var Languages = []Language{English, French}

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case French:
		return French, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == French {
		return English
	}
	return French
}

// Translator looks keys up in one language's table.
type Translator struct {
	lang  Language
	table map[string]string
}

// For returns the translator for lang, falling back to Default.
func For(lang Language) Translator {
	table, ok := dictionary[lang]
	if !ok {
		lang, table = Default, dictionary[Default]
	}
	return Translator{lang: lang, table: table}
}

func (t Translator) Language() Language { return t.lang }

// T returns the text for key, or key itself when no entry exists.
func (t Translator) T(key string) string {
	if s, ok := t.table[key]; ok {
		return s
	}
	return key
}

// Keys returns the sorted keys of lang's table.
func Keys(lang Language) []string {
	table := dictionary[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PreferenceKey is the key the language flag is stored under.
const PreferenceKey = "language"

// KV is the scoped key-value store a preference is persisted in.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Preference loads and saves the language flag.
type Preference interface {
	Load(ctx context.Context) (Language, error)
	Save(ctx context.Context, lang Language) error
}

// StoredPreference keeps the flag in a KV store.
type StoredPreference struct {
	KV KV
}

// Load returns the saved language. A missing or unrecognised value yields
// Default without error.
func (p StoredPreference) Load(ctx context.Context) (Language, error) {
	v, ok, err := p.KV.Get(ctx, PreferenceKey)
	if err != nil {
		return Default, fmt.Errorf("load language preference: %w", err)
	}
	if !ok {
		return Default, nil
	}
	lang, err := ParseLanguage(v)
	if err != nil {
		return Default, nil
	}
	return lang, nil
}

func (p StoredPreference) Save(ctx context.Context, lang Language) error {
	if _, err := ParseLanguage(string(lang)); err != nil {
		return err
	}
	if err := p.KV.Set(ctx, PreferenceKey, string(lang)); err != nil {
		return fmt.Errorf("save language preference: %w", err)
	}
	return nil
}
