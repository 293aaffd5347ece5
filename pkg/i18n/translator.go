package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator renders translation keys for a language.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
	mu            sync.RWMutex
	adapter       TranslationAdapter
}

// NewTranslator creates a Translator and loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	for lang, trans := range translations {
		if lang == "" {
			return errors.Join(ErrInvalidTranslation, errors.New("empty language code"))
		}
		if trans == nil {
			return errors.Join(ErrInvalidTranslation, fmt.Errorf("nil translations for language %q", lang))
		}
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", "languages", langs)
	return nil
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key exists for lang, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// key-value args:
//
//	translator.T("de", "doubleNumber.e002", "field", "price")
//
// A missing language or key falls back to the default language, then to the
// key itself when FallbackToKey is enabled (the default), otherwise to "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return namedSprintf(tmpl, args)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			t.logger.Debug("translation missing, using default language", "lang", lang, "key", key)
			return namedSprintf(tmpl, args)
		}
	}

	t.logger.Warn("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return namedSprintf(key, args)
	}
	return ""
}

// Tc translates key for the language stored in ctx by Middleware or SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// lookup walks a dot-separated key through nested maps.
// Only string leaves count as translations.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		current, ok = asStringMap(val)
		if !ok {
			return "", false
		}
	}
	return "", false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces "%{name}" using key-value pairs. Unknown placeholders
// are kept; a trailing odd argument is ignored.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
