// Package i18n renders localised messages for matcher issue codes and other
// dotted translation keys.
//
// Translations are nested maps keyed by language code, loaded through a
// TranslationAdapter. FSAdapter reads YAML (gopkg.in/yaml.v3) and JSON files
// from any fs.FS, which lets catalogs be embedded in the binary:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(translations.FS, "."),
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithLogger(log),
//	)
//	msg := tr.T("de", "doubleNumber.e003")
//
// Placeholders use the "%{name}" form and are filled from key-value pairs.
// Missing translations fall back to the default language and then to the key.
//
// Middleware negotiates the request language from the "lang" query parameter
// or the Accept-Language header (matched with golang.org/x/text/language) and
// stores it in the context for Translator.Tc.
package i18n
