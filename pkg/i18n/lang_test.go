package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/matchkit/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	supported := []string{"en", "de"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: "en"},
		{name: "exact", header: "de", want: "de"},
		{name: "regional variant", header: "de-AT", want: "de"},
		{name: "quality order", header: "en;q=0.5, de;q=0.9", want: "de"},
		{name: "unsupported first", header: "fr-CH, fr;q=0.9, de;q=0.8", want: "de"},
		{name: "nothing supported", header: "ja", want: "en"},
		{name: "malformed", header: ";;;q=abc", want: "en"},
		{name: "oversized", header: strings.Repeat("x", 5000), want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}

	assert.Equal(t, "en", i18n.ParseAcceptLanguage("de", nil, "en"))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	var got string
	handler := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "de", got)

	req = httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	req.Header.Set("Accept-Language", "de")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", got, "query parameter wins")

	req = httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", got, "unsupported query parameter is ignored")
}

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "de", i18n.GetLocale(i18n.SetLocale(context.Background(), "de")))
}
