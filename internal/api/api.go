package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/matchkit/pkg/httpserver"
	"github.com/dmitrymomot/matchkit/pkg/i18n"
	"github.com/dmitrymomot/matchkit/pkg/logger"
	"github.com/dmitrymomot/matchkit/pkg/matcher"
	"github.com/dmitrymomot/matchkit/pkg/requestid"
)

// Handler serves the matcher API.
type Handler struct {
	matcher    *matcher.DecimalNumber
	translator *i18n.Translator
	logger     *slog.Logger
}

// New returns a Handler that checks parameterless requests with m.
func New(m *matcher.DecimalNumber, t *i18n.Translator, log *slog.Logger) (*Handler, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}
	if t == nil {
		return nil, ErrNilTranslator
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		matcher:    m,
		translator: t,
		logger:     log.With(logger.Component("api")),
	}, nil
}

// Router wires middleware and routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(RequestLogger(h.logger))
	r.Use(i18n.Middleware(h.translator))

	r.Get("/health", httpserver.HealthCheckHandler(h.logger, h.ready))
	r.Route("/v1/matchers", func(r chi.Router) {
		r.Post("/decimal", h.matchDecimal)
	})

	return r
}

func (h *Handler) ready(_ context.Context) error {
	if len(h.translator.SupportedLanguages()) == 0 {
		return errors.New("no translations loaded")
	}
	return nil
}
