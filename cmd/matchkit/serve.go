package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/matchkit/internal/api"
	"github.com/dmitrymomot/matchkit/pkg/httpserver"
	"github.com/dmitrymomot/matchkit/pkg/matcher"
)

func runServe(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	m, err := matcher.NewDecimalNumber(cfg.MatcherParams...)
	if err != nil {
		return err
	}

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return err
	}

	h, err := api.New(m, tr, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, h.Router())
}
