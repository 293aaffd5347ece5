// Command matchkit validates decimal numbers from the command line or serves
// the matcher API over HTTP.
//
//	matchkit check [-params 5,2] [-lang en] [values...]
//	matchkit serve
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/matchkit/pkg/config"
	"github.com/dmitrymomot/matchkit/pkg/i18n"
	"github.com/dmitrymomot/matchkit/pkg/logger"
	"github.com/dmitrymomot/matchkit/pkg/requestid"
	"github.com/dmitrymomot/matchkit/translations"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage: matchkit <check|serve> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	switch args[0] {
	case "check":
		return runCheck(ctx, cfg, args[1:], stdin, stdout, stderr)
	case "serve":
		log := newLogger(cfg, stderr)
		if err := runServe(ctx, cfg, log); err != nil {
			log.Error("serve failed", logger.Error(err))
			return exitInvalid
		}
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%v\n", args[0], errUsage)
		return exitUsage
	}
}

func newLogger(cfg appConfig, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(translations.FS, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	)
}
