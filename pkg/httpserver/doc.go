// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the configured
// shutdown timeout. Settings come from functional options or from Config,
// which carries `env` tags for the config package:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
//
// Listener failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; compare with errors.Is.
package httpserver
