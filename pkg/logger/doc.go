// Package logger builds log/slog loggers with functional options.
//
// Loggers default to JSON output at info level on stdout. WithEnvironment
// switches to text output at debug level for development and attaches the
// service and environment names to every record. Context extractors add
// request-scoped attributes (such as the request id from the requestid
// package) at log time through LogHandlerDecorator.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "matchkit"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "value rejected", logger.Codes(res.Codes()))
package logger
