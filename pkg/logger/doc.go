// Package logger builds log/slog loggers with functional options and
// context-aware attribute injection.
//
// New returns a *slog.Logger whose handler is wrapped by LogHandlerDecorator.
// The decorator runs every registered ContextExtractor when a record is
// handled, so request-scoped values such as the request id appear on every
// line logged with a context.
//
//	log := logger.New(
//		logger.WithEnvironment(logger.Production, "qrkit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "qr code generated",
//		logger.Kind("wifi"),
//		logger.OutputFormat("svg"),
//	)
//
// Attribute helpers (Error, Kind, LinkCode, ...) keep key names consistent
// across packages. Error and Errors return an empty Attr for nil errors, so
// they can be passed without a nil check.
//
// Libraries that accept a logger default to Noop.
package logger
