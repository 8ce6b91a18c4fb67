// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so that registered ContextExtractor callbacks can add attributes
// from the context passed to the *Context logging methods.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(logger.Component("ipv4check")),
//	)
//	log.Debug("checked", logger.Address(addr), logger.Reason(err))
//
// The default logger writes text at INFO level to stderr.
//
// Helpers in attr.go keep attribute keys consistent. Error and Reason return
// an empty Attr for a nil error, so they can be passed unconditionally.
package logger
