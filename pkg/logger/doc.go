// Package logger builds *slog.Logger instances with functional options and
// keeps attribute names consistent across packages.
//
// New selects a text or JSON handler, applies the minimum level and attaches
// static attributes. The attribute helpers in attr.go (Error, UserID, Route,
// Component, Outcome) return slog.Attr values with fixed keys so that log
// queries do not depend on which package emitted the record.
//
// # Usage
//
//	import "github.com/dmitrymomot/verifyemail/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "verifyemail")),
//	)
//	log.Info("link generated", logger.Route("verify_email"), logger.UserID("42"))
//
// Helpers given a nil or empty value return an empty slog.Attr, which slog
// drops from the output.
package logger
