// Package logger provides structured logging utilities built on log/slog.
//
// It offers a small factory with environment presets, a handler decorator
// that injects attributes from context, and attribute helpers for the
// values the pipeline logs most often.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/roundup/core/logger"
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(logger.RunIDExtractor),
//	)
//
//	ctx, _ := logger.WithRunID(context.Background())
//	log.InfoContext(ctx, "Newsletter generated",
//		logger.Component("generator"),
//		logger.Count("items", len(items)),
//	)
//	// {"level":"INFO","msg":"Newsletter generated","component":"generator","items":6,"run_id":"..."}
//
// # Environment Presets
//
//	logger.New(logger.WithDevelopment("roundup")) // text, debug level
//	logger.New(logger.WithProduction("roundup"))  // JSON, info level
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Error("Dispatch failed",
//		logger.Error(err),
//		logger.Component("dispatching"),
//		logger.Elapsed(start),
//	)
package logger
