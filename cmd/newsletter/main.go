package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/roundup/app/newsletter"
	"github.com/dmitrymomot/roundup/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, nil, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes one newsletter pass and returns the process exit code.
// A nil environ reads the process environment.
func run(ctx context.Context, environ map[string]string, out io.Writer) int {
	ctx, _ = logger.WithRunID(ctx)

	cfg, err := newsletter.LoadConfig(environ)
	if err != nil {
		// Config is unknown at this point, so log with production defaults.
		log := logger.New(
			logger.WithProduction("roundup"),
			logger.WithOutput(out),
			logger.WithContextExtractors(logger.RunIDExtractor),
		)
		log.ErrorContext(ctx, "Failed to load configuration",
			logger.Component(string(newsletter.StageConfiguring)),
			logger.Key("missing", newsletter.MissingVars(err)),
			logger.Error(err),
		)
		return 1
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithOutput(out),
		logger.WithContextExtractors(logger.RunIDExtractor),
	)
	if environ == nil {
		logger.SetAsDefault(log)
	}

	app, err := newsletter.NewApp(cfg, newsletter.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "Failed to create app", logger.Error(err))
		return 1
	}

	if err := app.Run(ctx); err != nil {
		stage, _ := newsletter.FailedStage(err)
		log.ErrorContext(ctx, "Newsletter run failed",
			logger.Component(string(stage)),
			logger.Error(err),
		)
		return 1
	}
	return 0
}
