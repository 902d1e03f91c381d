// Package newsletter wires the run-once newsletter pipeline.
//
// A run moves through configuring, generating, rendering and dispatching, in
// that order, and stops at the first failure. Every failure is a *StageError
// naming the stage it happened in.
//
//	cfg, err := newsletter.LoadConfig(nil)
//	if err != nil {
//		return err
//	}
//	app, err := newsletter.NewApp(cfg)
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
//
// The generator, mail sender and storage are built from Config unless
// injected with the With* options.
package newsletter
