// Package logging constructs the process-wide structured logger.
//
// All components take a *slog.Logger and default to slog.Default(), so the
// host process decides once, at startup, how logs are formatted and where
// they go:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	slog.SetDefault(logger)
package logging
