package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"warden-hq/pathwarden/pkg/cli"
	"warden-hq/pathwarden/pkg/config"
	"warden-hq/pathwarden/pkg/registry"
	"warden-hq/pathwarden/pkg/schema"
	"warden-hq/pathwarden/pkg/schemaset"
	"warden-hq/pathwarden/pkg/telemetry/logging"
	"warden-hq/pathwarden/pkg/telemetry/metrics"
)

var watchFlags struct {
	config  string
	schemas string
	listen  string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a schema set loaded and reload it on changes",
	Long: `Load a schema set, then watch its documents and reload atomically on
every change. A reload that fails to compile leaves the previous set
active. With --listen, Prometheus metrics (including the registered
schema gauge) are exposed at /metrics.

Examples:
  pathwarden watch --schemas schemas/
  pathwarden watch --schemas schemas/ --listen :9464
  pathwarden watch --config pathwarden.yaml`,
	RunE: watchSchemaSets,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.config, "config", "c", "", "configuration file")
	watchCmd.Flags().StringVarP(&watchFlags.schemas, "schemas", "s", "", "schema set file or directory")
	watchCmd.Flags().StringVar(&watchFlags.listen, "listen", "", "address for the /metrics endpoint (disabled when empty)")
}

// watchSettings resolves the effective watch configuration. Flags override
// the configuration file.
func watchSettings() (*config.Config, *slog.Logger, error) {
	var cfg *config.Config

	if watchFlags.config != "" {
		loaded, err := config.LoadConfigWithEnvOverrides(watchFlags.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
		cfg.Logging.Level = "warn"
	}

	if watchFlags.schemas != "" {
		cfg.Schemas.Path = watchFlags.schemas
	}
	if watchFlags.listen != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Listen = watchFlags.listen
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if cfg.Schemas.Path == "" {
		return nil, nil, fmt.Errorf("either --schemas or a config file with schemas.path must be provided")
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func watchSchemaSets(cmd *cobra.Command, args []string) error {
	cfg, logger, err := watchSettings()
	if err != nil {
		return err
	}
	ctx := cli.SetupSignalHandler()

	reg := registry.New(schema.PermissiveDefault(), logger)
	collector := metrics.NewCollector(&metrics.Config{
		Enabled:   true,
		Namespace: cfg.Metrics.Namespace,
	}, nil)

	mgrCfg := &schemaset.ManagerConfig{
		Path: cfg.Schemas.Path,
		Loader: &schemaset.LoaderConfig{
			MaxFileSize: cfg.Schemas.MaxFileSize,
		},
		Watcher: &schemaset.FileWatcherConfig{
			DebounceInterval: cfg.Schemas.DebounceInterval,
		},
	}
	mgr, err := schemaset.NewManager(mgrCfg, reg, logger)
	if err != nil {
		return err
	}
	if err := mgr.LoadSchemas(); err != nil {
		return err
	}
	updateSchemaGauges(collector, reg)

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d schema(s) from %s (version %s)\n",
		reg.Count(), cfg.Schemas.Path, reg.Version())

	var server *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server = &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Metrics at http://%s/metrics\n", cfg.Metrics.Listen)
	}

	// Refresh the schema gauges after each (possibly failed) reload.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				updateSchemaGauges(collector, reg)
			}
		}
	}()

	err = mgr.Watch(ctx)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}

	return err
}

func updateSchemaGauges(collector *metrics.Collector, reg *registry.Registry) {
	exact, patterns := reg.CountByKind()
	collector.SetSchemaCount("exact", exact)
	collector.SetSchemaCount("pattern", patterns)
}
