package schemaset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"warden-hq/pathwarden/pkg/registry"
)

// ManagerConfig contains configuration for the schema-set manager.
type ManagerConfig struct {
	// Path is the schema-set document or directory of documents.
	Path string

	// Loader configures document loading. Nil uses defaults.
	Loader *LoaderConfig

	// Watcher configures hot reload. Nil uses defaults.
	Watcher *FileWatcherConfig
}

// DefaultManagerConfig returns the default manager configuration for the
// given path.
func DefaultManagerConfig(path string) *ManagerConfig {
	return &ManagerConfig{
		Path:    path,
		Loader:  DefaultLoaderConfig(),
		Watcher: DefaultFileWatcherConfig(),
	}
}

// Manager loads schema-set documents into a registry and optionally keeps
// the registry synchronized with the documents on disk.
type Manager struct {
	config   *ManagerConfig
	loader   *Loader
	registry *registry.Registry
	logger   *slog.Logger

	mu      sync.Mutex
	watcher *FileWatcher
}

// NewManager creates a manager that loads documents from cfg.Path into reg.
func NewManager(cfg *ManagerConfig, reg *registry.Registry, logger *slog.Logger) (*Manager, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("schema set path is required")
	}
	if reg == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		config:   cfg,
		loader:   NewLoader(cfg.Loader),
		registry: reg,
		logger:   logger.With("component", "schemaset.manager"),
	}, nil
}

// Registry returns the managed registry.
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// LoadSchemas loads the schema set and replaces the registry contents
// atomically. On error the registry is left unchanged.
func (m *Manager) LoadSchemas() error {
	schemas, fallback, err := m.loader.LoadAll(m.config.Path)
	if err != nil {
		return err
	}

	if err := m.registry.Replace(schemas, fallback); err != nil {
		return err
	}

	m.logger.Info("schema set loaded",
		"path", m.config.Path,
		"schemas", len(schemas),
		"version", m.registry.Version(),
	)

	return nil
}

// ReloadSchemas reloads the schema set from disk. A load or compile failure
// leaves the previously loaded set active.
func (m *Manager) ReloadSchemas() error {
	return m.LoadSchemas()
}

// Watch blocks, reloading the schema set whenever its documents change on
// disk, until the context is cancelled or Close is called.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	if m.watcher != nil {
		m.mu.Unlock()
		return fmt.Errorf("manager already watching")
	}

	cfg := m.config.Watcher
	if cfg == nil {
		cfg = DefaultFileWatcherConfig()
	}
	watcherCfg := *cfg
	watcherCfg.Path = m.config.Path

	watcher, err := NewFileWatcher(&watcherCfg, m.logger)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.watcher = watcher
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.watcher = nil
		m.mu.Unlock()
	}()

	return watcher.Watch(ctx, m.ReloadSchemas)
}

// Close stops watching, if active.
func (m *Manager) Close() error {
	m.mu.Lock()
	watcher := m.watcher
	m.mu.Unlock()

	if watcher == nil {
		return nil
	}
	return watcher.Stop()
}
