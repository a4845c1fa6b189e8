package disk

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"go.uber.org/zap"
)

// Sentinel errors
var (
	ErrDiskNotConfigured   = errors.New("disk not configured")
	ErrDriverNotRegistered = errors.New("driver not registered")
)

// Factory builds the adapter of a disk from its configuration.
type Factory func(cfg storage.Config, logger *zap.Logger) (filesystem.Adapter, error)

// Manager holds the driver registry and the assembled disks.
type Manager struct {
	mu      sync.Mutex
	configs map[string]storage.Config
	drivers map[string]Factory
	disks   map[string]*filesystem.Filesystem
	logger  *zap.Logger
}

// NewManager creates a Manager for the given disk configurations, keyed by disk name.
func NewManager(configs map[string]storage.Config, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	cp := make(map[string]storage.Config, len(configs))
	for name, cfg := range configs {
		cp[name] = cfg
	}
	return &Manager{
		configs: cp,
		drivers: make(map[string]Factory),
		disks:   make(map[string]*filesystem.Filesystem),
		logger:  logger,
	}
}

// Extend registers a driver factory. A later registration replaces an earlier one.
func (m *Manager) Extend(driver string, factory Factory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[driver] = factory
}

// Set binds an already assembled filesystem under name.
func (m *Manager) Set(name string, fs *filesystem.Filesystem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disks[name] = fs
}

// Disk returns the filesystem bound under name, building it on first use.
func (m *Manager) Disk(name string) (*filesystem.Filesystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fs, ok := m.disks[name]; ok {
		return fs, nil
	}

	cfg, ok := m.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDiskNotConfigured, name)
	}
	factory, ok := m.drivers[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s (disk %s)", ErrDriverNotRegistered, cfg.Driver, name)
	}

	adapter, err := factory(cfg, m.logger.With(zap.String("disk", name)))
	if err != nil {
		return nil, fmt.Errorf("failed to build disk %s: %w", name, err)
	}

	fs := filesystem.New(adapter, diskConfig(cfg))
	m.disks[name] = fs
	m.logger.Info("Disk ready",
		zap.String("disk", name),
		zap.String("driver", cfg.Driver),
		zap.String("bucket", cfg.Bucket))
	return fs, nil
}

// Names returns the configured and bound disk names, sorted.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(m.configs)+len(m.disks))
	for name := range m.configs {
		seen[name] = struct{}{}
	}
	for name := range m.disks {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// diskConfig builds the filesystem-level config of a disk.
func diskConfig(cfg storage.Config) *filesystem.Config {
	values := map[string]any{}
	if cfg.Visibility != "" {
		values[filesystem.OptionVisibility] = cfg.Visibility
	}
	return filesystem.NewConfig(values)
}
