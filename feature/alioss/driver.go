package alioss

import (
	"ossdisk/core/disk"
	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"go.uber.org/zap"
)

// Driver is the driver name disks use to select the OSS adapter.
const Driver = "oss"

// Register binds the OSS driver to the disk manager.
func Register(m *disk.Manager) {
	m.Extend(Driver, Factory)
}

// Factory builds an OSS adapter from a disk configuration.
func Factory(cfg storage.Config, logger *zap.Logger) (filesystem.Adapter, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewAdapter(client, Options{
		Bucket:   cfg.Bucket,
		Prefix:   cfg.Prefix,
		Defaults: cfg.Options,
		Endpoint: cfg.Host(),
		IsCname:  cfg.IsCname,
		Scheme:   cfg.Scheme(),
	}, logger), nil
}
