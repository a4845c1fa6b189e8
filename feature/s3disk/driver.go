package s3disk

import (
	"ossdisk/core/disk"
	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"go.uber.org/zap"
)

// Driver is the driver name disks use to select the S3 adapter.
const Driver = "s3"

// Register binds the S3 driver to the disk manager.
func Register(m *disk.Manager) {
	m.Extend(Driver, Factory)
}

// Factory builds an S3 adapter from a disk configuration.
func Factory(cfg storage.Config, logger *zap.Logger) (filesystem.Adapter, error) {
	client, err := storage.NewS3Client(cfg)
	if err != nil {
		return nil, err
	}
	return NewAdapter(client, cfg.Bucket, cfg.Prefix, cfg.Options, logger), nil
}
