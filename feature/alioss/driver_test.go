package alioss

import (
	"testing"

	"ossdisk/core/disk"
	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	t.Run("Builds adapter from config", func(t *testing.T) {
		adapter, err := Factory(storage.Config{
			Driver:    Driver,
			AccessID:  "id",
			AccessKey: "secret",
			Endpoint:  "https://oss-cn-hangzhou.aliyuncs.com",
			Bucket:    "assets",
			Prefix:    "uploads",
			UseSSL:    true,
			Options:   map[string]string{OptionCacheControl: "max-age=60"},
		}, nil)
		require.NoError(t, err)

		a, ok := adapter.(*Adapter)
		require.True(t, ok)
		assert.Equal(t, "assets", a.Bucket())
		assert.Equal(t, "uploads/", a.Prefixer().Prefix())
		assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", a.endpoint)
		assert.Equal(t, "https", a.scheme)
		assert.Equal(t, "max-age=60", a.options[OptionCacheControl])
	})

	t.Run("Missing credentials", func(t *testing.T) {
		_, err := Factory(storage.Config{Bucket: "assets"}, nil)
		assert.Error(t, err)
	})
}

func TestRegister(t *testing.T) {
	mgr := disk.NewManager(map[string]storage.Config{
		"oss": {
			Driver:    Driver,
			AccessID:  "id",
			AccessKey: "secret",
			Endpoint:  "oss-cn-hangzhou.aliyuncs.com",
			Bucket:    "assets",
		},
	}, nil)
	Register(mgr)

	fs, err := mgr.Disk("oss")
	require.NoError(t, err)
	_, ok := fs.Adapter().(filesystem.TemporaryURLGenerator)
	assert.True(t, ok)
}
