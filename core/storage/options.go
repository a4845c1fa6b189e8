package storage

import "github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

// ClientOption customises the OSS SDK configuration before the client is built.
type ClientOption func(c *oss.Config)

// WithEndpoint specifies the endpoint.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *oss.Config) {
		c.WithEndpoint(endpoint)
	}
}

// WithInternalEndpoint uses an internal endpoint.
func WithInternalEndpoint() ClientOption {
	return func(c *oss.Config) {
		c.WithUseInternalEndpoint(true)
	}
}

// WithAccelerateEndpoint uses an OSS-accelerated endpoint.
func WithAccelerateEndpoint() ClientOption {
	return func(c *oss.Config) {
		c.WithUseAccelerateEndpoint(true)
	}
}

// WithCName accesses OSS through a custom domain name.
func WithCName(domain string) ClientOption {
	return func(c *oss.Config) {
		c.WithEndpoint(domain).WithUseCName(true)
	}
}

// WithPathStyle uses path request style.
func WithPathStyle() ClientOption {
	return func(c *oss.Config) {
		c.WithUsePathStyle(true)
	}
}

// WithDisableUploadCRC64Check disables CRC-64 verification on upload.
func WithDisableUploadCRC64Check() ClientOption {
	return func(c *oss.Config) {
		c.WithDisableUploadCRC64Check(true)
	}
}

// WithUserAgent appends ua to the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *oss.Config) {
		c.WithUserAgent(ua)
	}
}
