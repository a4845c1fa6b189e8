package storage

import "strings"

// Config holds configuration for one storage disk.
type Config struct {
	// Name is the disk name the assembled filesystem is registered under.
	Name string `mapstructure:"name" default:"oss"`
	// Driver selects the backend implementation (oss, s3).
	Driver string `mapstructure:"driver" default:"oss"`
	// AccessID is the access key ID for authentication.
	AccessID string `mapstructure:"access_id" default:""`
	// AccessKey is the access key secret for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// Endpoint is the host of the storage service, e.g. oss-cn-hangzhou.aliyuncs.com.
	Endpoint string `mapstructure:"endpoint" default:"oss-cn-hangzhou.aliyuncs.com"`
	// Region is the region of the bucket (e.g., cn-hangzhou). Empty selects V1 signing.
	Region string `mapstructure:"region" default:""`
	// Bucket is the name of the bucket backing the disk.
	Bucket string `mapstructure:"bucket" default:""`
	// Prefix namespaces every path of the disk inside the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// IsCname indicates that Endpoint is a custom domain bound to the bucket.
	IsCname bool `mapstructure:"is_cname" default:"false"`
	// UseSSL indicates whether to use SSL/TLS for connections and public URLs.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// InternalEndpoint switches to the provider's internal network endpoint.
	InternalEndpoint bool `mapstructure:"internal_endpoint" default:"false"`
	// PathStyle forces path-style requests.
	PathStyle bool `mapstructure:"path_style" default:"false"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Visibility is the default visibility of new objects (public, private). Empty keeps
	// the bucket default.
	Visibility string `mapstructure:"visibility" default:""`
	// Options are default request options applied to every write (e.g. Cache-Control).
	Options map[string]string `mapstructure:"options"`
}

// Timeout returns the configured timeout in seconds, defaulting to 30.
func (c Config) Timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 30
	}
	return c.TimeoutSeconds
}

// Host returns the endpoint without its scheme.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimRight(host, "/")
}

// Scheme returns the URL scheme matching UseSSL.
func (c Config) Scheme() string {
	if c.UseSSL {
		return "https"
	}
	return "http"
}
