package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, which bounds uploads through the API.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"100"`
	// RequiredDirs is a comma separated list of directories every disk must contain.
	RequiredDirs string `mapstructure:"required_dirs" default:""`
}

// Dirs returns the required directories, trimmed and without empty entries.
func (c Config) Dirs() []string {
	var dirs []string
	for _, d := range strings.Split(c.RequiredDirs, ",") {
		d = strings.Trim(strings.TrimSpace(d), "/")
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// BodyLimit returns the body limit in bytes, defaulting to 100MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 100 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
