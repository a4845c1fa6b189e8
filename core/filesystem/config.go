package filesystem

import "maps"

// Generic option keys understood by the drivers.
const (
	OptionMimetype   = "mimetype"
	OptionSize       = "size"
	OptionVisibility = "visibility"
	OptionACL        = "ACL"
)

// Config is the generic options bag passed to write-like operations.
// A Config may fall back to another one for keys it does not hold itself.
type Config struct {
	values   map[string]any
	fallback *Config
}

// NewConfig creates a Config holding a copy of values.
func NewConfig(values map[string]any) *Config {
	c := &Config{values: make(map[string]any, len(values))}
	maps.Copy(c.values, values)
	return c
}

// Has reports whether key is set on the config or anywhere along its fallback chain.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Get returns the value for key, consulting the fallback chain.
func (c *Config) Get(key string) (any, bool) {
	for cur := c; cur != nil; cur = cur.fallback {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetString returns the value for key as a string when it is one.
func (c *Config) GetString(key string) string {
	v, _ := c.Get(key)
	s, _ := v.(string)
	return s
}

// Set stores value under key.
func (c *Config) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// With returns a copy of the config with key set. The receiver is not modified.
func (c *Config) With(key string, value any) *Config {
	out := c.clone()
	out.Set(key, value)
	return out
}

// WithFallback returns a copy of the config that falls back to fallback.
func (c *Config) WithFallback(fallback *Config) *Config {
	out := c.clone()
	out.fallback = fallback
	return out
}

// Keys returns the keys set on the config itself.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	return keys
}

func (c *Config) clone() *Config {
	if c == nil {
		return NewConfig(nil)
	}
	out := NewConfig(c.values)
	out.fallback = c.fallback
	return out
}
