// Package facade is the public entry point to the engine: Parse, Format,
// and an Engine type wrapping the mapper and equivalence packages behind
// one DataProvider-backed object. Config mirrors the teacher's viper
// usage, but wraps a private *viper.Viper instance rather than the
// package-level global, since the CORE must support multiple
// independently configured Engines in the same process (spec §5/§6.2).
package facade

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/hgvscore/hgvscore/internal/mapper"
)

const windowSizeKey = "mapper.window_size"

// Config holds the tunables an Engine is constructed with. Zero value is
// not usable directly; call NewConfig.
type Config struct {
	v *viper.Viper
}

// NewConfig builds a Config with defaults matching mapper.DefaultWindowSize.
// Values can be overridden by environment variables prefixed HGVSCORE_
// (e.g. HGVSCORE_MAPPER_WINDOW_SIZE) or by calling SetWindowSize.
func NewConfig() *Config {
	v := viper.New()
	v.SetDefault(windowSizeKey, mapper.DefaultWindowSize)
	v.SetEnvPrefix("HGVSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// WindowSize returns the configured projection/normalization window size,
// in bases of padding on either side of an edit.
func (c *Config) WindowSize() int {
	return c.v.GetInt(windowSizeKey)
}

// SetWindowSize overrides the projection/normalization window size.
func (c *Config) SetWindowSize(n int) {
	c.v.Set(windowSizeKey, n)
}
