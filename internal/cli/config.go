package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds CLI-side defaults loaded from config.toml. The core's
// Options struct has no knowledge of this type or of files; flags passed
// on the command line always win over these defaults.
type Config struct {
	MaxWork float64 `toml:"max_work"`
	Verbose bool    `toml:"verbose"`
	DOT     bool    `toml:"emit_dot"`
}

// loadConfig reads path and decodes it as TOML. A missing file is not an
// error: the zero Config (unlimited work, non-verbose) is returned.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
