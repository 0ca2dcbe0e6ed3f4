// Package yaml loads butdiff configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gitbutlerapp/butdiff"
	yamlv3 "gopkg.in/yaml.v3"
)

// LoadConfig reads the config file at path over butdiff.DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (butdiff.Config, error) {
	cfg := butdiff.DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yamlv3.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxPatchBytes < 0 {
		return cfg, fmt.Errorf("parse config %s: max_patch_bytes must not be negative", path)
	}
	return cfg, nil
}
