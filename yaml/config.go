// Package yaml loads winnow configuration from YAML files.
package yaml

import (
	"os"

	"gopkg.in/yaml.v3"

	"winnow"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "winnow.yaml"

// LoadConfig loads configuration from a YAML file. A missing file yields the
// defaults; a present file overrides them field by field.
func LoadConfig(path string) (*winnow.Config, error) {
	cfg := winnow.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, winnow.Errorf(winnow.EINVALID, "failed to read config %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, winnow.Errorf(winnow.EINVALID, "failed to parse config %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
