package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/jc/internal/core/domain"
)

// EnvConfigDir overrides the directory searched for the config file.
const EnvConfigDir = "JC_CONFIG_DIR"

// Config file names, in lookup order.
const (
	tomlFile = "config.toml"
	yamlFile = "config.yaml"
)

// ConfigStore holds option defaults read from a TOML or YAML file.
// It never writes to disk and never creates directories.
type ConfigStore struct {
	filePath string
	data     map[string]any
}

// DefaultDir returns $JC_CONFIG_DIR, or <user config dir>/jc.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "jc"), nil
}

// NewConfigStore loads the config file from configDir.
// If configDir is empty, DefaultDir is used. config.toml is preferred over
// config.yaml; with neither present the store is empty.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, tomlFile),
		data:     make(map[string]any),
	}
	if _, err := os.Stat(s.filePath); errors.Is(err, os.ErrNotExist) {
		if _, yerr := os.Stat(filepath.Join(configDir, yamlFile)); yerr == nil {
			s.filePath = filepath.Join(configDir, yamlFile)
		}
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the configuration file. A missing file leaves the store empty.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	switch filepath.Ext(s.filePath) {
	case ".yaml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = toml.Unmarshal(data, &loaded)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}
	s.data = flattenMap(loaded, "")
	return nil
}

// Get retrieves a configuration value by dotted key.
func (s *ConfigStore) Get(key string) (any, bool) {
	val, ok := s.data[key]
	return val, ok
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// Apply turns on the options the file enables. Only quiet can be set here;
// output shape stays under command-line control. An option already set on
// the command line stays set.
func (s *ConfigStore) Apply(opts *domain.InvocationOptions) {
	opts.Quiet = opts.Quiet || s.GetBool("quiet")
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
