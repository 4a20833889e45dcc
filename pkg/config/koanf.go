package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "AGENTKIT_"

// Config is the resolved agentkit configuration
type Config struct {
	SourceRoot string `koanf:"source_root"`
	DestRoot   string `koanf:"dest_root"`
	LogFile    bool   `koanf:"log_file"`
}

// LoadOptions controls where Load reads from
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	// When empty the default user config file is read if present.
	ConfigFile string

	// Overrides are applied last, typically from command-line flags.
	// Empty string values are ignored.
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(defaultsProvider{data: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config
	configFile := opts.ConfigFile
	if configFile == "" {
		candidate := paths.ConfigFile()
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	}

	// 3. Environment
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	overrides := make(map[string]interface{})
	for key, value := range opts.Overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		overrides[key] = value
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	return &cfg, nil
}
