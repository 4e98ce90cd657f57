package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/ren/pkg/errors"
)

// Config holds the user-tunable defaults. Command-line flags always win
// over anything loaded here.
type Config struct {
	DryRun bool `koanf:"dry_run"`
	Debug  bool `koanf:"debug"`
	Regex  bool `koanf:"regex"`
}

// envPrefix is the prefix for environment overrides, e.g. REN_DRY_RUN=true
const envPrefix = "REN_"

// Load resolves the effective configuration by merging, lowest
// precedence first:
//
//  1. built-in defaults
//  2. ren.toml / ren.yaml in the XDG config directory (under ren/)
//  3. .ren.toml / .ren.yaml in workDir
//  4. REN_* environment variables
func Load(workDir string) (Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"dry_run": false,
		"debug":   false,
		"regex":   false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// XDG config, e.g. ~/.config/ren/ren.toml
	for _, name := range []string{"ren.toml", "ren.yaml"} {
		path, err := xdg.SearchConfigFile(filepath.Join("ren", name))
		if err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		break
	}

	// Per-directory overrides next to the files being renamed
	for _, name := range []string{".ren.toml", ".ren.yaml"} {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		break
	}

	// Environment wins over files: REN_DRY_RUN -> dry_run
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return cfg, nil
}

// parserFor picks the koanf parser matching the file extension
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}
