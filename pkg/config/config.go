package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the optional config file under
// $XDG_CONFIG_HOME/filemap/.
const ConfigFileName = "config.toml"

// Config holds flag defaults read from the config file. Command-line
// flags always win over these values.
type Config struct {
	SourceDir string `toml:"source_dir"`
	DestDir   string `toml:"dest_dir"`
	RulesFile string `toml:"rules_file"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		SourceDir: ".",
		DestDir:   ".",
	}
}

// Path returns the config file location per the XDG base directory spec.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "filemap", ConfigFileName)
}

// Load reads the config file if present, layering it over the built-in
// defaults. A missing file is not an error; a malformed one is.
func Load(fsys types.FS) (Config, error) {
	return LoadFrom(fsys, Path())
}

// LoadFrom is Load with an explicit path, for tests.
func LoadFrom(fsys types.FS, path string) (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad,
			"unable to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse,
			"unable to parse config file %s", path)
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = "."
	}
	if cfg.DestDir == "" {
		cfg.DestDir = "."
	}

	logger.Debug().
		Str("path", path).
		Str("sourceDir", cfg.SourceDir).
		Str("destDir", cfg.DestDir).
		Msg("Loaded config file")

	return cfg, nil
}
