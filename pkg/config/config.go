// Package config loads optional shipdeps defaults from a TOML file.
//
// The file supplies defaults only; command-line flags always win. A
// missing file at the default location is not an error, while a file
// named explicitly must exist.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shipdeps/pkg/errors"
)

// DefaultFile is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFile = "shipdeps.toml"

// Config holds file-supplied defaults for the CLI flags.
type Config struct {
	DestDir     string `toml:"destdir"`      // destination directory
	ExcludeFile string `toml:"exclude_file"` // extra exclusion patterns
	Graph       string `toml:"graph"`        // DOT output path
	Render      string `toml:"render"`       // "svg" or "png"
	DryRun      bool   `toml:"dry_run"`      // simulate only
}

// Load reads the config file at path. With required=false a missing file
// yields a zero Config; with required=true it is an error. Unknown keys
// are rejected so typos surface instead of being silently ignored.
func Load(path string, required bool) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return cfg, errors.New(errors.ErrCodeInvalidPath, "config file not found: %s", path)
		}
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeParse, err, "config file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeParse, "config file %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
