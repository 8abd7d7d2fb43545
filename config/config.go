// Package config loads optional repository-level settings for the CLI from
// a TOML file in the working directory.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/buildpeak/commitmsg/shellescape"
)

// DefaultFilename is looked up in the working directory.
const DefaultFilename = ".commitmsg.toml"

type Escape struct {
	Shell          string `toml:"shell"`
	NoShell        bool   `toml:"no_shell"`
	FlagProtection *bool  `toml:"flag_protection"`
}

type Outputs struct {
	Sha string `toml:"sha"`
}

type Config struct {
	Escape  Escape  `toml:"escape"`
	Outputs Outputs `toml:"outputs"`
}

// Load reads filename from fs. A missing file is not an error, it just
// yields the zero config.
func Load(fs afero.Afero, filename string) (*Config, error) {
	var config Config
	if _, err := fs.Stat(filename); os.IsNotExist(err) {
		return &config, nil
	}
	data, err := fs.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// EscaperOptions converts the escape section into resolver options. Flag
// protection stays on unless the file disables it explicitly.
func (c *Config) EscaperOptions() shellescape.Options {
	opts := shellescape.Options{
		Shell:   c.Escape.Shell,
		NoShell: c.Escape.NoShell,
	}
	if c.Escape.FlagProtection != nil {
		opts.DisableFlagProtection = !*c.Escape.FlagProtection
	}
	return opts
}
