package compile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional TOML file given with --config
type Config struct {
	Compile CompileSection `toml:"compile"`
}

// CompileSection defines the [compile] section
type CompileSection struct {
	Tool           string   `toml:"tool"`
	CompileOptions string   `toml:"compile-options"`
	Exclude        []string `toml:"exclude"`
	Filter         string   `toml:"filter"`
}

func ParseConfig(rdr io.Reader) (*Config, error) {
	cfg := new(Config)
	dec := toml.NewDecoder(rdr)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return nil, errors.New(derr.String())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, errors.New(serr.String())
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfigFromFile parses a config file from a filepath
func ParseConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := ParseConfig(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply fills every option whose flag was not given on the command line.
// given reports whether a flag (by long name) was set explicitly.
func (c *Config) Apply(o *Options, given func(flag string) bool) {
	if c == nil {
		return
	}
	if !given(FlagTool) && c.Compile.Tool != "" {
		o.Tool = c.Compile.Tool
	}
	if !given(FlagCompileOptions) && c.Compile.CompileOptions != "" {
		o.CompileOptions = c.Compile.CompileOptions
	}
	if !given(FlagExclude) && len(c.Compile.Exclude) > 0 {
		o.Exclude = c.Compile.Exclude
	}
	if !given(FlagFilter) && c.Compile.Filter != "" {
		o.Filter = c.Compile.Filter
	}
}
