/*
File    : lazic/internal/config/config.go

Package config is the optional YAML-backed settings surface for the
CLI: the recursion/force-depth guard and the input buffer size used by
read_int/read_char. Absent a --config flag, Default() applies.
*/
package config

import (
	"bufio"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lazic-lang/lazic/internal/eval"
)

// Config holds the knobs a lazic.yaml file can override.
type Config struct {
	MaxForceDepth   int `yaml:"max_force_depth"`
	InputBufferSize int `yaml:"input_buffer_size"`
}

// DefaultInputBufferSize matches bufio's own default, kept explicit
// here so it is visible in a printed or serialized Config.
const DefaultInputBufferSize = 4096

// Default returns the built-in settings used when no config file is
// given.
func Default() Config {
	return Config{
		MaxForceDepth:   eval.DefaultMaxForceDepth,
		InputBufferSize: DefaultInputBufferSize,
	}
}

// Load reads and parses a YAML config file at path. Fields omitted
// from the file keep Default()'s values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply pushes cfg's settings onto ev: the force-depth guard, and a
// stdin reader of InputBufferSize bytes for read_int/read_char.
func (c Config) Apply(ev *eval.Evaluator) {
	ev.MaxForceDepth = c.MaxForceDepth
	if c.InputBufferSize > 0 {
		ev.Reader = bufio.NewReaderSize(os.Stdin, c.InputBufferSize)
	}
}
