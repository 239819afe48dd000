package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config declares a frame graph: the simulated render targets and the
// ordered list of passes that render to them.
type Config struct {
	Graph   GraphConfig    `toml:"graph"`
	Targets []TargetConfig `toml:"targets"`
	Passes  []PassConfig   `toml:"passes"`
}

type GraphConfig struct {
	// Trace enables the per-pass description line every frame.
	Trace bool `toml:"trace"`
}

// TargetConfig declares one render target.
type TargetConfig struct {
	Name         string `toml:"name"`
	SampleCount  int    `toml:"sample_count"`
	ColorBuffers int    `toml:"color_buffers"`
	Mipmapped    bool   `toml:"mipmapped"`
	Depth        bool   `toml:"depth"`
	Stencil      bool   `toml:"stencil"`
}

// PassConfig declares one render pass. Clear values are optional: an absent
// value leaves the attachment on load semantics.
type PassConfig struct {
	Name string `toml:"name"`
	// Target names a declared target; empty binds the default framebuffer.
	Target       string    `toml:"target"`
	ClearColor   []float32 `toml:"clear_color"`
	ClearDepth   *float32  `toml:"clear_depth"`
	ClearStencil *uint32   `toml:"clear_stencil"`
	// RequiresCubemaps overrides the pass default (true) when set.
	RequiresCubemaps *bool `toml:"requires_cubemaps"`
}

// Load reads and parses the frame-graph config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read frame graph config '%s'", path)
	}
	return Parse(data)
}

// Parse unmarshals and validates a TOML frame-graph config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse frame graph config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural consistency: unique names, resolvable target
// references and well-formed clear values.
func (c *Config) Validate() error {
	targets := make(map[string]struct{}, len(c.Targets))
	for i, target := range c.Targets {
		if target.Name == "" {
			return errors.Newf("target %d: name is required", i)
		}
		if _, exists := targets[target.Name]; exists {
			return errors.Newf("target '%s': duplicate name", target.Name)
		}
		targets[target.Name] = struct{}{}

		if target.SampleCount < 0 {
			return errors.Newf("target '%s': sample_count must not be negative", target.Name)
		}
		if target.ColorBuffers < 0 {
			return errors.Newf("target '%s': color_buffers must not be negative", target.Name)
		}
	}

	passNames := make(map[string]struct{}, len(c.Passes))
	for i, pass := range c.Passes {
		if pass.Name == "" {
			return errors.Newf("pass %d: name is required", i)
		}
		if _, exists := passNames[pass.Name]; exists {
			return errors.Newf("pass '%s': duplicate name", pass.Name)
		}
		passNames[pass.Name] = struct{}{}

		if pass.Target != "" {
			if _, exists := targets[pass.Target]; !exists {
				return errors.Newf("pass '%s': unknown target '%s'", pass.Name, pass.Target)
			}
		}
		if len(pass.ClearColor) != 0 && len(pass.ClearColor) != 4 {
			return errors.Newf("pass '%s': clear_color needs 4 components, got %d", pass.Name, len(pass.ClearColor))
		}
	}

	return nil
}
