package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// config is the contents of a configuration file. Nil fields leave the
// corresponding setting unchanged.
type config struct {
	Angle *calc.AngleMode `yaml:"angle"`
	Style *calc.Style     `yaml:"style"`
}

// settings controls how each expression is evaluated and shown.
type settings struct {
	mode  calc.AngleMode
	style calc.Style
	echo  bool
	exact bool
}

// loadConfig reads settings from a YAML file. If name is empty, the result
// is the zero settings.
func loadConfig(name string) (settings, error) {
	if name == "" {
		return settings{}, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return settings{}, err
	}
	var c config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return settings{}, fmt.Errorf("reading config %s: %w", name, err)
	}
	return c.apply(settings{}), nil
}

// apply overrides the fields of s that c names.
func (c config) apply(s settings) settings {
	if c.Angle != nil {
		s.mode = *c.Angle
	}
	if c.Style != nil {
		s.style = *c.Style
	}
	return s
}
