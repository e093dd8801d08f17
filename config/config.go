// Package config holds the settings of the collection shell.
package config

import (
	"github.com/mitchellh/go-homedir"
)

// Properties holds the shell configuration.
type Properties struct {
	// LogDir receives collections.log. Empty means ~/.collections/debug.
	LogDir string

	// Prompt is written before every line read in interactive mode.
	Prompt string

	// Quiet suppresses the prompt, for piped input.
	Quiet bool
}

// Current is the configuration in effect.
var Current = DefaultProperties()

// DefaultProperties returns Properties with default settings.
func DefaultProperties() *Properties {
	return &Properties{
		LogDir: "",
		Prompt: "> ",
		Quiet:  false,
	}
}

// ResolveLogDir expands a leading ~ in LogDir.
func (p *Properties) ResolveLogDir() (string, error) {
	if p.LogDir == "" {
		return "", nil
	}
	return homedir.Expand(p.LogDir)
}
