// Package config holds the webkeys command tree and the loaders that read
// its defaults from configuration files.
package config

import (
	"github.com/Alia5/webkeys/internal/cmd"
	"github.com/Alia5/webkeys/internal/log"
)

// CLI is the root command tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"Configuration file (json, yaml or toml)" env:"WEBKEYS_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Lookup      cmd.Lookup        `cmd:"" help:"Translate a single key between representations"`
	Dump        cmd.Dump          `cmd:"" help:"Print the whole translation table"`
	Fingerprint cmd.Fingerprint   `cmd:"" help:"Print the BLAKE2b-256 fingerprint of the scancode table"`
	Codegen     cmd.Codegen       `cmd:"" help:"Generate scancode constants for other languages"`
	Config      cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
