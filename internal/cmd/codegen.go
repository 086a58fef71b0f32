package cmd

import (
	"log/slog"

	"github.com/Alia5/webkeys/internal/codegen"
)

type Codegen struct {
	Output string `help:"Output directory for generated constants" default:"./clients" env:"WEBKEYS_CODEGEN_OUTPUT"`
	Lang   string `help:"Target language: c, csharp, typescript, or 'all'" default:"all" enum:"c,csharp,typescript,all" env:"WEBKEYS_CODEGEN_LANG"`
}

// Run is called by Kong when the codegen command is executed.
func (c *Codegen) Run(logger *slog.Logger) error {
	logger.Info("Starting scancode code generation", "output", c.Output, "lang", c.Lang)

	gen := codegen.New(c.Output, logger)
	if c.Lang == "all" {
		return gen.GenAll()
	}
	return gen.GenerateLang(c.Lang)
}
