package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/webkeys/internal/configpaths"
	"github.com/Alia5/webkeys/internal/table"
)

// Dump writes every table record.
type Dump struct {
	FormatFlag `embed:""`
	Output     string `help:"Write to this file instead of stdout" short:"o" env:"WEBKEYS_DUMP_OUTPUT"`
	Force      bool   `help:"Overwrite the output file if it exists"`
}

func (d *Dump) Run(logger *slog.Logger, out *Output) error {
	target := out
	if d.Output != "" {
		// A file is never a terminal, so auto resolves to json.
		target = &Output{}
	}
	format, err := d.resolve(target)
	if err != nil {
		return err
	}

	t := table.Build()
	if d.Output == "" {
		return table.Encode(out.W, format, t)
	}

	if !d.Force {
		if _, err := os.Stat(d.Output); err == nil {
			return fmt.Errorf("%s exists; use --force to overwrite", d.Output)
		}
	}
	if err := configpaths.EnsureDir(d.Output); err != nil {
		return err
	}
	f, err := os.Create(d.Output)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	if err := writeAndClose(f, format, t); err != nil {
		return fmt.Errorf("write %s: %w", d.Output, err)
	}
	logger.Info("Wrote key table", "path", d.Output, "format", format, "keys", len(t.Keys))
	return nil
}

func writeAndClose(w io.WriteCloser, format table.Format, t table.Table) error {
	if err := table.Encode(w, format, t); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Fingerprint prints the scancode table digest.
type Fingerprint struct{}

func (Fingerprint) Run(out *Output) error {
	_, err := fmt.Fprintln(out.W, table.Fingerprint())
	return err
}
