package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/webkeys/internal/table"
)

// Output is where commands write their results.
type Output struct {
	W          io.Writer
	IsTerminal bool
}

// FormatFlag selects the output encoding.
type FormatFlag struct {
	Format string `help:"Output format; auto is text on a terminal and json otherwise" short:"f" enum:"auto,text,json,yaml,toml" default:"auto"`
}

func (f FormatFlag) resolve(out *Output) (table.Format, error) {
	if f.Format == "auto" || f.Format == "" {
		if out.IsTerminal {
			return table.FormatText, nil
		}
		return table.FormatJSON, nil
	}
	format, err := table.ParseFormat(f.Format)
	if err != nil {
		return "", fmt.Errorf("resolve output format: %w", err)
	}
	return format, nil
}
