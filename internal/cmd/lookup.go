package cmd

import (
	"context"
	"log/slog"

	"github.com/Alia5/webkeys/internal/log"
	"github.com/Alia5/webkeys/internal/table"
)

// Lookup groups the single-key lookups.
type Lookup struct {
	Scancode LookupScancode `cmd:"" help:"Look up an invented scancode"`
	Key      LookupKey      `cmd:"" help:"Look up a virtual key by name, e.g. LControl"`
	ASCII    LookupASCII    `cmd:"" name:"ascii" help:"Look up a legacy browser keyCode"`
	Code     LookupCode     `cmd:"" help:"Look up a KeyboardEvent.code value, e.g. KeyA"`
}

// LookupScancode resolves an invented scancode.
type LookupScancode struct {
	FormatFlag `embed:""`
	Scancode   uint16 `arg:"" help:"Scancode (1-163)"`
}

func (c *LookupScancode) Run(logger *slog.Logger, out *Output) error {
	return lookup(logger, out, c.FormatFlag, "scancode", c.Scancode, func() (table.Table, error) {
		return table.ByScancode(c.Scancode)
	})
}

// LookupKey resolves a virtual key name.
type LookupKey struct {
	FormatFlag `embed:""`
	Name       string `arg:"" help:"Virtual key name"`
}

func (c *LookupKey) Run(logger *slog.Logger, out *Output) error {
	return lookup(logger, out, c.FormatFlag, "key", c.Name, func() (table.Table, error) {
		return table.ByKey(c.Name)
	})
}

// LookupASCII resolves a legacy keyCode. Several codes may share a key.
type LookupASCII struct {
	FormatFlag `embed:""`
	Code       uint8 `arg:"" help:"keyCode (0-255)"`
}

func (c *LookupASCII) Run(logger *slog.Logger, out *Output) error {
	return lookup(logger, out, c.FormatFlag, "ascii", c.Code, func() (table.Table, error) {
		return table.ByASCII(c.Code)
	})
}

// LookupCode resolves a KeyboardEvent.code value to every key that produces it.
type LookupCode struct {
	FormatFlag `embed:""`
	Code       string `arg:"" help:"KeyboardEvent.code value"`
}

func (c *LookupCode) Run(logger *slog.Logger, out *Output) error {
	return lookup(logger, out, c.FormatFlag, "code", c.Code, func() (table.Table, error) {
		return table.ByCode(c.Code)
	})
}

func lookup(logger *slog.Logger, out *Output, ff FormatFlag, by string, value any, find func() (table.Table, error)) error {
	format, err := ff.resolve(out)
	if err != nil {
		return err
	}
	t, err := find()
	if err != nil {
		logger.Debug("Lookup missed", "by", by, "value", value)
		return err
	}
	logger.Log(context.Background(), log.LevelTrace, "Lookup", "by", by, "value", value, "matches", len(t.Keys))
	return table.Encode(out.W, format, t)
}
