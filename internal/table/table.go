// Package table flattens the key tables into records for export and lookup.
package table

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Alia5/webkeys/ascii"
	"github.com/Alia5/webkeys/keycode"
	"github.com/Alia5/webkeys/scancode"
	"github.com/Alia5/webkeys/vkey"
)

// ErrNotFound is wrapped by every lookup that matches no record.
var ErrNotFound = errors.New("not found")

// Record describes one virtual key across every representation.
type Record struct {
	Scancode uint16 `json:"scancode" yaml:"scancode" toml:"scancode"`
	Key      string `json:"key" yaml:"key" toml:"key"`
	Code     string `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	ASCII    []int  `json:"ascii,omitempty" yaml:"ascii,omitempty,flow" toml:"ascii,omitempty"`
}

// Table is a list of records in scancode order.
type Table struct {
	Keys []Record `json:"keys" yaml:"keys" toml:"keys"`
}

func newRecord(k vkey.Key) Record {
	r := Record{
		Scancode: uint16(scancode.FromKey(k)),
		Key:      k.String(),
	}
	if c := keycode.Of(k); c != keycode.Unknown {
		r.Code = c.String()
	}
	for _, a := range ascii.Codes(k) {
		r.ASCII = append(r.ASCII, int(a))
	}
	return r
}

// Build returns a record for every scancode.
func Build() Table {
	entries := scancode.Entries()
	t := Table{Keys: make([]Record, 0, len(entries))}
	for _, e := range entries {
		t.Keys = append(t.Keys, newRecord(e.Key))
	}
	return t
}

// ByScancode looks up a record by scancode.
func ByScancode(s uint16) (Table, error) {
	k, ok := scancode.ToKey(scancode.Scancode(s))
	if !ok {
		return Table{}, fmt.Errorf("scancode %s: %w", scancode.Name(scancode.Scancode(s)), ErrNotFound)
	}
	return Table{Keys: []Record{newRecord(k)}}, nil
}

// ByKey looks up a record by virtual key name.
func ByKey(name string) (Table, error) {
	k, ok := vkey.Parse(name)
	if !ok {
		return Table{}, fmt.Errorf("key %q: %w", name, ErrNotFound)
	}
	return Table{Keys: []Record{newRecord(k)}}, nil
}

// ByASCII looks up the record for a legacy browser key code.
func ByASCII(code uint8) (Table, error) {
	k, ok := ascii.VirtualKey(code)
	if !ok {
		return Table{}, fmt.Errorf("ascii %s: %w", strconv.Itoa(int(code)), ErrNotFound)
	}
	return Table{Keys: []Record{newRecord(k)}}, nil
}

// ByCode looks up every record whose standardized code is code.
func ByCode(code string) (Table, error) {
	c, ok := keycode.Parse(code)
	if !ok {
		return Table{}, fmt.Errorf("code %q: %w", code, ErrNotFound)
	}
	keys := keycode.Keys(c)
	if len(keys) == 0 {
		return Table{}, fmt.Errorf("code %q has no virtual key: %w", code, ErrNotFound)
	}
	t := Table{Keys: make([]Record, 0, len(keys))}
	for _, k := range keys {
		t.Keys = append(t.Keys, newRecord(k))
	}
	return t, nil
}
