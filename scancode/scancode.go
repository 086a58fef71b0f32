// Package scancode maps virtual keys to a private 16-bit scancode space.
//
// The numbering has no relation to hardware scancodes. Values 1..163 are
// assigned, 0 is reserved as Invalid and everything above Max is unassigned.
// Both directions are generated from one ordered table so they cannot drift.
package scancode

import (
	"fmt"
	"strconv"

	"github.com/Alia5/webkeys/vkey"
)

// Scancode is an invented scancode. Zero means no scancode.
type Scancode uint16

const (
	Invalid Scancode = 0x0000
	Max     Scancode = 163
)

// Entry pairs a virtual key with its scancode.
type Entry struct {
	Key      vkey.Key `json:"key" yaml:"key" toml:"key"`
	Scancode Scancode `json:"scancode" yaml:"scancode" toml:"scancode"`
}

var entries = []Entry{
	// Number row
	{vkey.Key1, 1},
	{vkey.Key2, 2},
	{vkey.Key3, 3},
	{vkey.Key4, 4},
	{vkey.Key5, 5},
	{vkey.Key6, 6},
	{vkey.Key7, 7},
	{vkey.Key8, 8},
	{vkey.Key9, 9},
	{vkey.Key0, 10},

	// Letters
	{vkey.A, 11},
	{vkey.B, 12},
	{vkey.C, 13},
	{vkey.D, 14},
	{vkey.E, 15},
	{vkey.F, 16},
	{vkey.G, 17},
	{vkey.H, 18},
	{vkey.I, 19},
	{vkey.J, 20},
	{vkey.K, 21},
	{vkey.L, 22},
	{vkey.M, 23},
	{vkey.N, 24},
	{vkey.O, 25},
	{vkey.P, 26},
	{vkey.Q, 27},
	{vkey.R, 28},
	{vkey.S, 29},
	{vkey.T, 30},
	{vkey.U, 31},
	{vkey.V, 32},
	{vkey.W, 33},
	{vkey.X, 34},
	{vkey.Y, 35},
	{vkey.Z, 36},

	{vkey.Escape, 37},

	// Function keys
	{vkey.F1, 38},
	{vkey.F2, 39},
	{vkey.F3, 40},
	{vkey.F4, 41},
	{vkey.F5, 42},
	{vkey.F6, 43},
	{vkey.F7, 44},
	{vkey.F8, 45},
	{vkey.F9, 46},
	{vkey.F10, 47},
	{vkey.F11, 48},
	{vkey.F12, 49},
	{vkey.F13, 50},
	{vkey.F14, 51},
	{vkey.F15, 52},
	{vkey.F16, 53},
	{vkey.F17, 54},
	{vkey.F18, 55},
	{vkey.F19, 56},
	{vkey.F20, 57},
	{vkey.F21, 58},
	{vkey.F22, 59},
	{vkey.F23, 60},
	{vkey.F24, 61},

	{vkey.Snapshot, 62},
	{vkey.Scroll, 63},
	{vkey.Pause, 64},

	// Navigation
	{vkey.Insert, 65},
	{vkey.Home, 66},
	{vkey.Delete, 67},
	{vkey.End, 68},
	{vkey.PageDown, 69},
	{vkey.PageUp, 70},

	// Arrows
	{vkey.Left, 71},
	{vkey.Up, 72},
	{vkey.Right, 73},
	{vkey.Down, 74},

	{vkey.Back, 75},
	{vkey.Return, 76},
	{vkey.Space, 77},
	{vkey.Compose, 78},
	{vkey.Caret, 79},

	// Numpad
	{vkey.Numlock, 80},
	{vkey.Numpad0, 81},
	{vkey.Numpad1, 82},
	{vkey.Numpad2, 83},
	{vkey.Numpad3, 84},
	{vkey.Numpad4, 85},
	{vkey.Numpad5, 86},
	{vkey.Numpad6, 87},
	{vkey.Numpad7, 88},
	{vkey.Numpad8, 89},
	{vkey.Numpad9, 90},
	{vkey.NumpadAdd, 91},
	{vkey.NumpadDivide, 92},
	{vkey.NumpadDecimal, 93},
	{vkey.NumpadComma, 94},
	{vkey.NumpadEnter, 95},
	{vkey.NumpadEquals, 96},
	{vkey.NumpadMultiply, 97},
	{vkey.NumpadSubtract, 98},

	{vkey.AbntC1, 99},
	{vkey.AbntC2, 100},
	{vkey.Apostrophe, 101},
	{vkey.Apps, 102},
	{vkey.Asterisk, 103},
	{vkey.At, 104},
	{vkey.Ax, 105},
	{vkey.Backslash, 106},
	{vkey.Calculator, 107},
	{vkey.Capital, 108},
	{vkey.Colon, 109},
	{vkey.Comma, 110},
	{vkey.Convert, 111},
	{vkey.Equals, 112},
	{vkey.Grave, 113},
	{vkey.Kana, 114},
	{vkey.Kanji, 115},
	{vkey.LAlt, 116},
	{vkey.LBracket, 117},
	{vkey.LControl, 118},
	{vkey.LShift, 119},
	{vkey.LWin, 120},
	{vkey.Mail, 121},
	{vkey.MediaSelect, 122},
	{vkey.MediaStop, 123},
	{vkey.Minus, 124},
	{vkey.Mute, 125},
	{vkey.MyComputer, 126},
	{vkey.NavigateForward, 127},
	{vkey.NavigateBackward, 128},
	{vkey.NextTrack, 129},
	{vkey.NoConvert, 130},
	{vkey.OEM102, 131},
	{vkey.Period, 132},
	{vkey.PlayPause, 133},
	{vkey.Plus, 134},
	{vkey.Power, 135},
	{vkey.PrevTrack, 136},
	{vkey.RAlt, 137},
	{vkey.RBracket, 138},
	{vkey.RControl, 139},
	{vkey.RShift, 140},
	{vkey.RWin, 141},
	{vkey.Semicolon, 142},
	{vkey.Slash, 143},
	{vkey.Sleep, 144},
	{vkey.Stop, 145},
	{vkey.Sysrq, 146},
	{vkey.Tab, 147},
	{vkey.Underline, 148},
	{vkey.Unlabeled, 149},
	{vkey.VolumeDown, 150},
	{vkey.VolumeUp, 151},
	{vkey.Wake, 152},
	{vkey.WebBack, 153},
	{vkey.WebFavorites, 154},
	{vkey.WebForward, 155},
	{vkey.WebHome, 156},
	{vkey.WebRefresh, 157},
	{vkey.WebSearch, 158},
	{vkey.WebStop, 159},
	{vkey.Yen, 160},
	{vkey.Copy, 161},
	{vkey.Paste, 162},
	{vkey.Cut, 163},
}

type index struct {
	byKey [vkey.Count + 1]Scancode
	toKey [Max + 1]vkey.Key
}

var idx = mustIndex(entries)

func mustIndex(table []Entry) *index {
	ix, err := newIndex(table)
	if err != nil {
		panic(err)
	}
	return ix
}

func newIndex(table []Entry) (*index, error) {
	ix := &index{}
	for _, e := range table {
		if !e.Key.Valid() {
			return nil, fmt.Errorf("scancode table: invalid key %d", e.Key)
		}
		if e.Scancode == Invalid || e.Scancode > Max {
			return nil, fmt.Errorf("scancode table: %s has out of range scancode %d", e.Key, e.Scancode)
		}
		if ix.byKey[e.Key] != Invalid {
			return nil, fmt.Errorf("scancode table: %s listed twice", e.Key)
		}
		if prev := ix.toKey[e.Scancode]; prev != vkey.None {
			return nil, fmt.Errorf("scancode table: %d used by %s and %s", e.Scancode, prev, e.Key)
		}
		ix.byKey[e.Key] = e.Scancode
		ix.toKey[e.Scancode] = e.Key
	}
	for _, k := range vkey.All() {
		if ix.byKey[k] == Invalid {
			return nil, fmt.Errorf("scancode table: no scancode for %s", k)
		}
	}
	return ix, nil
}

// FromKey returns the scancode assigned to k, or Invalid if k is not a valid
// key.
func FromKey(k vkey.Key) Scancode {
	if !k.Valid() {
		return Invalid
	}
	return idx.byKey[k]
}

// ToKey returns the virtual key for s. It reports false for Invalid and for
// unassigned values.
func ToKey(s Scancode) (vkey.Key, bool) {
	if s == Invalid || s > Max {
		return vkey.None, false
	}
	return idx.toKey[s], true
}

// Name returns the key name for s, or "SC<n>" when s does not resolve.
func Name(s Scancode) string {
	if k, ok := ToKey(s); ok {
		return k.String()
	}
	return "SC" + strconv.FormatUint(uint64(s), 10)
}

func (s Scancode) String() string {
	return Name(s)
}

// Entries returns a copy of the scancode table in scancode order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
