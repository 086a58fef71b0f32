// Package ascii recovers virtual keys from the legacy numeric key codes
// reported by browsers through the deprecated KeyboardEvent.keyCode attribute.
//
// keyCode was never standardized. The table follows the empirical survey at
// https://www.toptal.com/developers/keycode/table-of-all-keycodes and is a
// best guess: several codes share a key and most of 0..255 is left unmapped.
package ascii

import (
	"slices"

	"github.com/Alia5/webkeys/vkey"
)

var table = [256]vkey.Key{
	// 0: not a key
	3:   vkey.Pause, // also 19
	8:   vkey.Back,
	9:   vkey.Tab,
	12:  vkey.Numlock,
	13:  vkey.Return,
	16:  vkey.LShift,
	17:  vkey.LControl,
	18:  vkey.LAlt,
	19:  vkey.Pause, // also 3
	20:  vkey.Capital,
	// 21: Lang1
	// 25: Lang2
	27:  vkey.Escape,
	28:  vkey.Convert,
	29:  vkey.NoConvert,
	32:  vkey.Space,
	33:  vkey.Numpad9,
	34:  vkey.Numpad3,
	35:  vkey.Numpad1,
	36:  vkey.Numpad7,
	37:  vkey.Left,
	38:  vkey.Up,
	39:  vkey.Right,
	40:  vkey.Down,
	// 41: select
	// 42: print
	// 43: execute
	44:  vkey.F13,
	45:  vkey.Numpad0,
	46:  vkey.NumpadDecimal,
	// 47: help
	48:  vkey.Key0,
	49:  vkey.Key1,
	50:  vkey.Key2,
	51:  vkey.Key3,
	52:  vkey.Key4,
	53:  vkey.Key5,
	54:  vkey.Key6,
	55:  vkey.Key7,
	56:  vkey.Key8,
	57:  vkey.Key9,
	58:  vkey.Period,
	59:  vkey.Semicolon,
	60:  vkey.Grave,
	61:  vkey.Equals,
	63:  vkey.Minus,
	65:  vkey.A,
	66:  vkey.B,
	67:  vkey.C,
	68:  vkey.D,
	69:  vkey.E,
	70:  vkey.F,
	71:  vkey.G,
	72:  vkey.H,
	73:  vkey.I,
	74:  vkey.J,
	75:  vkey.K,
	76:  vkey.L,
	77:  vkey.M,
	78:  vkey.N,
	79:  vkey.O,
	80:  vkey.P,
	81:  vkey.Q,
	82:  vkey.R,
	83:  vkey.S,
	84:  vkey.T,
	85:  vkey.U,
	86:  vkey.V,
	87:  vkey.W,
	88:  vkey.X,
	89:  vkey.Y,
	90:  vkey.Z,
	91:  vkey.LWin,
	92:  vkey.RWin,
	93:  vkey.Apps,
	95:  vkey.Sleep,
	96:  vkey.Numpad0,
	97:  vkey.Numpad1,
	98:  vkey.Numpad2,
	99:  vkey.Numpad3,
	100: vkey.Numpad4,
	101: vkey.Numpad5,
	102: vkey.Numpad6,
	103: vkey.Numpad7,
	104: vkey.Numpad8,
	105: vkey.Numpad9,
	106: vkey.NumpadMultiply,
	107: vkey.NumpadAdd,
	108: vkey.NumpadDecimal,
	109: vkey.NumpadSubtract,
	110: vkey.NumpadDecimal,
	111: vkey.NumpadDivide,
	112: vkey.F1,
	113: vkey.F2,
	114: vkey.F3,
	115: vkey.F4,
	116: vkey.F5,
	117: vkey.F6,
	118: vkey.F7,
	119: vkey.F8,
	120: vkey.F9,
	121: vkey.F10,
	122: vkey.F11,
	123: vkey.F12,
	124: vkey.F13,
	125: vkey.F14,
	126: vkey.F15,
	127: vkey.F16,
	128: vkey.F17,
	129: vkey.F18,
	130: vkey.F19,
	131: vkey.F20,
	132: vkey.F21,
	133: vkey.F22,
	134: vkey.F23,
	135: vkey.F24,
	// 136-143: F25-F32
	144: vkey.Numlock,
	145: vkey.Scroll,
	160: vkey.LBracket,
	161: vkey.RBracket,
	163: vkey.Grave,
	164: vkey.Backslash,
	169: vkey.Minus,
	170: vkey.Backslash,
	// 171: varies by browser
	172: vkey.Home,
	173: vkey.Minus,
	174: vkey.VolumeDown,
	175: vkey.VolumeUp,
	176: vkey.NextTrack,
	177: vkey.PrevTrack,
	178: vkey.Stop,
	179: vkey.PlayPause,
	180: vkey.Mail,
	181: vkey.Mute,
	182: vkey.VolumeDown,
	183: vkey.VolumeUp,
	186: vkey.Semicolon,
	187: vkey.Equals,
	188: vkey.Comma,
	189: vkey.Minus,
	190: vkey.Period,
	191: vkey.Slash,
	192: vkey.Grave,
	// 193: IntlRo
	194: vkey.NumpadComma,
	219: vkey.LBracket,
	220: vkey.Backslash,
	221: vkey.RBracket,
	222: vkey.Apostrophe,
	223: vkey.Grave,
	224: vkey.LWin,
	225: vkey.RAlt,
	226: vkey.OEM102,
	// 230: GNOME Compose Key
	// 231: ç
	233: vkey.NavigateBackward,
	234: vkey.NavigateForward,
	235: vkey.NoConvert,
	242: vkey.Kana,
	// 243: hiragana/katakana
	244: vkey.Kanji,
	// 251: unlock track pad
	// 255: WakeUp
}

// VirtualKey returns the virtual key for a legacy key code. It reports false
// for codes that are left unmapped.
func VirtualKey(code uint8) (vkey.Key, bool) {
	k := table[code]
	return k, k != vkey.None
}

// Codes returns, in ascending order, every key code that resolves to k.
func Codes(k vkey.Key) []uint8 {
	var codes []uint8
	for c, tk := range table {
		if tk == k && k != vkey.None {
			codes = append(codes, uint8(c))
		}
	}
	return slices.Clip(codes)
}
