// Package vkey defines the virtual key identities reported by the windowing
// layer. Values follow the declaration order of winit's VirtualKeyCode.
package vkey

import "strconv"

// Key is a platform virtual key. The zero value None is not a key.
type Key uint8

const None Key = 0

const (
	// Number row
	Key1 Key = iota + 1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	Escape

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	Snapshot // Print Screen
	Scroll   // Scroll Lock
	Pause

	// Navigation
	Insert
	Home
	Delete
	End
	PageDown
	PageUp

	// Arrows
	Left
	Up
	Right
	Down

	Back // Backspace
	Return
	Space

	Compose
	Caret

	// Numpad
	Numlock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadDivide
	NumpadDecimal
	NumpadComma
	NumpadEnter
	NumpadEquals
	NumpadMultiply
	NumpadSubtract

	AbntC1
	AbntC2
	Apostrophe
	Apps
	Asterisk
	At
	Ax
	Backslash
	Calculator
	Capital // Caps Lock
	Colon
	Comma
	Convert
	Equals
	Grave
	Kana
	Kanji
	LAlt
	LBracket
	LControl
	LShift
	LWin
	Mail
	MediaSelect
	MediaStop
	Minus
	Mute
	MyComputer
	NavigateForward
	NavigateBackward
	NextTrack
	NoConvert
	OEM102
	Period
	PlayPause
	Plus
	Power
	PrevTrack
	RAlt
	RBracket
	RControl
	RShift
	RWin
	Semicolon
	Slash
	Sleep
	Stop
	Sysrq
	Tab
	Underline
	Unlabeled
	VolumeDown
	VolumeUp
	Wake
	WebBack
	WebFavorites
	WebForward
	WebHome
	WebRefresh
	WebSearch
	WebStop
	Yen
	Copy
	Paste
	Cut

	count
)

// Count is the number of valid keys.
const Count = int(count) - 1

var names = [count]string{
	Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4", Key5: "Key5",
	Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9", Key0: "Key0",

	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G",
	H: "H", I: "I", J: "J", K: "K", L: "L", M: "M", N: "N",
	O: "O", P: "P", Q: "Q", R: "R", S: "S", T: "T", U: "U",
	V: "V", W: "W", X: "X", Y: "Y", Z: "Z",

	Escape: "Escape",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",

	Snapshot: "Snapshot",
	Scroll:   "Scroll",
	Pause:    "Pause",

	Insert:   "Insert",
	Home:     "Home",
	Delete:   "Delete",
	End:      "End",
	PageDown: "PageDown",
	PageUp:   "PageUp",

	Left:  "Left",
	Up:    "Up",
	Right: "Right",
	Down:  "Down",

	Back:    "Back",
	Return:  "Return",
	Space:   "Space",
	Compose: "Compose",
	Caret:   "Caret",

	Numlock: "Numlock",
	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2", Numpad3: "Numpad3",
	Numpad4: "Numpad4", Numpad5: "Numpad5", Numpad6: "Numpad6", Numpad7: "Numpad7",
	Numpad8: "Numpad8", Numpad9: "Numpad9",
	NumpadAdd:      "NumpadAdd",
	NumpadDivide:   "NumpadDivide",
	NumpadDecimal:  "NumpadDecimal",
	NumpadComma:    "NumpadComma",
	NumpadEnter:    "NumpadEnter",
	NumpadEquals:   "NumpadEquals",
	NumpadMultiply: "NumpadMultiply",
	NumpadSubtract: "NumpadSubtract",

	AbntC1:           "AbntC1",
	AbntC2:           "AbntC2",
	Apostrophe:       "Apostrophe",
	Apps:             "Apps",
	Asterisk:         "Asterisk",
	At:               "At",
	Ax:               "Ax",
	Backslash:        "Backslash",
	Calculator:       "Calculator",
	Capital:          "Capital",
	Colon:            "Colon",
	Comma:            "Comma",
	Convert:          "Convert",
	Equals:           "Equals",
	Grave:            "Grave",
	Kana:             "Kana",
	Kanji:            "Kanji",
	LAlt:             "LAlt",
	LBracket:         "LBracket",
	LControl:         "LControl",
	LShift:           "LShift",
	LWin:             "LWin",
	Mail:             "Mail",
	MediaSelect:      "MediaSelect",
	MediaStop:        "MediaStop",
	Minus:            "Minus",
	Mute:             "Mute",
	MyComputer:       "MyComputer",
	NavigateForward:  "NavigateForward",
	NavigateBackward: "NavigateBackward",
	NextTrack:        "NextTrack",
	NoConvert:        "NoConvert",
	OEM102:           "OEM102",
	Period:           "Period",
	PlayPause:        "PlayPause",
	Plus:             "Plus",
	Power:            "Power",
	PrevTrack:        "PrevTrack",
	RAlt:             "RAlt",
	RBracket:         "RBracket",
	RControl:         "RControl",
	RShift:           "RShift",
	RWin:             "RWin",
	Semicolon:        "Semicolon",
	Slash:            "Slash",
	Sleep:            "Sleep",
	Stop:             "Stop",
	Sysrq:            "Sysrq",
	Tab:              "Tab",
	Underline:        "Underline",
	Unlabeled:        "Unlabeled",
	VolumeDown:       "VolumeDown",
	VolumeUp:         "VolumeUp",
	Wake:             "Wake",
	WebBack:          "WebBack",
	WebFavorites:     "WebFavorites",
	WebForward:       "WebForward",
	WebHome:          "WebHome",
	WebRefresh:       "WebRefresh",
	WebSearch:        "WebSearch",
	WebStop:          "WebStop",
	Yen:              "Yen",
	Copy:             "Copy",
	Paste:            "Paste",
	Cut:              "Cut",
}

var byName = make(map[string]Key, Count)

func init() {
	for k := Key(1); k < count; k++ {
		byName[names[k]] = k
	}
}

// Valid reports whether k is one of the declared keys.
func (k Key) Valid() bool {
	return k > None && k < count
}

// String returns the identifier name of the key, e.g. "A" or "LControl".
func (k Key) String() string {
	if !k.Valid() {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}
	return names[k]
}

// MarshalText encodes the key by name.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Parse returns the key with the given identifier name.
func Parse(name string) (Key, bool) {
	k, ok := byName[name]
	return k, ok
}

// All returns every valid key in declaration order.
func All() []Key {
	keys := make([]Key, 0, Count)
	for k := Key(1); k < count; k++ {
		keys = append(keys, k)
	}
	return keys
}
