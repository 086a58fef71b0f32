package keycode

import (
	"strconv"

	"github.com/Alia5/webkeys/vkey"
)

var byName = make(map[string]Code, len(names))

// byKey is indexed by vkey.Key. Keys without a standardized analogue are
// listed explicitly as Unknown so that every virtual key is accounted for.
var byKey = [vkey.Count + 1]Code{
	vkey.Key0: Digit0,
	vkey.Key1: Digit1,
	vkey.Key2: Digit2,
	vkey.Key3: Digit3,
	vkey.Key4: Digit4,
	vkey.Key5: Digit5,
	vkey.Key6: Digit6,
	vkey.Key7: Digit7,
	vkey.Key8: Digit8,
	vkey.Key9: Digit9,

	vkey.A: KeyA,
	vkey.B: KeyB,
	vkey.C: KeyC,
	vkey.D: KeyD,
	vkey.E: KeyE,
	vkey.F: KeyF,
	vkey.G: KeyG,
	vkey.H: KeyH,
	vkey.I: KeyI,
	vkey.J: KeyJ,
	vkey.K: KeyK,
	vkey.L: KeyL,
	vkey.M: KeyM,
	vkey.N: KeyN,
	vkey.O: KeyO,
	vkey.P: KeyP,
	vkey.Q: KeyQ,
	vkey.R: KeyR,
	vkey.S: KeyS,
	vkey.T: KeyT,
	vkey.U: KeyU,
	vkey.V: KeyV,
	vkey.W: KeyW,
	vkey.X: KeyX,
	vkey.Y: KeyY,
	vkey.Z: KeyZ,

	vkey.Escape: Escape,

	vkey.F1:  F1,
	vkey.F2:  F2,
	vkey.F3:  F3,
	vkey.F4:  F4,
	vkey.F5:  F5,
	vkey.F6:  F6,
	vkey.F7:  F7,
	vkey.F8:  F8,
	vkey.F9:  F9,
	vkey.F10: F10,
	vkey.F11: F11,
	vkey.F12: F12,
	vkey.F13: F13,
	vkey.F14: F14,
	vkey.F15: F15,
	vkey.F16: F16,
	vkey.F17: F17,
	vkey.F18: F18,
	vkey.F19: F19,
	vkey.F20: F20,
	vkey.F21: F21,
	vkey.F22: F22,
	vkey.F23: F23,
	vkey.F24: F24,

	vkey.Snapshot: Unknown, // PrintScreen is reported as Sysrq
	vkey.Scroll:   ScrollLock,
	vkey.Pause:    Pause,

	vkey.Insert:   Insert,
	vkey.Home:     Home,
	vkey.Delete:   Delete,
	vkey.End:      End,
	vkey.PageDown: PageDown,
	vkey.PageUp:   PageUp,

	vkey.Left:  ArrowLeft,
	vkey.Up:    ArrowUp,
	vkey.Right: ArrowRight,
	vkey.Down:  ArrowDown,

	vkey.Back:   Backspace,
	vkey.Return: Enter,
	vkey.Space:  Space,

	vkey.Compose: Unknown,
	vkey.Caret:   Unknown,

	vkey.Numlock:        NumLock,
	vkey.Numpad0:        Numpad0,
	vkey.Numpad1:        Numpad1,
	vkey.Numpad2:        Numpad2,
	vkey.Numpad3:        Numpad3,
	vkey.Numpad4:        Numpad4,
	vkey.Numpad5:        Numpad5,
	vkey.Numpad6:        Numpad6,
	vkey.Numpad7:        Numpad7,
	vkey.Numpad8:        Numpad8,
	vkey.Numpad9:        Numpad9,
	vkey.NumpadAdd:      NumpadAdd,
	vkey.NumpadDivide:   NumpadDivide,
	vkey.NumpadDecimal:  NumpadDecimal,
	vkey.NumpadComma:    NumpadComma,
	vkey.NumpadEnter:    NumpadEnter,
	vkey.NumpadEquals:   NumpadEqual,
	vkey.NumpadMultiply: NumpadMultiply,
	vkey.NumpadSubtract: NumpadSubtract,

	vkey.AbntC1:           Unknown,
	vkey.AbntC2:           Unknown,
	vkey.Apostrophe:       Quote,
	vkey.Apps:             ContextMenu,
	vkey.Asterisk:         Unknown,
	vkey.At:               Unknown,
	vkey.Ax:               Unknown,
	vkey.Backslash:        Backslash,
	vkey.Calculator:       LaunchApp2,
	vkey.Capital:          CapsLock,
	vkey.Colon:            Unknown,
	vkey.Comma:            Comma,
	vkey.Convert:          Convert,
	vkey.Equals:           Equal,
	vkey.Grave:            Backquote,
	vkey.Kana:             KanaMode,
	vkey.Kanji:            Backquote,
	vkey.LAlt:             AltLeft,
	vkey.LBracket:         BracketLeft,
	vkey.LControl:         ControlLeft,
	vkey.LShift:           ShiftLeft,
	vkey.LWin:             MetaLeft,
	vkey.Mail:             LaunchMail,
	vkey.MediaSelect:      MediaSelect,
	vkey.MediaStop:        MediaStop,
	vkey.Minus:            Minus,
	vkey.Mute:             AudioVolumeMute,
	vkey.MyComputer:       LaunchApp1,
	vkey.NavigateForward:  BrowserForward,
	vkey.NavigateBackward: BrowserForward, // kept as shipped; see TestNavigateBackward
	vkey.NextTrack:        MediaTrackNext,
	vkey.NoConvert:        NonConvert,
	vkey.OEM102:           IntlBackslash,
	vkey.Period:           Period,
	vkey.PlayPause:        MediaPlayPause,
	vkey.Plus:             Unknown,
	vkey.Power:            Power,
	vkey.PrevTrack:        MediaTrackPrevious,
	vkey.RAlt:             AltRight,
	vkey.RBracket:         BracketRight,
	vkey.RControl:         ControlRight,
	vkey.RShift:           ShiftRight,
	vkey.RWin:             MetaRight,
	vkey.Semicolon:        Semicolon,
	vkey.Slash:            Slash,
	vkey.Sleep:            Sleep,
	vkey.Stop:             Unknown,
	vkey.Sysrq:            PrintScreen,
	vkey.Tab:              Tab,
	vkey.Underline:        Unknown,
	vkey.Unlabeled:        Unknown,
	vkey.VolumeDown:       AudioVolumeDown,
	vkey.VolumeUp:         AudioVolumeUp,
	vkey.Wake:             WakeUp,
	vkey.WebBack:          BrowserBack,
	vkey.WebFavorites:     BrowserFavorites,
	vkey.WebForward:       BrowserForward,
	vkey.WebHome:          BrowserHome,
	vkey.WebRefresh:       BrowserRefresh,
	vkey.WebSearch:        BrowserSearch,
	vkey.WebStop:          BrowserStop,
	vkey.Yen:              IntlYen,
	vkey.Copy:             Copy,
	vkey.Paste:            Paste,
	vkey.Cut:              Cut,
}

// byCode lists, per code, the virtual keys that map to it in key order.
var byCode = make(map[Code][]vkey.Key)

func init() {
	for c := Code(1); c < count; c++ {
		byName[names[c]] = c
	}
	for _, k := range vkey.All() {
		if c := byKey[k]; c != Unknown {
			byCode[c] = append(byCode[c], k)
		}
	}
}

// Of returns the standardized code for a virtual key, or Unknown when the
// key has no standardized analogue.
func Of(k vkey.Key) Code {
	if !k.Valid() {
		return Unknown
	}
	return byKey[k]
}

// Keys returns every virtual key whose code is c, in key order.
func Keys(c Code) []vkey.Key {
	keys := byCode[c]
	if len(keys) == 0 {
		return nil
	}
	out := make([]vkey.Key, len(keys))
	copy(out, keys)
	return out
}

// Valid reports whether c is a known code other than Unknown.
func (c Code) Valid() bool {
	return c > Unknown && c < count
}

// String returns the KeyboardEvent.code value, e.g. "KeyA".
func (c Code) String() string {
	switch {
	case c == Unknown:
		return "Unknown"
	case c.Valid():
		return names[c]
	default:
		return "Code(" + strconv.Itoa(int(c)) + ")"
	}
}

// MarshalText encodes the code by its KeyboardEvent.code value.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Parse returns the code for a KeyboardEvent.code value.
func Parse(s string) (Code, bool) {
	c, ok := byName[s]
	return c, ok
}

// All returns every known code except Unknown.
func All() []Code {
	codes := make([]Code, 0, int(count)-1)
	for c := Code(1); c < count; c++ {
		codes = append(codes, c)
	}
	return codes
}
