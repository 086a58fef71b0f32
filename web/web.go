// Package web ties the key tables together the way the browser backend of
// the input layer consumes them.
package web

import (
	"github.com/Alia5/webkeys/keycode"
	"github.com/Alia5/webkeys/scancode"
	"github.com/Alia5/webkeys/vkey"
)

// Display labels used by the UI layer.
const (
	AltLabel  = "Alt"
	LogoLabel = "Logo"

	// ModifiersOrder lists modifiers in display order: Ctrl, Shift, Alt, Meta.
	ModifiersOrder = "csam"
)

// KeyMap is a generic key identity handed over by the input layer. Name, when
// set, is a virtual key name such as "LControl"; otherwise Code identifies the
// key.
type KeyMap struct {
	Code keycode.Code
	Name string
}

// Resolver maps a KeyMap to a virtual key.
type Resolver func(KeyMap) (vkey.Key, bool)

// DefaultResolver resolves km.Name when it is set, and otherwise picks the
// first virtual key whose standardized code is km.Code.
func DefaultResolver(km KeyMap) (vkey.Key, bool) {
	if km.Name != "" {
		return vkey.Parse(km.Name)
	}
	if keys := keycode.Keys(km.Code); len(keys) > 0 {
		return keys[0], true
	}
	return vkey.None, false
}

// ScancodeToCode returns the standardized code of the key behind s, or
// keycode.Unknown when s does not resolve.
func ScancodeToCode(s scancode.Scancode) keycode.Code {
	k, ok := scancode.ToKey(s)
	if !ok {
		return keycode.Unknown
	}
	return keycode.Of(k)
}

// KeyMapToScancode resolves km with DefaultResolver.
func KeyMapToScancode(km KeyMap) scancode.Scancode {
	return KeyMapToScancodeWith(km, DefaultResolver)
}

// KeyMapToScancodeWith resolves km with r and returns its scancode, or
// scancode.Invalid when r cannot resolve it.
func KeyMapToScancodeWith(km KeyMap, r Resolver) scancode.Scancode {
	if r == nil {
		r = DefaultResolver
	}
	k, ok := r(km)
	if !ok {
		return scancode.Invalid
	}
	return scancode.FromKey(k)
}
