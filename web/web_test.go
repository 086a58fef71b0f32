package web_test

import (
	"testing"

	"github.com/Alia5/webkeys/ascii"
	"github.com/Alia5/webkeys/keycode"
	"github.com/Alia5/webkeys/scancode"
	"github.com/Alia5/webkeys/vkey"
	"github.com/Alia5/webkeys/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "Alt", web.AltLabel)
	assert.Equal(t, "Logo", web.LogoLabel)
	assert.Equal(t, "csam", web.ModifiersOrder)
}

func TestScancodeToCode(t *testing.T) {
	assert.Equal(t, keycode.Unknown, web.ScancodeToCode(scancode.Invalid))
	assert.Equal(t, keycode.Unknown, web.ScancodeToCode(164))
	assert.Equal(t, keycode.Unknown, web.ScancodeToCode(9999))

	for s := scancode.Scancode(1); s <= scancode.Max; s++ {
		k, ok := scancode.ToKey(s)
		require.True(t, ok)
		assert.Equal(t, keycode.Of(k), web.ScancodeToCode(s), "scancode %d", s)
	}
}

func TestKeyMapToScancode(t *testing.T) {
	type testCase struct {
		name     string
		km       web.KeyMap
		expected scancode.Scancode
	}
	cases := []testCase{
		{name: "by name", km: web.KeyMap{Name: "LControl"}, expected: 118},
		{name: "name wins over code", km: web.KeyMap{Name: "A", Code: keycode.KeyB}, expected: 11},
		{name: "by code", km: web.KeyMap{Code: keycode.KeyB}, expected: 12},
		{name: "shared code picks first key", km: web.KeyMap{Code: keycode.BrowserForward}, expected: 127},
		{name: "backquote resolves to grave", km: web.KeyMap{Code: keycode.Backquote}, expected: 113},
		{name: "unknown name", km: web.KeyMap{Name: "Hyper"}, expected: scancode.Invalid},
		{name: "code without key", km: web.KeyMap{Code: keycode.Lang1}, expected: scancode.Invalid},
		{name: "empty", km: web.KeyMap{}, expected: scancode.Invalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, web.KeyMapToScancode(tc.km))
		})
	}
}

func TestKeyMapToScancodeWith(t *testing.T) {
	fixed := func(k vkey.Key, ok bool) web.Resolver {
		return func(web.KeyMap) (vkey.Key, bool) { return k, ok }
	}

	assert.Equal(t, scancode.Scancode(163), web.KeyMapToScancodeWith(web.KeyMap{}, fixed(vkey.Cut, true)))
	assert.Equal(t, scancode.Invalid, web.KeyMapToScancodeWith(web.KeyMap{Name: "A"}, fixed(vkey.A, false)))
	assert.Equal(t, scancode.Scancode(11), web.KeyMapToScancodeWith(web.KeyMap{Name: "A"}, nil))
}

func TestEndToEnd(t *testing.T) {
	k, ok := ascii.VirtualKey(65)
	require.True(t, ok)
	assert.Equal(t, vkey.A, k)

	s := scancode.FromKey(k)
	assert.Equal(t, scancode.Scancode(11), s)

	assert.Equal(t, keycode.KeyA, keycode.Of(k))
	assert.Equal(t, keycode.KeyA, web.ScancodeToCode(s))
	assert.Equal(t, s, web.KeyMapToScancode(web.KeyMap{Code: keycode.KeyA}))
}

func TestFormatChord(t *testing.T) {
	type testCase struct {
		name     string
		mods     web.Modifiers
		scancode scancode.Scancode
		expected string
	}
	cases := []testCase{
		{name: "bare key", scancode: 11, expected: "A"},
		{name: "ctrl", mods: web.Ctrl, scancode: 13, expected: "Ctrl+C"},
		{name: "ordered", mods: web.Meta | web.Alt | web.Shift | web.Ctrl, scancode: 11, expected: "Ctrl+Shift+Alt+Logo+A"},
		{name: "alt meta", mods: web.Meta | web.Alt, scancode: 147, expected: "Alt+Logo+Tab"},
		{name: "unknown scancode", mods: web.Shift, scancode: 500, expected: "Shift+SC500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, web.FormatChord(tc.mods, tc.scancode))
		})
	}
}

func TestModifiers(t *testing.T) {
	assert.Equal(t, "Alt", web.Alt.Label())
	assert.Equal(t, "Logo", web.Meta.Label())
	assert.Equal(t, "", (web.Ctrl | web.Shift).Label())
	assert.Equal(t, "Ctrl+Shift", (web.Shift | web.Ctrl).String())
	assert.Empty(t, web.Modifiers(0).Labels())
}
