package keycode_test

import (
	"testing"

	"github.com/Alia5/webkeys/keycode"
	"github.com/Alia5/webkeys/vkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	type testCase struct {
		key      vkey.Key
		expected keycode.Code
	}
	cases := []testCase{
		{key: vkey.A, expected: keycode.KeyA},
		{key: vkey.Key0, expected: keycode.Digit0},
		{key: vkey.Return, expected: keycode.Enter},
		{key: vkey.Back, expected: keycode.Backspace},
		{key: vkey.Sysrq, expected: keycode.PrintScreen},
		{key: vkey.Scroll, expected: keycode.ScrollLock},
		{key: vkey.NumpadEquals, expected: keycode.NumpadEqual},
		{key: vkey.Apps, expected: keycode.ContextMenu},
		{key: vkey.Calculator, expected: keycode.LaunchApp2},
		{key: vkey.MyComputer, expected: keycode.LaunchApp1},
		{key: vkey.LWin, expected: keycode.MetaLeft},
		{key: vkey.RAlt, expected: keycode.AltRight},
		{key: vkey.OEM102, expected: keycode.IntlBackslash},
		{key: vkey.Yen, expected: keycode.IntlYen},
		{key: vkey.Wake, expected: keycode.WakeUp},
		{key: vkey.Mute, expected: keycode.AudioVolumeMute},
		{key: vkey.Cut, expected: keycode.Cut},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, keycode.Of(tc.key))
		})
	}
}

func TestOfUnknown(t *testing.T) {
	unmapped := []vkey.Key{
		vkey.Snapshot, vkey.Compose, vkey.Caret, vkey.AbntC1, vkey.AbntC2,
		vkey.Asterisk, vkey.At, vkey.Ax, vkey.Colon, vkey.Plus, vkey.Stop,
		vkey.Underline, vkey.Unlabeled,
	}
	want := map[vkey.Key]bool{}
	for _, k := range unmapped {
		want[k] = true
	}

	for _, k := range vkey.All() {
		if want[k] {
			assert.Equal(t, keycode.Unknown, keycode.Of(k), k.String())
		} else {
			assert.NotEqual(t, keycode.Unknown, keycode.Of(k), k.String())
		}
	}

	assert.Equal(t, keycode.Unknown, keycode.Of(vkey.None))
	assert.Equal(t, keycode.Unknown, keycode.Of(vkey.Key(250)))
}

// NavigateBackward shares BrowserForward with NavigateForward. This documents
// the current table; it is not a claim that the mapping is right.
func TestNavigateBackward(t *testing.T) {
	assert.Equal(t, keycode.BrowserForward, keycode.Of(vkey.NavigateForward))
	assert.Equal(t, keycode.BrowserForward, keycode.Of(vkey.NavigateBackward))
	assert.Equal(t, keycode.BrowserBack, keycode.Of(vkey.WebBack))
}

func TestKeys(t *testing.T) {
	assert.Equal(t,
		[]vkey.Key{vkey.NavigateForward, vkey.NavigateBackward, vkey.WebForward},
		keycode.Keys(keycode.BrowserForward))
	assert.Equal(t, []vkey.Key{vkey.Grave, vkey.Kanji}, keycode.Keys(keycode.Backquote))
	assert.Equal(t, []vkey.Key{vkey.A}, keycode.Keys(keycode.KeyA))
	assert.Nil(t, keycode.Keys(keycode.Unknown))
	assert.Nil(t, keycode.Keys(keycode.Lang1))

	// Returned slices are copies.
	keys := keycode.Keys(keycode.KeyA)
	keys[0] = vkey.Z
	assert.Equal(t, []vkey.Key{vkey.A}, keycode.Keys(keycode.KeyA))
}

func TestKeysInvertsOf(t *testing.T) {
	for _, c := range keycode.All() {
		for _, k := range keycode.Keys(c) {
			assert.Equal(t, c, keycode.Of(k), "%s -> %s", c, k)
		}
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, c := range keycode.All() {
		s := c.String()
		require.NotEmpty(t, s)
		parsed, ok := keycode.Parse(s)
		assert.True(t, ok, s)
		assert.Equal(t, c, parsed, s)
	}

	assert.Equal(t, "Unknown", keycode.Unknown.String())
	assert.Equal(t, "Code(255)", keycode.Code(255).String())
	_, ok := keycode.Parse("Unknown")
	assert.False(t, ok)
}

func TestMarshalText(t *testing.T) {
	b, err := keycode.BracketLeft.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "BracketLeft", string(b))
}
