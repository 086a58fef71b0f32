package web

import (
	"strings"

	"github.com/Alia5/webkeys/scancode"
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	Ctrl Modifiers = 1 << iota
	Shift
	Alt
	Meta
)

// Label returns the display label of a single modifier, or "" when m is not
// exactly one modifier.
func (m Modifiers) Label() string {
	switch m {
	case Ctrl:
		return "Ctrl"
	case Shift:
		return "Shift"
	case Alt:
		return AltLabel
	case Meta:
		return LogoLabel
	}
	return ""
}

func modifierFor(c byte) Modifiers {
	switch c {
	case 'c':
		return Ctrl
	case 's':
		return Shift
	case 'a':
		return Alt
	case 'm':
		return Meta
	}
	return 0
}

// Labels returns the labels of the modifiers in m, in ModifiersOrder.
func (m Modifiers) Labels() []string {
	var labels []string
	for i := 0; i < len(ModifiersOrder); i++ {
		mod := modifierFor(ModifiersOrder[i])
		if m&mod != 0 {
			labels = append(labels, mod.Label())
		}
	}
	return labels
}

func (m Modifiers) String() string {
	return strings.Join(m.Labels(), "+")
}

// FormatChord renders held modifiers and a key as "Ctrl+Shift+A".
func FormatChord(m Modifiers, s scancode.Scancode) string {
	return strings.Join(append(m.Labels(), scancode.Name(s)), "+")
}
