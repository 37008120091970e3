// This file is part of x16drive.
//
// x16drive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// x16drive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with x16drive.  If not, see <https://www.gnu.org/licenses/>.

// Package keys defines the keycodes understood by the emulated keyboard.
//
// The values are the IBM key numbers used by the Commander X16 SMC and
// kernal. They are the physical identity of a key, not a character code:
// the character produced by a key number depends on the modifier state and
// on the character set selected by the running program.
package keys

// Keycode is an IBM key number as used by the X16 SMC.
type Keycode uint8

// MaxKeycode is the upper bound (exclusive) of valid keycodes. Used for
// sizing the keyboard matrix.
const MaxKeycode = 128

// List of keycode values.
//
// Values from the IBM key numbering of the 101/102-key keyboard, which is
// the numbering the X16 kernal keymaps are written against.
const (
	NoKey Keycode = 0

	Grave  Keycode = 1
	Digit1 Keycode = 2
	Digit2 Keycode = 3
	Digit3 Keycode = 4
	Digit4 Keycode = 5
	Digit5 Keycode = 6
	Digit6 Keycode = 7
	Digit7 Keycode = 8
	Digit8 Keycode = 9
	Digit9 Keycode = 10
	Digit0 Keycode = 11
	Minus  Keycode = 12
	Equal  Keycode = 13

	Backspace Keycode = 15
	Tab       Keycode = 16

	Q            Keycode = 17
	W            Keycode = 18
	E            Keycode = 19
	R            Keycode = 20
	T            Keycode = 21
	Y            Keycode = 22
	U            Keycode = 23
	I            Keycode = 24
	O            Keycode = 25
	P            Keycode = 26
	LeftBracket  Keycode = 27
	RightBracket Keycode = 28
	Backslash    Keycode = 29

	CapsLock   Keycode = 30
	A          Keycode = 31
	S          Keycode = 32
	D          Keycode = 33
	F          Keycode = 34
	G          Keycode = 35
	H          Keycode = 36
	J          Keycode = 37
	K          Keycode = 38
	L          Keycode = 39
	Semicolon  Keycode = 40
	Apostrophe Keycode = 41
	Enter      Keycode = 43

	LeftShift  Keycode = 44
	Z          Keycode = 46
	X          Keycode = 47
	C          Keycode = 48
	V          Keycode = 49
	B          Keycode = 50
	N          Keycode = 51
	M          Keycode = 52
	Comma      Keycode = 53
	Period     Keycode = 54
	Slash      Keycode = 55
	RightShift Keycode = 57

	LeftCtrl   Keycode = 58
	LeftAlt    Keycode = 60
	Space      Keycode = 61
	RightAlt   Keycode = 62
	RightCtrl  Keycode = 64

	Insert   Keycode = 75
	Delete   Keycode = 76
	Left     Keycode = 79
	Home     Keycode = 80
	End      Keycode = 81
	Up       Keycode = 83
	Down     Keycode = 84
	PageUp   Keycode = 85
	PageDown Keycode = 86
	Right    Keycode = 89

	NumLock   Keycode = 90
	KP7       Keycode = 91
	KP4       Keycode = 92
	KP1       Keycode = 93
	KPDivide  Keycode = 95
	KP8       Keycode = 96
	KP5       Keycode = 97
	KP2       Keycode = 98
	KP0       Keycode = 99
	KPMultiply Keycode = 100
	KP9       Keycode = 101
	KP6       Keycode = 102
	KP3       Keycode = 103
	KPDecimal Keycode = 104
	KPMinus   Keycode = 105
	KPPlus    Keycode = 106
	KPEnter   Keycode = 108

	Escape Keycode = 110

	F1  Keycode = 112
	F2  Keycode = 113
	F3  Keycode = 114
	F4  Keycode = 115
	F5  Keycode = 116
	F6  Keycode = 117
	F7  Keycode = 118
	F8  Keycode = 119
	F9  Keycode = 120
	F10 Keycode = 121
	F11 Keycode = 122
	F12 Keycode = 123
)

// IsModifier returns true if the keycode is one of the modifier keys.
func (kc Keycode) IsModifier() bool {
	switch kc {
	case LeftShift, RightShift, LeftCtrl, RightCtrl, LeftAlt, RightAlt:
		return true
	}
	return false
}

// names of keys as used by the backtick macro form. more than one name can
// refer to the same key.
var names = map[string]Keycode{
	"ENTER":     Enter,
	"RETURN":    Enter,
	"TAB":       Tab,
	"SPACE":     Space,
	"BACKSPACE": Backspace,
	"BS":        Backspace,
	"DELETE":    Delete,
	"DEL":       Delete,
	"INSERT":    Insert,
	"INS":       Insert,
	"ESCAPE":    Escape,
	"ESC":       Escape,
	"UP":        Up,
	"DOWN":      Down,
	"LEFT":      Left,
	"RIGHT":     Right,
	"HOME":      Home,
	"END":       End,
	"PGUP":      PageUp,
	"PGDN":      PageDown,
	"CAPS":      CapsLock,
	"LSHIFT":    LeftShift,
	"RSHIFT":    RightShift,
	"LCTRL":     LeftCtrl,
	"RCTRL":     RightCtrl,
	"LALT":      LeftAlt,
	"RALT":      RightAlt,
	"F1":        F1,
	"F2":        F2,
	"F3":        F3,
	"F4":        F4,
	"F5":        F5,
	"F6":        F6,
	"F7":        F7,
	"F8":        F8,
	"F9":        F9,
	"F10":       F10,
	"F11":       F11,
	"F12":       F12,
}

// Lookup returns the keycode for a key name as used in macro tokens. Key
// names are case insensitive at the tokenizer level; the names in the table
// are upper case.
func Lookup(name string) (Keycode, bool) {
	kc, ok := names[name]
	return kc, ok
}
