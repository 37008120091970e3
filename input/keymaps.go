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

package input

import (
	"strings"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware/keys"
)

// Mode selects the character table and case-folding behaviour used by the
// tokenizer.
type Mode int

// List of valid Mode values.
const (
	// ASCII is the behaviour of the kernal's default keyboard handler:
	// unshifted letter keys produce upper case, so letter case in the
	// submitted text is folded away before lookup.
	ASCII Mode = iota

	// PETSCII preserves case: a lower case letter is an unshifted key press
	// and an upper case letter is a shifted one.
	PETSCII

	// SCREEN targets programs reading the keyboard for screen-code entry.
	// Letter case folds as in ASCII mode.
	SCREEN
)

func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case PETSCII:
		return "petscii"
	case SCREEN:
		return "screen"
	}
	return "unknown"
}

// UnknownMode is returned by ParseMode for unrecognised mode names.
const UnknownMode = "input: unrecognised mode (%s)"

// ParseMode converts a mode name to a Mode value. The empty string parses to
// ASCII, which is the documented default for the submission API.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "ascii":
		return ASCII, nil
	case "petscii":
		return PETSCII, nil
	case "screen":
		return SCREEN, nil
	}
	return ASCII, curated.Errorf(UnknownMode, s)
}

// charKey describes the key press that produces a character: the physical
// key and whether a modifier is needed.
type charKey struct {
	code  keys.Keycode
	shift bool
	ctrl  bool
}

// letter keys by upper case rune.
var letters = map[rune]keys.Keycode{
	'A': keys.A, 'B': keys.B, 'C': keys.C, 'D': keys.D, 'E': keys.E,
	'F': keys.F, 'G': keys.G, 'H': keys.H, 'I': keys.I, 'J': keys.J,
	'K': keys.K, 'L': keys.L, 'M': keys.M, 'N': keys.N, 'O': keys.O,
	'P': keys.P, 'Q': keys.Q, 'R': keys.R, 'S': keys.S, 'T': keys.T,
	'U': keys.U, 'V': keys.V, 'W': keys.W, 'X': keys.X, 'Y': keys.Y,
	'Z': keys.Z,
}

// non-letter characters. positions are those of the standard US layout,
// which is the layout the X16 kernal keymap data is derived from.
var symbols = map[rune]charKey{
	' ':  {code: keys.Space},
	'0':  {code: keys.Digit0},
	'1':  {code: keys.Digit1},
	'2':  {code: keys.Digit2},
	'3':  {code: keys.Digit3},
	'4':  {code: keys.Digit4},
	'5':  {code: keys.Digit5},
	'6':  {code: keys.Digit6},
	'7':  {code: keys.Digit7},
	'8':  {code: keys.Digit8},
	'9':  {code: keys.Digit9},
	'-':  {code: keys.Minus},
	'=':  {code: keys.Equal},
	'[':  {code: keys.LeftBracket},
	']':  {code: keys.RightBracket},
	'\\': {code: keys.Backslash},
	';':  {code: keys.Semicolon},
	'\'': {code: keys.Apostrophe},
	',':  {code: keys.Comma},
	'.':  {code: keys.Period},
	'/':  {code: keys.Slash},
	'`':  {code: keys.Grave},

	'!': {code: keys.Digit1, shift: true},
	'@': {code: keys.Digit2, shift: true},
	'#': {code: keys.Digit3, shift: true},
	'$': {code: keys.Digit4, shift: true},
	'%': {code: keys.Digit5, shift: true},
	'^': {code: keys.Digit6, shift: true},
	'&': {code: keys.Digit7, shift: true},
	'*': {code: keys.Digit8, shift: true},
	'(': {code: keys.Digit9, shift: true},
	')': {code: keys.Digit0, shift: true},
	'_': {code: keys.Minus, shift: true},
	'+': {code: keys.Equal, shift: true},
	'{': {code: keys.LeftBracket, shift: true},
	'}': {code: keys.RightBracket, shift: true},
	'|': {code: keys.Backslash, shift: true},
	':': {code: keys.Semicolon, shift: true},
	'"': {code: keys.Apostrophe, shift: true},
	'<': {code: keys.Comma, shift: true},
	'>': {code: keys.Period, shift: true},
	'?': {code: keys.Slash, shift: true},
	'~': {code: keys.Grave, shift: true},
}

// lookupChar finds the key press for a character under the given mode.
// Characters with no entry in the mode's table return false and are skipped
// by the tokenizer.
func lookupChar(mode Mode, r rune) (charKey, bool) {
	switch mode {
	case ASCII, SCREEN:
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if kc, ok := letters[r]; ok {
			return charKey{code: kc}, true
		}

	case PETSCII:
		if r >= 'a' && r <= 'z' {
			return charKey{code: letters[r-('a'-'A')]}, true
		}
		if kc, ok := letters[r]; ok {
			return charKey{code: kc, shift: true}, true
		}
	}

	ck, ok := symbols[r]
	return ck, ok
}
