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

	"github.com/sixteenbit/x16drive/hardware/keys"
)

// PETSCII colour and reverse-video controls. On the X16, as on the C64
// before it, these are typed as CTRL plus a number key.
var petsciiControls = map[string]Action{
	"BLACK":  {Kind: ActionChar, Code: keys.Digit1, Ctrl: true},
	"WHITE":  {Kind: ActionChar, Code: keys.Digit2, Ctrl: true},
	"RED":    {Kind: ActionChar, Code: keys.Digit3, Ctrl: true},
	"CYAN":   {Kind: ActionChar, Code: keys.Digit4, Ctrl: true},
	"PURPLE": {Kind: ActionChar, Code: keys.Digit5, Ctrl: true},
	"GREEN":  {Kind: ActionChar, Code: keys.Digit6, Ctrl: true},
	"BLUE":   {Kind: ActionChar, Code: keys.Digit7, Ctrl: true},
	"YELLOW": {Kind: ActionChar, Code: keys.Digit8, Ctrl: true},
	"RVSON":  {Kind: ActionChar, Code: keys.Digit9, Ctrl: true},
	"RVSOFF": {Kind: ActionChar, Code: keys.Digit0, Ctrl: true},

	// clear screen is shifted HOME
	"CLR":   {Kind: ActionKey, Code: keys.Home, Shift: true},
	"CLEAR": {Kind: ActionKey, Code: keys.Home, Shift: true},
}

// resolveMacro converts the body of a backtick macro token into an Action.
// Key names can be qualified with a modifier prefix, separated by a plus
// sign. For example: SHIFT+F1 or CTRL+HOME.
//
// Pause tokens and the raw keycode form are handled by the tokenizer before
// this function is reached.
func resolveMacro(name string) (Action, bool) {
	name = strings.ToUpper(name)

	var shift, ctrl bool
	for {
		if strings.HasPrefix(name, "SHIFT+") {
			shift = true
			name = strings.TrimPrefix(name, "SHIFT+")
			continue
		}
		if strings.HasPrefix(name, "CTRL+") {
			ctrl = true
			name = strings.TrimPrefix(name, "CTRL+")
			continue
		}
		break
	}

	if kc, ok := keys.Lookup(name); ok {
		return Action{Kind: ActionKey, Code: kc, Shift: shift, Ctrl: ctrl}, true
	}

	if act, ok := petsciiControls[name]; ok {
		// the table entries already carry their own modifier requirements.
		// explicit qualifiers are combined with them
		act.Shift = act.Shift || shift
		act.Ctrl = act.Ctrl || ctrl
		return act, true
	}

	return Action{}, false
}
