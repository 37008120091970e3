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
	"github.com/sixteenbit/x16drive/hardware/keys"
)

// ActionKind classifies an Action.
type ActionKind int

// List of valid ActionKind values.
const (
	// ActionChar is a character from the submitted text, mapped through one
	// of the character tables. The Shift and Ctrl fields record whether the
	// character needs a modifier to produce (a shifted symbol, or a PETSCII
	// control code).
	ActionChar ActionKind = iota

	// ActionKey is a key referenced by name or by raw keycode rather than by
	// the character it produces. Macro tokens and backslash escapes resolve
	// to ActionKey.
	ActionKey

	// ActionPause produces no key events at all. It inserts a gap of PauseMs
	// milliseconds before the following action.
	ActionPause
)

// Action is one logical unit of input, produced by the tokenizer and
// consumed by the synthesizer. Exactly one Action is produced per character,
// macro token or escape sequence, in source order.
//
// An Action says nothing about timing or about when modifiers are pressed
// and released. It only records whether the unit of input requires a
// modifier; sequencing the modifier transitions is the synthesizer's job.
type Action struct {
	Kind ActionKind

	// the key to press. not used by ActionPause
	Code keys.Keycode

	// modifiers required to produce this unit of input
	Shift bool
	Ctrl  bool

	// length of gap. only used by ActionPause
	PauseMs int
}
