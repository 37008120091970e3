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
	"strconv"
	"strings"

	"github.com/sixteenbit/x16drive/hardware/keys"
	"github.com/sixteenbit/x16drive/logger"
)

// tokenize turns the submitted text into an ordered list of actions.
//
// Error recovery is best-effort throughout: characters that have no entry in
// the mode's table and macro names that aren't recognised produce a log
// entry and no action. Tokenization never fails.
func tokenize(text string, mode Mode) []Action {
	actions := make([]Action, 0, len(text))

	src := []rune(text)
	for i := 0; i < len(src); i++ {
		r := src[i]

		switch r {
		case '\\':
			if i+1 >= len(src) {
				logger.Log(logger.Allow, "input", "trailing backslash in submitted text")
				break // switch
			}
			i++
			if act, ok := escape(src[i]); ok {
				actions = append(actions, act)
			} else {
				logger.Logf(logger.Allow, "input", "unknown escape sequence (\\%c)", src[i])
			}

		case '`':
			end := -1
			for j := i + 1; j < len(src); j++ {
				if src[j] == '`' {
					end = j
					break // for loop
				}
			}
			if end == -1 {
				// with no closing backtick there is no way of knowing where
				// the macro was intended to stop. the remainder of the text
				// is discarded rather than typed literally
				logger.Log(logger.Allow, "input", "unterminated macro in submitted text")
				return actions
			}
			if act, ok := macro(string(src[i+1 : end])); ok {
				actions = append(actions, act)
			}
			i = end

		default:
			if ck, ok := lookupChar(mode, r); ok {
				actions = append(actions, Action{
					Kind:  ActionChar,
					Code:  ck.code,
					Shift: ck.shift,
					Ctrl:  ck.ctrl,
				})
			} else {
				logger.Logf(logger.Allow, "input", "character cannot be typed in %s mode (%q)", mode, r)
			}
		}
	}

	return actions
}

// escape resolves a standard backslash escape to an action.
func escape(r rune) (Action, bool) {
	switch r {
	case 'n', 'r':
		return Action{Kind: ActionKey, Code: keys.Enter}, true
	case 't':
		return Action{Kind: ActionKey, Code: keys.Tab}, true
	case 'b':
		return Action{Kind: ActionKey, Code: keys.Backspace}, true
	case '\\':
		return Action{Kind: ActionChar, Code: keys.Backslash}, true
	case '`':
		return Action{Kind: ActionChar, Code: keys.Grave}, true
	}
	return Action{}, false
}

// macro resolves the body of a backtick token to an action. An unrecognised
// token is logged and treated as a no-op, per the best-effort policy.
func macro(body string) (Action, bool) {
	if body == "" {
		logger.Log(logger.Allow, "input", "empty macro in submitted text")
		return Action{}, false
	}

	// pause tokens: `_500` is 500 milliseconds, `_1.5` is 1.5 seconds
	if body[0] == '_' {
		return pause(body[1:])
	}

	// raw keycode tokens: `K<digits>`
	if (body[0] == 'K' || body[0] == 'k') && len(body) > 1 {
		if v, err := strconv.Atoi(body[1:]); err == nil {
			if v < 0 || v >= keys.MaxKeycode {
				logger.Logf(logger.Allow, "input", "raw keycode out of range (%d)", v)
				return Action{}, false
			}
			return Action{Kind: ActionKey, Code: keys.Keycode(v)}, true
		}
		// fall through to the name tables. a key name can legitimately begin
		// with the letter K
	}

	if act, ok := resolveMacro(body); ok {
		return act, true
	}

	logger.Logf(logger.Allow, "input", "unknown macro name (%s)", body)
	return Action{}, false
}

// pause converts the numeric part of a pause token to an action. A literal
// containing a decimal point is read as seconds, otherwise as milliseconds.
func pause(lit string) (Action, bool) {
	var ms int

	if strings.Contains(lit, ".") {
		sec, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			logger.Logf(logger.Allow, "input", "bad pause value (%s)", lit)
			return Action{}, false
		}
		ms = int(sec * 1000)
	} else {
		var err error
		ms, err = strconv.Atoi(lit)
		if err != nil {
			logger.Logf(logger.Allow, "input", "bad pause value (%s)", lit)
			return Action{}, false
		}
	}

	if ms < 0 {
		logger.Logf(logger.Allow, "input", "negative pause value (%s)", lit)
		return Action{}, false
	}

	return Action{Kind: ActionPause, PauseMs: ms}, true
}
