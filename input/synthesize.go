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

// synthesize converts an action list into a fully timed event list.
//
// The timing rule is that the start-to-start time between consecutive
// actions equals targetRateMs, even though different actions need a
// different number of physical events (two for a plain character, up to six
// for a character that also toggles modifiers). The intra-action event
// spacing that an action consumes is subtracted from the lead-in delay of
// the following action rather than stretching the current one; the
// remainder is carried forward in nextActionDelay. If an action's own
// events cost more than the target rate allows, the following action simply
// starts immediately. The delay never goes negative.
//
// The first event of the very first action is emitted with a delay of zero:
// the first character of a submission starts immediately, whatever the rate.
//
// Modifier state persists across actions. A modifier is pressed before the
// first action that needs it and released only when the next action does not
// need it, so a run of shifted characters shares a single SHIFT-down/up
// pair. Any modifier still held after the final action is released during
// cleanup. Shift is always released before ctrl.
func synthesize(actions []Action, targetRateMs int, keyDelayMs int) []Event {
	events := make([]Event, 0, len(actions)*2)

	var shift, ctrl bool
	nextActionDelay := 0

	for i, act := range actions {
		if act.Kind == ActionPause {
			// a pause bypasses the rate arithmetic entirely. its length is
			// added to whatever lead-in delay the previous action left
			// behind
			nextActionDelay += act.PauseMs
			continue // for loop
		}

		// timeUsed accumulates the intra-action spacing consumed by every
		// event after the first. the first event's delay was charged to the
		// previous action's budget
		firstEvent := true
		timeUsed := 0

		emit := func(kind EventKind, code keys.Keycode) {
			delay := keyDelayMs
			if firstEvent {
				delay = nextActionDelay
				firstEvent = false
			} else {
				timeUsed += keyDelayMs
			}
			events = append(events, Event{Kind: kind, Code: code, DelayMs: delay})
		}

		if act.Shift && !shift {
			emit(KeyDown, keys.LeftShift)
			shift = true
		}
		if act.Ctrl && !ctrl {
			emit(KeyDown, keys.LeftCtrl)
			ctrl = true
		}

		emit(KeyDown, act.Code)
		emit(KeyUp, act.Code)

		// release modifiers that the next action will not need. holding them
		// across consecutive same-modifier actions avoids pointless up/down
		// churn
		var nextShift, nextCtrl bool
		if i+1 < len(actions) {
			nextShift = actions[i+1].Shift
			nextCtrl = actions[i+1].Ctrl
		}
		if shift && !nextShift {
			emit(KeyUp, keys.LeftShift)
			shift = false
		}
		if ctrl && !nextCtrl {
			emit(KeyUp, keys.LeftCtrl)
			ctrl = false
		}

		nextActionDelay = targetRateMs - timeUsed
		if nextActionDelay < 0 {
			nextActionDelay = 0
		}
	}

	// cleanup. with the lookahead release above these should never still be
	// held, but no path out of synthesis may leave a modifier down
	if shift {
		events = append(events, Event{Kind: KeyUp, Code: keys.LeftShift, DelayMs: keyDelayMs})
	}
	if ctrl {
		events = append(events, Event{Kind: KeyUp, Code: keys.LeftCtrl, DelayMs: keyDelayMs})
	}

	return events
}

// playbackMs is the estimated total playback time of an event list: the sum
// of every delay. Informational only.
func playbackMs(events []Event) int {
	var ms int
	for _, ev := range events {
		ms += ev.DelayMs
	}
	return ms
}
