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
	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware/keys"
)

// KeyMatrix implementations receive the key transitions applied by the
// scheduler. The scheduler's responsibility ends at "this keycode
// transitions now"; what the transition does to the emulated machine is the
// implementation's business.
type KeyMatrix interface {
	KeyDown(keys.Keycode)
	KeyUp(keys.Keycode)
}

// Default timing values. Both are adjustable through the corresponding
// fields of the Scheduler type; entry points that want the more conservative
// documented behaviour (the 30ms floor of the automation service, for
// instance) impose it themselves.
const (
	// DefaultTargetRate is the start-to-start time between characters, in
	// milliseconds.
	DefaultTargetRate = 10

	// DefaultKeyEventDelay is the spacing between events within one
	// character, in milliseconds.
	DefaultKeyEventDelay = 1
)

// UnknownKey is returned by PressKey for key names that cannot be resolved.
const UnknownKey = "input: unknown key (%s)"

// QueuedInfo summarises a successful submission. Purely informational: it
// is reported back through the automation API but nothing in this package
// depends on it.
type QueuedInfo struct {
	// number of events in the queue before and after the submission
	SizeBefore int
	SizeAfter  int

	// estimated playback time of the submitted events, in milliseconds. the
	// sum of every scheduled delay
	PlaybackMs int
}

// Scheduler owns the event queue and the drain-loop bookkeeping. It is the
// single point through which all driven input passes.
//
// The scheduler is not safe for concurrent use. It is designed for the
// emulator's single-threaded cooperative model: submissions and the
// per-tick Process() call must come from the same goroutine (the hardware
// package's pushed-function channel is how other goroutines get here).
type Scheduler struct {
	matrix KeyMatrix
	queue  *queue

	// TargetRate is the start-to-start time between characters (ms) used
	// when a submission does not specify its own rate.
	TargetRate int

	// KeyEventDelay is the spacing between events within one character (ms).
	KeyEventDelay int

	// drain bookkeeping. nextDue is only meaningful while primed is true
	primed  bool
	nextDue int64

	// modifier keys that have been physically pressed in the matrix and not
	// yet released. consulted by Clear() so that no exit path can leave a
	// modifier stuck down
	heldMods map[keys.Keycode]bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(matrix KeyMatrix) *Scheduler {
	return &Scheduler{
		matrix:        matrix,
		queue:         newQueue(DefaultQueueCapacity),
		TargetRate:    DefaultTargetRate,
		KeyEventDelay: DefaultKeyEventDelay,
		heldMods:      make(map[keys.Keycode]bool),
	}
}

// SubmitText tokenizes and synthesizes the text and appends the resulting
// events to the queue. The whole submission is admitted or none of it is: on
// a QueueFull error the queue is exactly as it was.
//
// A rateMs value of zero or less selects the scheduler's TargetRate.
func (sch *Scheduler) SubmitText(text string, mode Mode, rateMs int) (QueuedInfo, error) {
	rate := rateMs
	if rate <= 0 {
		rate = sch.TargetRate
	}

	events := synthesize(tokenize(text, mode), rate, sch.KeyEventDelay)

	before := sch.queue.len()
	if err := sch.queue.tryEnqueue(events); err != nil {
		return QueuedInfo{SizeBefore: before, SizeAfter: before}, err
	}

	return QueuedInfo{
		SizeBefore: before,
		SizeAfter:  sch.queue.len(),
		PlaybackMs: playbackMs(events),
	}, nil
}

// PressKey enqueues a single immediate key transition, bypassing the
// tokenizer and synthesizer entirely. The key is named as in the backtick
// macro form ("ENTER", "F1", "LSHIFT", ...) or is a single character.
//
// Note that modifier bookkeeping is the caller's responsibility with this
// entry point: a key pressed through PressKey stays down until released the
// same way (or until Clear(), for modifiers).
func (sch *Scheduler) PressKey(name string, pressed bool) error {
	code, err := resolveKeyName(name)
	if err != nil {
		return err
	}

	kind := KeyUp
	if pressed {
		kind = KeyDown
	}

	return sch.queue.tryEnqueue([]Event{{Kind: kind, Code: code}})
}

// resolveKeyName maps a key name or single character to a keycode.
func resolveKeyName(name string) (keys.Keycode, error) {
	if act, ok := resolveMacro(name); ok {
		return act.Code, nil
	}

	r := []rune(name)
	if len(r) == 1 {
		if ck, ok := lookupChar(ASCII, r[0]); ok {
			return ck.code, nil
		}
	}

	return keys.NoKey, curated.Errorf(UnknownKey, name)
}

// QueueLen returns the number of pending events.
func (sch *Scheduler) QueueLen() int {
	return sch.queue.len()
}

// PendingMs returns the estimated playback time of all pending events.
func (sch *Scheduler) PendingMs() int {
	return sch.queue.pendingMs()
}

// Process applies every due event to the key matrix. It should be called
// once per emulated tick with the current virtual clock value, after the
// tick's clock advancement is complete.
//
// The delay of each event is relative to the application time of the
// previous event. Process keeps a running next-due timestamp: seeded from
// the clock when the queue starts draining and advanced by each applied
// event's successor delay. When the queue empties the bookkeeping resets, so
// the next submission re-seeds from the then-current clock.
func (sch *Scheduler) Process(now int64) {
	for sch.queue.len() > 0 {
		if !sch.primed {
			sch.nextDue = now + int64(sch.queue.front().DelayMs)
			sch.primed = true
		}

		if now < sch.nextDue {
			return
		}

		sch.apply(sch.queue.pop())

		if sch.queue.len() > 0 {
			sch.nextDue += int64(sch.queue.front().DelayMs)
		} else {
			sch.primed = false
		}
	}
}

func (sch *Scheduler) apply(ev Event) {
	switch ev.Kind {
	case KeyDown:
		sch.matrix.KeyDown(ev.Code)
		if ev.Code.IsModifier() {
			sch.heldMods[ev.Code] = true
		}
	case KeyUp:
		sch.matrix.KeyUp(ev.Code)
		if ev.Code.IsModifier() {
			delete(sch.heldMods, ev.Code)
		}
	}
}

// modifier release order used by Clear().
var modReleaseOrder = []keys.Keycode{
	keys.LeftShift, keys.RightShift,
	keys.LeftCtrl, keys.RightCtrl,
	keys.LeftAlt, keys.RightAlt,
}

// Clear discards all pending events and releases any modifier key that has
// been physically pressed in the matrix. The release step is what keeps the
// one resource-safety invariant of this package: no exit path leaves a
// modifier stuck down.
func (sch *Scheduler) Clear() {
	sch.queue.clear()
	sch.primed = false

	for _, kc := range modReleaseOrder {
		if sch.heldMods[kc] {
			sch.matrix.KeyUp(kc)
			delete(sch.heldMods, kc)
		}
	}
}
