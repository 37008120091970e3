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
	"testing"

	"github.com/sixteenbit/x16drive/hardware/keys"
	"github.com/sixteenbit/x16drive/test"
)

func TestPlainPair(t *testing.T) {
	// the worked example from the design documentation: "AB" at a 10ms rate
	// with 1ms event spacing
	ev := synthesize(tokenize("AB", ASCII), 10, 1)

	test.ExpectEquality(t, len(ev), 4)
	test.ExpectEquality(t, ev[0], Event{Kind: KeyDown, Code: keys.A, DelayMs: 0})
	test.ExpectEquality(t, ev[1], Event{Kind: KeyUp, Code: keys.A, DelayMs: 1})
	test.ExpectEquality(t, ev[2], Event{Kind: KeyDown, Code: keys.B, DelayMs: 9})
	test.ExpectEquality(t, ev[3], Event{Kind: KeyUp, Code: keys.B, DelayMs: 1})

	// elapsed time from A-down to B-down is exactly the target rate
	test.ExpectEquality(t, ev[1].DelayMs+ev[2].DelayMs, 10)
}

func TestModifierExample(t *testing.T) {
	// A then a double-quote at a 10ms rate. the quote needs SHIFT
	ev := synthesize(tokenize(`A"`, ASCII), 10, 1)

	test.ExpectEquality(t, len(ev), 6)
	test.ExpectEquality(t, ev[0], Event{Kind: KeyDown, Code: keys.A, DelayMs: 0})
	test.ExpectEquality(t, ev[1], Event{Kind: KeyUp, Code: keys.A, DelayMs: 1})
	test.ExpectEquality(t, ev[2], Event{Kind: KeyDown, Code: keys.LeftShift, DelayMs: 9})
	test.ExpectEquality(t, ev[3], Event{Kind: KeyDown, Code: keys.Apostrophe, DelayMs: 1})
	test.ExpectEquality(t, ev[4], Event{Kind: KeyUp, Code: keys.Apostrophe, DelayMs: 1})
	test.ExpectEquality(t, ev[5], Event{Kind: KeyUp, Code: keys.LeftShift, DelayMs: 1})
}

func TestRateInvariant(t *testing.T) {
	// for plain characters, the start-to-start delay between consecutive
	// characters is exactly the target rate
	const rate = 30

	ev := synthesize(tokenize("HELLO WORLD", ASCII), rate, 2)

	var gap int
	var starts []int
	elapsed := 0
	for _, e := range ev {
		elapsed += e.DelayMs
		if e.Kind == KeyDown {
			starts = append(starts, elapsed)
		}
	}

	test.ExpectEquality(t, len(starts), 11)
	for i := 1; i < len(starts); i++ {
		gap = starts[i] - starts[i-1]
		test.ExpectEquality(t, gap, rate)
	}
}

func TestFirstEventImmediate(t *testing.T) {
	// the first event of a submission always has a zero delay, whatever the
	// target rate
	ev := synthesize(tokenize("Z", ASCII), 500, 2)
	test.ExpectEquality(t, ev[0].DelayMs, 0)

	// true for shifted characters too: the modifier press is the first event
	ev = synthesize(tokenize("!", ASCII), 500, 2)
	test.ExpectEquality(t, ev[0].Code, keys.LeftShift)
	test.ExpectEquality(t, ev[0].DelayMs, 0)
}

func TestSharedModifier(t *testing.T) {
	// consecutive shifted characters share a single SHIFT down/up pair
	ev := synthesize(tokenize("!!", ASCII), 10, 1)

	var downs, ups int
	for _, e := range ev {
		if e.Code == keys.LeftShift {
			switch e.Kind {
			case KeyDown:
				downs++
			case KeyUp:
				ups++
			}
		}
	}
	test.ExpectEquality(t, downs, 1)
	test.ExpectEquality(t, ups, 1)

	// the release comes after the last shifted character
	test.ExpectEquality(t, ev[len(ev)-1].Code, keys.LeftShift)
	test.ExpectEquality(t, ev[len(ev)-1].Kind, KeyUp)
}

func TestModifierBreak(t *testing.T) {
	// an unshifted character between two shifted ones forces a release and a
	// re-press
	ev := synthesize(tokenize("!A!", ASCII), 10, 1)

	var downs, ups int
	for _, e := range ev {
		if e.Code == keys.LeftShift {
			if e.Kind == KeyDown {
				downs++
			} else {
				ups++
			}
		}
	}
	test.ExpectEquality(t, downs, 2)
	test.ExpectEquality(t, ups, 2)
}

func TestNoStuckModifiers(t *testing.T) {
	// for any input, every modifier sees as many up events as down events
	// once synthesis and cleanup are complete
	for _, text := range []string{
		"hello", "HELLO", `"quoted"`, "!@#$%", "`WHITE`text`BLUE`",
		"A`SHIFT+F1`", "mixed CASE with `ENTER` and pauses`_100`!",
	} {
		ev := synthesize(tokenize(text, PETSCII), 10, 1)

		balance := make(map[keys.Keycode]int)
		for _, e := range ev {
			if e.Code.IsModifier() {
				if e.Kind == KeyDown {
					balance[e.Code]++
				} else {
					balance[e.Code]--
				}
			}
		}
		for code, b := range balance {
			if b != 0 {
				t.Errorf("modifier %d left unbalanced (%d) for input %q", code, b, text)
			}
		}
	}
}

func TestPauseDelay(t *testing.T) {
	// a pause adds its length to the lead-in delay of the following action,
	// bypassing rate normalisation
	ev := synthesize(tokenize("A`_500`B", ASCII), 10, 1)

	test.ExpectEquality(t, len(ev), 4)
	test.ExpectEquality(t, ev[2].Code, keys.B)

	// the A action left 9ms of its budget; the pause adds its full 500ms
	test.ExpectEquality(t, ev[2].DelayMs, 509)
}

func TestDelayClamp(t *testing.T) {
	// when an action's own events cost more than the target rate the next
	// action starts immediately. the delay is never negative
	ev := synthesize(tokenize("A!", ASCII), 1, 2)

	for _, e := range ev {
		if e.DelayMs < 0 {
			t.Errorf("negative delay synthesised (%s)", e)
		}
	}

	// A-down(0), A-up(2): time used 2 > rate 1, so the next action's first
	// event follows immediately
	test.ExpectEquality(t, ev[2].DelayMs, 0)
}

func TestPlaybackEstimate(t *testing.T) {
	ev := synthesize(tokenize("AB", ASCII), 10, 1)
	test.ExpectEquality(t, playbackMs(ev), 11)
}
