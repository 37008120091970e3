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

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware/keys"
	"github.com/sixteenbit/x16drive/test"
)

func event(n int) Event {
	return Event{Kind: KeyDown, Code: keys.Keycode(n % keys.MaxKeycode), DelayMs: n}
}

func TestQueueOrdering(t *testing.T) {
	q := newQueue(8)

	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(1), event(2), event(3)}) == nil)
	test.ExpectEquality(t, q.len(), 3)

	test.ExpectEquality(t, q.front(), event(1))
	test.ExpectEquality(t, q.pop(), event(1))
	test.ExpectEquality(t, q.pop(), event(2))
	test.ExpectEquality(t, q.pop(), event(3))
	test.ExpectEquality(t, q.len(), 0)
}

func TestQueueAtomicity(t *testing.T) {
	q := newQueue(4)

	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(1), event(2), event(3)}) == nil)

	// a submission that does not fit leaves the queue exactly as it was
	err := q.tryEnqueue([]Event{event(4), event(5)})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, QueueFull))
	test.ExpectEquality(t, q.len(), 3)
	test.ExpectEquality(t, q.front(), event(1))

	// a submission that exactly fills the remaining capacity is fine
	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(4)}) == nil)
	test.ExpectEquality(t, q.len(), 4)
}

func TestQueueWraparound(t *testing.T) {
	q := newQueue(4)

	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(1), event(2), event(3)}) == nil)
	test.ExpectEquality(t, q.pop(), event(1))
	test.ExpectEquality(t, q.pop(), event(2))

	// the ring has space again even though the write position has passed the
	// end of the backing array
	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(4), event(5), event(6)}) == nil)
	test.ExpectEquality(t, q.len(), 4)

	test.ExpectEquality(t, q.pop(), event(3))
	test.ExpectEquality(t, q.pop(), event(4))
	test.ExpectEquality(t, q.pop(), event(5))
	test.ExpectEquality(t, q.pop(), event(6))
}

func TestQueuePendingMs(t *testing.T) {
	q := newQueue(8)
	test.ExpectEquality(t, q.pendingMs(), 0)

	test.ExpectSuccess(t, q.tryEnqueue([]Event{event(10), event(20), event(30)}) == nil)
	test.ExpectEquality(t, q.pendingMs(), 60)

	q.clear()
	test.ExpectEquality(t, q.len(), 0)
	test.ExpectEquality(t, q.pendingMs(), 0)
}
