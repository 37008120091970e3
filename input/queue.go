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
)

// DefaultQueueCapacity is the number of pending events the queue will hold.
// The value matches the scheduling buffer documented for the reference
// firmware.
const DefaultQueueCapacity = 4096

// QueueFull is returned by submission functions when the queue cannot
// accommodate the whole of the synthesised event list.
const QueueFull = "input: queue full: %d events pending, %d more submitted"

// queue is a bounded FIFO of pending events, implemented as a ring buffer so
// that memory use is fixed for the lifetime of the scheduler.
type queue struct {
	events []Event
	head   int
	used   int
}

func newQueue(capacity int) *queue {
	return &queue{
		events: make([]Event, capacity),
	}
}

func (q *queue) len() int {
	return q.used
}

// tryEnqueue admits the whole event list or none of it. Partial admission
// would break the modifier-state continuity of the submission: a later drain
// could press a modifier and never see the matching release.
func (q *queue) tryEnqueue(events []Event) error {
	if q.used+len(events) > len(q.events) {
		return curated.Errorf(QueueFull, q.used, len(events))
	}

	for _, ev := range events {
		q.events[(q.head+q.used)%len(q.events)] = ev
		q.used++
	}

	return nil
}

// front returns the event at the head of the queue without removing it. Only
// valid when len() > 0.
func (q *queue) front() Event {
	return q.events[q.head]
}

// pop removes and returns the event at the head of the queue. Only valid
// when len() > 0.
func (q *queue) pop() Event {
	ev := q.events[q.head]
	q.head = (q.head + 1) % len(q.events)
	q.used--
	return ev
}

func (q *queue) clear() {
	q.head = 0
	q.used = 0
}

// pendingMs is the estimated playback time of everything in the queue.
func (q *queue) pendingMs() int {
	var ms int
	for i := 0; i < q.used; i++ {
		ms += q.events[(q.head+i)%len(q.events)].DelayMs
	}
	return ms
}
