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
	"fmt"

	"github.com/sixteenbit/x16drive/hardware/keys"
)

// EventKind is the direction of a key transition.
type EventKind int

// List of valid EventKind values.
const (
	KeyDown EventKind = iota
	KeyUp
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	}
	return "unknown"
}

// Event is one physical key transition. DelayMs is relative to the
// application time of the previous event in the queue; or, for the event at
// the head of an otherwise empty queue, relative to the time the queue
// processor first sees it.
type Event struct {
	Kind    EventKind
	Code    keys.Keycode
	DelayMs int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %d +%dms", ev.Kind, ev.Code, ev.DelayMs)
}
