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

package hardware

import (
	"time"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware/smc"
	"github.com/sixteenbit/x16drive/hardware/vclock"
	"github.com/sixteenbit/x16drive/input"
)

// number of cycles the clock advances per tick. at the full 8MHz clock this
// is an eighth of a millisecond, comfortably finer than the millisecond
// resolution of scheduled input.
const cyclesPerTick = 1000

// PushedFull is returned by PushFunc when the pushed function queue is full.
const PushedFull = "hardware: pushed function queue is full: request dropped"

// X16 is the assembly of the emulated machine parts that driven input needs:
// the virtual clock, the SMC keyboard matrix and the input scheduler.
type X16 struct {
	Clock *vclock.Clock
	SMC   *smc.SMC
	Input *input.Scheduler

	// functions pushed from other goroutines, to be run at the next tick
	// boundary
	pushed chan func()
}

// NewX16 is the preferred method of initialisation for the X16 type. The mhz
// argument is the emulated CPU frequency (see the clocks package).
func NewX16(mhz float64) *X16 {
	x16 := &X16{
		Clock:  vclock.NewClock(mhz),
		SMC:    smc.NewSMC(),
		pushed: make(chan func(), 64),
	}
	x16.Input = input.NewScheduler(x16.SMC)
	return x16
}

// Tick advances the machine by one tick: the clock moves forward, pushed
// functions run, and due input events are applied.
//
// The ordering matters. The scheduler must only ever see a clock value from
// a completed tick, and pushed functions must not interleave with event
// application. Everything that touches the scheduler happens here, on the
// goroutine that calls Tick.
func (x16 *X16) Tick() {
	x16.Clock.Advance(cyclesPerTick)

	done := false
	for !done {
		select {
		case f := <-x16.pushed:
			f()
		default:
			done = true
		}
	}

	x16.Input.Process(x16.Clock.Millis())
}

// PushFunc queues a function to be run at the next tick boundary. It is the
// only safe way of reaching the machine from another goroutine. Returns an
// error if the pushed function queue is full.
func (x16 *X16) PushFunc(f func()) error {
	select {
	case x16.pushed <- f:
	default:
		return curated.Errorf(PushedFull)
	}
	return nil
}

// PushFuncAndWait queues a function to be run at the next tick boundary and
// blocks until it has run.
//
// It must never be called from the goroutine that is ticking the machine;
// that would deadlock. Tick-side code can just call what it needs directly.
func (x16 *X16) PushFuncAndWait(f func()) error {
	done := make(chan struct{})
	err := x16.PushFunc(func() {
		f()
		close(done)
	})
	if err != nil {
		return err
	}
	<-done
	return nil
}

// Run ticks the machine until the virtual clock has advanced by the
// specified number of milliseconds.
func (x16 *X16) Run(ms int64) {
	end := x16.Clock.Millis() + ms
	for x16.Clock.Millis() < end && !x16.Clock.IsPaused() {
		x16.Tick()
	}
}

// RunRealtime ticks the machine continuously, pacing virtual time to host
// time, until the quit channel is closed. Pacing is coarse but that is fine:
// input scheduling follows the virtual clock, not the host clock, so jitter
// here affects liveliness only, never correctness.
func (x16 *X16) RunRealtime(quit <-chan bool) {
	for {
		select {
		case <-quit:
			return
		default:
		}

		// a paused clock never advances so the tick loop must not wait for
		// it. a single tick still services pushed functions
		if x16.Clock.IsPaused() {
			x16.Tick()
		} else {
			start := x16.Clock.Millis()
			for x16.Clock.Millis() < start+1 {
				x16.Tick()
			}
		}
		time.Sleep(time.Millisecond)
	}
}

// Pause or unpause the emulated CPU. While paused the virtual clock is
// frozen and scheduled input stops arriving, exactly as if the machine were
// stopped in a debugger.
func (x16 *X16) Pause(paused bool) {
	x16.Clock.Pause(paused)
}
