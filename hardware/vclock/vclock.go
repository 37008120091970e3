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

// Package vclock provides a millisecond time base derived from the emulated
// CPU's cycle counter.
//
// Using the cycle counter rather than the host's wall clock means that
// scheduled input replays at the same virtual time regardless of host load,
// and freezes entirely while the emulated CPU is paused (in a debugger, for
// example). The time base also scales automatically with the configured CPU
// frequency.
package vclock

// Clock converts the emulated CPU cycle count into a monotonically
// non-decreasing millisecond counter.
type Clock struct {
	mhz    float64
	cycles uint64
	paused bool
}

// NewClock is the preferred method of initialisation for the Clock type. The
// mhz argument is the emulated CPU frequency (see the clocks package for
// suitable values).
func NewClock(mhz float64) *Clock {
	return &Clock{mhz: mhz}
}

// Advance the clock by the number of cycles consumed by the most recent
// emulated instruction or tick. Advancing a paused clock has no effect,
// which is what freezes virtual time during a debugger pause.
func (clk *Clock) Advance(cycles uint64) {
	if clk.paused {
		return
	}
	clk.cycles += cycles
}

// Pause or unpause the clock.
func (clk *Clock) Pause(paused bool) {
	clk.paused = paused
}

// IsPaused returns the pause state of the clock.
func (clk *Clock) IsPaused() bool {
	return clk.paused
}

// Cycles returns the raw cycle count.
func (clk *Clock) Cycles() uint64 {
	return clk.cycles
}

// Millis returns the number of virtual milliseconds that have elapsed since
// the machine was switched on.
//
//	ms = cycles / (mhz * 1000)
//
// The value is monotonically non-decreasing because the cycle counter only
// ever increases.
func (clk *Clock) Millis() int64 {
	return int64(float64(clk.cycles) / (clk.mhz * 1000))
}
