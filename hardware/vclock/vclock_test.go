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

package vclock_test

import (
	"testing"

	"github.com/sixteenbit/x16drive/hardware/clocks"
	"github.com/sixteenbit/x16drive/hardware/vclock"
	"github.com/sixteenbit/x16drive/test"
)

func TestMillis(t *testing.T) {
	clk := vclock.NewClock(clocks.Full)
	test.ExpectEquality(t, clk.Millis(), 0)

	// at 8MHz one millisecond is 8000 cycles
	clk.Advance(8000)
	test.ExpectEquality(t, clk.Millis(), 1)

	clk.Advance(7999)
	test.ExpectEquality(t, clk.Millis(), 1)
	clk.Advance(1)
	test.ExpectEquality(t, clk.Millis(), 2)
}

func TestFrequencyScaling(t *testing.T) {
	// the same cycle count represents more elapsed time on a slower clock
	fast := vclock.NewClock(clocks.Full)
	slow := vclock.NewClock(clocks.Quarter)

	fast.Advance(16000)
	slow.Advance(16000)

	test.ExpectEquality(t, fast.Millis(), 2)
	test.ExpectEquality(t, slow.Millis(), 8)
}

func TestPause(t *testing.T) {
	clk := vclock.NewClock(clocks.Full)
	clk.Advance(8000)
	test.ExpectEquality(t, clk.Millis(), 1)

	// a paused clock does not advance
	clk.Pause(true)
	clk.Advance(80000)
	test.ExpectEquality(t, clk.Millis(), 1)

	clk.Pause(false)
	clk.Advance(8000)
	test.ExpectEquality(t, clk.Millis(), 2)
}
