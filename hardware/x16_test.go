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

package hardware_test

import (
	"testing"

	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/hardware/clocks"
	"github.com/sixteenbit/x16drive/hardware/keys"
	"github.com/sixteenbit/x16drive/input"
	"github.com/sixteenbit/x16drive/test"
)

func TestEndToEnd(t *testing.T) {
	x16 := hardware.NewX16(clocks.Full)

	_, err := x16.Input.SubmitText("AB", input.ASCII, 10)
	test.ExpectSuccess(t, err)

	// after the first tick the first key is already down: the first
	// character of a submission starts immediately
	x16.Tick()
	test.ExpectSuccess(t, x16.SMC.IsDown(keys.A))

	// run past the full playback time. everything has been applied and
	// released
	x16.Run(20)
	test.ExpectEquality(t, x16.Input.QueueLen(), 0)
	test.ExpectEquality(t, len(x16.SMC.Held()), 0)

	// two characters, two transitions each
	test.ExpectEquality(t, x16.SMC.Transitions(), 4)
}

func TestPauseFreezesPlayback(t *testing.T) {
	x16 := hardware.NewX16(clocks.Full)

	_, err := x16.Input.SubmitText("AB", input.ASCII, 10)
	test.ExpectSuccess(t, err)

	x16.Run(2)
	applied := x16.SMC.Transitions()
	test.ExpectEquality(t, applied, 2)

	// while the machine is paused no further events are applied, no matter
	// how many ticks pass
	x16.Pause(true)
	for i := 0; i < 1000; i++ {
		x16.Tick()
	}
	test.ExpectEquality(t, x16.SMC.Transitions(), applied)

	// playback resumes where it left off
	x16.Pause(false)
	x16.Run(20)
	test.ExpectEquality(t, x16.SMC.Transitions(), 4)
}

func TestPushFunc(t *testing.T) {
	x16 := hardware.NewX16(clocks.Full)

	// pushed functions do not run until the machine ticks
	ran := false
	err := x16.PushFunc(func() { ran = true })
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ran)

	x16.Tick()
	test.ExpectSuccess(t, ran)
}
