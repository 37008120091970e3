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

package smc_test

import (
	"testing"

	"github.com/sixteenbit/x16drive/hardware/keys"
	"github.com/sixteenbit/x16drive/hardware/smc"
	"github.com/sixteenbit/x16drive/test"
)

func TestMatrix(t *testing.T) {
	sm := smc.NewSMC()

	test.ExpectFailure(t, sm.IsDown(keys.A))
	test.ExpectEquality(t, len(sm.Held()), 0)

	sm.KeyDown(keys.A)
	test.ExpectSuccess(t, sm.IsDown(keys.A))
	test.ExpectFailure(t, sm.IsDown(keys.B))

	sm.KeyDown(keys.LeftShift)
	held := sm.Held()
	test.ExpectEquality(t, len(held), 2)
	test.ExpectEquality(t, held[0], keys.A)
	test.ExpectEquality(t, held[1], keys.LeftShift)

	sm.KeyUp(keys.A)
	test.ExpectFailure(t, sm.IsDown(keys.A))
	test.ExpectSuccess(t, sm.IsDown(keys.LeftShift))

	// releasing an already released key is harmless
	sm.KeyUp(keys.A)
	test.ExpectFailure(t, sm.IsDown(keys.A))

	test.ExpectEquality(t, sm.Transitions(), 5)

	sm.Reset()
	test.ExpectEquality(t, len(sm.Held()), 0)
	test.ExpectEquality(t, sm.Transitions(), 0)
}
