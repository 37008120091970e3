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

// Package clocks defines the constant values that define the speed of the
// main clock in the X16 console.
//
// The 65C02 in the Commander X16 runs at 8MHz. The slower values are useful
// when replicating the behaviour of the developer boards, which could be
// strapped to run at a fraction of the full clock.
package clocks

const (
	Full    = 8.0
	Half    = 4.0
	Quarter = 2.0
	Eighth  = 1.0
)
