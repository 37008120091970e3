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

// Package hardware assembles the emulated machine parts that driven input
// needs and provides the tick loop that holds them together.
//
// The tick loop is single-threaded and cooperative. Every mutation of the
// input scheduler happens on the ticking goroutine: other goroutines (the
// automation server's HTTP handlers, for example) reach the machine through
// PushFunc, which defers their work to the next tick boundary. This mirrors
// how a real emulator core services external requests between instruction
// steps and means the scheduler itself needs no locking.
//
// The full machine is not emulated here. There is no 65C02 core, no VERA and
// no memory map; those belong to whichever emulator this package is driving.
// What is emulated is the state that driven input interacts with: the cycle
// counter that the virtual clock derives time from, and the SMC keyboard
// matrix that key transitions land in.
package hardware
