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

// Package script runs Lua driver scripts against the emulated machine.
// Scripts have access to a single global table named x16:
//
//	x16.type(text)       queue text for typing
//	x16.key(name, down)  press or release a named key
//	x16.mode(name)       set the character mode (ascii, petscii, screen)
//	x16.rate(ms)         set the typing rate
//	x16.wait(ms)         run the machine for a period of emulated time
//	x16.clear()          discard queued input and release modifiers
//	x16.clock()          current emulated time in milliseconds
//	x16.pending()        number of queued input events
//
// Lua scripts are more flexible than macro scripts. the macro package is
// preferred for simple, linear input sequences.
package script
