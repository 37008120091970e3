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

// Package macro implements an input system that processes instructions from
// a macro script.
//
// The macro language is very simple and does not implement any flow control
// except basic loops.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be referenced as a variable in the TYPE instruction.
//
// Loops can be nested.
//
// The TYPE instruction submits text for typed playback. The text argument
// uses the same escape and backtick-macro forms as the submission API, and
// may reference loop counters with the % symbol:
//
//	DO 10 ct
//		TYPE "line %ct\n"
//	LOOP
//
// The KEY instruction presses or releases a single key:
//
//	KEY F1 DOWN
//	KEY F1 UP
//
// The MODE and RATE instructions change the character mode and typing rate
// used by subsequent TYPE instructions. The WAIT instruction runs the
// machine for the specified number of virtual milliseconds (1000 if no value
// is given), which is also how queued playback makes progress. CLEAR
// flushes all pending input.
//
// Any errors in a macro script will result in a log entry and the
// termination of the macro execution.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
package macro
