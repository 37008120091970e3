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

// Package term forwards keystrokes from the host terminal to the emulated
// machine. the host terminal is placed into cbreak mode so that individual
// keypresses are seen as they happen, rather than line by line.
//
// a single press of the ESC key is forwarded to the machine like any other
// key. pressing ESC twice in a row ends the forwarding loop.
package term
