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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Usage differs from the flag package in that arguments are attached with
// NewArgs() and Parse() is then called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SERVE", "MACRO", "SCRIPT")
//	p, err := md.Parse()
//
// The first listed sub-mode is the default, used when the first non-flag
// argument does not name a sub-mode. After a sub-mode has been selected,
// NewMode() begins a fresh flagset for the arguments that follow it:
//
//	switch md.Mode() {
//	case "MACRO":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print each instruction")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg(). Help
// messages (in response to the -help flag) are assembled automatically,
// including the list of available sub-modes.
package modalflag
