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

// Package automation exposes the input scheduler to external tooling over
// HTTP+JSON. It is the surface that AI-driven development loops and test
// scripts talk to when they need to type into the emulated machine.
//
// Endpoints:
//
//	POST /v1/type    submit text for typed playback
//	POST /v1/key     press or release a single key immediately
//	POST /v1/clear   flush pending input and release held modifiers
//	GET  /v1/status  clock, queue and held-key summary
//	GET  /v1/log     recent log entries
//	GET  /v1/memviz  graphviz dump of the scheduler state
//
// Handlers never touch the machine directly. Every request is pushed onto
// the machine's tick-boundary function queue and the handler blocks until
// the tick loop has serviced it. The scheduler only ever runs on the ticking
// goroutine.
package automation
