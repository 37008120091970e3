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

// Package input converts text into a time-stamped sequence of key
// transitions and replays them against the emulated machine's virtual clock.
//
// The conversion happens in two stages. The tokenizer turns a string
// (possibly containing backtick macros and backslash escapes) into a list of
// actions, one action per logical unit of input. The synthesizer then walks
// the action list and emits the physical key-down/key-up events, including
// any modifier transitions, with delays computed so that the start-to-start
// time between consecutive characters is held at the target typing rate no
// matter how many physical events an individual character needs.
//
// Synthesised events are appended atomically to a bounded queue owned by the
// Scheduler. The Scheduler's Process() function should be called once per
// emulated tick, at the point in the tick when the virtual clock has a
// settled value. Events whose time has arrived are popped and applied to the
// keyboard matrix.
//
// The delays attached to events are relative to the application time of the
// preceding event, not absolute timestamps. This is what allows a queued
// submission to replay correctly even if the emulated machine is paused and
// resumed part way through.
//
// The package deliberately has no opinion about what the keyboard matrix is.
// Anything implementing the KeyMatrix interface can receive the key
// transitions; in practice that is the smc package.
package input
