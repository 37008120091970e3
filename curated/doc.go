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

// Package curated provides a way of creating errors that can be tested for
// identity without resorting to string comparison at the calling site.
//
// Errors are created with the Errorf() function. The pattern string serves
// two purposes: it is the format string used when the error message is
// printed; and it is the identity of the error used by the Is() and Has()
// functions.
//
// Packages that want their errors to be testable in this way should define
// their patterns as exported constants. For example, the input package
// defines the QueueFull pattern which is returned when a text submission
// cannot be accommodated by the event queue:
//
//	_, err := sch.SubmitText("hello", input.ASCII, 0)
//	if curated.Is(err, input.QueueFull) {
//		// retry later or shorten the submission
//	}
package curated
