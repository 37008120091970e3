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

package logger_test

import (
	"strings"
	"testing"

	"github.com/sixteenbit/x16drive/logger"
	"github.com/sixteenbit/x16drive/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the strings.Builder buffer before continuing, makes comparisons
	// easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	// the same tag and detail should fold into one entry with a repeat count
	log.Log(logger.Allow, "test", "this is a test")
	log.Log(logger.Allow, "test", "this is a test")
	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test (repeat x3)\n")

	// a different detail breaks the fold
	w.Reset()
	log.Log(logger.Allow, "test", "something else")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test (repeat x3)\ntest: something else\n")
}

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit{}, "test", "this entry should not appear")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "test", "one")
	log.Log(logger.Allow, "test", "two")
	log.Log(logger.Allow, "test", "three")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: two\ntest: three\n")
}
