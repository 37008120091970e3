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

package term

import (
	"os"

	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/input"
	"github.com/sixteenbit/x16drive/logger"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// sentinal error returned by Initialise()
const NoTerminal = "term: input is not a terminal: %v"

// Term couples the host terminal to the emulated keyboard. the terminal is
// placed into cbreak mode for the duration of the Forward() loop and restored
// on return.
type Term struct {
	x16   *hardware.X16
	input *os.File

	// typing parameters. Mode can be changed before Forward() is called
	Mode input.Mode
	Rate int

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerm is the preferred method of initialisation for the Term type.
func NewTerm(x16 *hardware.X16) *Term {
	return &Term{
		x16:  x16,
		Mode: input.ASCII,
		Rate: input.DefaultTargetRate,
	}
}

// Initialise prepares the host terminal. the terminal is not placed into
// cbreak mode until Forward() is called.
func (trm *Term) Initialise(inputFile *os.File) error {
	trm.input = inputFile

	// record current attributes so they can be restored at the end of the
	// Forward() loop
	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return curated.Errorf(NoTerminal, err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	return nil
}

// Forward reads keypresses from the host terminal and queues them for the
// emulated machine, until ESC is pressed. the machine should be running
// concurrently, with cross-goroutine access going through PushFuncAndWait().
func (trm *Term) Forward() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr); err != nil {
		return curated.Errorf(NoTerminal, err)
	}
	defer func() {
		_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
	}()

	buf := make([]byte, 1)

	// a single ESC is forwarded to the machine. two in a row end the session
	pendingEsc := false

	for {
		n, err := trm.input.Read(buf)
		if err != nil {
			return curated.Errorf("term: %v", err)
		}
		if n == 0 {
			continue
		}

		if buf[0] == 0x1b {
			if pendingEsc {
				return nil
			}
			pendingEsc = true
			continue
		}

		if pendingEsc {
			pendingEsc = false
			if err := trm.submit("`ESC`"); err != nil {
				return err
			}
		}

		text, ok := translate(buf[0])
		if !ok {
			logger.Logf(logger.Allow, "term", "ignoring byte %#02x", buf[0])
			continue
		}

		if err := trm.submit(text); err != nil {
			return err
		}
	}
}

// submit text to the scheduler at the tick boundary. submission errors (a
// full queue for instance) are logged, not returned: only a broken push
// channel ends the session.
func (trm *Term) submit(text string) error {
	var serr error
	err := trm.x16.PushFuncAndWait(func() {
		_, serr = trm.x16.Input.SubmitText(text, trm.Mode, trm.Rate)
	})
	if err != nil {
		return err
	}
	if serr != nil {
		logger.Logf(logger.Allow, "term", "%v", serr)
	}
	return nil
}

// translate converts a byte read from the host terminal into text suitable
// for the input scheduler. control bytes use the scheduler's backslash escapes.
func translate(b byte) (string, bool) {
	switch b {
	case 0x0a, 0x0d:
		return "\\n", true
	case 0x09:
		return "\\t", true
	case 0x08, 0x7f:
		return "\\b", true
	}
	if b < 0x20 || b > 0x7e {
		return "", false
	}
	if b == '\\' {
		return "\\\\", true
	}
	if b == '`' {
		return "\\`", true
	}
	return string(rune(b)), true
}
