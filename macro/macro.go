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

package macro

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/input"
	"github.com/sixteenbit/x16drive/logger"
)

// Macro is a type that allows control of the machine from a series of
// instructions.
type Macro struct {
	x16 *hardware.X16

	filename     string
	instructions []string
}

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "x16drivemacro"

// NewMacro is the preferred method of initialisation for the Macro type.
func NewMacro(filename string, x16 *hardware.X16) (*Macro, error) {
	mcr := &Macro{
		x16:      x16,
		filename: filename,
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	buffer, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	err = f.Close()
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}

	// convert file contents to an array of lines
	mcr.instructions = strings.Split(string(buffer), "\n")
	if len(mcr.instructions) < headerNumLines {
		return nil, fmt.Errorf("macro: %s: not a macro file", filename)
	}
	if mcr.instructions[0] != headerID {
		return nil, fmt.Errorf("macro: %s: not a macro file", filename)
	}

	// ignore version string for now

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if the loop counter has been named then we need to know it so that we
	// can update the entry in the variables table
	countName string
}

// Run a macro to completion. The machine is ticked by the WAIT instruction;
// a script that submits text and never waits will leave playback pending in
// the queue.
func (mcr *Macro) Run() {
	log := func(ln int, msg string) {
		logger.Logf(logger.Allow, "macro", "%s: %d: %s", mcr.filename, ln+headerNumLines+1, msg)
	}

	var loops []loop
	variables := make(map[string]int)

	// typing mode and rate carried across TYPE instructions
	mode := input.ASCII
	rate := 0

	for ln := 0; ln < len(mcr.instructions); ln++ {
		s := strings.TrimSpace(mcr.instructions[ln])

		toks := strings.Fields(s)
		if len(toks) == 0 {
			continue // for loop
		}

		switch toks[0] {
		default:
			log(ln, fmt.Sprintf("unrecognised command: %s", toks[0]))
			return

		case "--":
			// ignore comment lines

		case "DO":
			tl := len(toks)
			switch tl {
			case 1:
				log(ln, "too few arguments for DO")
				return
			case 3:
				fallthrough
			case 2:
				ct, err := strconv.Atoi(toks[1])
				if err != nil {
					log(ln, err.Error())
					return
				}
				lp := loop{
					line:     ln,
					countEnd: ct,
				}
				if tl == 3 {
					lp.countName = toks[2]
					variables[lp.countName] = lp.count
				}
				loops = append(loops, lp)
			default:
				log(ln, "too many arguments for DO")
				return
			}

		case "LOOP":
			if len(toks) > 1 {
				log(ln, "too many arguments for LOOP")
				return
			}
			if len(loops) == 0 {
				log(ln, "LOOP without a matching DO")
				return
			}

			lp := &loops[len(loops)-1]
			lp.count++
			if lp.count < lp.countEnd {
				if lp.countName != "" {
					variables[lp.countName] = lp.count
				}
				ln = lp.line
			} else {
				loops = loops[:len(loops)-1]
			}

		case "MODE":
			if len(toks) != 2 {
				log(ln, "MODE requires a single argument")
				return
			}
			m, err := input.ParseMode(toks[1])
			if err != nil {
				log(ln, err.Error())
				return
			}
			mode = m

		case "RATE":
			if len(toks) != 2 {
				log(ln, "RATE requires a single argument")
				return
			}
			r, err := strconv.Atoi(toks[1])
			if err != nil {
				log(ln, err.Error())
				return
			}
			rate = r

		case "TYPE":
			arg := strings.TrimSpace(strings.TrimPrefix(s, "TYPE"))
			if len(arg) < 2 || arg[0] != '"' || arg[len(arg)-1] != '"' {
				log(ln, "TYPE requires a quoted string")
				return
			}
			text := arg[1 : len(arg)-1]

			// replace variable references with the current counter values
			for n, v := range variables {
				text = strings.ReplaceAll(text, fmt.Sprintf("%%%s", n), strconv.Itoa(v))
			}

			if _, err := mcr.x16.Input.SubmitText(text, mode, rate); err != nil {
				log(ln, err.Error())
				return
			}

		case "KEY":
			if len(toks) != 3 {
				log(ln, "KEY requires a key name and DOWN or UP")
				return
			}
			var pressed bool
			switch toks[2] {
			case "DOWN":
				pressed = true
			case "UP":
				pressed = false
			default:
				log(ln, fmt.Sprintf("unrecognised KEY direction: %s", toks[2]))
				return
			}
			if err := mcr.x16.Input.PressKey(toks[1], pressed); err != nil {
				log(ln, err.Error())
				return
			}

		case "WAIT":
			w := 1000
			if len(toks) > 1 {
				var err error
				w, err = strconv.Atoi(toks[1])
				if err != nil {
					log(ln, err.Error())
					return
				}
			}
			mcr.x16.Run(int64(w))

		case "CLEAR":
			mcr.x16.Input.Clear()
		}
	}

	// leaving playback pending is legitimate but worth a note in the log
	if mcr.x16.Input.QueueLen() > 0 {
		log(len(mcr.instructions), fmt.Sprintf("macro finished with %d events still queued", mcr.x16.Input.QueueLen()))
	}
}
