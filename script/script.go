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

package script

import (
	"github.com/sixteenbit/x16drive/curated"
	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/input"

	lua "github.com/yuin/gopher-lua"
)

// sentinal error returned by RunFile() when the Lua script fails
const ScriptError = "script: %v"

// Script is a prepared Lua script. the script runs to completion on the
// calling goroutine and drives the machine directly, in the same way as
// the macro package.
type Script struct {
	x16 *hardware.X16

	// typing parameters adjusted by x16.mode() and x16.rate()
	mode input.Mode
	rate int
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(x16 *hardware.X16) *Script {
	return &Script{
		x16:  x16,
		mode: input.ASCII,
		rate: input.DefaultTargetRate,
	}
}

// RunFile executes the named Lua file to completion.
func (scr *Script) RunFile(filename string) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("x16", scr.table(L))

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

// table builds the x16 global available to scripts.
func (scr *Script) table(L *lua.LState) *lua.LTable {
	tbl := L.NewTable()

	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"type": func(L *lua.LState) int {
			text := L.CheckString(1)

			// an optional second argument overrides the typing rate for
			// this submission only
			rate := scr.rate
			if L.GetTop() >= 2 {
				rate = L.CheckInt(2)
			}

			_, err := scr.x16.Input.SubmitText(text, scr.mode, rate)
			if err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},
		"key": func(L *lua.LState) int {
			name := L.CheckString(1)
			down := L.CheckBool(2)
			if err := scr.x16.Input.PressKey(name, down); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},
		"mode": func(L *lua.LState) int {
			m, err := input.ParseMode(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
			}
			scr.mode = m
			return 0
		},
		"rate": func(L *lua.LState) int {
			r := L.CheckInt(1)
			if r < 0 {
				L.RaiseError("rate must not be negative")
			}
			scr.rate = r
			return 0
		},
		"wait": func(L *lua.LState) int {
			scr.x16.Run(int64(L.CheckInt(1)))
			return 0
		},
		"clear": func(L *lua.LState) int {
			scr.x16.Input.Clear()
			return 0
		},
		"clock": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.x16.Clock.Millis()))
			return 1
		},
		"pending": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.x16.Input.QueueLen()))
			return 1
		},
	})

	return tbl
}
