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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sixteenbit/x16drive/automation"
	"github.com/sixteenbit/x16drive/hardware"
	"github.com/sixteenbit/x16drive/hardware/clocks"
	"github.com/sixteenbit/x16drive/logger"
	"github.com/sixteenbit/x16drive/macro"
	"github.com/sixteenbit/x16drive/modalflag"
	"github.com/sixteenbit/x16drive/script"
	"github.com/sixteenbit/x16drive/statsview"
	"github.com/sixteenbit/x16drive/term"
	"github.com/sixteenbit/x16drive/version"
)

// the address the automation server listens on unless told otherwise
const defaultAddr = "localhost:9916"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SERVE", "MACRO", "SCRIPT", "TERM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "SERVE":
		err = serve(md)
	case "MACRO":
		err = runMacro(md)
	case "SCRIPT":
		err = runScript(md)
	case "TERM":
		err = runTerm(md)
	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newMachine translates the mhz flag into a running machine. common to all
// modes.
func newMachine(mhz float64, log bool) *hardware.X16 {
	if log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
	return hardware.NewX16(mhz)
}

func serve(md *modalflag.Modes) error {
	md.NewMode()

	addr := md.AddString("addr", defaultAddr, "address for the automation server")
	mhz := md.AddFloat64("mhz", clocks.Full, "speed of the emulated clock in MHz")
	minRate := md.AddInt("minrate", automation.DefaultMinRate, "floor for requested typing rates (ms)")
	sessionDir := md.AddString("session", "", "write JSON session logs to directory")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	x16 := newMachine(*mhz, *log)
	srv := automation.NewServer(x16, *addr)
	srv.MinRate = *minRate
	if *sessionDir != "" {
		srv.Session = automation.NewSession(*sessionDir)
	}

	quit := make(chan bool)
	go x16.RunRealtime(quit)
	defer close(quit)

	// stop serving cleanly on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	return srv.ListenAndServe()
}

func runMacro(md *modalflag.Modes) error {
	md.NewMode()

	mhz := md.AddFloat64("mhz", clocks.Full, "speed of the emulated clock in MHz")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("macro file required for %s mode", md)
	case 1:
		x16 := newMachine(*mhz, *log)
		mcr, err := macro.NewMacro(md.GetArg(0), x16)
		if err != nil {
			return err
		}
		mcr.Run()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	mhz := md.AddFloat64("mhz", clocks.Full, "speed of the emulated clock in MHz")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua file required for %s mode", md)
	case 1:
		x16 := newMachine(*mhz, *log)
		return script.NewScript(x16).RunFile(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func runTerm(md *modalflag.Modes) error {
	md.NewMode()

	mhz := md.AddFloat64("mhz", clocks.Full, "speed of the emulated clock in MHz")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	x16 := newMachine(*mhz, *log)

	quit := make(chan bool)
	go x16.RunRealtime(quit)
	defer close(quit)

	trm := term.NewTerm(x16)
	if err := trm.Initialise(os.Stdin); err != nil {
		return err
	}

	fmt.Println("forwarding keystrokes. press ESC twice to quit")
	return trm.Forward()
}
