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

// Package smc emulates the keyboard side of the X16's System Management
// Controller.
//
// In the real machine the SMC sits between the PS/2 keyboard and the 65C02,
// queueing scancodes for the kernal to read over I2C. For the purposes of
// driven input the significant state is the set of keys that are currently
// held down, which this package models as a bitmap keyed by IBM key number.
package smc

import (
	"strconv"
	"strings"

	"github.com/sixteenbit/x16drive/hardware/keys"
)

// SMC is the receiving end of all key transitions. It implements the
// input.KeyMatrix interface.
type SMC struct {
	matrix [keys.MaxKeycode / 8]uint8

	// number of transitions applied since creation or the last call to
	// Reset(). useful when testing for the presence (or absence) of input
	transitions int
}

// NewSMC is the preferred method of initialisation for the SMC type.
func NewSMC() *SMC {
	return &SMC{}
}

// KeyDown marks the key as held.
func (sm *SMC) KeyDown(kc keys.Keycode) {
	sm.matrix[kc/8] |= 1 << (kc % 8)
	sm.transitions++
}

// KeyUp marks the key as released.
func (sm *SMC) KeyUp(kc keys.Keycode) {
	sm.matrix[kc/8] &^= 1 << (kc % 8)
	sm.transitions++
}

// IsDown returns true if the key is currently held.
func (sm *SMC) IsDown(kc keys.Keycode) bool {
	return sm.matrix[kc/8]&(1<<(kc%8)) != 0
}

// Held returns the list of keys that are currently held, in keycode order.
func (sm *SMC) Held() []keys.Keycode {
	held := make([]keys.Keycode, 0)
	for kc := keys.Keycode(0); kc < keys.MaxKeycode; kc++ {
		if sm.IsDown(kc) {
			held = append(held, kc)
		}
	}
	return held
}

// Transitions returns the number of key transitions applied since creation
// or the last call to Reset().
func (sm *SMC) Transitions() int {
	return sm.transitions
}

// Reset releases all keys and zeroes the transition count.
func (sm *SMC) Reset() {
	sm.matrix = [keys.MaxKeycode / 8]uint8{}
	sm.transitions = 0
}

func (sm *SMC) String() string {
	s := strings.Builder{}
	s.WriteString("held:")
	for _, kc := range sm.Held() {
		s.WriteString(" ")
		s.WriteString(strconv.Itoa(int(kc)))
	}
	return s.String()
}
