// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// Mode is the addressing mode of a single instruction operand.
type Mode int

// Operand addressing modes.
const (
	Positional Mode = iota // operand is the address of the value
	Immediate              // operand is the value itself, never a write target
	Relative               // operand is an address offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "invalid"
}

var pow10 = [...]Cell{1, 10, 100, 1000, 10000, 100000}

// Opcode returns the opcode of an instruction: its two least significant
// decimal digits.
func Opcode(instr Cell) Cell {
	return instr % 100
}

// OperandMode returns the addressing mode of operand n (0-based) of an
// instruction. One decimal digit per operand, right to left, starting just
// past the opcode. Modes are decoded on demand rather than precomputed
// because operand count depends on the opcode.
func OperandMode(instr Cell, n int) (Mode, error) {
	d := instr / pow10[n+2] % 10
	switch d {
	case 0:
		return Positional, nil
	case 1:
		return Immediate, nil
	case 2:
		return Relative, nil
	}
	return 0, &InvalidModeError{Digit: d, Operand: n}
}
