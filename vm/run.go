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

import "github.com/pkg/errors"

// readOperand resolves operand n of the instruction at pc and returns its
// value. The raw cell at pc+n+1 is interpreted per mode: immediate returns it
// as is, positional dereferences it, relative dereferences it offset by
// rbase. pc and rbase are explicit parameters so that resolution stays a pure
// function over the image.
func readOperand(m Image, pc, n int, mode Mode, rbase Cell) (Cell, error) {
	raw, err := m.At(Cell(pc + n + 1))
	if err != nil {
		return 0, err
	}
	switch mode {
	case Immediate:
		return raw, nil
	case Relative:
		return m.At(rbase + raw)
	default: // Positional
		return m.At(raw)
	}
}

// writeAddr resolves operand n of the instruction at pc to a destination
// address. Immediate mode is not a valid write target.
func writeAddr(m Image, pc, n int, mode Mode, rbase Cell) (Cell, error) {
	raw, err := m.At(Cell(pc + n + 1))
	if err != nil {
		return 0, err
	}
	switch mode {
	case Immediate:
		return 0, &WriteToImmediateError{Operand: n}
	case Relative:
		return rbase + raw, nil
	default: // Positional
		return raw, nil
	}
}

func (i *Instance) operand(instr Cell, n int) (Cell, error) {
	mode, err := OperandMode(instr, n)
	if err != nil {
		return 0, err
	}
	return readOperand(i.Mem, i.PC, n, mode, i.RelBase)
}

func (i *Instance) storeOperand(instr Cell, n int, v Cell) error {
	mode, err := OperandMode(instr, n)
	if err != nil {
		return err
	}
	addr, err := writeAddr(i.Mem, i.PC, n, mode, i.RelBase)
	if err != nil {
		return err
	}
	return i.Mem.Store(addr, v)
}

// fault marks the instance Faulted and wraps err with positional context.
func (i *Instance) fault(err error) error {
	i.status = Faulted
	return errors.Wrapf(err, "fault @pc=%d", i.PC)
}

// binOp executes a three operand instruction: dst ← f(a, b).
func (i *Instance) binOp(instr Cell, f func(a, b Cell) Cell) error {
	a, err := i.operand(instr, 0)
	if err != nil {
		return err
	}
	b, err := i.operand(instr, 1)
	if err != nil {
		return err
	}
	return i.storeOperand(instr, 2, f(a, b))
}

// jmp executes a conditional jump: PC ← target if cond(a), else PC += 3.
func (i *Instance) jmp(instr Cell, cond func(a Cell) bool) error {
	a, err := i.operand(instr, 0)
	if err != nil {
		return err
	}
	if !cond(a) {
		i.PC += 3
		return nil
	}
	target, err := i.operand(instr, 1)
	if err != nil {
		return err
	}
	i.PC = int(target)
	return nil
}

// Step executes a single instruction. It returns false once the instance is
// no longer running: (false, nil) after a clean halt, (false, err) on a
// fault. Stepping a Faulted instance is an error: a faulted run's memory and
// context must not be reused.
func (i *Instance) Step() (bool, error) {
	switch i.status {
	case Halted:
		return false, nil
	case Faulted:
		return false, errors.Errorf("instance is not runnable (status %v)", i.status)
	}
	instr, err := i.Mem.At(Cell(i.PC))
	if err != nil {
		return false, i.fault(err)
	}
	op := Opcode(instr)
	def, ok := opcodes[op]
	if !ok {
		return false, i.fault(&InvalidOpcodeError{Opcode: op})
	}
	// validate every operand mode up front: a bad mode digit faults even when
	// the operand would not be used on the taken path
	for n := 0; n < def.arity; n++ {
		if _, err = OperandMode(instr, n); err != nil {
			return false, i.fault(err)
		}
	}
	switch op {
	case OpAdd:
		if err = i.binOp(instr, func(a, b Cell) Cell { return a + b }); err != nil {
			return false, i.fault(err)
		}
		i.PC += 4
	case OpMul:
		if err = i.binOp(instr, func(a, b Cell) Cell { return a * b }); err != nil {
			return false, i.fault(err)
		}
		i.PC += 4
	case OpIn:
		var v Cell
		if i.in == nil {
			return false, i.fault(ErrInputExhausted)
		}
		// suspends here until the port has a value ready
		if v, err = i.in.In(); err != nil {
			return false, i.fault(err)
		}
		if err = i.storeOperand(instr, 0, v); err != nil {
			return false, i.fault(err)
		}
		i.PC += 2
	case OpOut:
		var v Cell
		if v, err = i.operand(instr, 0); err != nil {
			return false, i.fault(err)
		}
		// suspends here until the port accepts the value
		if i.out != nil {
			if err = i.out.Out(v); err != nil {
				return false, i.fault(err)
			}
		}
		i.PC += 2
	case OpJmpTrue:
		if err = i.jmp(instr, func(a Cell) bool { return a != 0 }); err != nil {
			return false, i.fault(err)
		}
	case OpJmpFalse:
		if err = i.jmp(instr, func(a Cell) bool { return a == 0 }); err != nil {
			return false, i.fault(err)
		}
	case OpLess:
		err = i.binOp(instr, func(a, b Cell) Cell {
			if a < b {
				return 1
			}
			return 0
		})
		if err != nil {
			return false, i.fault(err)
		}
		i.PC += 4
	case OpEq:
		err = i.binOp(instr, func(a, b Cell) Cell {
			if a == b {
				return 1
			}
			return 0
		})
		if err != nil {
			return false, i.fault(err)
		}
		i.PC += 4
	case OpRelBase:
		var a Cell
		if a, err = i.operand(instr, 0); err != nil {
			return false, i.fault(err)
		}
		i.RelBase += a
		i.PC += 2
	case OpHalt:
		i.status = Halted
		i.insCount++
		return false, nil
	}
	i.insCount++
	return true, nil
}

// Run executes the VM until the program halts or faults. A nil return means
// a clean halt; anything else is a terminal fault whose cause is one of the
// typed errors of this package (or an error produced by an I/O port).
//
// If an error occurs, the PC will point to the instruction that triggered
// the error.
//
// Execution is an explicit loop: programs routinely execute far more
// instructions than the length of their tape, tight polling loops included.
func (i *Instance) Run() error {
	i.insCount = 0
	for {
		more, err := i.Step()
		if !more {
			return err
		}
	}
}
