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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Faults are terminal: once a run produced one, the instance refuses further
// steps. The engine wraps faults with positional context; use errors.Cause to
// recover the typed value.
var (
	// ErrInputExhausted is reported by input ports that have no further
	// values and never will, as opposed to ports that merely block until a
	// value becomes available.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrAborted is reported by channel ports when their done channel is
	// closed while the engine is suspended on them.
	ErrAborted = errors.New("run aborted")
)

// InvalidOpcodeError is the fault produced when a fetched opcode is not in
// the supported set.
type InvalidOpcodeError struct {
	Opcode Cell
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %d", e.Opcode)
}

// InvalidModeError is the fault produced when an instruction carries an
// addressing mode digit outside {0, 1, 2}.
type InvalidModeError struct {
	Digit   Cell
	Operand int
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid addressing mode %d for operand %d", e.Digit, e.Operand)
}

// NegativeAddressError is the fault produced when a resolved address is
// negative.
type NegativeAddressError struct {
	Addr Cell
}

func (e *NegativeAddressError) Error() string {
	return fmt.Sprintf("negative address %d", e.Addr)
}

// WriteToImmediateError is the fault produced when an instruction attempts
// to use an immediate mode operand as a write target.
type WriteToImmediateError struct {
	Operand int
}

func (e *WriteToImmediateError) Error() string {
	return fmt.Sprintf("write to immediate mode operand %d", e.Operand)
}
