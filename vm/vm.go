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

// Cell is the raw type stored in a memory location. 64 bits is enough for
// every known Intcode program, including the ones that square 8-digit values.
type Cell int64

// Status describes the execution state of an Instance.
type Status int

// Instance states.
const (
	Running Status = iota
	Halted
	Faulted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "unknown"
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int  // Program Counter (aka. Instruction Pointer)
	RelBase  Cell // relative base register, adjusted by OpAdjustRelBase
	Mem      Image
	status   Status
	insCount int64
	in       InPort
	out      OutPort
}

// Option interface
type Option func(*Instance) error

// Input sets the input port of the VM. Opcode OpIn reads one value per
// execution from this port, blocking until the port has a value ready. An
// Instance without an input port faults with ErrInputExhausted on the first
// OpIn executed.
func Input(p InPort) Option {
	return func(i *Instance) error {
		i.in = p
		return nil
	}
}

// Output sets the output port of the VM. Opcode OpOut writes one value per
// execution to this port, blocking until the port accepts it. An Instance
// without an output port discards output values.
func Output(p OutPort) Option {
	return func(i *Instance) error {
		i.out = p
		return nil
	}
}

// InputFunc is a convenience wrapper around Input for plain functions.
func InputFunc(f func() (Cell, error)) Option {
	return Input(InFunc(f))
}

// OutputFunc is a convenience wrapper around Output for plain functions.
func OutputFunc(f func(Cell) error) Option {
	return Output(OutFunc(f))
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The image parameter is the Cell slice used as memory by the VM, usually
// obtained from Parse or Load. The instance takes ownership of the slice for
// the duration of the run: memory may grow (and be reallocated) as the
// program stores past its initial extent. Callers that need the initial
// program preserved should pass a copy (see Image.Clone).
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:    image,
		status: Running,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Status returns the execution state of the instance.
func (i *Instance) Status() Status {
	return i.status
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
