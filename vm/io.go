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

// InPort is the input side of the VM's I/O boundary. In returns the next
// value for an OpIn instruction. It may block until a value becomes
// available; returning ErrInputExhausted means no further values are or ever
// will be available. Any error returned faults the run.
type InPort interface {
	In() (Cell, error)
}

// OutPort is the output side of the VM's I/O boundary. Out consumes the
// value produced by an OpOut instruction. It may block until it is ready to
// accept the value (backpressure). Any error returned faults the run.
//
// Values cross either port strictly in program order, one instruction at a
// time: ports never see reordered, duplicated or dropped values.
type OutPort interface {
	Out(v Cell) error
}

// InFunc adapts a plain function to an InPort.
type InFunc func() (Cell, error)

// In calls f.
func (f InFunc) In() (Cell, error) { return f() }

// OutFunc adapts a plain function to an OutPort.
type OutFunc func(Cell) error

// Out calls f.
func (f OutFunc) Out(v Cell) error { return f(v) }

// ChanIn returns an InPort reading from in. A receive that would block
// suspends the engine until a value is sent; a closed channel reports
// ErrInputExhausted. Closing done aborts a suspended receive with ErrAborted
// so that a run driven from another goroutine can be torn down without
// leaking it. A nil done never aborts.
//
// This is the adapter to use when the VM feeds an external controller whose
// next input depends on earlier output: run the VM in its own goroutine and
// drive both channels from the controller loop.
func ChanIn(in <-chan Cell, done <-chan struct{}) InPort {
	return InFunc(func() (Cell, error) {
		select {
		case v, ok := <-in:
			if !ok {
				return 0, ErrInputExhausted
			}
			return v, nil
		case <-done:
			return 0, ErrAborted
		}
	})
}

// ChanOut returns an OutPort writing to out. A send that would block
// suspends the engine until the consumer is ready: an unbuffered or small
// channel gives the consumer backpressure over the producing program.
// Closing done aborts a suspended send with ErrAborted. A nil done never
// aborts.
func ChanOut(out chan<- Cell, done <-chan struct{}) OutPort {
	return OutFunc(func(v Cell) error {
		select {
		case out <- v:
			return nil
		case <-done:
			return ErrAborted
		}
	})
}
