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

package vm_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

func parse(t testing.TB, code string) vm.Image {
	t.Helper()
	img, err := vm.Parse(strings.NewReader(code))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return img
}

func run(t testing.TB, code string, in C) (*vm.Instance, C, error) {
	t.Helper()
	var out C
	i, err := vm.New(parse(t, code),
		vm.Input(vm.Queue(in...)),
		vm.Output(vm.Collect((*[]vm.Cell)(&out))))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i, out, i.Run()
}

func cmpCells(t *testing.T, name string, got, want C) {
	t.Helper()
	diff := len(got) != len(want)
	if !diff {
		for i := range want {
			if want[i] != got[i] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%s: expected %d, got %d", name, want, got)
	}
}

var runTests = [...]struct {
	name string
	code string
	in   C
	mem  string // expected final memory, "" to skip
	out  C
}{
	{name: "add", code: "1,0,0,0,99", mem: "2,0,0,0,99"},
	{name: "mul", code: "2,3,0,3,99", mem: "2,3,0,6,99"},
	{name: "mul_square", code: "2,4,4,5,99,0", mem: "2,4,4,5,99,9801"},
	{name: "self_modify", code: "1,1,1,4,99,5,6,0,99", mem: "30,1,1,4,2,5,6,0,99"},
	{name: "modes", code: "1002,4,3,4,33", mem: "1002,4,3,4,99"},
	{name: "neg_values", code: "1101,100,-1,4,0", mem: "1101,100,-1,4,99"},
	{name: "big_mul", code: "1102,34915192,34915192,7,4,7,99,0", out: C{1219070632396864}},
	{name: "big_out", code: "104,1125899906842624,99", out: C{1125899906842624}},
	{name: "quine", code: quine,
		out: C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}},
	{name: "eq_pos", code: "3,9,8,9,10,9,4,9,99,-1,8", in: C{8}, out: C{1}},
	{name: "eq_pos_ne", code: "3,9,8,9,10,9,4,9,99,-1,8", in: C{7}, out: C{0}},
	{name: "lt_pos", code: "3,9,7,9,10,9,4,9,99,-1,8", in: C{7}, out: C{1}},
	{name: "lt_pos_ge", code: "3,9,7,9,10,9,4,9,99,-1,8", in: C{9}, out: C{0}},
	{name: "eq_imm", code: "3,3,1108,-1,8,3,4,3,99", in: C{8}, out: C{1}},
	{name: "lt_imm", code: "3,3,1107,-1,8,3,4,3,99", in: C{9}, out: C{0}},
	{name: "jmp_pos", code: "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", in: C{0}, out: C{0}},
	{name: "jmp_imm", code: "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", in: C{5}, out: C{1}},
	{name: "cmp_8_below", code: "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99", in: C{7}, out: C{999}},
	{name: "cmp_8_equal", code: "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99", in: C{8}, out: C{1000}},
	{name: "cmp_8_above", code: "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99", in: C{9}, out: C{1001}},
}

func TestRun(t *testing.T) {
	for _, test := range runTests {
		t.Run(test.name, func(t *testing.T) {
			i, out, err := run(t, test.code, test.in)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if i.Status() != vm.Halted {
				t.Errorf("expected status %v, got %v", vm.Halted, i.Status())
			}
			if test.mem != "" && i.Mem.String() != test.mem {
				t.Errorf("memory: expected %s, got %s", test.mem, i.Mem.String())
			}
			cmpCells(t, "output", out, test.out)
		})
	}
}

// Relative mode reads and writes, offset by the relative base, including a
// store past the initial extent.
func TestRelativeMode(t *testing.T) {
	// rb ← 5, then [rb+6] ← [rb+0] + [rb+1]
	i, _, err := run(t, "109,5,22201,0,1,6,99", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if i.RelBase != 5 {
		t.Errorf("expected relative base 5, got %d", i.RelBase)
	}
	// [5]=6, [6]=99, stored at 5+6=11
	if v, _ := i.Mem.At(11); v != 105 {
		t.Errorf("expected 105 at address 11, got %d", v)
	}
}

func TestDeterminism(t *testing.T) {
	img := parse(t, quine)
	var mems [2]string
	var outs [2]C
	for k := 0; k < 2; k++ {
		i, err := vm.New(img.Clone(), vm.Output(vm.Collect((*[]vm.Cell)(&outs[k]))))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if err = i.Run(); err != nil {
			t.Fatalf("%+v", err)
		}
		mems[k] = i.Mem.String()
	}
	if mems[0] != mems[1] {
		t.Errorf("final memory differs between runs:\n%s\n%s", mems[0], mems[1])
	}
	cmpCells(t, "output", outs[1], outs[0])
}

var faultTests = [...]struct {
	name  string
	code  string
	in    C
	check func(t *testing.T, cause error)
}{
	{name: "invalid_opcode", code: "42,0,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.InvalidOpcodeError)
		if !ok || e.Opcode != 42 {
			t.Errorf("expected InvalidOpcodeError{42}, got %#v", cause)
		}
	}},
	// jump-if-true with mode digit 3 on operand 0
	{name: "invalid_mode", code: "305,0,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.InvalidModeError)
		if !ok || e.Digit != 3 || e.Operand != 0 {
			t.Errorf("expected InvalidModeError{3, 0}, got %#v", cause)
		}
	}},
	// mode digit 3 on the unused jump target still faults
	{name: "invalid_mode_unused_operand", code: "3005,0,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.InvalidModeError)
		if !ok || e.Digit != 3 || e.Operand != 1 {
			t.Errorf("expected InvalidModeError{3, 1}, got %#v", cause)
		}
	}},
	{name: "write_to_immediate_add", code: "11101,1,1,0,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.WriteToImmediateError)
		if !ok || e.Operand != 2 {
			t.Errorf("expected WriteToImmediateError{2}, got %#v", cause)
		}
	}},
	{name: "write_to_immediate_in", code: "103,0,99", in: C{1}, check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.WriteToImmediateError)
		if !ok || e.Operand != 0 {
			t.Errorf("expected WriteToImmediateError{0}, got %#v", cause)
		}
	}},
	{name: "negative_address", code: "4,-1,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.NegativeAddressError)
		if !ok || e.Addr != -1 {
			t.Errorf("expected NegativeAddressError{-1}, got %#v", cause)
		}
	}},
	{name: "negative_address_relative", code: "109,-3,204,0,99", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.NegativeAddressError)
		if !ok || e.Addr != -3 {
			t.Errorf("expected NegativeAddressError{-3}, got %#v", cause)
		}
	}},
	{name: "input_exhausted", code: "3,0,99", check: func(t *testing.T, cause error) {
		if cause != vm.ErrInputExhausted {
			t.Errorf("expected ErrInputExhausted, got %#v", cause)
		}
	}},
	// running off the end of the tape reads 0, which is not an opcode
	{name: "run_off_tape", code: "1101,1,1,3", check: func(t *testing.T, cause error) {
		e, ok := cause.(*vm.InvalidOpcodeError)
		if !ok || e.Opcode != 0 {
			t.Errorf("expected InvalidOpcodeError{0}, got %#v", cause)
		}
	}},
}

func TestFaults(t *testing.T) {
	for _, test := range faultTests {
		t.Run(test.name, func(t *testing.T) {
			i, _, err := run(t, test.code, test.in)
			if err == nil {
				t.Fatal("expected a fault")
			}
			if i.Status() != vm.Faulted {
				t.Errorf("expected status %v, got %v", vm.Faulted, i.Status())
			}
			test.check(t, errors.Cause(err))

			// a faulted run must not be reusable
			if _, err = i.Step(); err == nil {
				t.Error("expected an error stepping a faulted instance")
			}
		})
	}
}

func TestStep(t *testing.T) {
	i, err := vm.New(parse(t, "1002,4,3,4,33"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	more, err := i.Step()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !more || i.PC != 4 || i.Status() != vm.Running {
		t.Errorf("after one step: more=%v pc=%d status=%v", more, i.PC, i.Status())
	}
	more, err = i.Step()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if more || i.Status() != vm.Halted {
		t.Errorf("after halt: more=%v status=%v", more, i.Status())
	}
	// stepping a halted instance is a no-op
	if more, err = i.Step(); more || err != nil {
		t.Errorf("step after halt: more=%v err=%v", more, err)
	}
	if i.InstructionCount() != 2 {
		t.Errorf("expected 2 instructions, got %d", i.InstructionCount())
	}
}

func BenchmarkRun(b *testing.B) {
	img := parse(b, "1101,1000,0,15,1001,15,-1,15,1005,15,4,99")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		i, _ := vm.New(img.Clone())
		b.StartTimer()
		if err := i.Run(); err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
