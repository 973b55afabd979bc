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

// Intcode Virtual Machine Opcodes.
const (
	OpAdd Cell = iota + 1 // dst ← a + b
	OpMul                 // dst ← a × b
	OpIn                  // dst ← next input value
	OpOut                 // emit a
	OpJmpTrue             // PC ← target if cond ≠ 0
	OpJmpFalse            // PC ← target if cond = 0
	OpLess                // dst ← 1 if a < b else 0
	OpEq                  // dst ← 1 if a = b else 0
	OpRelBase             // RelBase ← RelBase + a

	OpHalt Cell = 99
)

// opcode mnemonics and operand counts, indexed by opcode. Used by the
// disassembler and fault diagnostics only: the program text format itself
// is strictly numeric.
var opcodes = map[Cell]struct {
	name  string
	arity int
}{
	OpAdd:      {"add", 3},
	OpMul:      {"mul", 3},
	OpIn:       {"in", 1},
	OpOut:      {"out", 1},
	OpJmpTrue:  {"jnz", 2},
	OpJmpFalse: {"jz", 2},
	OpLess:     {"lt", 3},
	OpEq:       {"eq", 3},
	OpRelBase:  {"arb", 1},
	OpHalt:     {"halt", 0},
}
