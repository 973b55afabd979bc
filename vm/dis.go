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
	"strconv"
	"strings"
)

// Disassemble decompiles the instruction at address pc and returns the
// position of the next instruction along with the decompiled text. Operands
// render as `5` (immediate), `[5]` (positional) or `[rb+5]` (relative); an
// unknown opcode or mode digit renders as `???` and advances one cell, so a
// listing can run over data sections without stopping.
//
// Disassembly is a diagnostic surface only: program text in and out of the
// VM stays strictly numeric.
func (m Image) Disassemble(pc int) (next int, text string) {
	instr, err := m.At(Cell(pc))
	if err != nil {
		return pc + 1, "???"
	}
	op, ok := opcodes[Opcode(instr)]
	if !ok {
		return pc + 1, "??? " + strconv.FormatInt(int64(instr), 10)
	}
	var b strings.Builder
	b.WriteString(op.name)
	for n := 0; n < op.arity; n++ {
		raw, _ := m.At(Cell(pc + n + 1))
		b.WriteByte(' ')
		mode, err := OperandMode(instr, n)
		if err != nil {
			b.WriteString("???")
			continue
		}
		switch mode {
		case Immediate:
			b.WriteString(strconv.FormatInt(int64(raw), 10))
		case Positional:
			b.WriteByte('[')
			b.WriteString(strconv.FormatInt(int64(raw), 10))
			b.WriteByte(']')
		case Relative:
			b.WriteString("[rb")
			if raw >= 0 {
				b.WriteByte('+')
			}
			b.WriteString(strconv.FormatInt(int64(raw), 10))
			b.WriteByte(']')
		}
	}
	return pc + op.arity + 1, b.String()
}
