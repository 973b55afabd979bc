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

package main

import (
	"fmt"
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// dumpImage writes the image as comma separated integers, the same format
// the VM loads.
func dumpImage(w io.Writer, m vm.Image) error {
	ew := ici.NewErrWriter(w)
	for k, v := range m {
		if k > 0 {
			ew.Write([]byte{','})
		}
		ew.WriteInt(int64(v))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}

// listImage writes a disassembly listing of the image. Data sections come
// out as nonsense instructions; the listing is a debugging aid, not a
// round-trippable format.
func listImage(w io.Writer, m vm.Image) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(m); {
		next, text := m.Disassemble(pc)
		fmt.Fprintf(ew, "% 6d\t%s\n", pc, text)
		pc = next
	}
	return ew.Err
}
