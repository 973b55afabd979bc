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

// Image encapsulates a VM's memory: a contiguous array of Cells indexed from
// address 0. The initial contents are the program tape; stores past the
// current extent grow the image on demand.
//
// Growth doubles the backing array so that programs relocating themselves far
// past the initial extent do not trigger one reallocation per store. Programs
// with very large but sparse address spaces would be better served by a map,
// none of the known ones are.
type Image []Cell

// At returns the value stored at addr. Addresses at or beyond the image
// extent read as 0; a negative address is a fault.
func (m Image) At(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, &NegativeAddressError{Addr: addr}
	}
	if addr >= Cell(len(m)) {
		return 0, nil
	}
	return m[addr], nil
}

// Store writes v at addr, growing the image as needed. New cells are zero
// filled. A negative address is a fault.
func (m *Image) Store(addr, v Cell) error {
	if addr < 0 {
		return &NegativeAddressError{Addr: addr}
	}
	if addr >= Cell(len(*m)) {
		m.grow(addr + 1)
	}
	(*m)[addr] = v
	return nil
}

func (m *Image) grow(size Cell) {
	n := Cell(2 * len(*m))
	if n < size {
		n = size
	}
	t := make(Image, n)
	copy(t, *m)
	*m = t
}

// Clone returns a copy of the image backed by its own array.
func (m Image) Clone() Image {
	t := make(Image, len(m))
	copy(t, m)
	return t
}

// String returns the image contents as comma separated decimal integers, the
// same format Parse accepts.
func (m Image) String() string {
	var b strings.Builder
	for k, v := range m {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
