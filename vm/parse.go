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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a program from r: signed decimal integers separated by commas,
// optionally surrounded by whitespace. No mnemonics, no comments.
func Parse(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return nil, errors.New("Parse: empty program")
	}
	fields := strings.Split(s, ",")
	m := make(Image, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Errorf("Parse: bad integer %q at position %d", strings.TrimSpace(f), k)
		}
		m[k] = Cell(v)
	}
	return m, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	m, err := Parse(f)
	return m, errors.Wrap(err, "Load")
}
