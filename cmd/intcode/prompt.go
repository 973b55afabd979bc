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
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// readlinePrompt returns an input port backed by a line-editing prompt.
// EOF (CTRL-D) reports input exhaustion, CTRL-C aborts the run.
func readlinePrompt() (vm.InPort, io.Closer, error) {
	rl, err := readline.New("in> ")
	if err != nil {
		return nil, nil, errors.Wrap(err, "readline")
	}
	p := vm.InFunc(func() (vm.Cell, error) {
		for {
			line, err := rl.Readline()
			switch err {
			case nil:
			case readline.ErrInterrupt:
				return 0, vm.ErrAborted
			case io.EOF:
				return 0, vm.ErrInputExhausted
			default:
				return 0, errors.Wrap(err, "readline")
			}
			t := strings.TrimSpace(line)
			if t == "" {
				continue
			}
			v, err := strconv.ParseInt(t, 10, 64)
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "not an integer: %q\n", t)
				continue
			}
			return vm.Cell(v), nil
		}
	})
	return p, rl, nil
}
