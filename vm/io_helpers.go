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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Prompt returns an InPort that reads integers interactively: it writes a
// short prompt to w, then reads one integer per line from r, re-prompting on
// anything that does not parse. Blank lines are skipped. EOF on r reports
// ErrInputExhausted. A nil w disables prompting and complaints.
func Prompt(r io.Reader, w io.Writer) InPort {
	s := bufio.NewScanner(r)
	return InFunc(func() (Cell, error) {
		for {
			if w != nil {
				fmt.Fprint(w, "in> ")
			}
			if !s.Scan() {
				if err := s.Err(); err != nil {
					return 0, errors.Wrap(err, "prompt")
				}
				return 0, ErrInputExhausted
			}
			t := strings.TrimSpace(s.Text())
			if t == "" {
				continue
			}
			v, err := strconv.ParseInt(t, 10, 64)
			if err != nil {
				if w != nil {
					fmt.Fprintf(w, "not an integer: %q\n", t)
				}
				continue
			}
			return Cell(v), nil
		}
	})
}

// Printer returns an OutPort that writes one integer per line to w.
func Printer(w io.Writer) OutPort {
	return OutFunc(func(v Cell) error {
		_, err := fmt.Fprintf(w, "%d\n", v)
		return errors.Wrap(err, "printer")
	})
}

// Queue returns an InPort producing the given values in order, then
// reporting ErrInputExhausted.
func Queue(values ...Cell) InPort {
	return InFunc(func() (Cell, error) {
		if len(values) == 0 {
			return 0, ErrInputExhausted
		}
		v := values[0]
		values = values[1:]
		return v, nil
	})
}

// Collect returns an OutPort appending every produced value to *dst.
func Collect(dst *[]Cell) OutPort {
	return OutFunc(func(v Cell) error {
		*dst = append(*dst, v)
		return nil
	})
}

// Inputs chains input ports: each OpIn is served by the first port in line,
// moving on to the next when the current one reports ErrInputExhausted.
// Exhaustion is reported only once every port is spent. Typical use is a
// Queue of preset values backed by an interactive Prompt.
func Inputs(ports ...InPort) InPort {
	return InFunc(func() (Cell, error) {
		for len(ports) > 0 {
			v, err := ports[0].In()
			if errors.Cause(err) == ErrInputExhausted {
				ports = ports[1:]
				continue
			}
			return v, err
		}
		return 0, ErrInputExhausted
	})
}
