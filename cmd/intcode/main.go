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
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// cellList accumulates integer flag values, comma separated within one
// occurrence, across repeated occurrences.
type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(v))
	}
	return nil
}
func (l *cellList) Get() interface{} { return *l }

var (
	debug   bool
	dump    bool
	dis     bool
	count   bool
	noraw   bool
	presets cellList
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		instr, _ := i.Mem.At(vm.Cell(i.PC))
		_, text := i.Mem.Disassemble(i.PC)
		fmt.Fprintf(os.Stderr, "PC: %d (%d: %s), RelBase: %d, Status: %v\n",
			i.PC, instr, text, i.RelBase, i.Status())
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	flag.Var(&presets, "in", "comma separated `values` consumed before prompting (can be specified multiple times)")
	flag.BoolVar(&dump, "dump", false, "dump final memory to stdout upon clean exit")
	flag.BoolVar(&dis, "dis", false, "print a disassembly listing of the program and exit")
	flag.BoolVar(&count, "count", false, "report executed instruction count on stderr")
	flag.BoolVar(&noraw, "noraw", false, "use a plain prompt instead of line editing")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] program.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := vm.Load(flag.Arg(0))
	if err != nil {
		atExit(nil, err)
	}

	if dis {
		atExit(nil, listImage(os.Stdout, img))
		return
	}

	stdout := bufio.NewWriter(os.Stdout)

	// preset inputs first, then the interactive prompt
	var prompt vm.InPort
	if !noraw {
		if p, cl, err := readlinePrompt(); err == nil {
			prompt = p
			defer cl.Close()
		}
	}
	if prompt == nil {
		// flush pending program output before the prompt shows
		prompt = vm.Prompt(os.Stdin, flushWriter{stdout})
	}

	i, err = vm.New(img,
		vm.Input(vm.Inputs(vm.Queue(presets...), prompt)),
		vm.Output(vm.Printer(stdout)))
	if err != nil {
		atExit(nil, err)
	}

	err = i.Run()
	stdout.Flush()
	// EOF at the interactive prompt is a normal exit condition, like closing
	// stdin on any line-oriented tool
	if errors.Cause(err) == vm.ErrInputExhausted {
		err = nil
	}
	if err == nil && dump {
		err = dumpImage(os.Stdout, i.Mem)
	}
	if count {
		fmt.Fprintf(os.Stderr, "executed %d instructions\n", i.InstructionCount())
	}
	atExit(i, err)
}

// flushWriter flushes after every write so that prompts show up immediately
// along with any pending buffered program output.
type flushWriter struct {
	w *bufio.Writer
}

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err == nil {
		err = f.w.Flush()
	}
	return n, err
}
