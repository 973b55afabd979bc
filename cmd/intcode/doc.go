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

// Command intcode runs an Intcode program with the reference I/O adapters:
// input values come from the -in flag first, then from an interactive
// numeric prompt; output values print one per line on stdout.
//
// Usage:
//
//	intcode [flags] program.txt
//
// The program file contains signed decimal integers separated by commas.
//
// Flags:
//
//	-in values
//		comma separated input values consumed before prompting; may be
//		repeated, values queue in order of appearance
//	-dump
//		on clean halt, dump the final memory to stdout as comma separated
//		integers
//	-dis
//		print a disassembly listing of the program and exit without
//		running it
//	-count
//		report the executed instruction count on stderr
//	-noraw
//		use a plain scanner prompt instead of line editing (for pipes and
//		dumb terminals)
//	-debug
//		print error stack traces and the VM state (PC, faulting
//		instruction, relative base) on faults
//
// Pressing CTRL-D at the prompt ends the session; a program still waiting
// for input then exits quietly, like any line-oriented tool on a closed
// stdin. CTRL-C aborts the run.
package main
