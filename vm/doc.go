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

// Package vm implements an Intcode VM: a fetch-decode-execute interpreter
// over a growable tape of 64-bit integers, with positional, immediate and
// relative operand addressing and a relative base register.
//
// A program is loaded with Parse or Load, wrapped in an Instance by New, and
// driven either to completion with Run or one instruction at a time with
// Step. Input and output are pluggable per instance: the package ships a
// blocking numeric Prompt and a line Printer for plain interactive use, and
// channel adapters (ChanIn, ChanOut) for programs that stream values to and
// from an external controller. A controller whose next input depends on
// earlier output runs the instance in its own goroutine and talks to it over
// the two channels; the unread side of an unbuffered channel is what
// suspends the engine, so ordering and backpressure need no extra machinery.
//
// Faults (invalid opcode, invalid addressing mode, negative address, write
// to an immediate operand, exhausted input) are terminal for the run and are
// returned from Run as wrapped typed errors; use errors.Cause to inspect
// them. A faulted instance refuses further steps.
//
// If you venture into hacking the VM code itself, be aware that the PC is
// not incremented in a single place: each opcode deals with the PC as
// needed.
package vm
