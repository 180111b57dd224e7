// +build !debug

//
// Corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert lets call sites guard expensive invariant checks behind
// a compile-time constant so release builds pay nothing for them.
package assert

// DEBUG gates Assert. The debug-tagged build (assert_debug.go) flips this
// to true; the compiler then eliminates Assert's body entirely here.
const DEBUG = false

// Assert panics with the formatted message when test is false. Only has
// an effect when built with the "debug" build tag - see assert_debug.go.
// Call sites still wrap calls in "if assert.DEBUG { ... }" so the
// argument expressions themselves are skipped in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
