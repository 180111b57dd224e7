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

// Package util holds the small helpers shared by the engine packages:
// branch free integer math used on hot paths, nodes-per-second
// arithmetic, memory statistics for logging, path resolution and the
// atomic stop flag.
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Abs returns the absolute value of n without branching (n is assumed
// to fit 32 bits as only square/file indexes and small deltas pass
// through here).
func Abs(n int) int {
	mask := n >> 31
	return (n ^ mask) - mask
}

// Abs16 returns the absolute value of a 16-bit integer without
// branching, used on Value scores in the search.
func Abs16(n int16) int16 {
	mask := n >> 15
	return (n ^ mask) - mask
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Nps converts a node count and a duration into nodes per second. A
// nanosecond is added so a zero duration does not divide by zero.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// MemStat returns a one line summary of the process heap and GC state
// for the debug log.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection and reports memory before
// and after plus the time the collection took. Used after resizing
// the transposition table.
func GcWithStats() string {
	var report strings.Builder
	report.WriteString(fmt.Sprintf("Mem stats: %s ", MemStat()))
	start := time.Now()
	runtime.GC()
	report.WriteString(fmt.Sprintf("GC took: %d ms ", time.Since(start).Milliseconds()))
	report.WriteString(fmt.Sprintf("Mem stats: %s", MemStat()))
	return report.String()
}
