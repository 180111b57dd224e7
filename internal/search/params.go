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

// Pre-computed search parameters which are too involved to live in the
// search configuration: the late move reduction table and the late move
// pruning move counts.
package search

import (
	"math"

	. "github.com/corvidchess/corvid/internal/types"
)

// lmrTable[depth][movesSearched] is the base late move reduction.
// Filled once at startup from 0.75 + ln(depth)*ln(moves)/2.25.
var lmrTable [32][64]int

func init() {
	for d := 1; d < 32; d++ {
		for m := 1; m < 64; m++ {
			lmrTable[d][m] = int(0.75 + math.Log(float64(d))*math.Log(float64(m))/2.25)
		}
	}
}

// LmrReduction returns the late move reduction for the remaining depth
// and the number of moves already searched in the node. Non PV nodes
// are reduced one ply more.
func LmrReduction(depth int, movesSearched int, isPV bool) int {
	if depth < 1 || movesSearched < 1 {
		return 0
	}
	if depth > 31 {
		depth = 31
	}
	if movesSearched > 63 {
		movesSearched = 63
	}
	r := lmrTable[depth][movesSearched]
	if !isPV {
		r++
	}
	return r
}

// lmpCounts[depth] is the number of moves searched after which late move
// pruning may drop the remaining quiet moves of a node.
var lmpCounts [16]int

func init() {
	for d := 1; d < 16; d++ {
		lmpCounts[d] = 6 + int(math.Pow(float64(d)+0.5, 1.3))
	}
}

// LmpMovesSearched returns the move count threshold for late move
// pruning at the given remaining depth.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmpCounts[15]
	}
	return lmpCounts[depth]
}

// futility margins per remaining depth for forward pruning of quiet
// moves far below alpha
var fp = [7]Value{0, 100, 200, 300, 500, 900, 1200}
