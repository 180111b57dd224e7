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

package types

import "github.com/corvidchess/corvid/internal/logging"

var log = logging.GetLog()

const (
	// SqLength is the number of squares on the board.
	SqLength int = 64
	// MaxDepth bounds ply-indexed arrays (killer table, PV, search stack).
	MaxDepth = 128
	// MaxMoves bounds the move list buffer for a single position.
	MaxMoves = 512

	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB

	// GamePhaseMax is the non-pawn-material phase value of the starting
	// position, used to taper midgame/endgame evaluation.
	GamePhaseMax = 24
)

var initialized = false

// init runs the one-time precomputation every other function in this
// package assumes is already done: magic/leaper attack tables and the
// piece-square value tables.
func init() {
	if initialized {
		return
	}
	log.Debug("Initializing data types")
	initBb()
	initPosValues()
	initialized = true
}
