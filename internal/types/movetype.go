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

// MoveType distinguishes the four move shapes a packed Move can encode.
// It occupies 2 bits of the Move word (see move.go), so exactly these
// four values are representable.
type MoveType uint8

const (
	// Normal covers quiet moves, double pawn pushes and captures - any
	// move whose only side effect is moving the piece from-to and
	// optionally removing a piece already on the target square.
	Normal MoveType = iota
	// Promotion is a pawn move to the back rank; PromotionType() on the
	// Move carries which piece it promotes to.
	Promotion
	// EnPassant is a pawn capture of a pawn that just double-pushed past it.
	EnPassant
	// Castling is a king move of two squares with its rook moving in tandem.
	Castling
)

var moveTypeStrings = [4]string{"n", "p", "e", "c"}

// String returns a one-character tag for the move type.
func (t MoveType) String() string {
	if !t.IsValid() {
		return "-"
	}
	return moveTypeStrings[t]
}

// IsValid reports whether t is one of the four representable move types.
func (t MoveType) IsValid() bool {
	return t <= Castling
}
