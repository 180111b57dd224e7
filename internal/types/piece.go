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

import (
	"strings"
)

// Piece packs color and piece type into one small integer: bit 3 is the
// color, the low three bits are the PieceType. The resulting values
// index the engine's 16-wide per-piece arrays directly (slots 7, 8 and
// 15 stay unused).
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// fen letters, board letters (pawns as O and *) and figurines, indexed
// by the packed piece value
var (
	fenLetters   = " KPNBRQ- kpnbrq-"
	boardLetters = " KONBRQ- k*nbrq-"
	figurines    = []string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 | int(pt))
}

// PieceFromChar maps a single FEN piece letter (case encodes the color)
// onto a Piece. Anything that is not exactly one valid letter returns
// PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	i := strings.Index(fenLetters, s)
	if i < 0 {
		return PieceNone
	}
	return Piece(i)
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return materialValue[p.TypeOf()]
}

// String returns the piece's FEN letter.
func (p Piece) String() string {
	return string(fenLetters[p])
}

// Char returns the board diagram letter for the piece. White pawns
// print as O, black pawns as * so they are distinguishable in the
// ASCII board output.
func (p Piece) Char() string {
	return string(boardLetters[p])
}

// UniChar returns the unicode chess figurine for the piece.
func (p Piece) UniChar() string {
	return figurines[p]
}
