/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// PieceType tags the six kinds of chess pieces. The encoding puts the
// sliders in the upper half: bit 0b0100 set (and the value < 7) means
// the piece slides.
type PieceType uint8

const (
	PtNone   PieceType = 0b0000
	King     PieceType = 0b0001
	Pawn     PieceType = 0b0010
	Knight   PieceType = 0b0011
	Bishop   PieceType = 0b0100
	Rook     PieceType = 0b0101
	Queen    PieceType = 0b0110
	PtLength PieceType = 0b0111
)

// per piece type lookup tables
var (
	// contribution to the game phase counter (startpos sums to GamePhaseMax)
	phaseWeight = [PtLength]int{0, 0, 0, 1, 1, 2, 4}
	// static material values in centipawns (king value only used in ordering)
	materialValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}
	longNames     = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}
	letterNames   = "-KPNBRQ"
)

// IsValid reports whether pt is one of the six piece types or PtNone.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// GamePhaseValue returns the piece type's weight in the game phase
// counter used to taper mid/endgame evaluation.
func (pt PieceType) GamePhaseValue() int {
	return phaseWeight[pt]
}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return materialValue[pt]
}

// String returns the English piece name.
func (pt PieceType) String() string {
	return longNames[pt]
}

// Char returns the piece letter as used in FEN and SAN (upper case).
func (pt PieceType) Char() string {
	return string(letterNames[pt])
}
