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

import "fmt"

// Color is the side tag, White (0) or Black (1). The numeric values
// index the per-color arrays throughout the engine.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// per color lookup tables
var (
	signFactor    = [ColorLength]int{1, -1}
	pawnPushDir   = [ColorLength]Direction{North, South}
	promotionBb   = [ColorLength]Bitboard{Rank8_Bb, Rank1_Bb}
	doubleStepBb  = [ColorLength]Bitboard{Rank3_Bb, Rank6_Bb}
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < 2
}

// Direction returns +1 for White and -1 for Black, used to orient
// signed scores and rank arithmetic without branching.
func (c Color) Direction() int {
	return signFactor[c]
}

// MoveDirection returns the board direction a pawn of this color
// advances in, North or South.
func (c Color) MoveDirection() Direction {
	return pawnPushDir[c]
}

// PromotionRankBb returns the rank this color promotes on.
func (c Color) PromotionRankBb() Bitboard {
	return promotionBb[c]
}

// PawnDoubleRank returns the rank a pawn of this color passes over on
// its first single step, i.e. a pawn standing there after one push may
// still double step.
func (c Color) PawnDoubleRank() Bitboard {
	return doubleStepBb[c]
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("Invalid color %d", c))
	}
}
