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

// CastlingRights is a 4-bit set of the still available castlings, one
// bit per side and wing. The full set 0b1111 indexes the Zobrist
// castling key table, hence CastlingRightsLength of 16.
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0                                  // 0000
	CastlingWhiteOO      CastlingRights = 1                                  // 0001
	CastlingWhiteOOO                    = CastlingWhiteOO << 1               // 0010
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO // 0011
	CastlingBlackOO                     = CastlingWhiteOO << 2               // 0100
	CastlingBlackOOO                    = CastlingBlackOO << 1               // 1000
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO // 1100
	CastlingAny                         = CastlingWhite | CastlingBlack      // 1111
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether any right in rhs is still available.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the given rights from the set and returns the result.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add puts the given rights into the set and returns the result.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// String renders the set the way the FEN castling field does, e.g.
// "KQkq", or "-" when no castling is available.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var fen strings.Builder
	if cr.Has(CastlingWhiteOO) {
		fen.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		fen.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		fen.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		fen.WriteString("q")
	}
	return fen.String()
}
