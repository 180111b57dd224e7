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
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/assert"
)

// Move packs a chess move and its ordering score into one 32-bit word.
// The low 16 bits are the move proper, the high 16 bits carry the sort
// value the move generator attaches:
//
//	bits  0- 5  to square
//	bits  6-11  from square
//	bits 12-13  promotion piece type, stored as PieceType-Knight (0-3)
//	bits 14-15  MoveType
//	bits 16-31  sort value, shifted by -ValueNA to stay non negative
//
// The all-zero word MoveNone doubles as the null move and as the "no
// move" sentinel in move lists and the transposition table.
type Move uint32

const (
	// MoveNone empty non valid move
	MoveNone Move = 0
)

const (
	shiftFrom  uint = 6
	shiftProm  uint = 12
	shiftType  uint = 14
	shiftValue uint = 16

	maskSquare Move = 0x3F
	maskTo          = maskSquare
	maskFrom        = maskSquare << shiftFrom
	maskProm   Move = 3 << shiftProm
	maskType   Move = 3 << shiftType
	maskMove   Move = 0xFFFF              // low 16-bit - the move itself
	maskValue  Move = 0xFFFF << shiftValue // high 16-bit - the sort value
)

// CreateMove encodes from, to, move type and promotion piece type into
// a Move with no sort value.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	// the two promotion bits hold PieceType-Knight, so clamp anything
	// below Knight (callers pass PtNone for non promotions)
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<shiftFrom |
		Move(promType-Knight)<<shiftProm |
		Move(t)<<shiftType
}

// CreateMoveValue encodes a move like CreateMove and additionally
// stores the given sort value in the upper half.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(value-ValueNA)<<shiftValue |
		Move(to) |
		Move(from)<<shiftFrom |
		Move(promType-Knight)<<shiftProm |
		Move(t)<<shiftType
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m & maskFrom) >> shiftFrom)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square(m & maskTo)
}

// MoveType returns the MoveType tag of the move.
func (m Move) MoveType() MoveType {
	return MoveType((m & maskType) >> shiftType)
}

// PromotionType returns the promotion piece type. Only meaningful when
// MoveType() is Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&maskProm)>>shiftProm) + Knight
}

// MoveOf strips the sort value, leaving the bare 16-bit move.
func (m Move) MoveOf() Move {
	return m & maskMove
}

// ValueOf returns the sort value stored in the move.
func (m Move) ValueOf() Value {
	return Value((m&maskValue)>>shiftValue) + ValueNA
}

// SetValue stores a sort value in the upper half of the move and
// returns the result. MoveNone cannot carry a value: the all-zero word
// must stay all-zero to remain the sentinel.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "Invalid value value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	// shift the value into the non negative range before encoding -
	// ValueOf reverses the shift
	*m = *m&maskMove | Move(v-ValueNA)<<shiftValue
	return *m
}

// IsValid reports whether squares, promotion type, move type and value
// of the move decode to legal values. MoveNone is not valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// StringUci renders the move in UCI coordinate notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var uci strings.Builder
	uci.WriteString(m.From().String())
	uci.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		uci.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return uci.String()
}

// String returns a debug representation with type, promotion and value.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m.ValueOf(), m)
}

// StringBits returns the raw bit fields of the move for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) tType[%-0.2b](%s) value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), (m.PromotionType()).Char(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m)
}
