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
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Value is the positional/search score of a position or move, in
// centipawns from the perspective of the side to move.
type Value int16

const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueOne                Value = 1
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                      = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v falls within the representable search range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate-in-N score rather than
// a plain material/positional score.
func (v Value) IsCheckMateValue() bool {
	return util.Abs16(int16(v)) > int16(ValueCheckMateThreshold) && util.Abs16(int16(v)) <= int16(ValueCheckMate)
}

// String renders v the way a UCI "info score" token would: "cp <n>",
// "mate <n>", or "N/A" for the not-available sentinel.
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - int(util.Abs16(int16(v)))
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
