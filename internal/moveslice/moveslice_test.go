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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

var (
	e2e4 = CreateMoveValue(SqE2, SqE4, Normal, PtNone, 111)
	d7d5 = CreateMoveValue(SqD7, SqD5, Normal, PtNone, 222)
	e4d5 = CreateMoveValue(SqE4, SqD5, Normal, PtNone, 333)
	d8d5 = CreateMoveValue(SqD8, SqD5, Normal, PtNone, 444)
	b1c3 = CreateMoveValue(SqB1, SqC3, Normal, PtNone, 555)
)

func TestNew(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())
}

func TestPushPop(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	assert.Equal(t, 3, ms.Len())
	assert.Equal(t, e2e4, ms.Front())
	assert.Equal(t, e4d5, ms.Back())

	m := ms.PopBack()
	assert.Equal(t, e4d5, m)
	assert.Equal(t, 2, ms.Len())

	m = ms.PopFront()
	assert.Equal(t, e2e4, m)
	assert.Equal(t, 1, ms.Len())

	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Panics(t, func() { ms.PopBack() })
}

func TestAtAndSet(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	assert.Equal(t, e2e4, ms.At(0))
	assert.Equal(t, d7d5, ms.At(1))

	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.At(0))
}

func TestSort(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	// pushed in ascending value order - sort brings the highest
	// value to the front
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)
	ms.Sort()
	assert.Equal(t, b1c3, ms.At(0))
	assert.Equal(t, d8d5, ms.At(1))
	assert.Equal(t, e2e4, ms.At(4))
}

func TestFilterCopy(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)

	dest := NewMoveSlice(MaxMoves)
	ms.FilterCopy(dest, func(i int) bool {
		return ms.At(i).To() == SqD5
	})
	assert.Equal(t, 3, dest.Len())
	// the source is untouched
	assert.Equal(t, 4, ms.Len())
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	assert.Equal(t, "e2e4 d7d5", ms.StringUci())
}
