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

// Package moveslice implements the move list used throughout move
// generation and search: a slice of Move with deque style accessors,
// clearing that keeps the allocation, and a value based insertion sort
// for move ordering. Allocated once per use site with the maximum move
// count as capacity it never reallocates on the search path.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// MoveSlice is a slice of Move with list helpers.
type MoveSlice []Move

// NewMoveSlice returns an empty move list with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	ms := make(MoveSlice, 0, cap)
	return &ms
}

// Len returns the number of moves in the list.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the list.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the list.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics when the list is
// empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	last := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return last
}

// PopFront removes and returns the first move by re-slicing (the
// dropped slot is not reusable until the next Clear-from-scratch).
// Panics when the list is empty.
func (ms *MoveSlice) PopFront() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: PopFront() called on empty slice")
	}
	first := (*ms)[0]
	*ms = (*ms)[1:]
	return first
}

// Front returns the first move without removing it. Panics when the
// list is empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// Back returns the last move without removing it. Panics when the
// list is empty.
func (ms *MoveSlice) Back() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Back() called when empty")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i. Panics on an out of bounds index.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics on an out of bounds
// index.
func (ms *MoveSlice) Set(i int, move Move) {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	(*ms)[i] = move
}

// FilterCopy appends every move for which keep(index) is true to dest.
// The receiver is left untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, keep func(index int) bool) {
	for i, m := range *ms {
		if keep(i) {
			*dest = append(*dest, m)
		}
	}
}

// ForEach calls f with every index in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := range *ms {
		f(i)
	}
}

// Clear empties the list but keeps its capacity so the backing array
// can be reused without reallocating.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort orders the moves from highest to lowest encoded sort value
// (the high 16 bits of the move word). Insertion sort, stable, chosen
// because generated lists are short and already mostly ordered.
func (ms *MoveSlice) Sort() {
	for i := 1; i < len(*ms); i++ {
		entry := (*ms)[i]
		j := i
		for ; j > 0 && entry&0xFFFF0000 > (*ms)[j-1]&0xFFFF0000; j-- {
			(*ms)[j] = (*ms)[j-1]
		}
		(*ms)[j] = entry
	}
}

// String returns a debug listing with length and full move details.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns the moves space separated in UCI notation, the
// way a PV is printed in an info line.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
