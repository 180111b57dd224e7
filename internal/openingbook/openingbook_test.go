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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func writeBookFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadingNonExistingFile(t *testing.T) {
	b := NewBook()
	_, err := b.readFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInitializeEmptyFile(t *testing.T) {
	path := writeBookFile(t, "\n\n")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.Equal(t, 1, book.NumberOfEntries())

	start := position.NewPosition()
	entry, found := book.GetEntry(start.ZobristKey())
	assert.True(t, found)
	assert.EqualValues(t, start.ZobristKey(), entry.ZobristKey)

	_, found = book.GetEntry(position.Key(1234))
	assert.False(t, found)
}

func TestInitializeTwiceIsNoOp(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5\n")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	n := book.NumberOfEntries()

	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.Equal(t, n, book.NumberOfEntries())
}

func TestProcessingSimpleLines(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5 g1f3\ne2e4 c7c5\nd2d4 d7d5\n")

	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))

	start := position.NewPosition()
	rootEntry, found := book.GetEntry(start.ZobristKey())
	assert.True(t, found)
	assert.EqualValues(t, start.ZobristKey(), rootEntry.ZobristKey)
	assert.Equal(t, 3, rootEntry.Counter)
	// two distinct first moves recorded: e2e4 and d2d4
	assert.Len(t, rootEntry.Moves, 2)

	pos := position.NewPosition()
	pos = pos.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	// e7e5 and c7c5 both recorded as replies to 1.e4
	assert.Len(t, entry.Moves, 2)
}

func TestReset(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5\n")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "", Simple, false, false))
	assert.True(t, book.NumberOfEntries() > 0)

	book.Reset()
	assert.Equal(t, 0, book.NumberOfEntries())
}

func TestCacheRoundTrip(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5 g1f3 b8c6\n")

	first := NewBook()
	assert.NoError(t, first.Initialize(path, "", Simple, true, true))
	n := first.NumberOfEntries()

	cached := NewBook()
	assert.NoError(t, cached.Initialize(path, "", Simple, true, false))
	assert.Equal(t, n, cached.NumberOfEntries())
}
