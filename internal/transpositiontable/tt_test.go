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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestNew(t *testing.T) {

	tt := NewTtTable(2)
	assert.Equal(t, uint64(131_072), tt.maxNumberOfEntries)
	assert.Equal(t, 131_072, cap(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
	assert.Equal(t, 4_194_304, cap(tt.data))

	tt = NewTtTable(100)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
	assert.Equal(t, 4_194_304, cap(tt.data))

	tt = NewTtTable(4_096)
	assert.Equal(t, uint64(268_435_456), tt.maxNumberOfEntries)
	assert.Equal(t, 268_435_456, cap(tt.data))
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(101), EXACT, false)

	// unaltered entry via GetEntry
	e := tt.GetEntry(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, pos.ZobristKey(), e.Key)
	assert.Equal(t, move, e.Move.MoveOf())
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, EXACT, e.Type)
	assert.Equal(t, tt.Age(), e.Age)

	// probing does not alter the entry
	e = tt.Probe(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, tt.Age(), e.Age)
	assert.EqualValues(t, 1, tt.Stats.numberOfHits)

	// not in tt
	pos = pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
	assert.EqualValues(t, 1, tt.Stats.numberOfMisses)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(101), EXACT, false)
	assert.EqualValues(t, 1, tt.numberOfEntries)
	assert.NotNil(t, tt.Probe(pos.ZobristKey()))

	tt.Clear()

	// entry is gone
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
	assert.EqualValues(t, 0, tt.numberOfEntries)
}

func TestGenerations(t *testing.T) {
	tt := NewTtTable(2)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(111, move, 6, Value(100), ALPHA, false)
	firstAge := tt.GetEntry(111).Age

	// a new search bumps the generation - existing entries keep their stamp
	tt.NewSearch()
	assert.NotEqual(t, tt.Age(), firstAge)
	assert.Equal(t, firstAge, tt.GetEntry(111).Age)

	// an aged entry is replaced even by a shallower result
	tt.Put(111, move, 2, Value(150), ALPHA, false)
	e := tt.GetEntry(111)
	assert.EqualValues(t, 2, e.Depth)
	assert.EqualValues(t, 150, e.Move.ValueOf())
	assert.Equal(t, tt.Age(), e.Age)
}

func TestPutReplacementPolicy(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	move2 := CreateMove(SqD2, SqD4, Normal, PtNone)

	// new entry
	tt.Put(111, move, 4, Value(111), ALPHA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key)
	assert.EqualValues(t, move, e.Move.MoveOf())
	assert.EqualValues(t, 111, e.Move.ValueOf())
	assert.EqualValues(t, 4, e.Depth)
	assert.EqualValues(t, ALPHA, e.Type)
	assert.EqualValues(t, false, e.MateThreat)

	// same key, same or higher depth - replaced
	tt.Put(111, move, 5, Value(112), BETA, true)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	e = tt.Probe(111)
	assert.EqualValues(t, 112, e.Move.ValueOf())
	assert.EqualValues(t, 5, e.Depth)
	assert.EqualValues(t, BETA, e.Type)
	assert.EqualValues(t, true, e.MateThreat)

	// same key, lower depth, non exact - stored result kept
	tt.Put(111, MoveNone, 2, Value(99), ALPHA, false)
	e = tt.Probe(111)
	assert.EqualValues(t, 112, e.Move.ValueOf())
	assert.EqualValues(t, 5, e.Depth)
	assert.EqualValues(t, BETA, e.Type)

	// ... but an exact bound always replaces
	tt.Put(111, move2, 2, Value(77), EXACT, false)
	e = tt.Probe(111)
	assert.EqualValues(t, move2, e.Move.MoveOf())
	assert.EqualValues(t, 77, e.Move.ValueOf())
	assert.EqualValues(t, 2, e.Depth)
	assert.EqualValues(t, EXACT, e.Type)

	// a different position hashing to the same slot always replaces
	collisionKey := position.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 6, Value(113), BETA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key)
	assert.EqualValues(t, 6, e.Depth)
}

func TestPutMovePatch(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	// store a deep moveless bound, then a shallow result with a move:
	// the stored depth/bound stay, the move is adopted
	// (a MoveNone store can not carry a value - see Move.SetValue)
	tt.Put(222, MoveNone, 7, Value(55), BETA, false)
	e := tt.Probe(222)
	assert.EqualValues(t, MoveNone, e.Move.MoveOf())

	tt.Put(222, move, 3, Value(44), ALPHA, false)
	e = tt.Probe(222)
	assert.EqualValues(t, move, e.Move.MoveOf())
	assert.EqualValues(t, ValueNA, e.Move.ValueOf())
	assert.EqualValues(t, 7, e.Depth)
	assert.EqualValues(t, BETA, e.Type)
}

func TestHashfullSample(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())

	// fill the sampled leading slots with current generation entries
	for i := 0; i < 500; i++ {
		tt.data[i].Key = position.Key(i + 1)
		tt.data[i].Age = tt.Age()
	}
	assert.Equal(t, 500, tt.Hashfull())

	// entries of an older generation do not count
	tt.NewSearch()
	assert.Equal(t, 0, tt.Hashfull())
}
