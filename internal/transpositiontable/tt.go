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

// Package transpositiontable implements the search's cache of previously
// visited nodes, keyed by the position's Zobrist hash. The table is a
// power-of-two sized array of 16-byte entries addressed by masking the
// hash. It is owned by a single searcher; Resize and Clear must not be
// called while a search is running.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536

	// hashfullSample is the number of leading slots inspected by Hashfull
	hashfullSample = 1_000
)

// TtTable is the transposition table: entry storage, the mask derived
// from its power-of-two capacity, and the current search generation.
// Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	age                int8
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable sized to at most the given number of
// MB. The usable entry count is rounded down to a power of two so the
// hash can be masked instead of divided.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize drops all entries and reallocates the table for the given size
// in MB. Must not be called during a search.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	// number of entries rounded down to a power of 2
	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	// a TT of size 0 can't hold any entries
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}

	// actual memory usage
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	// previous storage is left to the garbage collector
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// NewSearch starts a new table generation. Entries stored before this
// call keep their old age stamp and become preferred victims for
// replacement. The age counter wraps.
func (tt *TtTable) NewSearch() {
	tt.age++
}

// Age returns the current table generation.
func (tt *TtTable) Age() int8 {
	return tt.age
}

// GetEntry returns a pointer to the entry for the given key or nil when
// the slot holds a different position. Does not touch statistics.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		return e
	}
	return nil
}

// Probe returns a pointer to the entry for the given key or nil when
// the slot holds a different position. Counts hits and misses.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result. The value is encoded into the move word.
// Replacement policy: the slot is overwritten when it is empty, holds a
// different position, was written in an older generation, when the new
// depth is at least the stored depth, or when the new bound is exact.
// Otherwise the stored (deeper) result is kept, but a move is adopted
// into it when we bring one and the slot has none.
func (tt *TtTable) Put(key position.Key, move Move, depth int8, value Value, valueType ValueType, mateThreat bool) {

	// a TT of size 0 stores nothing
	if tt.maxNumberOfEntries == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	e := &tt.data[tt.hash(key)]
	valueMove := move.SetValue(value)

	empty := e.Key == 0
	switch {
	case empty:
		tt.numberOfEntries++
	case e.Key != key:
		tt.Stats.numberOfCollisions++
	default:
		tt.Stats.numberOfUpdates++
	}

	if empty ||
		e.Key != key ||
		e.Age != tt.age ||
		depth >= e.Depth ||
		valueType == EXACT {

		if !empty && e.Key != key {
			tt.Stats.numberOfOverwrites++
		}
		e.Key = key
		e.Move = valueMove
		e.Depth = depth
		e.Age = tt.age
		e.Type = valueType
		e.MateThreat = mateThreat
		return
	}

	// stored result is deeper and current - only adopt the move when
	// the slot has none, keeping the stored value untouched
	if m := move.MoveOf(); m != MoveNone && e.Move.MoveOf() == MoveNone {
		e.Move = m.SetValue(e.Move.ValueOf())
	}
}

// Clear drops all entries. Must not be called during a search.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull reports table usage in permill as per UCI. It is a coarse
// sample: only the first 1000 slots are inspected and only entries of
// the current generation count.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	sample := uint64(hashfullSample)
	if sample > tt.maxNumberOfEntries {
		sample = tt.maxNumberOfEntries
	}
	count := 0
	for i := uint64(0); i < sample; i++ {
		if tt.data[i].Key != 0 && tt.data[i].Age == tt.age {
			count++
		}
	}
	return count * hashfullSample / int(sample)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// hash maps a Zobrist key onto a slot index
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
