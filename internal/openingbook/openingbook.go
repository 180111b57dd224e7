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

// Package openingbook is a thin, external-collaborator style component: it
// reads a flat file of recorded games into a Zobrist-keyed move table that
// the search can probe at the root instead of computing a move. It is
// deliberately narrow - no SAN/PGN grammar lives here, only the coordinate
// ("simple") notation already understood by the move generator.
package openingbook

import (
	"bufio"
	"encoding/gob"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog()

// run move processing for each line concurrently - useful to disable while debugging
const parallel = true

// BookFormat identifies the on-disk notation of a book file.
type BookFormat uint8

// Simple is currently the only supported format: one game per line as a
// whitespace separated sequence of UCI coordinate moves (e2e4 e7e5 ...).
const (
	Simple BookFormat = iota
)

// FormatFromString maps a UCI option string onto a BookFormat.
var FormatFromString = map[string]BookFormat{
	"Simple": Simple,
}

// Successor pairs a played move with the Zobrist key of the position it leads to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry is one position in the book: how often it was reached and which
// moves were played from it.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is a Zobrist-keyed table of recorded opening lines.
type Book struct {
	mu          sync.Mutex
	entries     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool
}

// NewBook returns an empty, uninitialized Book.
func NewBook() *Book {
	return &Book{}
}

// Initialize loads bookFile (optionally resolved relative to bookPath) in the
// given format into the book. Repeated calls on an already initialized book
// are a no-op. When useCache is set, a gob-encoded sidecar is read instead of
// reparsing the source file, and rewritten after a fresh parse.
func (b *Book) Initialize(bookPath string, bookFile string, format BookFormat, useCache bool, recreateCache bool) error {
	if b.initialized {
		return nil
	}

	file := bookFile
	if file == "" {
		file = bookPath
	} else if bookPath != "" {
		if folder, err := util.ResolveFolder(bookPath); err == nil {
			file = folder + string(os.PathSeparator) + bookFile
		} else {
			file = bookPath + string(os.PathSeparator) + bookFile
		}
	}

	log.Infof("Initializing opening book from %s", file)
	start := time.Now()

	if useCache && !recreateCache {
		if ok, err := b.loadFromCache(file); err == nil && ok {
			log.Info(out.Sprintf("Loaded %d book entries from cache in %d ms", len(b.entries), time.Since(start).Milliseconds()))
			b.initialized = true
			return nil
		}
	}

	lines, err := b.readFile(file)
	if err != nil {
		return err
	}

	b.entries = make(map[uint64]BookEntry)
	root := position.NewPosition()
	b.rootEntry = uint64(root.ZobristKey())
	b.entries[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	b.process(lines, format)

	log.Info(out.Sprintf("Book contains %d entries (parsed in %d ms)", len(b.entries), time.Since(start).Milliseconds()))

	if useCache {
		if err := b.saveToCache(file); err != nil {
			log.Warningf("Could not write book cache for %s: %s", file, err)
		}
	}

	b.initialized = true
	return nil
}

// NumberOfEntries reports how many positions are recorded in the book.
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// GetEntry returns the entry for a Zobrist key, if present.
func (b *Book) GetEntry(key position.Key) (BookEntry, bool) {
	e, ok := b.entries[uint64(key)]
	return e, ok
}

// Reset discards all loaded entries so the book can be initialized again.
func (b *Book) Reset() {
	b.entries = nil
	b.rootEntry = 0
	b.initialized = false
}

func (b *Book) readFile(path string) (*[]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &lines, nil
}

func (b *Book) process(lines *[]string, format BookFormat) {
	switch format {
	case Simple:
		b.processSimple(lines)
	}
}

var regexUciMove = regexp.MustCompile(`[a-h][1-8][a-h][1-8][nbrq]?`)

func (b *Book) processSimple(lines *[]string) {
	if !parallel {
		for _, line := range *lines {
			b.processLine(line)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(*lines))
	for _, line := range *lines {
		go func(line string) {
			defer wg.Done()
			b.processLine(line)
		}(line)
	}
	wg.Wait()
}

func (b *Book) processLine(line string) {
	moves := regexUciMove.FindAllString(strings.ToLower(line), -1)
	if len(moves) == 0 {
		return
	}

	b.mu.Lock()
	root := b.entries[b.rootEntry]
	root.Counter++
	b.entries[b.rootEntry] = root
	b.mu.Unlock()

	pos := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, uci := range moves {
		move := mg.GetMoveFromUci(pos, uci)
		if !move.IsValid() {
			break
		}
		from := uint64(pos.ZobristKey())
		pos = pos.DoMove(move)
		to := uint64(pos.ZobristKey())
		b.addMove(from, to, uint32(move))
	}
}

func (b *Book) addMove(from, to uint64, move uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fromEntry, ok := b.entries[from]
	if !ok {
		return
	}

	toEntry, ok := b.entries[to]
	if ok {
		toEntry.Counter++
		b.entries[to] = toEntry
		return
	}

	b.entries[to] = BookEntry{ZobristKey: to, Counter: 1}
	fromEntry.Moves = append(fromEntry.Moves, Successor{Move: move, NextEntry: to})
	b.entries[from] = fromEntry
}

func (b *Book) loadFromCache(path string) (bool, error) {
	f, err := os.Open(path + ".cache")
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	entries := make(map[uint64]BookEntry)
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return false, err
	}
	b.entries = entries
	b.rootEntry = uint64(position.NewPosition().ZobristKey())
	return true, nil
}

func (b *Book) saveToCache(path string) error {
	f, err := os.Create(path + ".cache")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	b.mu.Lock()
	defer b.mu.Unlock()
	return gob.NewEncoder(f).Encode(b.entries)
}
