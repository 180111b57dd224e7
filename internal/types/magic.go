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

// "Fancy" magic bitboards for sliding piece attacks, following the
// scheme described at https://www.chessprogramming.org/Magic_Bitboards
// and popularized by Stockfish (magic search loop and seeds after
// Stockfish, see https://stockfishchess.org/about/ for its license).
// Instead of embedding known-good multipliers the magics are found by
// trial multiplication once at process start, which takes a few
// milliseconds.

// Magic bundles everything needed to answer one square's sliding
// attack query: the relevant blocker mask, the multiplier, the shift
// and the square's slice of the shared attack table.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index perfect-hashes an occupancy into the square's attack slice:
//
//	((occupied & mask) * magic) >> shift
func (m *Magic) index(occupied Bitboard) uint {
	return uint(((occupied & m.Mask) * m.Magic) >> m.Shift)
}

// initMagics fills the magics array and the shared attack table for
// one slider kind (rook or bishop directions). For each square it
// enumerates every subset of the relevant blocker mask, ray-traces the
// true attack set, and then searches multipliers until one maps every
// subset to a slot holding exactly that attack set.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {

	// sparse random seeds per rank which find magics quickly
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var subsets, attacks [4096]Bitboard
	var tried [4096]int
	attempt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {

		// board edges only matter when the slider stands on them, so
		// they are dropped from the relevant blocker mask
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) |
			((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		// the mask is the empty-board attack set minus the edges; the
		// number of its bits determines the index width and with it
		// the shift out of the 64-bit product
		m := &magics[sq]
		m.Mask = rayTrace(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// each square owns a slice of the shared table, starting where
		// the previous square's slice ended
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// enumerate all blocker subsets of the mask with the
		// Carry-Rippler trick and record their true attack sets
		blockers := BbZero
		size = 0
		for {
			subsets[size] = blockers
			attacks[size] = rayTrace(directions, sq, blockers)
			size++
			blockers = (blockers - m.Mask) & m.Mask
			if blockers == 0 {
				break
			}
		}

		rng := newMagicRng(seeds[sq.RankOf()])

		// search multipliers until one is collision free over all
		// subsets. tried[] marks slots written in the current attempt
		// so the attack slice need not be cleared between attempts.
		for i := 0; i < size; {
			// candidates whose product has a dense top byte never
			// work out, skip them right away
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			attempt++
			for i = 0; i < size; i++ {
				slot := m.index(subsets[i])
				if tried[slot] < attempt {
					tried[slot] = attempt
					m.Attacks[slot] = attacks[i]
				} else if m.Attacks[slot] != attacks[i] {
					break
				}
			}
		}
	}
}

// rayTrace walks the four directions from sq until the board edge or
// the first blocker (which is included in the attack set). Slow, only
// used during precomputation.
func rayTrace(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// magicRng is the xorshift64star generator used for the magic search
// (Sebastiano Vigna, public domain).
type magicRng struct {
	s uint64
}

func newMagicRng(seed uint64) *magicRng {
	return &magicRng{s: seed}
}

func (r *magicRng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns numbers with only about an eighth of their bits
// set, which is what a good magic multiplier looks like.
func (r *magicRng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
