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

// Package attacks computes and caches the complete attack picture of
// one position: which squares every piece attacks or defends, which
// pieces bear on a given square, and per color mobility. The
// evaluation uses it for its attack based terms; the free functions
// AttacksTo and RevealedAttacks also serve SEE's exchange simulation.
package attacks

import (
	"github.com/op/go-logging"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Attacks caches all attacks and defends of one position, keyed by
// the position's Zobrist key so a repeated Compute on the same
// position is free. "Attacks" here includes defends of own pieces;
// intersect with the occupancy bitboards to separate the two.
type Attacks struct {
	log *logging.Logger

	// position key the cache was computed for
	Zobrist position.Key
	// attacked squares per color and origin square
	From [ColorLength][SqLength]Bitboard
	// attacking origin squares per color and target square
	To [ColorLength][SqLength]Bitboard
	// union of all attacked squares per color
	All [ColorLength]Bitboard
	// union of attacked squares per color and piece type
	Piece [ColorLength][PtLength]Bitboard
	// number of reachable (not own occupied) squares per color
	Mobility [ColorLength]int
	// squares attacked by pawns, and attacked by two pawns, per color
	Pawns       [ColorLength]Bitboard
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks creates an empty attack cache.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog(),
	}
}

// Clear resets the cache in place. Considerably cheaper than
// allocating a fresh instance as the arrays are reused.
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := 0; sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	for c := White; c <= Black; c++ {
		a.All[c] = BbZero
		a.Mobility[c] = 0
		a.Pawns[c] = BbZero
		a.PawnsDouble[c] = BbZero
	}
}

// Compute fills the cache for the given position. A position already
// cached (same Zobrist key) is not recomputed.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		a.log.Debugf("attacks compute: position was already computed")
		return
	}
	a.Zobrist = p.ZobristKey()
	a.pieceAttacks(p)
	a.pawnAttacks(p)
}

// pieceAttacks collects attacks of all non pawn pieces including the
// kings.
func (a *Attacks) pieceAttacks(p *position.Position) {
	occupied := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		ownPieces := p.OccupiedBb(c)
		for _, pt := range []PieceType{King, Knight, Bishop, Rook, Queen} {
			for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
				from := pieces.PopLsb()
				attacks := GetAttacksBb(pt, from, occupied)

				a.From[c][from] = attacks
				a.Piece[c][pt] |= attacks
				a.All[c] |= attacks
				a.Mobility[c] += (attacks &^ ownPieces).PopCount()

				// invert: register the origin on every target square
				for targets := attacks; targets != BbZero; {
					a.To[c][targets.PopLsb()].PushSquare(from)
				}
			}
		}
	}
}

// pawnAttacks fills the single and double pawn attack boards by
// shifting the pawn bitboards once into each capture direction.
func (a *Attacks) pawnAttacks(p *position.Position) {
	for c := White; c <= Black; c++ {
		pawns := p.PiecesBb(c, Pawn)
		west := ShiftBitboard(pawns, c.MoveDirection()+West)
		east := ShiftBitboard(pawns, c.MoveDirection()+East)
		a.Pawns[c] = west | east
		a.PawnsDouble[c] = west & east
	}
}

// AttacksTo returns all pieces of one color attacking the given
// square, including a pawn that could capture en passant onto it. It
// works in reverse: attacks are generated from the target square and
// intersected with the matching piece bitboards.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	// en passant: the attacked square is the captured pawn's square,
	// the attackers are pawns beside it
	epAttacks := BbZero
	if epSquare := p.GetEnPassantSquare(); epSquare != SqNone && epSquare == square {
		pawnSquare := epSquare.To(color.Flip().MoveDirection())
		attackers := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(color, Pawn)
		if attackers != BbZero {
			epAttacks |= pawnSquare.Bb()
		}
	}

	occupied := p.OccupiedAll()

	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupied) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupied) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen))) |
		epAttacks
}

// RevealedAttacks returns slider attacks onto the square that become
// visible only under the given reduced occupancy, i.e. x-rays exposed
// after a piece was removed. Only sliders can be revealed this way.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
