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
	"math/bits"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Bitboard is a 64-bit word with one bit per board square, bit 0 being
// a1 and bit 63 being h8. All attack and mask lookups in this package
// operate on Bitboards; sliding attacks go through the magic tables in
// magic.go.
type Bitboard uint64

// Bb returns the Bitboard with only this square's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare returns b with the square's bit set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the square's bit in place and returns the result.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare returns b with the square's bit cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the square's bit in place and returns the result.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b &^= s.Bb()
	return *b
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard moves every bit of b one square into the given
// direction. Bits that would wrap around the a- or h-file are masked
// off, bits shifted over rank 8 or rank 1 fall out of the word.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the square of the least significant set bit, SqNone for
// the empty bitboard. This is the hot half of the set-bit iterator.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, SqNone for
// the empty bitboard.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes the least significant set bit from b and returns its
// square, SqNone when b was empty. b & (b-1) clears exactly that bit.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits (squares) in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the raw 64 bits msb first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders the bitboard as an 8x8 board diagram with rank 8
// on top.
func (b Bitboard) StringBoard() string {
	var board strings.Builder
	board.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				board.WriteString("| X ")
			} else {
				board.WriteString("|   ")
			}
		}
		board.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return board.String()
}

// StringGrouped returns the bits lsb first (a1 b1 ... g8 h8) in groups
// of eight, followed by the decimal value.
func (b Bitboard) StringGrouped() string {
	var bits strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			bits.WriteString(".")
		}
		if b&(BbOne<<i) != 0 {
			bits.WriteString("1")
		} else {
			bits.WriteString("0")
		}
	}
	bits.WriteString(fmt.Sprintf(" (%d)", b))
	return bits.String()
}

// FileDistance returns the number of files between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the number of ranks between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the king move distance between two squares
// (the larger of file and rank distance), 0 for equal or invalid
// squares.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// GetAttacksBb returns the attack set of a piece of type pt (not pawn)
// on sq with the given occupancy. Sliders are answered from the magic
// tables, knight and king from the precomputed leaper sets (occupied
// is ignored for those).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		panic("GetAttacksBb called with piece type Pawn is not supported")
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	}
	return pseudoAttacks[pt][sq]
}

// GetPseudoAttacks returns the empty-board attack set of the piece
// type on the square.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of the given color on sq
// attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns all files strictly west of the square.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns all files strictly east of the square.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file directly west of the square.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file directly east of the square.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns all ranks strictly north of the square.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns all ranks strictly south of the square.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files directly west and east of the
// square.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns the squares going out from sq in the given orientation
// up to the board edge, sq excluded.
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between two squares when
// they share a rank, file or diagonal, the empty bitboard otherwise.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and sqTo.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return intermediate[sq][sqTo]
}

// PassedPawnMask returns the squares on the pawn's own and the two
// neighbouring files in front of it. No opponent pawn in this mask
// means the pawn is passed.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the king side squares involved in
// castling for the color, the king's start square excluded.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the queen side squares involved in
// castling for the color, the king's start square excluded.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns the castling rights a move touching this
// square invalidates (king and rook home squares).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns all squares of the given color, e.g. to match
// bishops against pawns on their square color.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// Constant bitboards
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	// masks applied before shifting to keep bits from wrapping
	MsbMask   Bitboard = ^(BbOne << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	// the a1-h8 and h1-a8 diagonals and their parallels, derived by
	// shifting the two main diagonals east/north resp. west/north
	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// ////////////////////
// Precomputed tables
// ////////////////////

var (
	// single square bitboards and the square's full file/rank
	sqBb       [SqLength]Bitboard
	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	// full file and rank bitboards indexed by File/Rank
	fileBb [8]Bitboard
	rankBb [8]Bitboard

	// king move distance between two squares
	squareDistance [SqLength][SqLength]int

	// leaper attack sets; pawns are the only color dependent ones
	pawnAttacks   [ColorLength][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	// magic bitboard storage for the sliders
	rookTable    []Bitboard
	rookMagics   [SqLength]Magic
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	// file and rank masks relative to a square
	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	// rays per orientation and square, and the between-squares table
	// derived from them
	rays         [8][SqLength]Bitboard
	intermediate [SqLength][SqLength]Bitboard

	// front spans for passed pawn detection
	passedPawnMask [ColorLength][SqLength]Bitboard

	// castling helpers
	kingSideCastleMask  [ColorLength]Bitboard
	queenSideCastleMask [ColorLength]Bitboard
	castlingRights      [SqLength]CastlingRights

	// the 32 white and 32 black squares
	squaresBb [ColorLength]Bitboard
)

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// initBb fills all precomputed tables. Called once from the package
// init in types.go; order matters as later tables build on earlier
// ones.
func initBb() {
	squareBitboardsPreCompute()
	squareDistancePreCompute()
	neighbourMasksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	pseudoAttacksPreCompute()
	passedPawnMaskPreCompute()
	castleMasksPreCompute()
	squareColorsPreCompute()
	initMagicBitboards()
}

// single square, file and rank bitboards
func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << sq
		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileA_Bb << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * r)
	}
}

// king move distance table
func squareDistancePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			if s1 != s2 {
				squareDistance[s1][s2] = util.Max(
					FileDistance(s1.FileOf(), s2.FileOf()),
					RankDistance(s1.RankOf(), s2.RankOf()))
			}
		}
	}
}

// file and rank masks west/east/north/south of each square
func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for i := 0; i < 8; i++ {
			if i < f {
				filesWestMask[sq] |= FileA_Bb << i
			}
			if i > f {
				filesEastMask[sq] |= FileA_Bb << i
			}
			if i > r {
				ranksNorthMask[sq] |= Rank1_Bb << (8 * i)
			}
			if i < r {
				ranksSouthMask[sq] |= Rank1_Bb << (8 * i)
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[sq] = fileWestMask[sq] | fileEastMask[sq]
	}
}

// orientationSteps maps each ray orientation to its board direction.
var orientationSteps = [8]Direction{
	NW: Northwest,
	N:  North,
	NE: Northeast,
	E:  East,
	SE: Southeast,
	S:  South,
	SW: Southwest,
	W:  West,
}

// rays from each square to the board edge per orientation
func raysPreCompute() {
	for o := Orientation(0); o < 8; o++ {
		d := orientationSteps[o]
		for sq := SqA1; sq <= SqH8; sq++ {
			for s := sq.To(d); s.IsValid(); s = s.To(d) {
				rays[o][sq].PushSquare(s)
			}
		}
	}
}

// squares strictly between two aligned squares: the part of the ray
// from 'from' through 'to' that stops short of 'to'
func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			for o := Orientation(0); o < 8; o++ {
				if rays[o][from].Has(to) {
					intermediate[from][to] = rays[o][from] &^ rays[o][to] &^ sqBb[to]
				}
			}
		}
	}
}

// leaper attack sets and empty-board slider attacks
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
	knightSteps := []Direction{
		North + Northeast, East + Northeast, East + Southeast, South + Southeast,
		South + Southwest, West + Southwest, West + Northwest, North + Northwest}

	for sq := SqA1; sq <= SqH8; sq++ {
		// leapers: step and reject anything that wrapped around an
		// edge (a real leap never spans more than 2 king moves)
		for _, d := range kingSteps {
			if to := Square(int(sq) + int(d)); to.IsValid() && squareDistance[sq][to] < 3 {
				pseudoAttacks[King][sq] |= sqBb[to]
			}
		}
		for _, d := range knightSteps {
			if to := Square(int(sq) + int(d)); to.IsValid() && squareDistance[sq][to] < 3 {
				pseudoAttacks[Knight][sq] |= sqBb[to]
			}
		}
		for _, d := range []Direction{Northwest, Northeast} {
			if to := Square(int(sq) + int(d)); to.IsValid() && squareDistance[sq][to] < 3 {
				pawnAttacks[White][sq] |= sqBb[to]
			}
		}
		for _, d := range []Direction{Southwest, Southeast} {
			if to := Square(int(sq) + int(d)); to.IsValid() && squareDistance[sq][to] < 3 {
				pawnAttacks[Black][sq] |= sqBb[to]
			}
		}

		// sliders on an empty board are the union of their rays
		pseudoAttacks[Rook][sq] = rays[N][sq] | rays[E][sq] | rays[S][sq] | rays[W][sq]
		pseudoAttacks[Bishop][sq] = rays[NW][sq] | rays[NE][sq] | rays[SE][sq] | rays[SW][sq]
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}

// front spans (own plus neighbour files ahead of the pawn)
func passedPawnMaskPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		front := rays[N][sq]
		back := rays[S][sq]
		if sq.FileOf() > FileA {
			front |= rays[N][sq.To(West)] | sqBb[sq.To(West)]
			back |= rays[S][sq.To(West)] | sqBb[sq.To(West)]
		}
		if sq.FileOf() < FileH {
			front |= rays[N][sq.To(East)] | sqBb[sq.To(East)]
			back |= rays[S][sq.To(East)] | sqBb[sq.To(East)]
		}
		passedPawnMask[White][sq] = front &^ sqToRankBb[sq]
		passedPawnMask[Black][sq] = back &^ sqToRankBb[sq]
	}
}

// castling path masks and the rights invalidated per square
func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

// the white and black square masks
func squareColorsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= sqBb[sq]
		} else {
			squaresBb[White] |= sqBb[sq]
		}
	}
}

// allocate the shared slider attack tables and run the magic search
// (table sizes are the summed per-square subset counts)
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}
