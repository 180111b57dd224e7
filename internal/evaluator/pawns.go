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

package evaluator

import (
	. "github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from the white point of view
	white := e.pawnStructure(White)
	black := e.pawnStructure(Black)
	tmpScore.MidGameValue = white.MidGameValue - black.MidGameValue
	tmpScore.EndGameValue = white.EndGameValue - black.EndGameValue

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// pawnStructure sums up the pawn structure terms for one color:
// isolated, doubled, passed, blocked, phalanx and supported pawns.
// Only depends on the pawn bitboards of both colors so results can
// be cached under the position's pawn zobrist key.
func (e *Evaluator) pawnStructure(c Color) Score {
	var score Score

	myPawns := e.position.PiecesBb(c, Pawn)
	theirPawns := e.position.PiecesBb(c.Flip(), Pawn)

	// squares attacked by my own pawns
	myPawnAttacks := ShiftBitboard(myPawns, c.MoveDirection()+West) |
		ShiftBitboard(myPawns, c.MoveDirection()+East)

	// pawns beside each other
	phalanx := myPawns & (ShiftBitboard(myPawns, West) | ShiftBitboard(myPawns, East))
	score.MidGameValue += int16(phalanx.PopCount()) * Settings.Eval.PawnPhalanxMidBonus
	score.EndGameValue += int16(phalanx.PopCount()) * Settings.Eval.PawnPhalanxEndBonus

	// pawns protected by own pawns
	supported := myPawns & myPawnAttacks
	score.MidGameValue += int16(supported.PopCount()) * Settings.Eval.PawnSupportedMidBonus
	score.EndGameValue += int16(supported.PopCount()) * Settings.Eval.PawnSupportedEndBonus

	pawns := myPawns
	for pawns != 0 {
		sq := pawns.PopLsb()

		// ranks in front of the pawn
		var front Bitboard
		if c == White {
			front = sq.RanksNorthMask()
		} else {
			front = sq.RanksSouthMask()
		}

		// isolated - no own pawn on a neighbouring file
		if sq.NeighbourFilesMask()&myPawns == 0 {
			score.MidGameValue += Settings.Eval.PawnIsolatedMidMalus
			score.EndGameValue += Settings.Eval.PawnIsolatedEndMalus
		}

		// doubled - own pawn in front on the same file
		if front&sq.FileOf().Bb()&myPawns != 0 {
			score.MidGameValue += Settings.Eval.PawnDoubledMidMalus
			score.EndGameValue += Settings.Eval.PawnDoubledEndMalus
		}

		// passed - no opponent pawn in front on the same or a neighbouring file
		if sq.PassedPawnMask(c)&theirPawns == 0 {
			score.MidGameValue += Settings.Eval.PawnPassedMidBonus
			score.EndGameValue += Settings.Eval.PawnPassedEndBonus
		}

		// blocked - can't advance as a pawn stands on the square in front
		if (myPawns | theirPawns).Has(sq.To(c.MoveDirection())) {
			score.MidGameValue += Settings.Eval.PawnBlockedMidMalus
			score.EndGameValue += Settings.Eval.PawnBlockedEndMalus
		}
	}

	return score
}
