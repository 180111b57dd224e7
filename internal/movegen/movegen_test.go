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

package movegen

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/history"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var logTest *logging.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestMovegenString(t *testing.T) {
	mg := NewMoveGen()
	out.Println(mg.String())
}

func TestMovegenGeneratePawnMoves(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("1kr3nr/pp1pP1P1/2p1p3/3P1p2/1n1bP3/2P5/PP3PPP/RNBQKBNR w KQ -")
	moves := moveslice.MoveSlice{}

	mg.generatePawnMoves(pos, GenCap, &moves)
	assert.Equal(t, 9, moves.Len())

	moves.Clear()
	mg.generatePawnMoves(pos, GenNonCap, &moves)
	assert.Equal(t, 16, moves.Len())

	moves.Clear()
	mg.generatePawnMoves(pos, GenAll, &moves)
	assert.Equal(t, 25, moves.Len())
}

func TestMovegenGenerateCastling(t *testing.T) {
	mg := NewMoveGen()
	pos, _ := position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R w KQkq -")
	moves := moveslice.MoveSlice{}

	mg.generateCastling(pos, GenAll, &moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e1g1 e1c1", moves.StringUci())
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbppqppp/1pn2n2/1B2p3/1b2P3/N1PP1N2/PP1BQPPP/R3K2R b KQkq -")
	mg.generateCastling(pos, GenAll, &moves)
	assert.Equal(t, 2, moves.Len())
	assert.Equal(t, "e8g8 e8c8", moves.StringUci())
}

func TestMovegenGenerateKingMoves(t *testing.T) {
	mg := NewMoveGen()
	moves := moveslice.MoveSlice{}

	pos, _ := position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	mg.generateKingMoves(pos, GenAll, &moves)
	assert.Equal(t, 3, moves.Len())
	assert.Equal(t, "e1d2 e1d1 e1f1", moves.StringUci())
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateKingMoves(pos, GenAll, &moves)
	assert.Equal(t, 3, moves.Len())
	assert.Equal(t, "e8d7 e8d8 e8f8", moves.StringUci())
}

func TestMovegenGenerateMoves(t *testing.T) {
	mg := NewMoveGen()
	moves := moveslice.MoveSlice{}

	pos, _ := position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	mg.generateMoves(pos, GenCap, &moves)
	assert.Equal(t, 7, moves.Len())
	assert.Equal(t, "f3d2 f3e5 d7e5 d7b6 d7f6 b5c6 e2d2", moves.StringUci())
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateMoves(pos, GenNonCap, &moves)
	assert.Equal(t, 28, moves.Len())
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R b KQkq -")
	mg.generateMoves(pos, GenAll, &moves)
	assert.Equal(t, 34, moves.Len())
}

func TestOnDemand(t *testing.T) {

	mg := NewMoveGen()

	pos := position.NewPosition()

	var moves = moveslice.NewMoveSlice(100)
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}
	assert.Equal(t, 20, moves.Len())
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}
	assert.Equal(t, 40, moves.Len())
	moves.Clear()

	// 86
	pos, _ = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}
	assert.Equal(t, 86, moves.Len())
	moves.Clear()

	// 218
	pos, _ = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}
	assert.Equal(t, 218, moves.Len())
	moves.Clear()
}

func TestMovegenGeneratePseudoLegalMoves(t *testing.T) {

	mg := NewMoveGen()

	pos := position.NewPosition()
	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 20, len(*moves))
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 40, len(*moves))
	moves.Clear()

	// 86 moves
	pos, _ = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 86, len(*moves))
	moves.Clear()

	// 218 moves
	pos, _ = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 218, len(*moves))
	moves.Clear()
}

func TestMovegenGenerateLegalMoves(t *testing.T) {
	mg := NewMoveGen()

	pos := position.NewPosition()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 20, len(*moves))
	moves.Clear()

	pos, _ = position.NewPositionFen("r3k2r/pbpNqppp/1pn2n2/1B2p3/1b2P3/2PP1N2/PP1nQPPP/R3K2R w KQkq -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 38, len(*moves))
	moves.Clear()

	// 86 moves
	pos, _ = position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 83, len(*moves))
	moves.Clear()

	// 218 moves
	pos, _ = position.NewPositionFen("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	moves = mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 218, len(*moves))
	moves.Clear()
}

func TestHasLegalMoves(t *testing.T) {

	mg := NewMoveGen()

	// check mate position
	pos, _ := position.NewPositionFen("rn2kbnr/pbpp1ppp/8/1p2p1q1/4K3/3P4/PPP1PPPP/RNBQ1BNR w kq -")
	assert.False(t, mg.HasLegalMove(pos))
	assert.True(t, pos.HasCheck())

	// stale mate position
	pos, _ = position.NewPositionFen("7k/5K2/6Q1/8/8/8/8/8 b - -")
	assert.False(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())

	// only en passant
	pos, _ = position.NewPositionFen("8/8/8/8/5Pp1/6P1/7k/K3BQ2 b - f3")
	assert.True(t, mg.HasLegalMove(pos))
	assert.False(t, pos.HasCheck())
}

func TestMovegenGetMoveFromUci(t *testing.T) {

	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	mg := NewMoveGen()

	// invalid pattern
	move := mg.GetMoveFromUci(pos, "8888")
	assert.Equal(t, MoveNone, move)

	// valid move
	move = mg.GetMoveFromUci(pos, "b7b5")
	assert.Equal(t, CreateMove(SqB7, SqB5, Normal, PtNone), move)

	// invalid move
	move = mg.GetMoveFromUci(pos, "a7a5")
	assert.Equal(t, MoveNone, move)

	// valid promotion
	move = mg.GetMoveFromUci(pos, "a2a1Q")
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), move)

	// valid promotion (we allow lower case promotions)
	move = mg.GetMoveFromUci(pos, "a2a1q")
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), move)

	// valid castling
	move = mg.GetMoveFromUci(pos, "e8c8")
	assert.Equal(t, CreateMove(SqE8, SqC8, Castling, PtNone), move)

	// invalid castling
	move = mg.GetMoveFromUci(pos, "e8g8")
	assert.Equal(t, MoveNone, move)
}

func TestMovegenGetMoveFromSan(t *testing.T) {

	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	mg := NewMoveGen()

	// invalid pattern
	move := mg.GetMoveFromSan(pos, "33")
	assert.Equal(t, MoveNone, move)

	// valid move
	move = mg.GetMoveFromSan(pos, "b5")
	assert.Equal(t, CreateMove(SqB7, SqB5, Normal, PtNone), move)

	// invalid move
	move = mg.GetMoveFromSan(pos, "a5")
	assert.Equal(t, MoveNone, move)

	// valid promotion
	move = mg.GetMoveFromSan(pos, "a1Q")
	assert.Equal(t, CreateMove(SqA2, SqA1, Promotion, Queen), move)

	// valid castling
	move = mg.GetMoveFromSan(pos, "O-O-O")
	assert.Equal(t, CreateMove(SqE8, SqC8, Castling, PtNone), move)

	// invalid castling
	move = mg.GetMoveFromSan(pos, "O-O")
	assert.Equal(t, MoveNone, move)

	// ambiguous
	move = mg.GetMoveFromSan(pos, "Ne5")
	assert.Equal(t, MoveNone, move)
	move = mg.GetMoveFromSan(pos, "Nde5")
	assert.Equal(t, CreateMove(SqD7, SqE5, Normal, PtNone), move)
	move = mg.GetMoveFromSan(pos, "Nge5")
	assert.Equal(t, CreateMove(SqG6, SqE5, Normal, PtNone), move)
}

func TestOnDemandKillerPv(t *testing.T) {

	mg := NewMoveGen()
	var moves = moveslice.NewMoveSlice(100)

	// 86
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	mg.StoreKiller(mg.GetMoveFromUci(pos, "g6h4"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "b7b6"))
	mg.SetPvMove(mg.GetMoveFromUci(pos, "a2b1Q"))
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}
	assert.Equal(t, 86, moves.Len())
	// first move is the pv, moved to the very front
	assert.Equal(t, "a2b1q", (*moves)[0].StringUci())
	moves.Clear()
}

func TestPseudoLegalPVKiller(t *testing.T) {

	mg := NewMoveGen()

	// 86
	pos, _ := position.NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	mg.SetPvMove(mg.GetMoveFromUci(pos, "a2b1Q"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "g6h4"))
	mg.StoreKiller(mg.GetMoveFromUci(pos, "b7b6"))
	moves := mg.GeneratePseudoLegalMoves(pos, GenAll)
	assert.Equal(t, 86, moves.Len())
	assert.Equal(t, "a2b1q", (*moves)[0].StringUci())
}

func TestOnDemandHistoryOrdering(t *testing.T) {

	mg := NewMoveGen()
	h := history.NewHistory()

	// kiwipete - a position rich in quiet officer moves to order
	pos, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - ")

	// reward a specific quiet move heavily so it should rise above the
	// rest of the ordinary quiet moves (though still below killers/PV)
	favored := mg.GetMoveFromUci(pos, "e1f1")
	h.Update(White, favored.From(), favored.To(), 9000)
	mg.SetHistoryData(h)
	mg.SetHistoryContext(White, MoveNone)

	var moves = moveslice.NewMoveSlice(100)
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}

	favoredIdx := -1
	otherQuietIdx := -1
	for i, m := range *moves {
		if m.MoveOf() == favored.MoveOf() {
			favoredIdx = i
		} else if m.MoveOf() == mg.GetMoveFromUci(pos, "e1d1").MoveOf() {
			otherQuietIdx = i
		}
	}
	assert.NotEqual(t, -1, favoredIdx)
	assert.NotEqual(t, -1, otherQuietIdx)
	assert.Less(t, favoredIdx, otherQuietIdx)
}

func TestCounterMoveOrdering(t *testing.T) {

	mg := NewMoveGen()
	h := history.NewHistory()

	pos, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - ")

	opponentLastMove := CreateMove(SqG8, SqF6, Normal, PtNone)
	counter := mg.GetMoveFromUci(pos, "e1d1")
	h.CounterMoves[opponentLastMove.From()][opponentLastMove.To()] = counter.MoveOf()
	mg.SetHistoryData(h)
	mg.SetHistoryContext(White, opponentLastMove)

	var moves = moveslice.NewMoveSlice(100)
	for move := mg.GetNextMove(pos, GenAll, pos.HasCheck()); move != MoveNone; move = mg.GetNextMove(pos, GenAll, pos.HasCheck()) {
		moves.PushBack(move)
	}

	counterIdx := -1
	otherQuietIdx := -1
	for i, m := range *moves {
		if m.MoveOf() == counter.MoveOf() {
			counterIdx = i
		} else if m.MoveOf() == mg.GetMoveFromUci(pos, "e1f1").MoveOf() {
			otherQuietIdx = i
		}
	}
	assert.NotEqual(t, -1, counterIdx)
	assert.NotEqual(t, -1, otherQuietIdx)
	assert.Less(t, counterIdx, otherQuietIdx)
}
