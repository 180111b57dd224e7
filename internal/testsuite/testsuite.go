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

// Package testsuite runs EPD test suites against the search: files of
// positions annotated with an expected result, each searched under a
// time or depth budget and judged against that expectation. Of the
// EPD opcodes (https://www.chessprogramming.org/Extended_Position_Description)
// the three relevant for judging a search are implemented: bm (best
// move), am (avoid move) and dm (direct mate).
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// testType is the EPD opcode of a test.
type testType uint8

const (
	None testType = iota
	DM            // direct mate in n
	BM            // best move
	AM            // avoid move
)

func (tt testType) String() string {
	switch tt {
	case BM:
		return "bm"
	case AM:
		return "am"
	case DM:
		return "dm"
	}
	return "N/A"
}

// resultType is the outcome of one executed test.
type resultType uint8

const (
	NotTested resultType = iota
	Skipped
	Failed
	Success
)

func (rt resultType) String() string {
	switch rt {
	case NotTested:
		return "Not tested"
	case Skipped:
		return "Skipped"
	case Failed:
		return "Failed"
	case Success:
		return "Success"
	}
	return "N/A"
}

// Test is one EPD line turned into an executable test plus its result
// after RunTests.
type Test struct {
	id          string
	fen         string
	tType       testType
	targetMoves moveslice.MoveSlice
	mateDepth   int
	actual      Move
	value       Value
	rType       resultType
	line        string
	nps         uint64
}

// SuiteResult tallies the outcomes of one suite run.
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	SkippedCounter   int
	NotTestedCounter int
	Nodes            uint64
	Time             time.Duration
}

// TestSuite is a list of tests read from one EPD file together with
// the per-position search budget.
type TestSuite struct {
	Tests      []*Test
	Time       time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite reads the given EPD file into a TestSuite. Lines that
// do not parse into a valid test are skipped with a log message.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	out.Println("Preparing Test Suite", filePath)

	if log == nil {
		log = myLogging.GetLog()
	}

	// suites are verbose enough without debug logging, and must not
	// be distorted by book moves
	config.LogLevel = 2
	config.SearchLogLevel = 2
	config.Settings.Search.UseBook = false

	lines, err := readTestFile(filePath)
	if err != nil {
		return nil, err
	}

	ts := &TestSuite{
		Tests:    make([]*Test, 0, len(lines)),
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range lines {
		if test := getTest(line); test != nil {
			ts.Tests = append(ts.Tests, test)
		}
	}
	return ts, nil
}

// RunTests executes all tests of the suite, stores each result in its
// Test, the tally in LastResult, and prints a report.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Printf("No tests to run\n")
		return
	}

	startTime := time.Now()

	s := search.NewSearch()
	sl := search.NewSearchLimits()
	sl.MoveTime = ts.Time
	sl.Depth = ts.Depth
	if sl.MoveTime > 0 {
		sl.TimeControl = true
	}

	out.Printf("Running Test Suite\n")
	out.Printf("==================================================================\n")
	out.Printf("EPD File:    %s\n", ts.FilePath)
	out.Printf("SearchTime:  %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:    %d\n", ts.Depth)
	out.Printf("Date:        %s\n", time.Now().Local())
	out.Printf("No of tests: %d\n", len(ts.Tests))
	out.Println()

	tally := &SuiteResult{}
	for i, t := range ts.Tests {
		out.Printf("Test %d of %d\nTest: %s -- Target Result %s\n",
			i+1, len(ts.Tests), t.line, t.targetMoves.StringUci())
		testStart := time.Now()
		ts.runTest(s, sl, t)
		t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
		tally.Nodes += s.NodesVisited()
		out.Printf("Test finished in %d ms with result %s (%s) - nps: %d\n\n",
			time.Since(testStart).Milliseconds(), t.rType.String(), t.actual.StringUci(), t.nps)

		tally.Counter++
		switch t.rType {
		case NotTested:
			tally.NotTestedCounter++
		case Skipped:
			tally.SkippedCounter++
		case Failed:
			tally.FailedCounter++
		case Success:
			tally.SuccessCounter++
		}
	}
	tally.Time = time.Since(startTime)
	ts.LastResult = tally

	ts.printReport(tally)
}

// runTest searches one test position and judges the result against
// the test's expectation.
func (ts *TestSuite) runTest(s *search.Search, sl *search.Limits, t *Test) {
	s.NewGame()
	sl.Mate = 0

	p, _ := position.NewPositionFen(t.fen)

	if t.tType == DM {
		sl.Mate = t.mateDepth
	}

	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	t.actual = result.BestMove
	t.value = result.BestValue

	switch t.tType {
	case DM:
		// the search must report a mate of exactly the expected depth
		if result.BestValue.String() == fmt.Sprintf("mate %d", t.mateDepth) {
			t.rType = Success
		} else {
			t.rType = Failed
		}
	case BM:
		// the found move must be one of the expected moves
		t.rType = Failed
		for _, m := range t.targetMoves {
			if m == result.BestMove {
				t.rType = Success
				break
			}
		}
	case AM:
		// the found move must not be any of the avoid moves
		t.rType = Success
		for _, m := range t.targetMoves {
			if m == result.BestMove {
				t.rType = Failed
				break
			}
		}
	default:
		log.Warningf("Unknown Test type: %d", t.tType)
		t.rType = Skipped
	}

	if t.rType == Success {
		log.Infof("TestSet: id = '%s' SUCCESS", t.id)
	} else {
		log.Infof("TestSet: id = '%s' FAILED", t.id)
	}
}

// printReport lists every test with its outcome and the summary tally.
func (ts *TestSuite) printReport(tally *SuiteResult) {
	out.Printf("Results for Test Suite %s\n", ts.FilePath)
	out.Printf("------------------------------------------------------------------------------------------------------------------------------------\n")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:   %d\n", ts.Depth)
	out.Printf("Date:       %s\n", time.Now().Local())
	out.Printf("====================================================================================================================================\n")
	out.Printf(" %-4s | %-10s | %-8s | %-8s | %-15s | %s | %s\n", " Nr.", "Result", "Move", "Value", "Expected Result", "Fen", "Id")
	out.Printf("====================================================================================================================================\n")
	for i, t := range ts.Tests {
		expected := fmt.Sprintf("%s %s", t.tType.String(), t.targetMoves.StringUci())
		if t.tType == DM {
			expected = fmt.Sprintf("dm %d", t.mateDepth)
		}
		out.Printf(" %-4d | %-10s | %-8s | %-8s | %-15s | %s | %s\n",
			i+1, t.rType.String(), t.actual.StringUci(), t.value.String(), expected, t.fen, t.id)
	}
	out.Printf("====================================================================================================================================\n")
	out.Printf("Summary:\n")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %d ms\n", ts.Time.Milliseconds())
	out.Printf("MaxDepth:   %d\n", ts.Depth)
	out.Printf("Successful: %-3d (%d %%)\n", tally.SuccessCounter, 100*tally.SuccessCounter/tally.Counter)
	out.Printf("Failed:     %-3d (%d %%)\n", tally.FailedCounter, 100*tally.FailedCounter/tally.Counter)
	out.Printf("Skipped:    %-3d (%d %%)\n", tally.SkippedCounter, 100*tally.SkippedCounter/tally.Counter)
	out.Printf("Not tested: %-3d (%d %%)\n", tally.NotTestedCounter, 100*tally.NotTestedCounter/tally.Counter)
	out.Printf("Test time: %s\n", tally.Time)
	out.Printf("Configuration: %s\n", config.Settings.String())
}

var leadingComments = regexp.MustCompile(`^\s*#.*$`)
var trailingComments = regexp.MustCompile(`^(.*)#([^;]*)$`)
var epdPattern = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// getTest parses one EPD line into a Test. Returns nil for comments,
// empty lines and lines whose FEN, opcode or result do not validate.
func getTest(line string) *Test {
	line = strings.TrimSpace(line)
	line = leadingComments.ReplaceAllString(line, "")
	line = trailingComments.ReplaceAllString(line, "")
	if len(line) == 0 {
		return nil
	}

	parts := epdPattern.FindStringSubmatch(line)
	if parts == nil {
		log.Warningf("No EPD found in %s", line)
		return nil
	}

	// the FEN part must build a valid position
	p, err := position.NewPositionFen(parts[1])
	if err != nil {
		log.Warningf("fen part of EPD is invalid. %s", parts[1])
		return nil
	}

	var ttype testType
	switch parts[2] {
	case "dm":
		ttype = DM
	case "bm":
		ttype = BM
	case "am":
		ttype = AM
	default:
		log.Warningf("Opcode from EPD is invalid or not implemented %s", parts[2])
		return nil
	}

	// bm/am carry SAN moves which must be legal on the position,
	// dm carries the mate distance
	resultMoves := moveslice.NewMoveSlice(4)
	mateDepth := 0
	switch ttype {
	case BM, AM:
		mg := movegen.NewMoveGen()
		for _, san := range strings.Split(parts[3], " ") {
			san = strings.TrimSpace(san)
			san = strings.ReplaceAll(san, "!", "")
			san = strings.ReplaceAll(san, "?", "")
			if m := mg.GetMoveFromSan(p, san); m != MoveNone {
				resultMoves.PushBack(m)
			}
		}
		if resultMoves.Len() == 0 {
			log.Warningf("Result moves from EPD is/are invalid on this position %s", parts[3])
			return nil
		}
	case DM:
		mateDepth, err = strconv.Atoi(parts[3])
		if err != nil {
			log.Warningf("Direct mate depth from EPD is invalid %s", parts[3])
			return nil
		}
	}

	return &Test{
		id:          parts[5],
		fen:         parts[1],
		tType:       ttype,
		targetMoves: *resultMoves,
		mateDepth:   mateDepth,
		line:        line,
	}
}

// readTestFile returns all lines of the given file.
func readTestFile(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	filePath = filepath.Clean(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read; %s\n", filePath, err)
		return nil, err
	}
	defer func() {
		if err = f.Close(); err != nil {
			log.Errorf("File \"%s\" could not be closed: %s\n", filePath, err)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("Error while reading file \"%s\": %s\n", filePath, err)
		return nil, err
	}
	return lines, nil
}
