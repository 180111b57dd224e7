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

package testsuite

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/util"
)

// FeatureTests runs every *.epd suite found in the given folder with
// the same per-position budget and returns an aggregated report. Used
// to judge the effect of search feature changes over a broad set of
// suites rather than a single file.
func FeatureTests(folder string, searchTime time.Duration, searchDepth int) string {

	entries, err := ioutil.ReadDir(folder)
	if err != nil {
		log.Fatal(err)
	}
	var suiteFiles []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".epd" {
			suiteFiles = append(suiteFiles, e.Name())
		}
	}
	sort.Strings(suiteFiles)

	config.Settings.Search.UseBook = false

	// run all suites, remembering each suite's tally
	results := make(map[string]*SuiteResult, len(suiteFiles))
	testCounts := make(map[string]int, len(suiteFiles))
	start := time.Now()
	for _, name := range suiteFiles {
		ts, err := NewTestSuite(folder+name, searchTime, searchDepth)
		if err != nil {
			continue
		}
		ts.RunTests()
		results[name] = ts.LastResult
		testCounts[name] = len(ts.Tests)
	}
	duration := time.Since(start)

	// aggregate and render the report
	total := SuiteResult{}
	report := strings.Builder{}
	report.WriteString(out.Sprintf("Feature Test Result Report\n"))
	report.WriteString(out.Sprintf("==============================================================================\n"))
	report.WriteString(out.Sprintf("Date                 : %s\n", time.Now()))
	report.WriteString(out.Sprintf("Test took            : %s\n", duration))
	report.WriteString(out.Sprintf("Test setup           : search time: %s max depth: %d\n", searchTime, searchDepth))
	report.WriteString(out.Sprintf("Number of testsuites : %d\n", len(results)))
	report.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	report.WriteString(out.Sprintf(" %-25s | %-12s | %-15s | %-10s | %-10s | %-10s | %-10s | %-6s | %s\n",
		"Test Suite", "Success Rate", "          Nodes", "Successful", "    Failed", "   Skipped", "       N/A", "  Tests", "File"))
	report.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	for _, name := range suiteFiles {
		r := results[name]
		if r == nil {
			continue
		}
		total.Nodes += r.Nodes
		total.Time += r.Time
		total.SuccessCounter += r.SuccessCounter
		total.FailedCounter += r.FailedCounter
		total.SkippedCounter += r.SkippedCounter
		total.NotTestedCounter += r.NotTestedCounter
		total.Counter += r.Counter
		successRate := 100 * float64(r.SuccessCounter) / float64(r.Counter)
		report.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
			name, successRate, r.Nodes, r.SuccessCounter, r.FailedCounter, r.SkippedCounter,
			r.NotTestedCounter, testCounts[name], folder+name))
	}
	successRate := 100 * float64(total.SuccessCounter) / float64(total.Counter)
	report.WriteString(out.Sprintf("-----------------------------------------------------------------------------------------------------------------------------------------------\n"))
	report.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
		"TOTAL", successRate, total.Nodes, total.SuccessCounter, total.FailedCounter,
		total.SkippedCounter, total.NotTestedCounter, total.Counter, ""))
	report.WriteString(out.Sprintf("===============================================================================================================================================\n"))
	report.WriteString(out.Sprintf("Number of tests      : %d\n", total.Counter))
	report.WriteString(out.Sprintf("Total Time: %s\n", total.Time))
	report.WriteString(out.Sprintf("Total NPS : %d\n", util.Nps(total.Nodes, total.Time)))
	report.WriteString(out.Sprintf("Configuration: %s\n", config.Settings.String()))

	return report.String()
}
