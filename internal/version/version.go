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

// Package version holds the engine's build identity. ldflags may override
// these at link time (-X), e.g.:
//   go build -ldflags "-X .../internal/version.gitCommit=$(git rev-parse --short HEAD)"
package version

// set via -ldflags at build time; left at defaults for a plain "go build".
var (
	number    = "2.0"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// Version returns a human-readable version string of the form
// "vX.Y (commit, built at)".
func Version() string {
	return "v" + number + " (" + gitCommit + ", built " + buildTime + ")"
}

// Number returns only the semantic version number, e.g. "2.0".
func Number() string {
	return number
}
