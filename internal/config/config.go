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

// Package config is the engine's global configuration: logging levels,
// search feature toggles and evaluation weights. Defaults are set in
// the per-section init functions, may be overridden by a TOML file
// (Setup) and finally by command line flags or UCI options which write
// into the Settings struct directly.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/internal/util"
)

var (
	// ConfFile is the path of the TOML configuration file Setup reads,
	// relative to the working directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the numeric level of the standard logger. See
	// LogLevels in logconfig.go for the mapping from names.
	LogLevel = 5

	// SearchLogLevel is the numeric level of the search logger.
	SearchLogLevel = 5

	// TestLogLevel is the numeric level of the test logger.
	TestLogLevel = 5

	// Settings holds all configurable values. The zero value is
	// overwritten with defaults by the section init functions before
	// Setup ever runs.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup overlays the defaults with the configuration file (when one is
// found) and applies the log level names. Repeated calls are no-ops so
// tests may call it freely.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String lists every search and eval setting with its current value,
// via reflection so new fields show up without touching this code.
func (settings *conf) String() string {
	var sb strings.Builder
	writeSection := func(title string, section interface{}) {
		sb.WriteString(title)
		v := reflect.ValueOf(section).Elem()
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n",
				i, v.Type().Field(i).Name, f.Type(), f.Interface()))
		}
	}
	writeSection("Search Config:\n", &settings.Search)
	writeSection("\nEvaluation Config:\n", &settings.Eval)
	return sb.String()
}
