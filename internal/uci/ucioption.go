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

package uci

import (
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/config"
)

// UCI options. Besides the standard Hash and Ponder options the engine
// exposes its search and eval feature toggles so they can be flipped
// from a running GUI without a rebuild. Most of them are plain check
// boxes writing straight into the config Settings, built by
// boolOption; only the buttons and the Hash spin need custom handlers.

// uciOptionType enumerates the option types of the UCI protocol.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Combo
	Button
	String
)

// optionHandler is called when a "setoption" command changed the
// option's CurrentValue.
type optionHandler func(*UciHandler, *uciOption)

// uciOption is one entry of the engine's option table.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap holds all options keyed by their UCI name.
type optionMap map[string]*uciOption

var uciOptions optionMap

// listing order for the "uci" response
var sortOrderUciOptions []string

// boolOption builds a check box option which writes its value into
// the given Settings field.
func boolOption(name string, target *bool) *uciOption {
	initial := strconv.FormatBool(*target)
	return &uciOption{
		NameID:       name,
		OptionType:   Check,
		DefaultValue: initial,
		CurrentValue: initial,
		HandlerFunc: func(u *UciHandler, o *uciOption) {
			v, _ := strconv.ParseBool(o.CurrentValue)
			*target = v
			log.Debugf("Set option %s to %v", o.NameID, v)
		},
	}
}

// the option table
func init() {
	uciOptions = optionMap{
		"Print Config": {NameID: "Print Config", OptionType: Button, HandlerFunc: printConfig},
		"Clear Hash":   {NameID: "Clear Hash", OptionType: Button, HandlerFunc: clearCache},
		"Hash": {NameID: "Hash", OptionType: Spin, HandlerFunc: cacheSize,
			DefaultValue: strconv.Itoa(Settings.Search.TTSize),
			CurrentValue: strconv.Itoa(Settings.Search.TTSize),
			MinValue:     "0", MaxValue: "65000"},

		"Use_Hash": boolOption("Use_Hash", &Settings.Search.UseTT),
		"Use_Book": boolOption("Use_Book", &Settings.Search.UseBook),
		"Ponder":   boolOption("Ponder", &Settings.Search.UsePonder),

		"Quiescence": boolOption("Quiescence", &Settings.Search.UseQuiescence),
		"Use_QHash":  boolOption("Use_QHash", &Settings.Search.UseQSTT),
		"Use_SEE":    boolOption("Use_SEE", &Settings.Search.UseSEE),

		"Use_PVS":         boolOption("Use_PVS", &Settings.Search.UsePVS),
		"Use_IID":         boolOption("Use_IID", &Settings.Search.UseIID),
		"Use_Killer":      boolOption("Use_Killer", &Settings.Search.UseKiller),
		"Use_HistCount":   boolOption("Use_HistCount", &Settings.Search.UseHistoryCounter),
		"Use_CounterMove": boolOption("Use_CounterMove", &Settings.Search.UseCounterMoves),

		"Use_Mdp":      boolOption("Use_Mdp", &Settings.Search.UseMDP),
		"Use_Rfp":      boolOption("Use_Rfp", &Settings.Search.UseRFP),
		"Use_NullMove": boolOption("Use_NullMove", &Settings.Search.UseNullMove),
		"Use_Fp":       boolOption("Use_Fp", &Settings.Search.UseFP),
		"Use_Lmr":      boolOption("Use_Lmr", &Settings.Search.UseLmr),
		"Use_Lmp":      boolOption("Use_Lmp", &Settings.Search.UseLmp),

		"Use_Ext":         boolOption("Use_Ext", &Settings.Search.UseExt),
		"Use_ExtAddDepth": boolOption("Use_ExtAddDepth", &Settings.Search.UseExtAddDepth),
		"Use_CheckExt":    boolOption("Use_CheckExt", &Settings.Search.UseCheckExt),
		"Use_ThreatExt":   boolOption("Use_ThreatExt", &Settings.Search.UseThreatExt),

		"Eval_Lazy":     boolOption("Eval_Lazy", &Settings.Eval.UseLazyEval),
		"Eval_Mobility": boolOption("Eval_Mobility", &Settings.Eval.UseMobility),
		"Eval_AdvPiece": boolOption("Eval_AdvPiece", &Settings.Eval.UseAdvancedPieceEval),
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Use_Book",
		"Ponder",

		"Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_HistCount",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Rfp",
		"Use_NullMove",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_ExtAddDepth",
		"Use_CheckExt",
		"Use_ThreatExt",

		"Eval_Lazy",
		"Eval_Mobility",
		"Eval_AdvPiece",
	}
}

// GetOptions renders all options in listing order the way the "uci"
// command response expects them.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, name := range sortOrderUciOptions {
		options = append(options, uciOptions[name].String())
	}
	return &options
}

// String renders a single "option name ... type ..." line per the UCI
// protocol.
func (o *uciOption) String() string {
	var line strings.Builder
	line.WriteString("option name ")
	line.WriteString(o.NameID)
	line.WriteString(" type ")
	switch o.OptionType {
	case Check:
		line.WriteString("check default ")
		line.WriteString(o.DefaultValue)
	case Spin:
		line.WriteString("spin default ")
		line.WriteString(o.DefaultValue)
		line.WriteString(" min ")
		line.WriteString(o.MinValue)
		line.WriteString(" max ")
		line.WriteString(o.MaxValue)
	case Combo:
		line.WriteString("combo default ")
		line.WriteString(o.DefaultValue)
		line.WriteString(" var ")
		line.WriteString(o.VarValue)
	case Button:
		line.WriteString("button")
	case String:
		line.WriteString("string default ")
		line.WriteString(o.DefaultValue)
	}
	return line.String()
}

// ////////////////////////////////////////////////////////////////
// Handlers with side effects beyond a Settings field
// ////////////////////////////////////////////////////////////////

func printConfig(u *UciHandler, o *uciOption) {
	for _, line := range strings.Split(Settings.String(), "\n") {
		u.SendInfoString(line)
	}
	log.Debug(Settings.String())
}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TTSize = v
	u.mySearch.ResizeCache()
}
