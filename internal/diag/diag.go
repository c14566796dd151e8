// Package diag is the Diagnostics Sink (spec.md §4.4): the analyzer's only
// channel back to the outside world. Every other package only ever calls
// into a *Sink; nothing in internal/check formats or prints a message
// directly.
//
// Grounded on the teacher's logging package: a mutex-guarded counter
// (logging/logger.go's Logger), a set of typed reporting functions
// (logging/api.go's LogCompileError/LogCompileWarning), and pterm-backed
// banner + source-line rendering (logging/display.go). Message wording is
// ported verbatim from original_source/src/analyzer.c's analyzerError*
// helpers (SPEC_FULL.md "Supplemented features").
package diag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/noobshow/fcc/internal/ast"
)

// Level is the verbosity level, mirroring the teacher's LogLevel constants.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarning
	LevelVerbose
)

// Kind identifies which diagnostic template produced a message, used both
// for the banner label and so callers can filter/count by kind.
type Kind int

const (
	KindTypeExpected Kind = iota
	KindOperatorType
	KindLValueRequired
	KindMismatch
	KindDegree
	KindParameterMismatch
	KindNamedParameterMismatch
	KindUnknownMember
	KindConflictingDeclaration
	KindRedeclaration
	KindIllegalSymbolAsValue
	KindUnhandled
)

var kindLabel = map[Kind]string{
	KindTypeExpected:            "Type",
	KindOperatorType:            "Operator",
	KindLValueRequired:          "Value",
	KindMismatch:                "Mismatch",
	KindDegree:                  "Arity",
	KindParameterMismatch:       "Parameter",
	KindNamedParameterMismatch:  "Parameter",
	KindUnknownMember:           "Member",
	KindConflictingDeclaration:  "Definition",
	KindRedeclaration:           "Definition",
	KindIllegalSymbolAsValue:    "Value",
	KindUnhandled:               "Unhandled",
}

// Message is one reported diagnostic.
type Message struct {
	Kind     Kind
	Text     string
	Pos      ast.Position
	FilePath string
	IsError  bool
}

// SourceLines supplies the raw text of a file's lines for framing a
// diagnostic, lines[0] corresponding to line number `start`. A Sink with no
// SourceLines (or one that errors) just omits the framed excerpt — display
// degrades gracefully rather than failing the whole report (spec.md's
// ambient-logging expansion).
type SourceLines func(filePath string, start, end int) ([]string, error)

// Sink accumulates and renders diagnostics. Safe for concurrent use.
type Sink struct {
	mu    sync.Mutex
	level Level
	werror bool

	errorCount   int
	warningCount int
	warnings     []Message

	Lines SourceLines
}

// NewSink creates a Sink at the given verbosity. When werror is true,
// warnings are counted and rendered as errors (and flip ShouldProceed).
func NewSink(level Level, werror bool) *Sink {
	return &Sink{level: level, werror: werror}
}

// ErrorCount returns the number of errors reported so far.
func (s *Sink) ErrorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorCount
}

// WarningCount returns the number of warnings reported so far.
func (s *Sink) WarningCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warningCount
}

// ShouldProceed reports whether no errors (or werror-promoted warnings)
// have been seen yet.
func (s *Sink) ShouldProceed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorCount == 0
}

func (s *Sink) report(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isError := m.IsError || (s.werror && !m.IsError)
	if isError {
		s.errorCount++
	} else {
		s.warningCount++
		s.warnings = append(s.warnings, m)
	}

	if s.level == LevelSilent {
		return
	}
	if !isError && s.level < LevelWarning {
		return
	}

	s.display(m, isError)
}

func (s *Sink) display(m Message, isError bool) {
	fmt.Print("\n\n-- ")
	label := kindLabel[m.Kind]
	kindLen := len(label)
	if isError {
		errorStyleBG.Print(label + " Error")
		kindLen += 7
	} else {
		warnStyleBG.Print(label + " Warning")
		kindLen += 9
	}
	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(m.FilePath) - kindLen - 1
	if dashCount < 0 {
		dashCount = 0
	}
	fmt.Print(strings.Repeat("-", dashCount) + " ")
	infoColorFG.Println(m.FilePath)
	fmt.Println(m.Text)

	s.displayFrame(m)
}

func (s *Sink) displayFrame(m Message) {
	if s.Lines == nil || m.FilePath == "" {
		return
	}
	lines, err := s.Lines(m.FilePath, m.Pos.StartLine, m.Pos.EndLine)
	if err != nil || len(lines) == 0 {
		return
	}
	fmt.Println()
	for i, line := range lines {
		lineNo := m.Pos.StartLine + i
		infoColorFG.Printf("%-4d", lineNo)
		fmt.Print("|  ")
		fmt.Println(line)

		fmt.Print("    |  ")
		switch {
		case len(lines) == 1:
			fmt.Print(strings.Repeat(" ", m.Pos.StartCol))
			errorColorFG.Println(strings.Repeat("^", max(1, m.Pos.EndCol-m.Pos.StartCol)))
		case i == 0:
			fmt.Print(strings.Repeat(" ", m.Pos.StartCol))
			errorColorFG.Println(strings.Repeat("^", max(1, len(line)-m.Pos.StartCol)))
		case i == len(lines)-1:
			errorColorFG.Println(strings.Repeat("^", max(1, m.Pos.EndCol)))
		default:
			errorColorFG.Println(strings.Repeat("^", max(1, len(line))))
		}
	}
	fmt.Println()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Summary prints the closing error/warning tally, mirroring the teacher's
// displayCompilationFinished.
func (s *Sink) Summary() {
	s.mu.Lock()
	errs, warns := s.errorCount, s.warningCount
	s.mu.Unlock()

	if s.level == LevelSilent {
		return
	}

	fmt.Print("\n")
	if errs == 0 {
		successColorFG.Print("All done! ")
	} else {
		errorColorFG.Print("Oh no! ")
	}
	fmt.Printf("(%d errors, %d warnings)\n", errs, warns)
}
