// Package logger implements diagnostic collection and clang-style terminal
// rendering, adapted from the teacher's internal/logger. Where the teacher's
// logger is bundler-shaped (file namespaces, metafile JSON, build summaries),
// this version is reshaped around spec.md §7's five DiagnosticKinds while
// keeping the same Msg/MsgData/Range/Source vocabulary and the same
// line/column snippet renderer.
package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// DiagnosticKind is the taxonomy from spec.md §7.
type DiagnosticKind uint8

const (
	KindSyntax DiagnosticKind = iota
	KindSemantic
	KindLint
	KindInternal
	KindInvalidConfig
)

func (k DiagnosticKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	case KindLint:
		return "lint"
	case KindInternal:
		return "internal"
	case KindInvalidConfig:
		return "invalid-config"
	default:
		return "unknown"
	}
}

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Loc is a 0-based byte offset from the start of the file.
type Loc struct{ Start int32 }

// Range is a Loc plus a byte length, used wherever a diagnostic needs to
// underline more than a single point.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 { return r.Loc.Start + r.Len }

// RangeFromSpan converts an ast.Span (used pervasively by the parser and
// later passes) into the Loc/Range pair the renderer expects.
func RangeFromSpan(start, end uint32) Range {
	return Range{Loc: Loc{Start: int32(start)}, Len: int32(end) - int32(start)}
}

type MsgLocation struct {
	File       string
	Line       int // 1-based
	Column     int // 0-based, in bytes
	Length     int
	LineText   string
	Suggestion string
}

type MsgData struct {
	Text     string
	Location *MsgLocation
}

// Msg is a single diagnostic. RuleId is empty for non-lint diagnostics.
type Msg struct {
	Kind   MsgKind
	DKind  DiagnosticKind
	RuleId string
	Data   MsgData
	Notes  []MsgData
}

// Fingerprint returns a stable identity for this message, used by reporters
// (e.g. a GitLab Code Quality report) that need to match the same issue
// across runs; grounded on the GitLab reporter contract named in
// SPEC_FULL.md §10.
func (m Msg) Fingerprint() string {
	file := ""
	line := 0
	if m.Data.Location != nil {
		file = m.Data.Location.File
		line = m.Data.Location.Line
	}
	return fmt.Sprintf("%s:%d:%s:%s", file, line, m.RuleId, m.Data.Text)
}

// Source is the text of one compilation unit plus the metadata needed to
// turn byte offsets into line/column snippets.
type Source struct {
	Index      uint32
	PrettyPath string
	Contents   string
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start : r.Loc.Start+r.Len]
}

func (s *Source) LocationForRange(r Range) *MsgLocation {
	if s == nil {
		return nil
	}
	line, col, lineStart, lineEnd := computeLineAndColumn(s.Contents, int(r.Loc.Start))
	return &MsgLocation{
		File:     s.PrettyPath,
		Line:     line,
		Column:   col,
		Length:   int(r.Len),
		LineText: s.Contents[lineStart:lineEnd],
	}
}

func computeLineAndColumn(contents string, offset int) (line int, column int, lineStart int, lineEnd int) {
	if offset > len(contents) {
		offset = len(contents)
	}
	line = 1
	lineStart = 0
	for i := 0; i < offset; i++ {
		if contents[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = offset - lineStart
	lineEnd = len(contents)
	if idx := strings.IndexByte(contents[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	return
}

// Log accumulates diagnostics for one file's pipeline run. Each file's
// pipeline owns its own Log; nothing here is safe to share across
// goroutines handling different files (spec.md §5 "Shared resources").
type Log struct {
	msgs []Msg
}

func NewLog() *Log { return &Log{} }

func (log *Log) AddMsg(msg Msg) { log.msgs = append(log.msgs, msg) }

func (log *Log) AddError(source *Source, r Range, kind DiagnosticKind, text string) {
	log.AddMsg(Msg{Kind: Error, DKind: kind, Data: MsgData{Text: text, Location: source.LocationForRange(r)}})
}

func (log *Log) AddWarning(source *Source, r Range, kind DiagnosticKind, text string) {
	log.AddMsg(Msg{Kind: Warning, DKind: kind, Data: MsgData{Text: text, Location: source.LocationForRange(r)}})
}

func (log *Log) HasErrors() bool {
	for _, m := range log.msgs {
		if m.Kind == Error {
			return true
		}
	}
	return false
}

// Done returns all accumulated messages sorted by file/line/column, matching
// spec.md §5 "Ordering guarantees": diagnostics are emitted in traversal
// order per rule per file; across rules/files the driver imposes this total
// order before printing.
func (log *Log) Done() []Msg {
	sorted := make(SortableMsgs, len(log.msgs))
	copy(sorted, log.msgs)
	sort.Stable(sorted)
	return sorted
}

type SortableMsgs []Msg

func (a SortableMsgs) Len() int      { return len(a) }
func (a SortableMsgs) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a SortableMsgs) Less(i, j int) bool {
	ai, aj := a[i], a[j]
	aiLoc, ajLoc := ai.Data.Location, aj.Data.Location
	if aiLoc == nil || ajLoc == nil {
		return aiLoc == nil && ajLoc != nil
	}
	if aiLoc.File != ajLoc.File {
		return aiLoc.File < ajLoc.File
	}
	if aiLoc.Line != ajLoc.Line {
		return aiLoc.Line < ajLoc.Line
	}
	if aiLoc.Column != ajLoc.Column {
		return aiLoc.Column < ajLoc.Column
	}
	return ai.Kind < aj.Kind
}

// TerminalInfo is filled in by the platform-specific GetTerminalInfo.
type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
	Height          int
}

func hasNoColorEnvironmentVariable() bool {
	return os.Getenv("NO_COLOR") != ""
}

// String renders a single message the way clang renders a diagnostic: a
// "file:line:col: kind: text" header, optionally followed by the source
// line and a caret/underline when snippet rendering is enabled.
func (m Msg) String(includeSource bool) string {
	var b strings.Builder
	loc := m.Data.Location
	if loc != nil {
		fmt.Fprintf(&b, "%s:%d:%d: ", loc.File, loc.Line, loc.Column)
	}
	fmt.Fprintf(&b, "%s: %s", m.Kind, m.Data.Text)
	if m.RuleId != "" {
		fmt.Fprintf(&b, " [%s]", m.RuleId)
	}
	if includeSource && loc != nil && loc.LineText != "" {
		b.WriteByte('\n')
		b.WriteString(loc.LineText)
		b.WriteByte('\n')
		b.WriteString(caretLine(loc.LineText, loc.Column, loc.Length))
	}
	for _, note := range m.Notes {
		b.WriteString("\n  note: ")
		b.WriteString(note.Text)
	}
	return b.String()
}

func caretLine(lineText string, column int, length int) string {
	if column > len(lineText) {
		column = len(lineText)
	}
	width := estimateWidthInTerminal(lineText[:column])
	if length < 1 {
		length = 1
	}
	return strings.Repeat(" ", width) + "^" + strings.Repeat("~", length-1)
}

func estimateWidthInTerminal(text string) int {
	return utf8.RuneCountInString(text)
}

// PrintToStderr writes every message to stderr, adding the source-line
// snippet only when stderr is a terminal. No color escapes are emitted.
func PrintToStderr(msgs []Msg) {
	info := GetTerminalInfo(os.Stderr)
	for _, m := range msgs {
		os.Stderr.WriteString(m.String(info.IsTTY))
		os.Stderr.WriteString("\n")
	}
}
