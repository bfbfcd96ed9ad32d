package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/logger"
)

// Lexer is driven by repeated calls to Next/NextRegexOrDivide from the
// parser, never run to completion on its own — see package doc.
type Lexer struct {
	Source *logger.Source
	text   string
	log    *logger.Log

	current int
	start   int
	end     int

	Token               T
	Identifier          string
	Number              float64
	StringValue         []uint16
	Raw                 string
	HasNewlineBefore    bool
	RegExpFlags         string

	Trivia []ast.Trivia
}

func NewLexer(source *logger.Source, log *logger.Log) *Lexer {
	l := &Lexer{Source: source, text: source.Contents, log: log}
	l.Next()
	return l
}

func (l *Lexer) Loc() ast.Span { return ast.Span{Start: uint32(l.start), End: uint32(l.end)} }

func (l *Lexer) Raw0() string { return l.text[l.start:l.end] }

func (l *Lexer) addError(span ast.Span, text string) {
	l.log.AddError(l.Source, logger.RangeFromSpan(span.Start, span.End), logger.KindSyntax, text)
}

func (l *Lexer) peek() byte {
	if l.current >= len(l.text) {
		return 0
	}
	return l.text[l.current]
}

func (l *Lexer) peekAt(off int) byte {
	if l.current+off >= len(l.text) {
		return 0
	}
	return l.text[l.current+off]
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Next scans the next token, treating "/" as division/regex-assign — the
// context the parser is in after any complete expression.
func (l *Lexer) Next() {
	l.HasNewlineBefore = false
	l.skipWhitespaceAndComments()
	l.start = l.current

	if l.current >= len(l.text) {
		l.end = l.current
		l.Token = TEndOfFile
		return
	}

	c := l.text[l.current]
	switch {
	case isIdentStart(c):
		l.scanIdentifierOrKeyword()
		return
	case isDigit(c), c == '.' && isDigit(l.peekAt(1)):
		l.scanNumber()
		return
	case c == '"', c == '\'':
		l.scanString(c)
		return
	case c == '`':
		l.scanTemplate(true)
		return
	case c == '#':
		l.scanPrivateIdentifier()
		return
	}

	l.scanPunctuator()
}

// NextRegexOrDivide scans "/" as the start of a regular-expression literal.
// The parser calls this instead of Next() whenever a primary expression is
// expected (spec.md §4.1: "contextual: immediately after an expression-
// closer it is division, otherwise regex").
func (l *Lexer) NextRegexOrDivide() {
	l.HasNewlineBefore = false
	l.skipWhitespaceAndComments()
	l.start = l.current
	if l.peek() == '/' {
		l.scanRegExp()
		return
	}
	l.Next()
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.current < len(l.text) {
		c := l.text[l.current]
		switch c {
		case ' ', '\t', '\r':
			l.current++
		case '\n':
			l.HasNewlineBefore = true
			l.current++
		case '/':
			if l.peekAt(1) == '/' {
				startTrivia := l.current
				l.current += 2
				for l.current < len(l.text) && l.text[l.current] != '\n' {
					l.current++
				}
				l.Trivia = append(l.Trivia, ast.Trivia{Span: ast.Span{Start: uint32(startTrivia), End: uint32(l.current)}, Text: l.text[startTrivia:l.current], IsBlock: false, HasNewlineBefore: l.HasNewlineBefore})
				continue
			}
			if l.peekAt(1) == '*' {
				startTrivia := l.current
				l.current += 2
				for l.current < len(l.text) && !(l.text[l.current] == '*' && l.peekAt(1) == '/') {
					if l.text[l.current] == '\n' {
						l.HasNewlineBefore = true
					}
					l.current++
				}
				if l.current < len(l.text) {
					l.current += 2
				} else {
					l.addError(ast.Span{Start: uint32(startTrivia), End: uint32(l.current)}, "Unterminated block comment")
				}
				l.Trivia = append(l.Trivia, ast.Trivia{Span: ast.Span{Start: uint32(startTrivia), End: uint32(l.current)}, Text: l.text[startTrivia:l.current], IsBlock: true, HasNewlineBefore: l.HasNewlineBefore})
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifierOrKeyword() {
	for l.current < len(l.text) && isIdentPart(l.text[l.current]) {
		l.current++
	}
	l.end = l.current
	l.Identifier = l.text[l.start:l.end]
	if IsKeyword(l.Identifier) {
		l.Token = TKeyword
	} else {
		l.Token = TIdentifier
	}
}

func (l *Lexer) scanPrivateIdentifier() {
	l.current++ // consume '#'
	for l.current < len(l.text) && isIdentPart(l.text[l.current]) {
		l.current++
	}
	l.end = l.current
	l.Identifier = l.text[l.start:l.end]
	l.Token = TPrivateIdentifier
}

func (l *Lexer) scanNumber() {
	for l.current < len(l.text) && (isDigit(l.text[l.current]) || l.text[l.current] == '.' ||
		l.text[l.current] == 'x' || l.text[l.current] == 'X' || l.text[l.current] == 'o' || l.text[l.current] == 'O' ||
		l.text[l.current] == 'b' || l.text[l.current] == 'B' || l.text[l.current] == '_' ||
		(l.text[l.current] >= 'a' && l.text[l.current] <= 'f') || (l.text[l.current] >= 'A' && l.text[l.current] <= 'F')) {
		l.current++
	}
	// scientific notation
	if l.current < len(l.text) && (l.text[l.current] == 'e' || l.text[l.current] == 'E') {
		l.current++
		if l.current < len(l.text) && (l.text[l.current] == '+' || l.text[l.current] == '-') {
			l.current++
		}
		for l.current < len(l.text) && isDigit(l.text[l.current]) {
			l.current++
		}
	}
	if l.current < len(l.text) && l.text[l.current] == 'n' {
		l.end = l.current
		l.Raw = l.text[l.start:l.end]
		l.current++
		l.Token = TBigIntLiteral
		return
	}
	l.end = l.current
	raw := strings.ReplaceAll(l.text[l.start:l.end], "_", "")
	l.Raw = l.text[l.start:l.end]
	var value float64
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		if n, err := strconv.ParseUint(raw[2:], 16, 64); err == nil {
			value = float64(n)
		}
	} else if strings.HasPrefix(raw, "0o") || strings.HasPrefix(raw, "0O") {
		if n, err := strconv.ParseUint(raw[2:], 8, 64); err == nil {
			value = float64(n)
		}
	} else if strings.HasPrefix(raw, "0b") || strings.HasPrefix(raw, "0B") {
		if n, err := strconv.ParseUint(raw[2:], 2, 64); err == nil {
			value = float64(n)
		}
	} else if n, err := strconv.ParseFloat(raw, 64); err == nil {
		value = n
	}
	l.Number = value
	l.Token = TNumericLiteral
}

func (l *Lexer) scanString(quote byte) {
	l.current++
	var out []uint16
	for l.current < len(l.text) {
		c := l.text[l.current]
		if c == quote {
			l.current++
			break
		}
		if c == '\n' {
			l.addError(ast.Span{Start: uint32(l.start), End: uint32(l.current)}, "Unterminated string literal")
			break
		}
		if c == '\\' {
			l.current++
			out = append(out, l.decodeEscape()...)
			continue
		}
		r, size := utf8.DecodeRuneInString(l.text[l.current:])
		out = append(out, utf16.Encode([]rune{r})...)
		l.current += size
	}
	l.end = l.current
	l.StringValue = out
	l.Token = TStringLiteral
}

func (l *Lexer) decodeEscape() []uint16 {
	if l.current >= len(l.text) {
		return nil
	}
	c := l.text[l.current]
	switch c {
	case 'n':
		l.current++
		return []uint16{'\n'}
	case 't':
		l.current++
		return []uint16{'\t'}
	case 'r':
		l.current++
		return []uint16{'\r'}
	case 'b':
		l.current++
		return []uint16{'\b'}
	case 'f':
		l.current++
		return []uint16{'\f'}
	case 'v':
		l.current++
		return []uint16{'\v'}
	case '0':
		l.current++
		return []uint16{0}
	case '\n':
		l.current++
		return nil // line continuation
	case 'x':
		l.current++
		if l.current+2 <= len(l.text) {
			if n, err := strconv.ParseUint(l.text[l.current:l.current+2], 16, 16); err == nil {
				l.current += 2
				return []uint16{uint16(n)}
			}
		}
		return nil
	case 'u':
		l.current++
		if l.current < len(l.text) && l.text[l.current] == '{' {
			end := strings.IndexByte(l.text[l.current:], '}')
			if end >= 0 {
				hex := l.text[l.current+1 : l.current+end]
				l.current += end + 1
				if n, err := strconv.ParseUint(hex, 16, 32); err == nil {
					return utf16.Encode([]rune{rune(n)})
				}
			}
			return nil
		}
		if l.current+4 <= len(l.text) {
			if n, err := strconv.ParseUint(l.text[l.current:l.current+4], 16, 16); err == nil {
				l.current += 4
				return []uint16{uint16(n)}
			}
		}
		return nil
	default:
		r, size := utf8.DecodeRuneInString(l.text[l.current:])
		l.current += size
		return utf16.Encode([]rune{r})
	}
}

// scanTemplate scans from an opening "`". Text after a "${...}" substitution
// is scanned by ScanTemplateMiddleOrTail, which the parser calls once it has
// consumed the closing "}".
func (l *Lexer) scanTemplate(isStart bool) {
	l.current++ // consume '`' or assume caller positioned after '}'
	l.scanTemplatePart(isStart)
}

func (l *Lexer) scanTemplatePart(isStart bool) {
	var out []uint16
	for l.current < len(l.text) {
		c := l.text[l.current]
		if c == '`' {
			l.current++
			l.end = l.current
			l.StringValue = out
			if isStart {
				l.Token = TNoSubstitutionTemplateLiteral
			} else {
				l.Token = TTemplateTail
			}
			return
		}
		if c == '$' && l.peekAt(1) == '{' {
			l.current += 2
			l.end = l.current
			l.StringValue = out
			if isStart {
				l.Token = TTemplateHead
			} else {
				l.Token = TTemplateMiddle
			}
			return
		}
		if c == '\\' {
			l.current++
			out = append(out, l.decodeEscape()...)
			continue
		}
		r, size := utf8.DecodeRuneInString(l.text[l.current:])
		out = append(out, utf16.Encode([]rune{r})...)
		l.current += size
	}
	l.addError(ast.Span{Start: uint32(l.start), End: uint32(l.current)}, "Unterminated template literal")
	l.end = l.current
	l.Token = TEndOfFile
}

// ScanTemplateMiddleOrTail is called by the parser after consuming the
// matching "}" for a template substitution, to resume scanning raw template
// text instead of tokens.
func (l *Lexer) ScanTemplateMiddleOrTail() {
	l.start = l.current
	l.scanTemplatePart(false)
}

func (l *Lexer) scanRegExp() {
	l.current++ // consume leading '/'
	inClass := false
	for l.current < len(l.text) {
		c := l.text[l.current]
		if c == '\\' {
			l.current += 2
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			l.current++
			break
		} else if c == '\n' {
			l.addError(ast.Span{Start: uint32(l.start), End: uint32(l.current)}, "Unterminated regular expression")
			break
		}
		l.current++
	}
	patternEnd := l.current
	flagsStart := l.current
	for l.current < len(l.text) && isIdentPart(l.text[l.current]) {
		l.current++
	}
	l.end = l.current
	l.Raw = l.text[l.start:patternEnd]
	l.RegExpFlags = l.text[flagsStart:l.current]
	l.Token = TRegExpLiteral
}

func (l *Lexer) scanPunctuator() {
	// Greedily try 4, 3, then 2, then 1-character operators.
	for n := 4; n >= 1; n-- {
		if l.current+n <= len(l.text) {
			cand := l.text[l.current : l.current+n]
			if t, ok := punctTable[cand]; ok {
				l.current += n
				l.end = l.current
				l.Token = t
				return
			}
		}
	}
	l.addError(ast.Span{Start: uint32(l.current), End: uint32(l.current + 1)}, "Unexpected character "+strconv.QuoteRune(rune(l.text[l.current])))
	l.current++
	l.end = l.current
	l.Token = TSyntaxError
}

// StringValueUTF8 converts the decoded UTF-16 string literal to UTF-8 Go
// string form, used wherever a pass needs ordinary text (e.g. import
// specifiers) rather than JS string semantics.
func StringValueUTF8(units []uint16) string {
	return string(utf16.Decode(units))
}
