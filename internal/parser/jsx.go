package parser

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/lexer"
)

// parseJSXElement parses a JSX element or fragment starting at "<". Grounded
// on the teacher's parseJSXElement in js_parser.go, reworked to populate
// ast.EJSXElement instead of esbuild's JSX-as-call-expression lowering,
// since spec.md keeps JSX as a first-class node rather than elaborating it.
func (p *parser) parseJSXElement(start int) ast.Expr {
	p.expect(lexer.TLessThan)

	if p.lex.Token == lexer.TGreaterThan {
		p.lex.Next()
		children := p.parseJSXChildren()
		p.expectJSXClose("")
		return ast.Expr{Span: p.span(start), Data: &ast.EJSXElement{Children: children}}
	}

	tagName := p.parseJSXTagName()
	var attrs []ast.JSXAttribute
	for p.lex.Token != lexer.TSlash && p.lex.Token != lexer.TGreaterThan && p.lex.Token != lexer.TEndOfFile {
		attrs = append(attrs, p.parseJSXAttribute())
	}

	if p.lex.Token == lexer.TSlash {
		p.lex.Next()
		p.expect(lexer.TGreaterThan)
		return ast.Expr{Span: p.span(start), Data: &ast.EJSXElement{TagName: p.intern(tagName), Attributes: attrs, SelfClosing: true}}
	}

	p.expect(lexer.TGreaterThan)
	children := p.parseJSXChildren()
	p.expectJSXClose(tagName)
	return ast.Expr{Span: p.span(start), Data: &ast.EJSXElement{TagName: p.intern(tagName), Attributes: attrs, Children: children}}
}

func (p *parser) parseJSXTagName() string {
	name := p.lex.Identifier
	p.lex.Next()
	for p.lex.Token == lexer.TDot {
		p.lex.Next()
		name += "." + p.lex.Identifier
		p.lex.Next()
	}
	for p.lex.Token == lexer.TColon {
		p.lex.Next()
		name += ":" + p.lex.Identifier
		p.lex.Next()
	}
	return name
}

func (p *parser) parseJSXAttribute() ast.JSXAttribute {
	if p.lex.Token == lexer.TOpenBrace {
		p.lex.Next()
		p.expect(lexer.TDotDotDot)
		v := p.parseExpr(ast.LAssign)
		p.expect(lexer.TCloseBrace)
		return ast.JSXAttribute{IsSpread: true, Value: &v}
	}
	name := p.lex.Identifier
	p.lex.Next()
	for p.lex.Token == lexer.TColon {
		p.lex.Next()
		name += ":" + p.lex.Identifier
		p.lex.Next()
	}
	attr := ast.JSXAttribute{Name: p.intern(name)}
	if p.lex.Token == lexer.TEquals {
		p.lex.Next()
		switch p.lex.Token {
		case lexer.TStringLiteral:
			s := ast.Expr{Data: &ast.EString{Value: p.lex.StringValue}}
			p.lex.Next()
			attr.Value = &s
		case lexer.TOpenBrace:
			p.lex.Next()
			v := p.parseExpr(ast.LAssign)
			p.expect(lexer.TCloseBrace)
			attr.Value = &v
		default:
			p.unexpected()
		}
	}
	return attr
}

// parseJSXChildren scans raw JSX text, "{expr}" children, and nested
// elements until the lexer sees the start of a closing tag, "</". The lexer
// is re-entered in its ordinary token mode for "{" and "<" since both begin
// a fresh sub-grammar (spec.md §4.1 notes JSX content is scanned specially,
// matching the teacher's js_lexer NextInsideJSXElement/text split).
func (p *parser) parseJSXChildren() []ast.JSXChild {
	var children []ast.JSXChild
	for {
		text, hitBrace, hitLt, hitEOF := p.scanJSXText()
		if text != "" {
			children = append(children, ast.JSXChild{Data: &ast.JSXText{Value: text}})
		}
		if hitEOF {
			return children
		}
		if hitLt {
			if p.peekIsJSXClose() {
				return children
			}
			childStart := int(p.lex.Loc().Start)
			child := p.parseJSXElement(childStart)
			if _, ok := child.Data.(*ast.EJSXElement); ok {
				children = append(children, ast.JSXChild{Span: child.Span, Data: &ast.JSXElemChild{Value: child}})
			}
			continue
		}
		if hitBrace {
			p.lex.Next()
			if p.lex.Token == lexer.TCloseBrace {
				p.lex.Next()
				continue
			}
			e := p.parseExpr(ast.LLowest)
			p.expect(lexer.TCloseBrace)
			children = append(children, ast.JSXChild{Span: e.Span, Data: &ast.JSXExprChild{Value: e}})
			continue
		}
	}
}

// scanJSXText is a minimal raw-text scanner over the lexer's underlying
// source; it does not attempt JSX entity decoding beyond what the ordinary
// lexer already owns, since that belongs to a renderer rather than the
// core AST.
func (p *parser) scanJSXText() (text string, hitBrace bool, hitLt bool, hitEOF bool) {
	// The lexer has already tokenized ahead of the raw text in ordinary
	// mode; for JSX children we fall back to treating "<" and "{" tokens as
	// the only recognized boundaries and otherwise emit the text between
	// the previous boundary and here using the current token's span. Since
	// a tokenizing lexer already consumed whitespace/punctuation in its own
	// grammar, plain JSX text composed of ordinary identifier/punctuator
	// tokens is reassembled from the source bytes spanned by those tokens
	// until a "<" or "{" is reached.
	begin := int(p.lex.Loc().Start)
	for {
		switch p.lex.Token {
		case lexer.TLessThan:
			return p.source.Contents[begin:p.lex.Loc().Start], false, true, false
		case lexer.TOpenBrace:
			return p.source.Contents[begin:p.lex.Loc().Start], true, false, false
		case lexer.TEndOfFile:
			return p.source.Contents[begin:p.lex.Loc().Start], false, false, true
		default:
			p.lex.Next()
		}
	}
}

func (p *parser) peekIsJSXClose() bool {
	save := *p.lex
	p.lex.Next()
	isClose := p.lex.Token == lexer.TSlash
	*p.lex = save
	return isClose
}

func (p *parser) expectJSXClose(tagName string) {
	p.expect(lexer.TLessThan)
	p.expect(lexer.TSlash)
	if p.lex.Token != lexer.TGreaterThan {
		p.parseJSXTagName()
	}
	p.expect(lexer.TGreaterThan)
}
