package parser

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/lexer"
	"github.com/oxc-go/oxc-core/internal/logger"
)

// parseExpr is the precedence-climbing entry point: parse a prefix
// expression then feed it to parseSuffix at the given minimum level,
// grounded on the teacher's parsePrefix/parseSuffix split in js_parser.go.
func (p *parser) parseExpr(level ast.L) ast.Expr {
	expr := p.parsePrefix(level)
	return p.parseSuffix(expr, level)
}

func (p *parser) parsePrefix(level ast.L) ast.Expr {
	start := int(p.lex.Loc().Start)

	switch p.lex.Token {
	case lexer.TNumericLiteral:
		v, raw := p.lex.Number, p.lex.Raw
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.ENumber{Value: v, Raw: raw}}

	case lexer.TBigIntLiteral:
		raw := p.lex.Raw
		base := 10
		if len(raw) > 1 && raw[0] == '0' {
			switch raw[1] {
			case 'x', 'X':
				base = 16
			case 'o', 'O':
				base = 8
			case 'b', 'B':
				base = 2
			}
		}
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.EBigInt{Value: raw, Base: base}}

	case lexer.TStringLiteral:
		v := p.lex.StringValue
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.EString{Value: v}}

	case lexer.TNoSubstitutionTemplateLiteral:
		part := ast.TemplatePart{Span: p.span(start), Raw: p.lex.Raw0(), Cooked: p.lex.StringValue}
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.ETemplate{Quasis: []ast.TemplatePart{part}}}

	case lexer.TTemplateHead:
		return p.parseTemplateLiteral(start, nil)

	case lexer.TIdentifier:
		name := p.lex.Identifier
		if name == "async" {
			save := *p.lex
			p.lex.Next()
			if p.lex.Token == lexer.TOpenParen && !p.lex.HasNewlineBefore {
				if arrow, ok := p.tryParseArrowFromParen(start, true); ok {
					return arrow
				}
				*p.lex = save
			} else if p.lex.Token == lexer.TIdentifier && !p.lex.HasNewlineBefore {
				paramName := p.lex.Identifier
				paramStart := int(p.lex.Loc().Start)
				p.lex.Next()
				if p.lex.Token == lexer.TEqualsGreaterThan {
					p.lex.Next()
					return p.parseArrowBody(start, []ast.Param{{Binding: ast.IdentBinding(p.span(paramStart), p.intern(paramName))}}, true)
				}
				*p.lex = save
			} else {
				*p.lex = save
			}
		}
		p.lex.Next()
		if p.lex.Token == lexer.TEqualsGreaterThan && !p.lex.HasNewlineBefore {
			p.lex.Next()
			return p.parseArrowBody(start, []ast.Param{{Binding: ast.IdentBinding(p.span(start), p.intern(name))}}, false)
		}
		return ast.Ident(p.span(start), p.intern(name))

	case lexer.TPrivateIdentifier:
		name := p.lex.Identifier
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.EPrivateIdentifier{Name: p.intern(name), ReferenceId: ast.InvalidReferenceId}}

	case lexer.TOpenParen:
		return p.parseParenOrArrow(start)

	case lexer.TOpenBracket:
		return p.parseArrayLiteral(start)

	case lexer.TOpenBrace:
		return p.parseObjectLiteral(start)

	case lexer.TRegExpLiteral:
		pattern, flags := p.lex.Raw, p.lex.RegExpFlags
		p.lex.Next()
		return ast.Expr{Span: p.span(start), Data: &ast.ERegExp{Pattern: pattern, Flags: flags}}

	case lexer.TMinus:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpNeg, Value: v}}
	case lexer.TPlus:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpPos, Value: v}}
	case lexer.TExclamation:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpNot, Value: v}}
	case lexer.TTilde:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpCpl, Value: v}}
	case lexer.TPlusPlus:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpPreInc, Value: v}}
	case lexer.TMinusMinus:
		p.lex.Next()
		v := p.parseExpr(ast.LPrefix)
		return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpPreDec, Value: v}}

	case lexer.TKeyword:
		switch p.lex.Identifier {
		case "true":
			p.lex.Next()
			return ast.Expr{Span: p.span(start), Data: &ast.EBoolean{Value: true}}
		case "false":
			p.lex.Next()
			return ast.Expr{Span: p.span(start), Data: &ast.EBoolean{Value: false}}
		case "null":
			p.lex.Next()
			return ast.Expr{Span: p.span(start), Data: &ast.ENull{}}
		case "this":
			p.lex.Next()
			return ast.Expr{Span: p.span(start), Data: &ast.EThis{}}
		case "super":
			p.lex.Next()
			return ast.Expr{Span: p.span(start), Data: &ast.ESuper{}}
		case "function":
			return p.parseFunctionExpr(start, false)
		case "async":
			if p.peekIsFunction() {
				p.lex.Next()
				return p.parseFunctionExpr(start, true)
			}
			p.lex.Next()
			return ast.Ident(p.span(start), p.intern("async"))
		case "class":
			cls := p.parseClass()
			return ast.Expr{Span: p.span(start), Data: &ast.EClass{Class: cls}}
		case "new":
			p.lex.Next()
			if p.lex.Token == lexer.TDot {
				p.lex.Next()
				p.expectKeyword("target")
				return ast.Expr{Span: p.span(start), Data: &ast.EImportMeta{}}
			}
			target := p.parsePrefix(ast.LMember)
			target = p.parseSuffix(target, ast.LCall)
			var args []ast.Expr
			if p.lex.Token == lexer.TOpenParen {
				args = p.parseArgs()
			}
			return ast.Expr{Span: p.span(start), Data: &ast.ENew{Target: target, Args: args}}
		case "typeof":
			p.lex.Next()
			v := p.parseExpr(ast.LPrefix)
			return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpTypeof, Value: v}}
		case "void":
			p.lex.Next()
			v := p.parseExpr(ast.LPrefix)
			return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpVoid, Value: v}}
		case "delete":
			p.lex.Next()
			v := p.parseExpr(ast.LPrefix)
			return ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: ast.UnOpDelete, Value: v}}
		case "yield":
			p.lex.Next()
			delegate := false
			if p.lex.Token == lexer.TAsterisk {
				p.lex.Next()
				delegate = true
			}
			var val *ast.Expr
			if p.lex.Token != lexer.TSemicolon && p.lex.Token != lexer.TCloseParen && p.lex.Token != lexer.TCloseBrace &&
				p.lex.Token != lexer.TCloseBracket && p.lex.Token != lexer.TComma && p.lex.Token != lexer.TColon &&
				p.lex.Token != lexer.TEndOfFile && !p.lex.HasNewlineBefore {
				e := p.parseExpr(ast.LYield)
				val = &e
			}
			return ast.Expr{Span: p.span(start), Data: &ast.EYield{Value: val, Delegate: delegate}}
		case "await":
			p.lex.Next()
			v := p.parseExpr(ast.LPrefix)
			return ast.Expr{Span: p.span(start), Data: &ast.EAwait{Value: v}}
		case "import":
			p.lex.Next()
			if p.lex.Token == lexer.TDot {
				p.lex.Next()
				if p.isIdentOrKeyword("meta") {
					p.lex.Next()
				} else {
					p.unexpected()
				}
				return ast.Expr{Span: p.span(start), Data: &ast.EImportMeta{}}
			}
			p.expect(lexer.TOpenParen)
			arg := p.parseExpr(ast.LComma)
			p.expect(lexer.TCloseParen)
			return ast.Expr{Span: p.span(start), Data: &ast.EImportCall{Arg: arg}}
		default:
			// Contextual keyword used as an identifier (e.g. TypeScript's
			// "type"/"as"/"satisfies" outside declaration position).
			name := p.lex.Identifier
			p.lex.Next()
			if p.lex.Token == lexer.TEqualsGreaterThan && !p.lex.HasNewlineBefore {
				p.lex.Next()
				return p.parseArrowBody(start, []ast.Param{{Binding: ast.IdentBinding(p.span(start), p.intern(name))}}, false)
			}
			return ast.Ident(p.span(start), p.intern(name))
		}
	}

	if p.lex.Token == lexer.TLessThan && p.sourceType.IsJSX {
		return p.parseJSXElement(start)
	}

	p.unexpected()
	p.lex.Next()
	return ast.Expr{Span: p.span(start), Data: &ast.EMissing{}}
}

// parseSuffix threads the precedence-climbing loop: postfix/binary/ternary
// operators are consumed while their level is >= the caller's minimum,
// exactly as the teacher's parseSuffix does for js_ast.
func (p *parser) parseSuffix(left ast.Expr, level ast.L) ast.Expr {
	start := int(left.Span.Start)
	for {
		switch p.lex.Token {
		case lexer.TDot:
			p.lex.Next()
			name := p.lex.Identifier
			p.lex.Next()
			left = ast.Expr{Span: p.span(start), Data: &ast.EDot{Target: left, Name: p.intern(name)}}

		case lexer.TQuestionDot:
			p.lex.Next()
			if p.lex.Token == lexer.TOpenParen {
				args := p.parseArgs()
				left = ast.Expr{Span: p.span(start), Data: &ast.ECall{Target: left, Args: args, OptionalChain: ast.OptionalChainStart}}
			} else if p.lex.Token == lexer.TOpenBracket {
				p.lex.Next()
				idx := p.parseExpr(ast.LLowest)
				p.expect(lexer.TCloseBracket)
				left = ast.Expr{Span: p.span(start), Data: &ast.EIndex{Target: left, Index: idx, OptionalChain: ast.OptionalChainStart}}
			} else {
				name := p.lex.Identifier
				p.lex.Next()
				left = ast.Expr{Span: p.span(start), Data: &ast.EDot{Target: left, Name: p.intern(name), OptionalChain: ast.OptionalChainStart}}
			}

		case lexer.TOpenBracket:
			if level >= ast.LMember {
				return left
			}
			p.lex.Next()
			idx := p.parseExpr(ast.LLowest)
			p.expect(lexer.TCloseBracket)
			left = ast.Expr{Span: p.span(start), Data: &ast.EIndex{Target: left, Index: idx}}

		case lexer.TOpenParen:
			if level >= ast.LCall {
				return left
			}
			args := p.parseArgs()
			left = ast.Expr{Span: p.span(start), Data: &ast.ECall{Target: left, Args: args}}

		case lexer.TNoSubstitutionTemplateLiteral, lexer.TTemplateHead:
			// Tagged template.
			tag := left
			if p.lex.Token == lexer.TNoSubstitutionTemplateLiteral {
				tmplStart := int(p.lex.Loc().Start)
				part := ast.TemplatePart{Span: p.span(tmplStart), Raw: p.lex.Raw0(), Cooked: p.lex.StringValue}
				p.lex.Next()
				left = ast.Expr{Span: p.span(start), Data: &ast.ETemplate{Tag: &tag, Quasis: []ast.TemplatePart{part}}}
			} else {
				tmplStart := int(p.lex.Loc().Start)
				tmpl := p.parseTemplateLiteral(tmplStart, &tag)
				left = tmpl
			}

		case lexer.TPlusPlus, lexer.TMinusMinus:
			if p.lex.HasNewlineBefore || level > ast.LPostfix {
				return left
			}
			op := ast.UnOpPostInc
			if p.lex.Token == lexer.TMinusMinus {
				op = ast.UnOpPostDec
			}
			p.lex.Next()
			left = ast.Expr{Span: p.span(start), Data: &ast.EUnary{Op: op, Value: left}}

		case lexer.TExclamation:
			// TypeScript non-null assertion, "expr!".
			if p.lex.HasNewlineBefore {
				return left
			}
			p.lex.Next()
			left = ast.Expr{Span: p.span(start), Data: &ast.EAnnotation{Value: left, Kind: ast.TSAnnotationNonNull}}

		case lexer.TQuestion:
			if level >= ast.LConditional {
				return left
			}
			p.lex.Next()
			yes := p.parseExpr(ast.LAssign)
			p.expect(lexer.TColon)
			no := p.parseExpr(ast.LAssign)
			left = ast.Expr{Span: p.span(start), Data: &ast.EConditional{Test: left, Yes: yes, No: no}}

		case lexer.TComma:
			if level >= ast.LComma {
				return left
			}
			p.lex.Next()
			right := p.parseExpr(ast.LAssign)
			if seq, ok := left.Data.(*ast.ESequence); ok {
				seq.Items = append(seq.Items, right)
			} else {
				left = ast.Expr{Span: p.span(start), Data: &ast.ESequence{Items: []ast.Expr{left, right}}}
			}

		case lexer.TEquals:
			if level >= ast.LAssign {
				return left
			}
			p.lex.Next()
			right := p.parseExpr(ast.LAssign)
			left = ast.Expr{Span: p.span(start), Data: &ast.EAssign{Op: ast.BinOpAssign, Left: left, Right: right}}

		case lexer.TKeyword:
			if p.lex.Identifier == "instanceof" && level < ast.LCompare {
				p.lex.Next()
				right := p.parseExpr(ast.LCompare + 1)
				left = ast.Expr{Span: p.span(start), Data: &ast.EBinary{Op: ast.BinOpInstanceof, Left: left, Right: right}}
				continue
			}
			if p.lex.Identifier == "in" && level < ast.LCompare {
				p.lex.Next()
				right := p.parseExpr(ast.LCompare + 1)
				left = ast.Expr{Span: p.span(start), Data: &ast.EBinary{Op: ast.BinOpIn, Left: left, Right: right}}
				continue
			}
			if p.lex.Identifier == "as" || p.lex.Identifier == "satisfies" {
				kind := ast.TSAnnotationAs
				if p.lex.Identifier == "satisfies" {
					kind = ast.TSAnnotationSatisfies
				}
				p.lex.Next()
				tsStart := int(p.lex.Loc().Start)
				p.skipTSType()
				left = ast.Expr{Span: p.span(start), Data: &ast.EAnnotation{Value: left, Kind: kind, Type: &ast.TSType{Span: p.span(tsStart)}}}
				continue
			}
			return left

		default:
			if op, isAssign, ok := punctToBinOp(p.lex.Token); ok {
				opLevel := op.Level()
				if isAssign {
					opLevel = ast.LAssign
				}
				if level > opLevel || (level == opLevel && !op.IsRightAssociative()) {
					return left
				}
				p.lex.Next()
				nextLevel := opLevel + 1
				if op.IsRightAssociative() {
					nextLevel = opLevel
				}
				right := p.parseExpr(nextLevel)
				if isAssign {
					left = ast.Expr{Span: p.span(start), Data: &ast.EAssign{Op: op, Left: left, Right: right}}
				} else {
					left = ast.Expr{Span: p.span(start), Data: &ast.EBinary{Op: op, Left: left, Right: right}}
				}
				continue
			}
			return left
		}
	}
}

func punctToBinOp(t lexer.T) (ast.BinOp, bool, bool) {
	switch t {
	case lexer.TPlus:
		return ast.BinOpAdd, false, true
	case lexer.TMinus:
		return ast.BinOpSub, false, true
	case lexer.TAsterisk:
		return ast.BinOpMul, false, true
	case lexer.TSlash:
		return ast.BinOpDiv, false, true
	case lexer.TPercent:
		return ast.BinOpRem, false, true
	case lexer.TAsteriskAsterisk:
		return ast.BinOpPow, false, true
	case lexer.TLessThan:
		return ast.BinOpLt, false, true
	case lexer.TLessThanEquals:
		return ast.BinOpLe, false, true
	case lexer.TGreaterThan:
		return ast.BinOpGt, false, true
	case lexer.TGreaterThanEquals:
		return ast.BinOpGe, false, true
	case lexer.TLessThanLessThan:
		return ast.BinOpShl, false, true
	case lexer.TGreaterThanGreaterThan:
		return ast.BinOpShr, false, true
	case lexer.TGreaterThanGreaterThanGreaterThan:
		return ast.BinOpUShr, false, true
	case lexer.TAmpersand:
		return ast.BinOpBitwiseAnd, false, true
	case lexer.TBar:
		return ast.BinOpBitwiseOr, false, true
	case lexer.TCaret:
		return ast.BinOpBitwiseXor, false, true
	case lexer.TEqualsEquals:
		return ast.BinOpLooseEq, false, true
	case lexer.TExclamationEquals:
		return ast.BinOpLooseNe, false, true
	case lexer.TEqualsEqualsEquals:
		return ast.BinOpStrictEq, false, true
	case lexer.TExclamationEqualsEquals:
		return ast.BinOpStrictNe, false, true
	case lexer.TQuestionQuestion:
		return ast.BinOpNullishCoalescing, false, true
	case lexer.TBarBar:
		return ast.BinOpLogicalOr, false, true
	case lexer.TAmpersandAmpersand:
		return ast.BinOpLogicalAnd, false, true
	case lexer.TPlusEquals:
		return ast.BinOpAddAssign, true, true
	case lexer.TMinusEquals:
		return ast.BinOpSubAssign, true, true
	case lexer.TAsteriskEquals:
		return ast.BinOpMulAssign, true, true
	case lexer.TSlashEquals:
		return ast.BinOpDivAssign, true, true
	case lexer.TPercentEquals:
		return ast.BinOpRemAssign, true, true
	case lexer.TAsteriskAsteriskEquals:
		return ast.BinOpPowAssign, true, true
	case lexer.TLessThanLessThanEquals:
		return ast.BinOpShlAssign, true, true
	case lexer.TGreaterThanGreaterThanEquals:
		return ast.BinOpShrAssign, true, true
	case lexer.TGreaterThanGreaterThanGreaterThanEquals:
		return ast.BinOpUShrAssign, true, true
	case lexer.TAmpersandEquals:
		return ast.BinOpBitwiseAndAssign, true, true
	case lexer.TBarEquals:
		return ast.BinOpBitwiseOrAssign, true, true
	case lexer.TCaretEquals:
		return ast.BinOpBitwiseXorAssign, true, true
	case lexer.TQuestionQuestionEquals:
		return ast.BinOpNullishCoalescingAssign, true, true
	case lexer.TBarBarEquals:
		return ast.BinOpLogicalOrAssign, true, true
	case lexer.TAmpersandAmpersandEquals:
		return ast.BinOpLogicalAndAssign, true, true
	}
	return 0, false, false
}

func (p *parser) parseArgs() []ast.Expr {
	p.expect(lexer.TOpenParen)
	var args []ast.Expr
	for p.lex.Token != lexer.TCloseParen && p.lex.Token != lexer.TEndOfFile {
		start := int(p.lex.Loc().Start)
		if p.lex.Token == lexer.TDotDotDot {
			p.lex.Next()
			v := p.parseExpr(ast.LAssign)
			args = append(args, ast.Expr{Span: p.span(start), Data: &ast.ESpread{Value: v}})
		} else {
			args = append(args, p.parseExpr(ast.LAssign))
		}
		if p.lex.Token == lexer.TComma {
			p.lex.Next()
		}
	}
	p.expect(lexer.TCloseParen)
	return args
}

func (p *parser) parseTemplateLiteral(start int, tag *ast.Expr) ast.Expr {
	var quasis []ast.TemplatePart
	var parts []ast.Expr
	partStart := int(p.lex.Loc().Start)
	quasis = append(quasis, ast.TemplatePart{Span: p.span(partStart), Raw: p.lex.Raw0(), Cooked: p.lex.StringValue})
	p.lex.Next()
	for {
		expr := p.parseExpr(ast.LLowest)
		parts = append(parts, expr)
		if p.lex.Token != lexer.TCloseBrace {
			p.unexpected()
			break
		}
		p.lex.ScanTemplateMiddleOrTail()
		ps := int(p.lex.Loc().Start)
		quasis = append(quasis, ast.TemplatePart{Span: p.span(ps), Raw: p.lex.Raw0(), Cooked: p.lex.StringValue})
		isTail := p.lex.Token == lexer.TTemplateTail
		p.lex.Next()
		if isTail {
			break
		}
	}
	return ast.Expr{Span: p.span(start), Data: &ast.ETemplate{Tag: tag, Quasis: quasis, Parts: parts}}
}

func (p *parser) parseArrayLiteral(start int) ast.Expr {
	p.lex.Next()
	var items []ast.Expr
	trailingComma := false
	for p.lex.Token != lexer.TCloseBracket && p.lex.Token != lexer.TEndOfFile {
		itemStart := int(p.lex.Loc().Start)
		if p.lex.Token == lexer.TComma {
			items = append(items, ast.Expr{Span: p.span(itemStart), Data: &ast.EMissing{}})
			p.lex.Next()
			continue
		}
		if p.lex.Token == lexer.TDotDotDot {
			p.lex.Next()
			v := p.parseExpr(ast.LAssign)
			items = append(items, ast.Expr{Span: p.span(itemStart), Data: &ast.ESpread{Value: v}})
		} else {
			items = append(items, p.parseExpr(ast.LAssign))
		}
		if p.lex.Token == lexer.TComma {
			p.lex.Next()
			trailingComma = p.lex.Token == lexer.TCloseBracket
		} else {
			break
		}
	}
	p.expect(lexer.TCloseBracket)
	return ast.Expr{Span: p.span(start), Data: &ast.EArray{Items: items, TrailingComma: trailingComma}}
}

func (p *parser) parseObjectLiteral(start int) ast.Expr {
	p.lex.Next()
	var props []ast.Property
	for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
		props = append(props, p.parseObjectProperty())
		if p.lex.Token == lexer.TComma {
			p.lex.Next()
		} else {
			break
		}
	}
	p.expect(lexer.TCloseBrace)
	return ast.Expr{Span: p.span(start), Data: &ast.EObject{Properties: props}}
}

func (p *parser) parseObjectProperty() ast.Property {
	start := int(p.lex.Loc().Start)
	if p.lex.Token == lexer.TDotDotDot {
		p.lex.Next()
		v := p.parseExpr(ast.LAssign)
		return ast.Property{IsSpread: true, Value: &v}
	}

	isAsync := false
	if p.isIdentOrKeyword("async") {
		save := *p.lex
		p.lex.Next()
		if p.lex.Token == lexer.TColon || p.lex.Token == lexer.TComma || p.lex.Token == lexer.TCloseBrace || p.lex.Token == lexer.TOpenParen {
			*p.lex = save
		} else {
			isAsync = true
		}
	}
	isGen := false
	if p.lex.Token == lexer.TAsterisk {
		p.lex.Next()
		isGen = true
	}

	kind := ast.PropertyNormal
	if p.isIdentOrKeyword("get") || p.isIdentOrKeyword("set") {
		save := *p.lex
		isGetter := p.lex.Identifier == "get"
		p.lex.Next()
		if p.lex.Token == lexer.TColon || p.lex.Token == lexer.TComma || p.lex.Token == lexer.TCloseBrace || p.lex.Token == lexer.TOpenParen {
			*p.lex = save
		} else if isGetter {
			kind = ast.PropertyGet
		} else {
			kind = ast.PropertySet
		}
	}

	computed := false
	var keyExpr ast.Expr
	keyName := p.lex.Identifier
	if p.lex.Token == lexer.TOpenBracket {
		p.lex.Next()
		computed = true
		keyExpr = p.parseExpr(ast.LAssign)
		p.expect(lexer.TCloseBracket)
	} else if p.lex.Token == lexer.TStringLiteral {
		keyExpr = ast.Expr{Span: p.span(start), Data: &ast.EString{Value: p.lex.StringValue}}
		p.lex.Next()
	} else if p.lex.Token == lexer.TNumericLiteral {
		keyExpr = ast.Expr{Span: p.span(start), Data: &ast.ENumber{Value: p.lex.Number, Raw: p.lex.Raw}}
		p.lex.Next()
	} else {
		keyExpr = ast.Ident(p.span(start), p.intern(keyName))
		p.lex.Next()
	}
	key := ast.PropertyKey{Span: p.span(start), Value: keyExpr}

	if p.lex.Token == lexer.TOpenParen || isGen || isAsync || kind != ast.PropertyNormal {
		fn := p.parseFunctionRest(nil, isAsync, isGen)
		fnExpr := ast.Expr{Span: key.Span, Data: &ast.EFunction{Fn: fn}}
		if kind == ast.PropertyNormal {
			kind = ast.PropertyMethod
		}
		return ast.Property{Key: key, Value: &fnExpr, Kind: kind, IsComputed: computed}
	}

	if p.lex.Token == lexer.TColon {
		p.lex.Next()
		v := p.parseExpr(ast.LAssign)
		return ast.Property{Key: key, Value: &v, IsComputed: computed}
	}

	// Shorthand, possibly with a default (only valid inside a destructuring
	// cover grammar, re-checked by the caller if this literal ends up being
	// reinterpreted as a binding pattern).
	if p.lex.Token == lexer.TEquals {
		p.lex.Next()
		def := p.parseExpr(ast.LAssign)
		ident := ast.Ident(key.Span, p.intern(keyName))
		return ast.Property{Key: key, Value: &ident, Initializer: &def, Kind: ast.PropertyShorthand}
	}
	ident := ast.Ident(key.Span, p.intern(keyName))
	return ast.Property{Key: key, Value: &ident, Kind: ast.PropertyShorthand}
}

func (p *parser) parseFunctionExpr(start int, isAsync bool) ast.Expr {
	p.expectKeyword("function")
	isGen := false
	if p.lex.Token == lexer.TAsterisk {
		p.lex.Next()
		isGen = true
	}
	var name *ast.Atom
	if p.lex.Token == lexer.TIdentifier {
		a := p.intern(p.lex.Identifier)
		name = &a
		p.lex.Next()
	}
	fn := p.parseFunctionRest(name, isAsync, isGen)
	return ast.Expr{Span: p.span(start), Data: &ast.EFunction{Fn: fn}}
}

// parseParenOrArrow resolves the classic cover-grammar ambiguity between a
// parenthesized expression and an arrow function's parameter list: parse
// optimistically as an arrow, and if the lookahead doesn't support that,
// fall back and reparse as a plain parenthesized expression. Grounded on
// the teacher's parseParenExpr, which performs the same two-pass resolution.
func (p *parser) parseParenOrArrow(start int) ast.Expr {
	if arrow, ok := p.tryParseArrowFromParen(start, false); ok {
		return arrow
	}
	return p.parseParenExpr(start)
}

func (p *parser) tryParseArrowFromParen(start int, isAsync bool) (ast.Expr, bool) {
	save := *p.lex
	params, ok := p.tryParseParamsAsArrow()
	if !ok || p.lex.Token != lexer.TEqualsGreaterThan || p.lex.HasNewlineBefore {
		*p.lex = save
		return ast.Expr{}, false
	}
	p.lex.Next()
	return p.parseArrowBody(start, params, isAsync), true
}

// tryParseParamsAsArrow attempts to parse "(...)" as an arrow parameter
// list, recovering silently (returning ok=false) on any parse error so the
// caller can fall back to parsing it as a parenthesized expression instead.
func (p *parser) tryParseParamsAsArrow() (params []ast.Param, ok bool) {
	savedLog := p.log
	p.log = logger.NewLog()
	defer func() {
		p.log = savedLog
		if r := recover(); r != nil {
			ok = false
		}
	}()
	if p.lex.Token != lexer.TOpenParen {
		return nil, false
	}
	params = p.parseParams()
	if p.lex.Token == lexer.TColon {
		p.parseTSTypeAnnotation()
	}
	return params, len(p.log.Done()) == 0
}

func (p *parser) parseArrowBody(start int, params []ast.Param, isAsync bool) ast.Expr {
	savedAsync := p.inAsync
	p.inAsync = isAsync
	defer func() { p.inAsync = savedAsync }()

	if p.lex.Token == lexer.TOpenBrace {
		p.lex.Next()
		body := p.parseStmtList(lexer.TCloseBrace)
		p.expect(lexer.TCloseBrace)
		return ast.Expr{Span: p.span(start), Data: &ast.EArrow{Params: params, Body: body, IsAsync: isAsync}}
	}
	e := p.parseExpr(ast.LAssign)
	return ast.Expr{Span: p.span(start), Data: &ast.EArrow{Params: params, PreferExpr: true, Expr: &e, IsAsync: isAsync}}
}

func (p *parser) parseParenExpr(start int) ast.Expr {
	p.expect(lexer.TOpenParen)
	e := p.parseExpr(ast.LLowest)
	p.expect(lexer.TCloseParen)
	return e
}
