package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Expr = num | const | Call | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = funcname '(' Expr { ',' Expr } ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr Expr (see implicitMul)
// Div = Expr '/' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr
//
// From loosest to tightest binding, the operators are + - * / % ^, and all of
// them are left-associative.

// Expr is a parsed expression that can be evaluated in either angle mode.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parsectx holds general data for parsing.
type parsectx struct {
	// src is the input with whitespace removed, used to quote the rest of the
	// input in errors.
	src []rune
}

// rest returns the input starting at column col.
func (p *parsectx) rest(col int) string {
	if col < 1 || col > len(p.src) {
		return ""
	}
	return string(p.src[col-1:])
}

// Parse parses an expression. Whitespace anywhere in src is removed before
// parsing, so "1 2" is the number 12.
func Parse(src string) (*Expr, error) {
	norm := stripSpace(src)
	scan := lex(strings.NewReader(norm))
	p := parsectx{src: []rune(norm)}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, p.unexpected(tok)
	}
	return &Expr{n: n}, nil
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseterm parses a term whose operators bind more tightly than until. If
// there is no error, then parseterm pushes the last token it scans, which is
// always a close parenthesis, separator, EOF, or an operator that binds no
// more tightly than until.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				panic("calc: lexed unknown operator " + strconv.Quote(tok.text))
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.pos, left: n, right: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of term.
			scan.push(tok)
			return n, nil
		case tokenNum, tokenIdent, tokenOpen:
			// Juxtaposition that isn't an implicit multiplication, e.g. pi(2).
			return nil, p.unexpected(tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term: a number, constant, call, or
// parenthesized expression.
func parselhs(scan *lexer, p *parsectx) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer only produces literals that ParseFloat accepts.
			return nil, &InvalidExpressionError{Col: tok.pos, Text: tok.text}
		}
		return &node{kind: nodeNum, name: tok.text, num: v, pos: tok.pos}, nil
	case tokenIdent:
		if v, ok := consts[tok.text]; ok {
			return &node{kind: nodeConst, name: tok.text, num: v, pos: tok.pos}, nil
		}
		if fn, ok := funcs[tok.text]; ok {
			return parsecall(scan, p, fn, tok)
		}
		return nil, &InvalidExpressionError{Col: tok.pos, Text: tok.text}
	case tokenOpen:
		n, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.kind != tokenClose {
			return nil, &InvalidExpressionError{Col: tok.pos, Text: p.rest(tok.pos)}
		}
		return n, nil
	case tokenEOF:
		return nil, &InvalidExpressionError{Col: tok.pos}
	default:
		return nil, p.unexpected(tok)
	}
}

// parsecall parses the parenthesized argument list of a call to fn, whose name
// is the token name.
func parsecall(scan *lexer, p *parsectx, fn Func, name lexToken) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		return nil, &InvalidExpressionError{Col: name.pos, Text: p.rest(name.pos)}
	}
	call := &node{kind: nodeCall, name: name.text, fn: fn, pos: name.pos}
	l := call
	k := 0
	for {
		arg, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		k++
		l.right = &node{kind: nodeArg, left: arg}
		l = l.right
		switch end := scan.must(); end.kind {
		case tokenSep:
			continue
		case tokenClose:
			if k != arity(fn) {
				return nil, &CallError{Col: name.pos, Func: name.text, Len: k}
			}
			return call, nil
		case tokenEOF:
			return nil, &InvalidExpressionError{Col: name.pos, Text: p.rest(name.pos)}
		default:
			panic("calc: parseterm ended on non-end token " + end.String())
		}
	}
}

// unexpected returns an error for a token that cannot appear where it was
// found.
func (p *parsectx) unexpected(tok lexToken) error {
	if tok.kind == tokenEOF {
		return &InvalidExpressionError{Col: tok.pos}
	}
	return &InvalidExpressionError{Col: tok.pos, Text: p.rest(tok.pos)}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{2, false, nodeSub}
	case "*":
		return operator{3, false, nodeMul}
	case "/":
		return operator{4, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{6, false, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
