package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number literal, possibly signed.
	tokenNum
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function argument separator.
	tokenSep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the characters which are binary operators.
const Operators = "+-*/%^"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	// imp is a scanned token held back while an implicit multiplication
	// operator is returned in its place.
	imp lexToken
	// prev is the last token returned from next, used to decide implicit
	// multiplication and whether a minus sign belongs to a literal.
	prev lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peekRune returns the next rune without consuming it. ok is false at EOF.
func (l *lexer) peekRune() (r rune, ok bool) {
	r, _, err := l.src.ReadRune()
	if err != nil {
		return 0, false
	}
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	return r, true
}

// next returns the next token, inserting a multiplication operator between a
// closing parenthesis and a following opening parenthesis or digit, and
// between a literal ending in a digit and a following opening parenthesis.
// Pushed tokens are returned as-is.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.imp.kind != tokenNone {
		tok := l.imp
		l.imp = lexToken{}
		l.prev = tok
		return tok, nil
	}
	tok, err := l.scan()
	if err != nil {
		return tok, err
	}
	if implicitMul(l.prev, tok) {
		l.imp = tok
		tok = lexToken{text: "*", kind: tokenOp, pos: tok.pos}
	}
	l.prev = tok
	return tok, nil
}

func implicitMul(prev, tok lexToken) bool {
	switch prev.kind {
	case tokenClose:
		switch tok.kind {
		case tokenOpen:
			return true
		case tokenNum:
			return isDigit(rune(tok.text[0]))
		}
	case tokenNum:
		return tok.kind == tokenOpen && isDigit(rune(prev.text[len(prev.text)-1]))
	}
	return false
}

// prefix reports whether the lexer is at a position where an operand must
// start.
func (l *lexer) prefix() bool {
	switch l.prev.kind {
	case tokenNone, tokenOp, tokenOpen, tokenSep:
		return true
	}
	return false
}

// scan scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
func (l *lexer) scan() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		return tok, err
	}
	switch {
	case isDigit(r), r == '.':
		l.unreadRune()
		if err := l.scanNum(tok.pos); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		return tok, nil
	case r == '-' && l.prefix():
		if next, ok := l.peekRune(); ok && (isDigit(next) || next == '.') {
			l.buf.WriteRune(r)
			if err := l.scanNum(tok.pos); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		}
		tok.text = "-"
		tok.kind = tokenOp
		return tok, nil
	case r == '_', unicode.IsLetter(r):
		l.unreadRune()
		l.scanIdent()
		tok.text = l.buf.String()
		// inf and nan look like identifiers, so check for them here.
		switch strings.ToLower(tok.text) {
		case "inf", "infinity", "nan":
			tok.kind = tokenNum
		default:
			tok.kind = tokenIdent
		}
		return tok, nil
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok, nil
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok, nil
	case r == ',':
		tok.text = ","
		tok.kind = tokenSep
		return tok, nil
	case strings.ContainsRune(Operators, r):
		tok.text = string(r)
		tok.kind = tokenOp
		return tok, nil
	default:
		// Write the rune so that it shows up in the error message.
		l.buf.WriteRune(r)
		return tok, l.error(tok.pos)
	}
}

// scanNum scans the rest of a number literal which started at column start.
func (l *lexer) scanNum(start int) error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators+"(),", r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch {
		case r == '.':
			if dot || e {
				return l.error(start)
			}
			dot = true
			le = false
		case r == 'e', r == 'E':
			if !dig || e {
				return l.error(start)
			}
			e = true
			le = true
		case isDigit(r):
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error(start)
		}
	}
	if !dig || (e && !ed) {
		return l.error(start)
	}
	return nil
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		switch {
		case r == '_', unicode.IsLetter(r), isDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return
		}
	}
}

// error creates an error for the token being scanned, which started at col.
// The rest of the word containing the invalid rune is included in the text.
func (l *lexer) error(col int) error {
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	return &InvalidExpressionError{Col: col, Text: l.buf.String()}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
