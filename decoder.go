// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package wxstream

import (
	"errors"
	"fmt"
	"io"
)

// ErrClosed is reported by a Decoder that receives input after Close.
var ErrClosed = errors.New("decoder is closed")

// expect records which tokens the decoder will accept next, outside of any
// token in progress.
type expect byte

const (
	expDoc        expect = iota // a top-level value, or end of input
	expValue                    // a value, after ":" or after "," in an array
	expValueOrEnd               // a value or "]", after "["
	expKeyOrEnd                 // a key or "}", after "{"
	expKey                      // a key, after "," in an object
	expColon                    // ":", after a key
	expCommaOrEnd               // "," or the close of the enclosing container
)

// lexState records the kind of token in progress, if any.
type lexState byte

const (
	lexNone   lexState = iota
	lexString          // inside a quoted string
	lexEscape          // after "\" in a string
	lexHex             // inside the digits of a \u escape
	lexNumber          // inside a number
	lexConst           // inside true, false, or null
)

// numPhase records the position within a number token.
type numPhase byte

const (
	numSign     numPhase = iota // after a leading "-"
	numZero                     // after a leading "0"
	numInt                      // integer digits
	numDot                      // after "."
	numFrac                     // fraction digits
	numExp                      // after "e" or "E"
	numExpSign                  // after the exponent sign
	numExpDigit                 // exponent digits
)

func (p numPhase) complete() bool {
	return p == numZero || p == numInt || p == numFrac || p == numExpDigit
}

// A Decoder is a push-mode JSON decoder. Input is delivered by calling Write
// or WriteByte with any number of bytes at a time, and the decoder reports
// the structure of the input to a Handler as soon as each token is complete.
// The decoder does not buffer any more of the input than the text of the
// token in progress.
//
// Each complete top-level value is reported as a separate document.
// Call Close to signal the end of the input.
type Decoder struct {
	h  Handler
	sh SpaceHandler // optional, may be nil
	eh ErrorHandler // optional, may be nil

	stk []Token // open containers: LBrace or LSquare
	exp expect
	lex lexState
	num numPhase
	hex int    // digits remaining in a \u escape
	key bool   // the string in progress is an object key
	con string // spelling of the constant in progress
	buf []byte // text of the current token
	tok Token
	err error

	off, line, col   int // location of the next input byte (line and column 0-based)
	pos, pline, pcol int // location of the first byte of the current token
	end              int // offset just past the last byte of the current token
}

// NewDecoder constructs a Decoder that delivers events to h.
func NewDecoder(h Handler) *Decoder {
	d := &Decoder{h: h}
	d.sh, _ = h.(SpaceHandler)
	d.eh, _ = h.(ErrorHandler)
	return d
}

// Reset discards all decoder state, so that d is ready to consume a new input
// stream delivering events to the same handler.
func (d *Decoder) Reset() {
	*d = Decoder{h: d.h, sh: d.sh, eh: d.eh, stk: d.stk[:0], buf: d.buf[:0]}
}

// Depth reports the number of objects and arrays currently open.
func (d *Decoder) Depth() int { return len(d.stk) }

// Write consumes the contents of p. It reports the number of bytes consumed
// before an error, if any. Once Write has reported an error, all subsequent
// writes report the same error.
func (d *Decoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteByte consumes a single byte of input.
func (d *Decoder) WriteByte(c byte) error {
	if d.err != nil {
		return d.err
	}
	if err := d.step(c); err != nil {
		return d.setErr(err)
	}
	d.off++
	if c == '\n' {
		d.line++
		d.col = 0
	} else {
		d.col++
	}
	return nil
}

// Close reports the end of the input. It reports a *SyntaxError wrapping
// io.ErrUnexpectedEOF if the input ended in the middle of a value. After
// Close, further writes report ErrClosed.
func (d *Decoder) Close() error {
	if d.err == ErrClosed {
		return nil
	} else if d.err != nil {
		return d.err
	}
	if d.lex == lexNumber && len(d.stk) == 0 {
		if err := d.endNumber(); err != nil {
			return d.setErr(err)
		}
	}
	if d.lex != lexNone || d.exp != expDoc {
		return d.setErr(d.eof())
	}
	d.err = ErrClosed
	return nil
}

// Token returns the type of the current token.
func (d *Decoder) Token() Token { return d.tok }

// Text returns the undecoded text of the current token. The return value is
// only valid until the next byte of input is consumed.
func (d *Decoder) Text() []byte { return d.buf }

// Copy returns a copy of the undecoded text of the current token.
func (d *Decoder) Copy() []byte { return append([]byte(nil), d.buf...) }

// Location returns the complete location of the current token.
func (d *Decoder) Location() Location {
	return Location{
		Span:  Span{Pos: d.pos, End: d.end},
		First: LineCol{Line: d.pline + 1, Column: d.pcol},
		Last:  LineCol{Line: d.pline + 1, Column: d.pcol + d.end - d.pos},
	}
}

func (d *Decoder) step(c byte) error {
	switch d.lex {
	case lexString, lexEscape, lexHex:
		return d.stepString(c)
	case lexConst:
		return d.stepConst(c)
	case lexNumber:
		if more, err := d.stepNumber(c); err != nil || more {
			return err
		}
		// The number is complete; c belongs to whatever follows it.
		if err := d.endNumber(); err != nil {
			return err
		}
	}
	return d.dispatch(c)
}

// dispatch handles a byte that is not part of a token in progress.
func (d *Decoder) dispatch(c byte) error {
	if isSpace(c) {
		if d.sh != nil {
			d.sh.Space(c)
		}
		return nil
	}

	d.start(c)
	switch c {
	case '{':
		d.tok = LBrace
		if err := d.beginValue(); err != nil {
			return err
		}
		d.stk = append(d.stk, LBrace)
		d.exp = expKeyOrEnd
		return d.h.BeginObject(d)

	case '[':
		d.tok = LSquare
		if err := d.beginValue(); err != nil {
			return err
		}
		d.stk = append(d.stk, LSquare)
		d.exp = expValueOrEnd
		return d.h.BeginArray(d)

	case '}':
		d.tok = RBrace
		if d.top() != LBrace || (d.exp != expKeyOrEnd && d.exp != expCommaOrEnd) {
			return d.unexpected()
		}
		d.stk = d.stk[:len(d.stk)-1]
		if err := d.h.EndObject(d); err != nil {
			return err
		}
		return d.endValue()

	case ']':
		d.tok = RSquare
		if d.top() != LSquare || (d.exp != expValueOrEnd && d.exp != expCommaOrEnd) {
			return d.unexpected()
		}
		d.stk = d.stk[:len(d.stk)-1]
		if err := d.h.EndArray(d); err != nil {
			return err
		}
		return d.endValue()

	case ',':
		d.tok = Comma
		if d.exp != expCommaOrEnd {
			return d.unexpected()
		}
		if d.top() == LBrace {
			d.exp = expKey
		} else {
			d.exp = expValue
		}
		return nil

	case ':':
		d.tok = Colon
		if d.exp != expColon {
			return d.unexpected()
		}
		d.exp = expValue
		return nil

	case '"':
		d.tok = String
		if d.exp == expKeyOrEnd || d.exp == expKey {
			d.key = true
		} else if err := d.beginValue(); err != nil {
			return err
		}
		d.lex = lexString
		return nil

	case 't', 'f', 'n':
		k := constants[c]
		d.tok = k.tok
		if err := d.beginValue(); err != nil {
			return err
		}
		d.lex, d.con = lexConst, k.text
		return nil
	}

	if c == '-' || isDigit(c) {
		d.tok = Integer
		if err := d.beginValue(); err != nil {
			return err
		}
		d.lex = lexNumber
		switch c {
		case '-':
			d.num = numSign
		case '0':
			d.num = numZero
		default:
			d.num = numInt
		}
		return nil
	}
	return d.failf("unexpected %q", c)
}

// start begins a new token whose first byte is c.
func (d *Decoder) start(c byte) {
	d.buf = append(d.buf[:0], c)
	d.pos, d.pline, d.pcol = d.off, d.line, d.col
	d.end = d.off + 1
}

// add appends c to the current token.
func (d *Decoder) add(c byte) {
	d.buf = append(d.buf, c)
	d.end = d.off + 1
}

func (d *Decoder) top() Token {
	if len(d.stk) == 0 {
		return Invalid
	}
	return d.stk[len(d.stk)-1]
}

// beginValue checks that a value may begin at the current token, and reports
// the start of a document if this is a top-level value.
func (d *Decoder) beginValue() error {
	switch d.exp {
	case expDoc:
		return d.h.BeginDocument(d)
	case expValue, expValueOrEnd:
		return nil
	}
	return d.unexpected()
}

// endValue updates the parser state after a complete value, and reports the
// end of a document if this was a top-level value.
func (d *Decoder) endValue() error {
	if len(d.stk) != 0 {
		d.exp = expCommaOrEnd
		return nil
	}
	d.exp = expDoc
	return d.h.EndDocument(d)
}

func (d *Decoder) stepString(c byte) error {
	switch d.lex {
	case lexEscape:
		switch c {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			d.lex = lexString
		case 'u':
			d.lex, d.hex = lexHex, 4
		default:
			return d.failf("invalid %q after escape", c)
		}

	case lexHex:
		if !isHexDigit(c) {
			return d.failf("invalid Unicode escape: not a hex digit: %q", c)
		}
		if d.hex--; d.hex == 0 {
			d.lex = lexString
		}

	default:
		if c == '"' {
			d.add(c)
			d.lex = lexNone
			if d.key {
				d.key = false
				d.exp = expColon
				return d.h.Key(d)
			}
			if err := d.h.Value(d); err != nil {
				return err
			}
			return d.endValue()
		} else if c < ' ' {
			return d.failf("unescaped control %q", c)
		} else if c == '\\' {
			d.lex = lexEscape
		}
	}
	d.add(c)
	return nil
}

// stepNumber consumes c as part of the number in progress. It reports false
// without error if c does not belong to the number.
func (d *Decoder) stepNumber(c byte) (bool, error) {
	switch d.num {
	case numSign:
		if !isDigit(c) {
			return false, d.failf("got %q, want digit", c)
		} else if c == '0' {
			d.num = numZero
		} else {
			d.num = numInt
		}

	case numZero, numInt:
		switch {
		case isDigit(c):
			if d.num == numZero {
				return false, d.failf("extra leading zeroes")
			}
		case c == '.':
			d.num = numDot
		case c == 'e' || c == 'E':
			d.num = numExp
		default:
			return false, nil
		}

	case numDot:
		if !isDigit(c) {
			return false, d.failf("no digits after decimal point")
		}
		d.num = numFrac

	case numFrac:
		switch {
		case isDigit(c):
		case c == 'e' || c == 'E':
			d.num = numExp
		default:
			return false, nil
		}

	case numExp:
		if c == '+' || c == '-' {
			d.num = numExpSign
		} else if isDigit(c) {
			d.num = numExpDigit
		} else {
			return false, d.failf("got %q, want sign or digit", c)
		}

	case numExpSign:
		if !isDigit(c) {
			return false, d.failf("missing exponent digits")
		}
		d.num = numExpDigit

	case numExpDigit:
		if !isDigit(c) {
			return false, nil
		}
	}
	d.add(c)
	return true, nil
}

func (d *Decoder) endNumber() error {
	if !d.num.complete() {
		return d.eof()
	}
	d.lex = lexNone
	if d.num == numZero || d.num == numInt {
		d.tok = Integer
	} else {
		d.tok = Number
	}
	if err := d.h.Value(d); err != nil {
		return err
	}
	return d.endValue()
}

func (d *Decoder) stepConst(c byte) error {
	if c != d.con[len(d.buf)] {
		return d.failf("unknown constant %q", string(append(d.buf, c)))
	}
	d.add(c)
	if len(d.buf) < len(d.con) {
		return nil
	}
	d.lex = lexNone
	if err := d.h.Value(d); err != nil {
		return err
	}
	return d.endValue()
}

// expected returns a human-readable label for the tokens acceptable next.
func (d *Decoder) expected() string {
	switch d.exp {
	case expValueOrEnd:
		return `value or "]"`
	case expKeyOrEnd:
		return `string or "}"`
	case expKey:
		return "string"
	case expColon:
		return `":"`
	case expCommaOrEnd:
		if d.top() == LBrace {
			return `"," or "}"`
		}
		return `"," or "]"`
	}
	return "value"
}

func (d *Decoder) unexpected() error {
	return d.failf("expected %s, got %v", d.expected(), d.tok)
}

func (d *Decoder) eof() error {
	msg := fmt.Sprintf("expected %s, got error: %v", d.expected(), io.ErrUnexpectedEOF)
	switch d.lex {
	case lexString, lexEscape, lexHex:
		msg = "unterminated string"
	case lexNumber:
		if d.num.complete() {
			msg = fmt.Sprintf("unexpected end of input after %q", d.buf)
		} else {
			msg = fmt.Sprintf("incomplete number %q", d.buf)
		}
	case lexConst:
		msg = fmt.Sprintf("incomplete constant %q", d.buf)
	}
	return &SyntaxError{
		Location: LineCol{Line: d.line + 1, Column: d.col},
		Message:  msg,
		err:      io.ErrUnexpectedEOF,
	}
}

func (d *Decoder) failf(msg string, args ...any) error {
	return &SyntaxError{
		Location: LineCol{Line: d.line + 1, Column: d.col},
		Message:  fmt.Sprintf(msg, args...),
		err:      posError{d.off, errors.New("invalid input")},
	}
}

func (d *Decoder) setErr(err error) error {
	d.err = err
	if serr, ok := err.(*SyntaxError); ok && d.eh != nil {
		d.eh.SyntaxError(serr)
	}
	return err
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }
