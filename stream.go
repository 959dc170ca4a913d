// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package wxstream

import (
	"fmt"
	"io"
)

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, token type, and contents of the anchor.
type Anchor interface {
	Token() Token       // Returns the token type of the anchor
	Text() []byte       // Returns a view of the raw (undecoded) text of the anchor
	Copy() []byte       // Returns a copy of the raw text of the anchor
	Location() Location // Returns the full location of the anchor
}

// A Handler handles events from decoding an input stream. If a method reports
// an error, decoding stops and that error is returned to the caller.
// The decoder ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain information about the
// location after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new top-level value, whose first byte is at loc.
	BeginDocument(loc Anchor) error

	// End the current top-level value, whose last token is at loc.
	EndDocument(loc Anchor) error

	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Report an object key at loc. The text of the key is still quoted; the
	// handler is responsible for unescaping it if the plain string is
	// required (see wxstream.Unquote).
	Key(loc Anchor) error

	// Report a scalar value at the given location. The type of the value can
	// be recovered from the token. String tokens are quoted.
	Value(loc Anchor) error
}

// SpaceHandler is an optional interface that a Handler may implement to
// observe insignificant whitespace between tokens.
type SpaceHandler interface {
	Space(c byte)
}

// ErrorHandler is an optional interface that a Handler may implement to be
// notified when the input is found to be malformed. SyntaxError is called
// once, before the error is returned to the caller of the decoder.
type ErrorHandler interface {
	SyntaxError(err *SyntaxError)
}

// Stream is a stream parser that consumes input from a reader and delivers
// events to a Handler corresponding with the structure of the input.
type Stream struct {
	r    io.Reader
	size int
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream { return &Stream{r: r, size: 4096} }

// SetBufferSize sets the number of bytes s requests from its reader on each
// read. Values less than 1 are treated as 1.
func (s *Stream) SetBufferSize(n int) { s.size = max(n, 1) }

// Parse reads the input stream and delivers events to h until either an error
// occurs or the input is exhausted. In case of a syntax error, including input
// that ends in the middle of a value, the returned error has type
// [*SyntaxError]. An error reading the input is returned wrapped.
func (s *Stream) Parse(h Handler) error {
	d := NewDecoder(h)
	buf := make([]byte, s.size)
	for {
		nr, err := s.r.Read(buf)
		if nr > 0 {
			if _, werr := d.Write(buf[:nr]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return d.Close()
		} else if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// SyntaxError is the concrete type of errors reported by the decoder.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
