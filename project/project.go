// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package project projects OpenWeather JSON documents into fixed-capacity
// weather records as the document is decoded, without building a tree.
//
// The projector tracks the position of each value within the document using
// only the structural events of the decoder, and routes each scalar value to
// a field of a caller-supplied record. Unrecognized keys and sections are
// ignored, as are values for records the caller did not supply.
//
// To project a complete document from a reader, use Decode:
//
//	cur := new(weather.Current)
//	hrs := weather.NewHourly(24)
//	res, err := project.Decode(body, project.Options{}, project.Targets{
//	   Current: cur,
//	   Hourly:  hrs,
//	})
//	if err != nil {
//	   log.Printf("Incomplete forecast (%d values): %v", res.Writes, err)
//	}
//
// Fields written before an error are retained. To drive the projector from
// another event source, construct a Handler with NewHandler.
package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/creachadair/wxstream"
	"github.com/creachadair/wxstream/weather"
)

// Variant selects the shape of the document to be projected.
type Variant int

const (
	// NestedForecast is a combined forecast document with current,
	// hourly, and daily sections ("onecall").
	NestedForecast Variant = iota

	// FlatCurrent is a current-conditions document ("weather").
	FlatCurrent
)

func (v Variant) String() string {
	switch v {
	case NestedForecast:
		return "onecall"
	case FlatCurrent:
		return "weather"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Mode selects how many fields of a NestedForecast document are recorded.
type Mode int

const (
	Full    Mode = iota // record every recognized field
	Reduced             // record a minimal subset of fields
)

// Options configure a projection. A zero Options is ready for use, and
// projects a NestedForecast document in Full mode.
type Options struct {
	Variant Variant
	Mode    Mode

	// If not nil, events and routing decisions are logged at debug level.
	Logger *slog.Logger
}

// Targets are the destination records of a projection. A nil record
// excludes its section: values for that section are ignored.
//
// The projector does not retain the records after the projection ends.
type Targets struct {
	Location *weather.Location
	Current  *weather.Current
	Hourly   *weather.Hourly
	Daily    *weather.Daily
}

// Exclude returns the names of the forecast sections whose records are
// absent, in the spelling of an OpenWeather "exclude" query parameter.
func (t Targets) Exclude() []string {
	var out []string
	if t.Current == nil {
		out = append(out, "current")
	}
	if t.Hourly == nil {
		out = append(out, "hourly")
	}
	if t.Daily == nil {
		out = append(out, "daily")
	}
	return out
}

// Result summarizes a projection.
type Result struct {
	Section string // the last named section visited
	Writes  int    // number of field values stored
	Dropped int    // number of series values beyond the record capacity
}

// ErrNoDocument is reported when the input contains no JSON value.
var ErrNoDocument = errors.New("no document found")

// ErrIncomplete is reported by Finish when a document was begun but not
// completed.
var ErrIncomplete = errors.New("incomplete document")

// Decode projects the document read from r into dst, and reports a summary
// of the fields written. Decode reports an error if the input is malformed,
// ends before the document is complete, or cannot be read; in that case the
// fields written before the error are retained.
func Decode(r io.Reader, opts Options, dst Targets) (Result, error) {
	h := NewHandler(opts, dst)
	if err := wxstream.NewStream(r).Parse(h); err != nil {
		h.fail(err)
	}
	return h.Finish()
}

// A Handler implements the wxstream.Handler interface to project a document
// into a set of destination records. A Handler holds references to its
// records until Finish is called.
//
// Each document reported to the handler is projected afresh, with no state
// carried over from a previous document.
type Handler struct {
	schema schema
	log    *slog.Logger // nil if not tracing
	dst    Targets

	ctx    pathContext
	active bool // a document is in progress
	seen   bool // at least one document has begun
	err    error
	res    Result
}

// NewHandler constructs a Handler that projects into dst.
func NewHandler(opts Options, dst Targets) *Handler {
	h := &Handler{schema: schemaFor(opts.Variant, opts.Mode), dst: dst}
	if opts.Logger != nil && opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		h.log = opts.Logger.With("variant", opts.Variant.String())
	}
	return h
}

// Finish ends the projection and reports its result. After Finish, h holds
// no references to its destination records, and ignores further events.
func (h *Handler) Finish() (Result, error) {
	if h.err == nil {
		if h.active {
			h.err = ErrIncomplete
		} else if !h.seen {
			h.err = ErrNoDocument
		}
	}
	h.dst = Targets{}
	h.schema = nil
	h.active = false
	return h.res, h.err
}

// fail records err as the outcome of the projection, if no other error has
// already been recorded.
func (h *Handler) fail(err error) {
	if h.err == nil {
		h.err = err
	}
	h.active = false
}

func (h *Handler) trace(msg string, args ...any) {
	if h.log != nil {
		h.log.Debug(msg, append(args,
			"depth", h.ctx.depth, "arrays", h.ctx.arrays, "index", h.ctx.index,
			"parent", h.ctx.parent, "set", h.ctx.set)...)
	}
}

// BeginDocument implements part of the wxstream.Handler interface.
func (h *Handler) BeginDocument(loc wxstream.Anchor) error {
	h.ctx = pathContext{}
	h.active, h.seen = true, true
	h.trace("begin document")
	return nil
}

// EndDocument implements part of the wxstream.Handler interface.
func (h *Handler) EndDocument(loc wxstream.Anchor) error {
	h.ctx = pathContext{}
	h.active = false
	h.trace("end document", "section", h.res.Section)
	return nil
}

// BeginObject implements part of the wxstream.Handler interface.
func (h *Handler) BeginObject(loc wxstream.Anchor) error {
	h.ctx.beginObject()
	h.trace("begin object")
	return nil
}

// EndObject implements part of the wxstream.Handler interface.
func (h *Handler) EndObject(loc wxstream.Anchor) error {
	h.ctx.endObject()
	h.trace("end object")
	return nil
}

// BeginArray implements part of the wxstream.Handler interface.
func (h *Handler) BeginArray(loc wxstream.Anchor) error {
	h.ctx.beginArray()
	h.trace("begin array", "path", h.ctx.arrayPath)
	return nil
}

// EndArray implements part of the wxstream.Handler interface.
func (h *Handler) EndArray(loc wxstream.Anchor) error {
	h.ctx.endArray()
	h.trace("end array")
	return nil
}

// Key implements part of the wxstream.Handler interface.
func (h *Handler) Key(loc wxstream.Anchor) error {
	h.ctx.setKey(keyString(loc.Text()))
	return nil
}

// Value implements part of the wxstream.Handler interface.
func (h *Handler) Value(loc wxstream.Anchor) error {
	if h.schema == nil {
		return nil
	}
	v := Scalar{Token: loc.Token(), Raw: loc.Text()}
	if h.log != nil {
		h.trace("value", "key", h.ctx.key, "text", string(v.Raw))
	}
	h.route(v)
	return nil
}

// SyntaxError implements the wxstream.ErrorHandler interface.
func (h *Handler) SyntaxError(err *wxstream.SyntaxError) {
	h.trace("syntax error", "error", err)
	h.fail(err)
}

// keyString returns the unquoted text of a key token.
func keyString(text []byte) string {
	if len(text) < 2 {
		return ""
	}
	inner := text[1 : len(text)-1]
	for _, b := range inner {
		if b == '\\' {
			dec, err := wxstream.UnquoteLimit(text, -1)
			if err != nil {
				return ""
			}
			return string(dec)
		}
	}
	return string(inner)
}
