// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package project

import "github.com/creachadair/wxstream/weather"

// A target identifies which destination record a field is written to.
type target byte

const (
	toLocation target = iota
	toCurrent
	toHourly
	toDaily
)

// A field describes how to store one scalar value. The set function writes
// the value at series position i; it is only called when the target record
// is present and i is within its capacity.
type field struct {
	target  target
	reduced bool // the field is recorded in Reduced mode
	set     func(d *Targets, i int, v Scalar)
}

// inReduced returns a copy of f that is also recorded in Reduced mode.
func (f field) inReduced() field { f.reduced = true; return f }

// A section is the routing table for the scalars of one logical parent.
type section struct {
	name string // diagnostic label, empty for the document root
	keys map[string]field

	// Fields grouped inside a named object of a series element, keyed by the
	// logical set and then by key. They are consulted only when no entry in
	// keys matches.
	sets map[string]map[string]field
}

// lookup returns the field for key in the logical set, if there is one.
func (s *section) lookup(set, key string) (field, bool) {
	if f, ok := s.keys[key]; ok {
		return f, true
	}
	f, ok := s.sets[set][key]
	return f, ok
}

// A schema maps logical parent names to their routing tables.
type schema map[string]*section

// reduce returns a copy of s containing only the fields recorded in Reduced
// mode. Sections left with no fields are omitted.
func (s schema) reduce() schema {
	out := make(schema)
	for parent, sec := range s {
		cp := &section{name: sec.name, keys: filter(sec.keys)}
		for set, fields := range sec.sets {
			if kept := filter(fields); len(kept) != 0 {
				if cp.sets == nil {
					cp.sets = make(map[string]map[string]field)
				}
				cp.sets[set] = kept
			}
		}
		if len(cp.keys) != 0 || len(cp.sets) != 0 {
			out[parent] = cp
		}
	}
	return out
}

func filter(fields map[string]field) map[string]field {
	out := make(map[string]field)
	for key, f := range fields {
		if f.reduced {
			out[key] = f
		}
	}
	return out
}

// Constructors for fields of each destination record. The conversion maps
// the scalar to the type of the destination; the accessor selects the
// destination within the record.

func loc[T any](conv func(Scalar) T, p func(*weather.Location) *T) field {
	return field{target: toLocation, set: func(d *Targets, _ int, v Scalar) {
		*p(d.Location) = conv(v)
	}}
}

func cur[T any](conv func(Scalar) T, p func(*weather.Current) *T) field {
	return field{target: toCurrent, set: func(d *Targets, _ int, v Scalar) {
		*p(d.Current) = conv(v)
	}}
}

func hour[T any](conv func(Scalar) T, col func(*weather.Hourly) []T) field {
	return field{target: toHourly, set: func(d *Targets, i int, v Scalar) {
		if c := col(d.Hourly); i < len(c) {
			c[i] = conv(v)
		}
	}}
}

func day[T any](conv func(Scalar) T, col func(*weather.Daily) []T) field {
	return field{target: toDaily, set: func(d *Targets, i int, v Scalar) {
		if c := col(d.Daily); i < len(c) {
			c[i] = conv(v)
		}
	}}
}

// route stores v according to the current path, if the path and key
// identify a field whose destination is present. Unmatched values are
// ignored.
func (h *Handler) route(v Scalar) {
	sec, ok := h.schema[h.ctx.parent]
	if !ok {
		return
	}
	if sec.name != "" {
		h.res.Section = sec.name
	}
	f, ok := sec.lookup(h.ctx.set, h.ctx.key)
	if !ok {
		return
	}

	i := 0
	switch f.target {
	case toLocation:
		if h.dst.Location == nil {
			return
		}
	case toCurrent:
		if h.dst.Current == nil {
			return
		}
	case toHourly:
		if h.dst.Hourly == nil {
			return
		}
		i = h.ctx.index
		if i >= h.dst.Hourly.Cap() {
			h.res.Dropped++
			return
		}
		h.dst.Hourly.Steps = max(h.dst.Hourly.Steps, i+1)
	case toDaily:
		if h.dst.Daily == nil {
			return
		}
		i = h.ctx.index
		if i >= h.dst.Daily.Cap() {
			h.res.Dropped++
			return
		}
		h.dst.Daily.Steps = max(h.dst.Daily.Steps, i+1)
	}
	f.set(&h.dst, i, v)
	h.res.Writes++
}
