// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package project

// A pathContext tracks just enough of the position of the decoder within a
// document to route scalar values. It is driven by the structural events of
// the decoder and stores no data.
//
// The tracker assumes the input is well-formed; the decoder guarantees this.
type pathContext struct {
	depth  int    // number of open objects
	arrays int    // number of open arrays
	index  int    // position within the outermost open array
	parent string // the section: the key of the object opened at depth 1
	set    string // the key of the most recently opened object
	key    string // the most recent key

	arrayPath string // parent/key of the most recently opened array, for tracing
}

func (p *pathContext) beginObject() {
	// Only the first element of a series names the section; later elements
	// keep the parent established by the first.
	if p.index == 0 && p.depth == 1 {
		p.parent = p.key
	}
	p.set = p.key
	p.depth++
}

func (p *pathContext) endObject() {
	if p.arrays == 0 {
		p.parent = ""
	}
	if p.arrays == 1 && p.depth == 2 {
		p.index++ // one series element is complete
	}
	if p.depth > 0 {
		p.depth--
	}
}

func (p *pathContext) beginArray() {
	p.arrays++
	p.arrayPath = p.parent + "/" + p.key
}

func (p *pathContext) endArray() {
	if p.arrays > 0 {
		p.arrays--
	}
	if p.arrays == 0 {
		p.index = 0
	}
	p.arrayPath = ""
}

func (p *pathContext) setKey(key string) { p.key = key }
