// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package project

import (
	"math"

	"github.com/creachadair/wxstream"
	"github.com/creachadair/wxstream/internal/escape"

	"go4.org/mem"
)

// maxNumberText bounds the decoded length of a string value that is
// interpreted as a number.
const maxNumberText = 64

// A Scalar is the undecoded text of a JSON scalar value, as reported by the
// decoder. Its conversions never fail: text that does not represent a value
// of the requested type converts to the zero value.
type Scalar struct {
	Token wxstream.Token
	Raw   []byte // string values include their quotation marks
}

// numeric returns the text of v to interpret as a number.
func (v Scalar) numeric() (mem.RO, bool) {
	switch v.Token {
	case wxstream.Integer, wxstream.Number:
		return mem.B(v.Raw), true
	case wxstream.String:
		if len(v.Raw) < 2 {
			return mem.RO{}, false
		}
		dec, err := escape.Unquote(nil, mem.B(v.Raw[1:len(v.Raw)-1]), maxNumberText)
		if err != nil {
			return mem.RO{}, false
		}
		return mem.TrimSpace(mem.B(dec)), true
	}
	return mem.RO{}, false
}

// Int64 returns v as an integer. A number with a fractional part is
// truncated toward zero. Values out of range for int64 convert to 0.
func (v Scalar) Int64() int64 {
	m, ok := v.numeric()
	if !ok {
		return 0
	}
	if z, err := mem.ParseInt(m, 10, 64); err == nil {
		return z
	}
	f, err := mem.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// Int returns v as an int, as Int64.
func (v Scalar) Int() int {
	z := v.Int64()
	if int64(int(z)) != z {
		return 0
	}
	return int(z)
}

// Float64 returns v as a finite floating-point value.
func (v Scalar) Float64() float64 {
	m, ok := v.numeric()
	if !ok {
		return 0
	}
	f, err := mem.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Text returns the text of v, at most limit bytes long. Strings are
// unquoted, null is empty, and other values are returned as written.
func (v Scalar) Text(limit int) string {
	switch v.Token {
	case wxstream.Null:
		return ""
	case wxstream.String:
		dec, err := wxstream.UnquoteLimit(v.Raw, limit)
		if err != nil {
			return ""
		}
		return string(dec)
	}
	dec, _ := escape.Unquote(nil, mem.B(v.Raw), limit)
	return string(dec)
}

// text returns a conversion of a scalar to text of at most limit bytes.
func text(limit int) func(Scalar) string {
	return func(v Scalar) string { return v.Text(limit) }
}
