// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unquoting of JSON strings into bounded buffers.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string and
// appends the result to dst. The input must have the enclosing double
// quotation marks already removed.
//
// If limit ≥ 0, at most limit bytes are appended to dst, and the decoded
// string is truncated at the last complete UTF-8 sequence that fits. A
// negative limit means no limit.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence that occurs before the limit.
func Unquote(dst []byte, src mem.RO, limit int) ([]byte, error) {
	b := bounded{buf: dst, room: limit}
	if limit < 0 {
		b.room = -1
	}

	i := mem.IndexByte(src, '\\')
	if i < 0 {
		b.put(src)
		return b.buf, nil
	}

	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		b.put(mem.B(buf[:n]))
	}
	for src.Len() != 0 && !b.full() {
		b.put(src.SliceTo(i))
		if b.full() {
			break
		}

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putRune(r)
		case 'b':
			putRune('\b')
		case 'f':
			putRune('\f')
		case 'n':
			putRune('\n')
		case 'r':
			putRune('\r')
		case 't':
			putRune('\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				putRune(utf8.RuneError)
			} else {
				putRune(rune(v))
			}
			src = src.SliceFrom(4)
		default:
			putRune(utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			b.put(src)
			break
		}
	}
	return b.buf, nil
}

// bounded is an output buffer that accepts at most room more bytes.
// A negative room means no limit.
type bounded struct {
	buf  []byte
	room int
	done bool // a write was truncated
}

func (b *bounded) full() bool { return b.done || b.room == 0 }

// put appends as much of m as fits, without splitting a UTF-8 sequence.
func (b *bounded) put(m mem.RO) {
	if b.done {
		return
	} else if b.room < 0 {
		b.buf = mem.Append(b.buf, m)
		return
	}
	n := m.Len()
	if n > b.room {
		n = b.room
		for n > 0 && !utf8.RuneStart(m.At(n)) {
			n--
		}
		b.done = true
	}
	b.buf = mem.Append(b.buf, m.SliceTo(n))
	b.room -= n
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
