// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package wxstream_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/wxstream"
	"github.com/google/go-cmp/cmp"
)

func TestDecoderLocation(t *testing.T) {
	const input = "{\n  \"a\": 15,\n  \"bc\": [true]\n}\n"

	lh := new(locHandler)
	d := wxstream.NewDecoder(lh)
	if _, err := d.Write([]byte(input)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := []string{
		`{ 0-1 1:0-1:1`,
		`"a" 4-7 2:2-2:5`,
		`15 9-11 2:7-2:9`,
		`"bc" 15-19 3:2-3:6`,
		`[ 21-22 3:8-3:9`,
		`true 22-26 3:9-3:13`,
		`] 26-27 3:13-3:14`,
		`} 28-29 4:0-4:1`,
	}
	if diff := cmp.Diff(want, lh.locs); diff != "" {
		t.Errorf("Locations (-want, +got):\n%s", diff)
	}
	if lh.spaces != strings.Count(input, " ")+strings.Count(input, "\n") {
		t.Errorf("Got %d spaces, want %d", lh.spaces, strings.Count(input, " ")+strings.Count(input, "\n"))
	}
}

func TestDecoderClose(t *testing.T) {
	d := wxstream.NewDecoder(new(testHandler))
	if _, err := d.Write([]byte(`[1, 2]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Second Close: got %v, want nil", err)
	}
	if err := d.WriteByte('1'); !errors.Is(err, wxstream.ErrClosed) {
		t.Errorf("WriteByte after Close: got %v, want %v", err, wxstream.ErrClosed)
	}

	d.Reset()
	if err := d.WriteByte('7'); err != nil {
		t.Errorf("WriteByte after Reset: unexpected error: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close after Reset: unexpected error: %v", err)
	}
}

func TestDecoderStickyError(t *testing.T) {
	th := new(testHandler)
	d := wxstream.NewDecoder(th)

	n, err := d.Write([]byte(`[1,,2]`))
	if err == nil {
		t.Fatal("Write did not report an error")
	}
	if n != 3 {
		t.Errorf("Write: got n=%d, want 3", n)
	}
	if err2 := d.WriteByte(']'); err2 != err {
		t.Errorf("WriteByte after error: got %v, want %v", err2, err)
	}
	if err2 := d.Close(); err2 != err {
		t.Errorf("Close after error: got %v, want %v", err2, err)
	}
	if th.serr == nil {
		t.Error("SyntaxError was not notified")
	}
}

func TestDecoderDepth(t *testing.T) {
	d := wxstream.NewDecoder(new(testHandler))
	for i, tc := range []struct {
		input string
		depth int
	}{
		{`{"a":`, 1},
		{`[`, 2},
		{`{"b":[`, 4},
		{`]}`, 2},
		{`]`, 1},
		{`}`, 0},
	} {
		if _, err := d.Write([]byte(tc.input)); err != nil {
			t.Fatalf("Write %d %q: %v", i+1, tc.input, err)
		}
		if got := d.Depth(); got != tc.depth {
			t.Errorf("Write %d %q: depth is %d, want %d", i+1, tc.input, got, tc.depth)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		limit int
		want  string
	}{
		{`""`, -1, ""},
		{`"abc"`, -1, "abc"},
		{`"a\tb\nc"`, -1, "a\tb\nc"},
		{`"été"`, -1, "été"},
		{`"\"\\\/"`, -1, `"\/`},
		{`"abcdef"`, 3, "abc"},
		{`"été"`, 2, "é"},
		{`"été"`, 1, ""},
		{`"été"`, 4, "ét"},
	}
	for _, tc := range tests {
		got, err := wxstream.UnquoteLimit([]byte(tc.input), tc.limit)
		if err != nil {
			t.Errorf("UnquoteLimit(%#q, %d): unexpected error: %v", tc.input, tc.limit, err)
		} else if string(got) != tc.want {
			t.Errorf("UnquoteLimit(%#q, %d): got %q, want %q", tc.input, tc.limit, got, tc.want)
		}
	}

	if got, err := wxstream.Unquote(`"xAy"`); err != nil || string(got) != "xAy" {
		t.Errorf("Unquote: got %q, %v; want %q, nil", got, err, "xAy")
	}
	for _, bad := range []string{``, `"`, `abc`, `"abc`, `"a\"`, `"\u12"`} {
		if got, err := wxstream.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}

type locHandler struct {
	locs   []string
	spaces int
}

func (h *locHandler) mark(loc wxstream.Anchor) error {
	l := loc.Location()
	h.locs = append(h.locs, fmt.Sprintf("%s %d-%d %s-%s", loc.Text(), l.Pos, l.End, l.First, l.Last))
	return nil
}

func (h *locHandler) BeginDocument(wxstream.Anchor) error   { return nil }
func (h *locHandler) EndDocument(wxstream.Anchor) error     { return nil }
func (h *locHandler) BeginObject(loc wxstream.Anchor) error { return h.mark(loc) }
func (h *locHandler) EndObject(loc wxstream.Anchor) error   { return h.mark(loc) }
func (h *locHandler) BeginArray(loc wxstream.Anchor) error  { return h.mark(loc) }
func (h *locHandler) EndArray(loc wxstream.Anchor) error    { return h.mark(loc) }
func (h *locHandler) Key(loc wxstream.Anchor) error         { return h.mark(loc) }
func (h *locHandler) Value(loc wxstream.Anchor) error       { return h.mark(loc) }
func (h *locHandler) Space(byte)                            { h.spaces++ }
