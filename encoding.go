// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package wxstream

import (
	"errors"
	"strings"

	"github.com/creachadair/wxstream/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(nil, mem.S(src[1:len(src)-1]), -1)
}

// UnquoteLimit decodes the quoted JSON string in text, as Unquote, but
// returns at most limit bytes of the decoded value. If the decoded value is
// longer, it is truncated at the last complete UTF-8 sequence that fits.
func UnquoteLimit(text []byte, limit int) ([]byte, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(nil, mem.B(text[1:len(text)-1]), limit)
}
