package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeJSON renders v as two-space indented JSON without a trailing
// newline. HTML characters are left alone and every non-ASCII character is
// written as a \u escape, so the output is pure ASCII.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("storage: encode json: %w", err)
	}
	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites multi-byte runes as \uXXXX, using surrogate
// pairs above the BMP. Non-ASCII bytes only occur inside JSON strings.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}

// WriteJSON encodes v and writes it atomically to path.
func WriteJSON(p Provider, path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return p.Write(path, data)
}
