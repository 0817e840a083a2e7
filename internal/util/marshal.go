package util

import (
	"bytes"
	"encoding/json"
	"io"
)

// MarshalNoEscape behaves like json.Marshal but keeps <, >, & intact.
func MarshalNoEscape(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v, indent); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON streams v to w the same way, newline terminated.
func WriteJSON(w io.Writer, v any, indent bool) error {
	return encode(w, v, indent)
}

func encode(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
