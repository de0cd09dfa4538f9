package schema

import (
	"encoding/json"
	"io"
)

// encodeJSON writes v as compact JSON followed by a newline.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// EncodeScore writes doc as a single JSON line.
func EncodeScore(w io.Writer, doc *ScoreDocument) error { return encodeJSON(w, doc) }
