package pandoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for document decoding.
var (
	ErrDecodeDocument = errors.New("failed to decode pandoc document")
	ErrEncodeDocument = errors.New("failed to encode pandoc document")
)

// Document is the top-level pandoc JSON object. The API version is kept as
// raw JSON so the filter echoes back exactly what pandoc sent, whatever
// pandoc version invoked it.
type Document struct {
	APIVersion json.RawMessage `json:"pandoc-api-version"`
	Meta       map[string]any  `json:"meta"`
	Blocks     []any           `json:"blocks"`
}

// ReadDocument decodes one pandoc JSON document from r. Numbers are decoded
// as json.Number so integer fields (citation note numbers, list starts)
// survive the round trip without float formatting.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeDocument, err)
	}
	return &doc, nil
}

// WriteDocument encodes doc to w as a single JSON object followed by a
// newline. HTML escaping is disabled so raw TeX chunks stay readable.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeDocument, err)
	}
	return nil
}
