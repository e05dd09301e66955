package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter buffers records and flushes them as one JSON document: a bare
// object for a single record, an array for several.
type jsonWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	items  []any
}

func newJSONWriter(w io.Writer, pretty bool, indent string) *jsonWriter {
	return &jsonWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

func (w *jsonWriter) Write(record any) error {
	w.items = append(w.items, record)
	return nil
}

func (w *jsonWriter) Flush() error {
	var payload any
	switch len(w.items) {
	case 0:
		return w.w.Flush()
	case 1:
		payload = w.items[0]
	default:
		payload = w.items
	}

	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(payload, "", w.indent)
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// jsonlWriter streams one JSON object per line as records arrive.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (w *jsonlWriter) Write(record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *jsonlWriter) Flush() error {
	return w.w.Flush()
}
