package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter buffers records and flushes them as YAML documents.
type yamlWriter struct {
	w     *bufio.Writer
	items []any
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (w *yamlWriter) Write(record any) error {
	w.items = append(w.items, record)
	return nil
}

func (w *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	for _, item := range w.items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
