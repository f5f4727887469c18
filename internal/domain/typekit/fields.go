package typekit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrNotObject is returned when a JSON document is not an object.
var ErrNotObject = errors.New("json document is not an object")

// ErrTrailingData is returned when anything but whitespace follows the object.
var ErrTrailingData = errors.New("trailing data after json object")

// Field is one key/value pair of an object, in document order.
type Field struct {
	Name  string
	Value any
}

// FieldsFromMap returns the entries of obj sorted by key.
func FieldsFromMap(obj map[string]any) []Field {
	fields := make([]Field, 0, len(obj))
	for name, value := range obj {
		fields = append(fields, Field{Name: name, Value: value})
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})

	return fields
}

// DecodeFields decodes a JSON object keeping its keys in document order. A
// repeated key keeps its first position and its last value.
func DecodeFields(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	var fields []Field

	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("read value of %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			fields[i].Value = value
			continue
		}

		index[key] = len(fields)
		fields = append(fields, Field{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("read json: %w", err)
		}

		return nil, fmt.Errorf("%w: unexpected %v", ErrTrailingData, tok)
	}

	return fields, nil
}
