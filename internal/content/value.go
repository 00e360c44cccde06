// Package content models the schemaless section content blocks that page
// sections carry: a mapping from field name to either a scalar string or a
// repeater (an ordered list of string field mappings).
package content

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind discriminates the two supported value shapes.
type Kind int

const (
	KindScalar Kind = iota
	KindRepeater
)

// ErrUnsupportedShape reports a content value that is neither a string nor a
// list of field mappings.
var ErrUnsupportedShape = errors.New("content value must be a string or a list of field mappings")

// Value is a single content field: a scalar string or a repeater. The zero
// value is an empty scalar.
type Value struct {
	kind     Kind
	scalar   string
	repeater []map[string]string
}

// Scalar wraps a plain string value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Repeater wraps an ordered list of field mappings.
func Repeater(items []map[string]string) Value {
	return Value{kind: KindRepeater, repeater: items}
}

// Kind reports which shape this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// AsScalar returns the scalar string and whether the value is a scalar.
func (v Value) AsScalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// AsRepeater returns the repeater entries and whether the value is a repeater.
func (v Value) AsRepeater() ([]map[string]string, bool) {
	if v.kind != KindRepeater {
		return nil, false
	}
	return v.repeater, true
}

// Text returns the scalar string, or "" for repeaters. Template-friendly
// counterpart of AsScalar.
func (v Value) Text() string {
	return v.scalar
}

// Items returns the repeater entries, or nil for scalars. Template-friendly
// counterpart of AsRepeater.
func (v Value) Items() []map[string]string {
	return v.repeater
}

// MarshalJSON encodes a scalar as a JSON string and a repeater as a JSON
// array of objects.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindRepeater {
		items := v.repeater
		if items == nil {
			items = []map[string]string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts a JSON string or an array of objects. Non-string
// fields inside repeater entries are dropped rather than rejected; stored
// content is authored by hand and the tolerant read keeps rendering alive.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Scalar(s)
		return nil
	}

	var rawItems []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return ErrUnsupportedShape
	}

	items := make([]map[string]string, 0, len(rawItems))
	for _, rawItem := range rawItems {
		item := make(map[string]string, len(rawItem))
		for field, raw := range rawItem {
			var fieldValue string
			if err := json.Unmarshal(raw, &fieldValue); err != nil {
				continue
			}
			item[field] = fieldValue
		}
		items = append(items, item)
	}

	*v = Repeater(items)
	return nil
}

// Fields is the full content payload of one section, keyed by field name.
// It stores as a JSON text column.
type Fields map[string]Value

// Value implements driver.Valuer for gorm.
func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		f = Fields{}
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode section content: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for gorm.
func (f *Fields) Scan(src interface{}) error {
	if src == nil {
		*f = Fields{}
		return nil
	}

	var data []byte
	switch value := src.(type) {
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("decode section content: unsupported source type %T", src)
	}

	if len(data) == 0 {
		*f = Fields{}
		return nil
	}

	decoded := Fields{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode section content: %w", err)
	}
	*f = decoded
	return nil
}
