package content

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnmarshalScalar(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`"Build the future"`), &v); err != nil {
		t.Fatalf("unmarshal scalar returned error: %v", err)
	}

	text, ok := v.AsScalar()
	if !ok {
		t.Fatal("expected a scalar value")
	}
	if text != "Build the future" {
		t.Fatalf("expected scalar text, got %q", text)
	}
	if _, ok := v.AsRepeater(); ok {
		t.Fatal("scalar must not report as repeater")
	}
}

func TestUnmarshalRepeater(t *testing.T) {
	payload := `[{"title":"Design","icon":"/img/design.svg"},{"title":"Build"}]`

	var v Value
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("unmarshal repeater returned error: %v", err)
	}

	items, ok := v.AsRepeater()
	if !ok {
		t.Fatal("expected a repeater value")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["title"] != "Design" || items[0]["icon"] != "/img/design.svg" {
		t.Fatalf("unexpected first item: %v", items[0])
	}
	if items[1]["title"] != "Build" {
		t.Fatalf("unexpected second item: %v", items[1])
	}
}

func TestUnmarshalRepeaterDropsNonStringFields(t *testing.T) {
	payload := `[{"title":"Design","order":3,"visible":true}]`

	var v Value
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		t.Fatalf("unmarshal repeater returned error: %v", err)
	}

	items, _ := v.AsRepeater()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if _, exists := items[0]["order"]; exists {
		t.Fatal("numeric field should have been dropped")
	}
	if _, exists := items[0]["visible"]; exists {
		t.Fatal("boolean field should have been dropped")
	}
	if items[0]["title"] != "Design" {
		t.Fatalf("string field should survive, got %v", items[0])
	}
}

func TestUnmarshalRejectsUnsupportedShape(t *testing.T) {
	for _, payload := range []string{`42`, `true`, `{"title":"x"}`, `["a","b"]`} {
		var v Value
		err := json.Unmarshal([]byte(payload), &v)
		if !errors.Is(err, ErrUnsupportedShape) {
			t.Fatalf("payload %s: expected ErrUnsupportedShape, got %v", payload, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	fields := Fields{
		"title": Scalar("Our Services"),
		"items": Repeater([]map[string]string{{"label": "Web"}, {"label": "Mobile"}}),
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal fields returned error: %v", err)
	}

	decoded := Fields{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal fields returned error: %v", err)
	}

	if decoded["title"].Text() != "Our Services" {
		t.Fatalf("expected title to survive, got %q", decoded["title"].Text())
	}
	items := decoded["items"].Items()
	if len(items) != 2 || items[1]["label"] != "Mobile" {
		t.Fatalf("expected repeater to survive, got %v", items)
	}
}

func TestFieldsScanHandlesNilAndEmpty(t *testing.T) {
	var f Fields
	if err := f.Scan(nil); err != nil {
		t.Fatalf("scan nil returned error: %v", err)
	}
	if f == nil || len(f) != 0 {
		t.Fatalf("expected empty mapping for nil source, got %v", f)
	}

	if err := f.Scan(""); err != nil {
		t.Fatalf("scan empty string returned error: %v", err)
	}
	if len(f) != 0 {
		t.Fatalf("expected empty mapping for empty source, got %v", f)
	}
}

func TestFieldsValueScanRoundTrip(t *testing.T) {
	fields := Fields{"hero": Scalar("Mutant-grade work")}

	stored, err := fields.Value()
	if err != nil {
		t.Fatalf("value returned error: %v", err)
	}

	text, ok := stored.(string)
	if !ok {
		t.Fatalf("expected string storage, got %T", stored)
	}

	var loaded Fields
	if err := loaded.Scan(text); err != nil {
		t.Fatalf("scan returned error: %v", err)
	}
	if loaded["hero"].Text() != "Mutant-grade work" {
		t.Fatalf("expected round trip, got %q", loaded["hero"].Text())
	}
}

func TestZeroValueIsEmptyScalar(t *testing.T) {
	var v Value
	if v.Kind() != KindScalar {
		t.Fatal("zero value must be a scalar")
	}
	if v.Text() != "" {
		t.Fatalf("expected empty text, got %q", v.Text())
	}
	if v.Items() != nil {
		t.Fatal("expected nil items for scalar zero value")
	}
}
