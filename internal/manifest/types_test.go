package manifest

import (
	"strings"
	"testing"
)

func TestEncode_FieldOrderAndPresence(t *testing.T) {
	slots := []string{"app-header"}
	m := &Manifest{
		ID:          "my-plugin",
		Version:     InitialVersion,
		Type:        TypeUI,
		EntryPoint:  EntryPoint,
		Permissions: []string{},
		Slots:       &slots,
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `{
  "id": "my-plugin",
  "version": "1.0.0",
  "type": "ui",
  "entryPoint": "dist/index.js",
  "permissions": [],
  "slots": [
    "app-header"
  ]
}
`
	if string(data) != want {
		t.Errorf("Encode() mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestEncode_EmptySlotsStayPresent(t *testing.T) {
	slots := []string{}
	m := &Manifest{
		ID:          "empty-ui",
		Version:     InitialVersion,
		Type:        TypeUI,
		EntryPoint:  EntryPoint,
		Permissions: []string{},
		Slots:       &slots,
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if !strings.Contains(string(data), `"slots": []`) {
		t.Errorf("expected empty slots key to be present, got:\n%s", data)
	}
	if strings.Contains(string(data), "middlewarePoints") {
		t.Errorf("expected middlewarePoints to be absent for a UI manifest, got:\n%s", data)
	}
}

func TestEncode_NilCapabilityFieldsOmitted(t *testing.T) {
	points := []string{"cache-read"}
	m := &Manifest{
		ID:               "my-mw",
		Version:          InitialVersion,
		Type:             TypeMiddleware,
		EntryPoint:       EntryPoint,
		Permissions:      []string{},
		MiddlewarePoints: &points,
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if strings.Contains(string(data), "slots") {
		t.Errorf("expected slots to be absent for a middleware manifest, got:\n%s", data)
	}
}

func TestEncode_RejectsBadVersion(t *testing.T) {
	m := &Manifest{
		ID:          "bad-version",
		Version:     "not-semver",
		Type:        TypeUI,
		EntryPoint:  EntryPoint,
		Permissions: []string{},
	}

	if _, err := m.Encode(); err == nil {
		t.Fatal("expected error for non-semver version, got nil")
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	slots := []string{"sidebar"}
	points := []string{"render-pre"}
	m := &Manifest{
		ID:               "round-trip",
		Version:          InitialVersion,
		Type:             TypeHybrid,
		EntryPoint:       EntryPoint,
		Permissions:      []string{},
		Slots:            &slots,
		MiddlewarePoints: &points,
	}

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.ID != m.ID || got.Type != m.Type {
		t.Errorf("Decode() = %+v, want id=%s type=%s", got, m.ID, m.Type)
	}
	if got.Slots == nil || len(*got.Slots) != 1 || (*got.Slots)[0] != "sidebar" {
		t.Errorf("Decode() slots = %v, want [sidebar]", got.Slots)
	}
	if got.MiddlewarePoints == nil || len(*got.MiddlewarePoints) != 1 {
		t.Errorf("Decode() middlewarePoints = %v, want one entry", got.MiddlewarePoints)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
