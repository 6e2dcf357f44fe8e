package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Category constants for the type discriminator field.
const (
	TypeUI         = "ui"
	TypeMiddleware = "middleware"
	TypeHybrid     = "hybrid"
)

// ValidTypes lists all valid type discriminator values.
var ValidTypes = []string{TypeUI, TypeMiddleware, TypeHybrid}

// Fixed generation-time values. The initial version and the entry point
// are deliberately not user-configurable.
const (
	// InitialVersion is the version every freshly scaffolded plugin starts at.
	InitialVersion = "1.0.0"

	// EntryPoint is the bundled artifact the host loads, relative to the
	// project root. The build descriptor's main field and build scripts
	// point at the same path.
	EntryPoint = "dist/index.js"
)

// Manifest is the plugin.json record. Field order here fixes the key order
// of the serialized document.
//
// Slots and MiddlewarePoints are pointers so the capability fields can
// distinguish "present but empty" from "absent": a UI plugin with no slots
// still serializes "slots": [], while a middleware plugin omits the key
// entirely.
type Manifest struct {
	ID               string    `json:"id"`
	Version          string    `json:"version"`
	Type             string    `json:"type"`
	EntryPoint       string    `json:"entryPoint"`
	Permissions      []string  `json:"permissions"`
	Slots            *[]string `json:"slots,omitempty"`
	MiddlewarePoints *[]string `json:"middlewarePoints,omitempty"`
}

// Encode renders the manifest as indented JSON with a trailing newline.
// The version field must be strict semver; a bad version is a programming
// error in the caller, not a user input problem.
func (m *Manifest) Encode() ([]byte, error) {
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		return nil, fmt.Errorf("manifest version %q: %w", m.Version, err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses serialized plugin.json bytes into a Manifest.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return &m, nil
}
