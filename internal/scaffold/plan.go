package scaffold

import (
	"fmt"

	"github.com/plugsmith-labs/plugsmith/internal/manifest"
)

// File and directory names of a generated project.
const (
	manifestFile   = "plugin.json"
	descriptorFile = "package.json"
	typeConfigFile = "tsconfig.json"
	readmeFile     = "README.md"
	packScriptFile = "scripts/pack.js"
	srcDir         = "src"
	typesFile      = "src/types.ts"
)

// Plan computes the ordered artifact list for an answer record. It is pure
// and deterministic: identical answers yield byte-identical artifacts, and
// nothing touches the file system. The only error is an invalid record,
// which signals a bug in the caller rather than bad user input.
func Plan(a Answers) ([]Artifact, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answer record: %w", err)
	}

	manifestBytes, err := newManifest(a).Encode()
	if err != nil {
		return nil, err
	}

	descriptorBytes, err := encodeJSON(newBuildDescriptor(a))
	if err != nil {
		return nil, fmt.Errorf("encoding build descriptor: %w", err)
	}

	artifacts := []Artifact{
		{Path: ".", Dir: true},
		{Path: srcDir, Dir: true},
		{Path: manifestFile, Content: manifestBytes},
		{Path: descriptorFile, Content: descriptorBytes},
	}

	if a.StaticTyping {
		typeConfigBytes, err := encodeJSON(newTypeCheckConfig())
		if err != nil {
			return nil, fmt.Errorf("encoding type-check config: %w", err)
		}
		artifacts = append(artifacts, Artifact{Path: typeConfigFile, Content: typeConfigBytes})
	}

	artifacts = append(artifacts,
		Artifact{Path: readmeFile, Content: []byte(renderReadme(a))},
		Artifact{Path: packScriptFile, Content: []byte(packScript)},
	)

	if a.StaticTyping {
		artifacts = append(artifacts, Artifact{Path: typesFile, Content: []byte(renderTypesFile())})
	}

	artifacts = append(artifacts, Artifact{
		Path:    srcDir + "/" + entryFileName(a.StaticTyping),
		Content: []byte(renderEntryFile(a)),
	})

	return artifacts, nil
}

// newManifest derives the plugin.json record from the answers. Capability
// fields are set only for categories that expose them, and set to an empty
// list rather than omitted when the user declared no names.
func newManifest(a Answers) *manifest.Manifest {
	m := &manifest.Manifest{
		ID:          a.Name,
		Version:     manifest.InitialVersion,
		Type:        string(a.Category),
		EntryPoint:  manifest.EntryPoint,
		Permissions: []string{},
	}
	if a.Category.HasUI() {
		slots := append([]string{}, a.Slots...)
		m.Slots = &slots
	}
	if a.Category.HasMiddleware() {
		points := append([]string{}, a.Points...)
		m.MiddlewarePoints = &points
	}
	return m
}
