// Package manifest defines the plugin.json record written at the root of
// every scaffolded plugin project. It provides deterministic serialization
// of the record and JSON Schema validation of serialized manifests.
package manifest
