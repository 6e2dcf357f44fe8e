package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// EmitError reports a failed write, carrying the offending artifact path
// relative to the project root and the underlying cause.
type EmitError struct {
	Path string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

// Result holds the outcome of an emission.
type Result struct {
	Root  string   // project root the artifacts were written under
	Files []string // relative paths of files written, in emission order
}

// Emitter writes planned artifacts to disk. Construct with NewEmitter; the
// write operations are injectable so tests can fail them at will.
type Emitter struct {
	writeFile func(name string, data []byte, perm os.FileMode) error
	mkdirAll  func(path string, perm os.FileMode) error
}

// NewEmitter returns an Emitter backed by the real file system.
func NewEmitter() *Emitter {
	return &Emitter{
		writeFile: os.WriteFile,
		mkdirAll:  os.MkdirAll,
	}
}

// Emit writes artifacts under root in plan order. Parent directories are
// created as needed and existing files are overwritten without prompting.
// The first failure halts emission: artifacts already written stay on disk,
// no later artifact is attempted, and the returned Result reports what made
// it out before the failure.
func (e *Emitter) Emit(artifacts []Artifact, root string) (*Result, error) {
	result := &Result{Root: root}

	for _, a := range artifacts {
		target := filepath.Join(root, filepath.FromSlash(a.Path))

		if a.Dir {
			if err := e.mkdirAll(target, 0755); err != nil {
				return result, &EmitError{Path: a.Path, Err: err}
			}
			continue
		}

		if err := e.mkdirAll(filepath.Dir(target), 0755); err != nil {
			return result, &EmitError{Path: a.Path, Err: err}
		}
		if err := e.writeFile(target, a.Content, 0644); err != nil {
			return result, &EmitError{Path: a.Path, Err: err}
		}
		result.Files = append(result.Files, a.Path)
	}

	return result, nil
}
