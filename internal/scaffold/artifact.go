package scaffold

// Artifact is one planned output: a slash-separated path relative to the
// project root, plus either file content or a directory hint.
type Artifact struct {
	Path    string
	Content []byte
	Dir     bool
}

// Files returns only the file artifacts, preserving plan order.
func Files(artifacts []Artifact) []Artifact {
	files := make([]Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if !a.Dir {
			files = append(files, a)
		}
	}
	return files
}
