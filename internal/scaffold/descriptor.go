package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/plugsmith-labs/plugsmith/internal/manifest"
)

// BuildDescriptor is the generated package.json record. Field order here
// fixes the key order of the serialized document; map-valued dependency
// blocks serialize with alphabetically sorted keys.
type BuildDescriptor struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Scripts         ScriptSet         `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Files           []string          `json:"files"`
}

// ScriptSet declares the npm scripts of a generated project.
type ScriptSet struct {
	Build     string `json:"build"`
	Watch     string `json:"watch"`
	Typecheck string `json:"typecheck"`
	Prepack   string `json:"prepack"`
	Pack      string `json:"pack"`
}

// TypeCheckConfig is the generated tsconfig.json record.
type TypeCheckConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// CompilerOptions is the fixed compiler-option block for typed projects.
// esbuild produces the bundle; tsc runs with noEmit purely as a checker.
type CompilerOptions struct {
	Target           string   `json:"target"`
	Module           string   `json:"module"`
	ModuleResolution string   `json:"moduleResolution"`
	Lib              []string `json:"lib"`
	JSX              string   `json:"jsx"`
	Strict           bool     `json:"strict"`
	ESModuleInterop  bool     `json:"esModuleInterop"`
	SkipLibCheck     bool     `json:"skipLibCheck"`
	Declaration      bool     `json:"declaration"`
	OutDir           string   `json:"outDir"`
	NoEmit           bool     `json:"noEmit"`
}

// Version pins for generated projects, kept as data so bumps are one-line
// changes and tests can assert the full dependency surface.
var (
	runtimeDependencies = map[string]string{
		"react":     "^18.2.0",
		"react-dom": "^18.2.0",
	}

	baseDevDependencies = map[string]string{
		"esbuild":  "^0.19.11",
		"archiver": "^6.0.1",
	}

	typingDevDependencies = map[string]string{
		"typescript":       "^5.3.3",
		"@types/react":     "^18.2.45",
		"@types/react-dom": "^18.2.18",
		"@types/node":      "^20.10.5",
	}
)

// packagedFiles is the fixed pack list: built bundle, manifest, readme.
var packagedFiles = []string{manifest.EntryPoint, "plugin.json", "README.md"}

// buildCommand returns the esbuild invocation for the typing mode. Watch
// mode appends the continuous-rebuild flag.
func buildCommand(typed bool, watch bool) string {
	cmd := fmt.Sprintf("esbuild src/%s --bundle --outfile=%s", entryFileName(typed), manifest.EntryPoint)
	if watch {
		cmd += " --watch"
	}
	return cmd
}

// typecheckCommand returns tsc for typed projects and a no-op notice
// otherwise, so `npm run typecheck` succeeds in both modes.
func typecheckCommand(typed bool) string {
	if typed {
		return "tsc --noEmit"
	}
	return `echo "typecheck skipped (static typing not enabled)"`
}

// newBuildDescriptor assembles the package.json record for an answer set.
func newBuildDescriptor(a Answers) BuildDescriptor {
	deps := make(map[string]string, len(runtimeDependencies))
	for k, v := range runtimeDependencies {
		deps[k] = v
	}

	dev := make(map[string]string, len(baseDevDependencies)+len(typingDevDependencies))
	for k, v := range baseDevDependencies {
		dev[k] = v
	}
	if a.StaticTyping {
		for k, v := range typingDevDependencies {
			dev[k] = v
		}
	}

	return BuildDescriptor{
		Name:    a.Name,
		Version: manifest.InitialVersion,
		Main:    manifest.EntryPoint,
		Scripts: ScriptSet{
			Build:     buildCommand(a.StaticTyping, false),
			Watch:     buildCommand(a.StaticTyping, true),
			Typecheck: typecheckCommand(a.StaticTyping),
			Prepack:   "npm run build",
			Pack:      "node scripts/pack.js",
		},
		Dependencies:    deps,
		DevDependencies: dev,
		Files:           append([]string(nil), packagedFiles...),
	}
}

// newTypeCheckConfig returns the fixed tsconfig.json record.
func newTypeCheckConfig() TypeCheckConfig {
	return TypeCheckConfig{
		CompilerOptions: CompilerOptions{
			Target:           "ES2020",
			Module:           "ESNext",
			ModuleResolution: "node",
			Lib:              []string{"ES2020", "DOM"},
			JSX:              "react",
			Strict:           true,
			ESModuleInterop:  true,
			SkipLibCheck:     true,
			Declaration:      true,
			OutDir:           "dist",
			NoEmit:           true,
		},
		Include: []string{"src"},
		Exclude: []string{"node_modules", "dist"},
	}
}

// encodeJSON renders a derived record as indented JSON with a trailing newline.
func encodeJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return append(data, '\n'), nil
}
