package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plugsmith-labs/plugsmith/internal/branding"
)

// entryFileName returns the entry stub filename for the typing mode.
func entryFileName(typed bool) string {
	if typed {
		return "index.tsx"
	}
	return "index.jsx"
}

// sharedTypeBlock declares the host services every plugin sees. It heads
// the generated src/types.ts.
const sharedTypeBlock = `// Shared plugin type definitions.

/** Host services exposed to every plugin. */
export interface PluginAPI {
  /** Writes a namespaced line to the host log. */
  log(message: string): void;
  /** Reads a persisted setting scoped to this plugin. */
  getSetting(key: string): unknown;
  /** Emits a host event other plugins may observe. */
  emitEvent(name: string, detail?: unknown): void;
}
`

// capabilityTypeBlock declares the plugin capability contracts: activation
// context, per-capability contexts, and the three plugin shapes.
const capabilityTypeBlock = `
/** Context handed to the plugin factory on activation. */
export interface PluginContext {
  pluginId: string;
  api: PluginAPI;
}

/** Context for a UI mount into a named slot. */
export interface UIContext {
  slot: string;
  api: PluginAPI;
}

/** Context for a middleware interception at a named pipeline point. */
export interface MiddlewareContext {
  point: string;
  payload: unknown;
  api: PluginAPI;
  next: (payload: unknown) => Promise<unknown>;
}

export type MountFunction = (container: HTMLElement, context: UIContext) => void;
export type ProcessFunction = (context: MiddlewareContext) => Promise<unknown>;

/** A plugin that renders interface elements into host slots. */
export interface UICapablePlugin {
  mount: MountFunction;
  unmount?: () => void;
}

/** A plugin that transforms data at host pipeline points. */
export interface MiddlewareCapablePlugin {
  process: ProcessFunction;
}

/** A plugin exposing both capability surfaces. */
export interface HybridPlugin extends UICapablePlugin, MiddlewareCapablePlugin {}

export type Plugin = UICapablePlugin | MiddlewareCapablePlugin | HybridPlugin;

export type PluginFactory = (context: PluginContext) => Plugin;
`

// renderTypesFile assembles src/types.ts: the shared host-services block
// followed by the capability contracts.
func renderTypesFile() string {
	return sharedTypeBlock + capabilityTypeBlock
}

// entryImports builds the type import line, listing exactly the contract
// types the generated body references.
func entryImports(c Category) string {
	names := []string{"PluginContext", "PluginFactory"}
	if c.HasMiddleware() {
		names = append(names, "MiddlewareContext")
	}
	if c.HasUI() {
		names = append(names, "UIContext")
	}
	sort.Strings(names)
	return fmt.Sprintf("import type { %s } from \"./types\";\n", strings.Join(names, ", "))
}

// mountFragment is the UI capability pair (mount plus unmount) for the
// entry stub's returned object.
func mountFragment(name string, typed bool) string {
	sig := "mount(container, ui)"
	if typed {
		sig = "mount(container: HTMLElement, ui: UIContext)"
	}
	return fmt.Sprintf(`    %s {
      container.textContent = %q + " mounted in slot " + ui.slot;
    },
    unmount() {
      context.api.log(%q + " unmounted");
    },
`, sig, name, name)
}

// processFragment is the middleware capability member for the entry stub's
// returned object. The stub logs and passes the payload through unchanged.
func processFragment(name string, typed bool) string {
	sig := "process(mw)"
	if typed {
		sig = "process(mw: MiddlewareContext)"
	}
	return fmt.Sprintf(`    %s {
      context.api.log(%q + " processing at " + mw.point);
      return mw.next(mw.payload);
    },
`, sig, name)
}

// capabilityFragments returns the returned-object members for a category,
// UI pair first.
func capabilityFragments(a Answers) []string {
	var fragments []string
	if a.Category.HasUI() {
		fragments = append(fragments, mountFragment(a.Name, a.StaticTyping))
	}
	if a.Category.HasMiddleware() {
		fragments = append(fragments, processFragment(a.Name, a.StaticTyping))
	}
	return fragments
}

// renderEntryFile assembles the plugin entry stub: import block (typed
// only), factory declaration, capability members, default export.
func renderEntryFile(a Answers) string {
	var b strings.Builder

	if a.StaticTyping {
		b.WriteString(entryImports(a.Category))
		b.WriteString("\nconst createPlugin: PluginFactory = (context: PluginContext) => {\n")
	} else {
		b.WriteString("const createPlugin = (context) => {\n")
	}

	b.WriteString("  return {\n")
	for _, fragment := range capabilityFragments(a) {
		b.WriteString(fragment)
	}
	b.WriteString("  };\n")
	b.WriteString("};\n")
	b.WriteString("\nexport default createPlugin;\n")

	return b.String()
}

// packScript archives the packaged files of a built plugin. Its content is
// the same for every generated project: it reads the descriptor's files
// list at run time, so regenerating a project never changes this script.
const packScript = `#!/usr/bin/env node
// Packs the built plugin into <name>-<version>.zip.
// Listed files that do not exist yet produce a warning and are skipped.
const fs = require("fs");
const path = require("path");
const archiver = require("archiver");

const root = path.join(__dirname, "..");
const pkg = JSON.parse(fs.readFileSync(path.join(root, "package.json"), "utf8"));

const archiveName = pkg.name + "-" + pkg.version + ".zip";
const output = fs.createWriteStream(path.join(root, archiveName));
const archive = archiver("zip", { zlib: { level: 9 } });

output.on("close", () => {
  console.log(archiveName + " written (" + archive.pointer() + " bytes)");
});
archive.on("error", (err) => {
  throw err;
});

archive.pipe(output);
for (const file of pkg.files || []) {
  const abs = path.join(root, file);
  if (!fs.existsSync(abs)) {
    console.warn("warning: " + file + " not found, skipping");
    continue;
  }
  archive.file(abs, { name: file });
}
archive.finalize();
`

// categoryNouns maps categories to the noun used in the README lead.
var categoryNouns = map[Category]string{
	CategoryUI:         "UI",
	CategoryMiddleware: "middleware",
	CategoryHybrid:     "hybrid",
}

// renderReadme produces the minimal project README.
func renderReadme(a Answers) string {
	return fmt.Sprintf("# %s\n\nA %s plugin scaffolded with %s.\n", a.Name, categoryNouns[a.Category], branding.DisplayName())
}
