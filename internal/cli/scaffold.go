package cli

import (
	"errors"
	"fmt"

	"github.com/plugsmith-labs/plugsmith/internal/config"
	"github.com/plugsmith-labs/plugsmith/internal/manifest"
	"github.com/plugsmith-labs/plugsmith/internal/output"
	"github.com/plugsmith-labs/plugsmith/internal/scaffold"
	"github.com/plugsmith-labs/plugsmith/internal/wizard"
	"github.com/spf13/cobra"
)

// summaryAlignColumn is where file descriptions start in the summary listing.
const summaryAlignColumn = 30

// runScaffold drives the full interactive flow: collect answers, plan the
// artifact set, schema-check the planned manifest, then emit into ./<name>.
func runScaffold(cmd *cobra.Command, args []string) error {
	answers, err := wizard.Run(cmd.InOrStdin(), cmd.ErrOrStderr(), wizardOptions())
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return fmt.Errorf("cancelled, no files were written")
		}
		return err
	}

	artifacts, err := scaffold.Plan(*answers)
	if err != nil {
		return err
	}
	for _, a := range scaffold.Files(artifacts) {
		output.Debug("planned artifact", "path", a.Path, "bytes", len(a.Content))
	}

	warnManifestIssues(artifacts)

	result, err := scaffold.NewEmitter().Emit(artifacts, answers.Name)
	if err != nil {
		return err
	}

	printSummary(cmd, answers, result)
	return nil
}

// wizardOptions seeds question defaults from user configuration. An invalid
// configured category is ignored rather than surfaced.
func wizardOptions() wizard.Options {
	opts := wizard.Options{
		DefaultTyping: config.GetBool(config.KeyDefaultTyping),
	}
	if c := scaffold.Category(config.Get(config.KeyDefaultCategory)); c.Valid() {
		opts.DefaultCategory = c
	}
	return opts
}

// warnManifestIssues schema-checks the planned plugin.json bytes. Issues are
// reported as warnings and never fail the run; the planner is expected to
// produce valid manifests, so anything here points at a planner bug.
func warnManifestIssues(artifacts []scaffold.Artifact) {
	for _, a := range scaffold.Files(artifacts) {
		if a.Path != "plugin.json" {
			continue
		}
		result, err := manifest.Validate(a.Content)
		if err != nil {
			output.Warn("could not validate manifest", "err", err)
			return
		}
		if result.Valid {
			return
		}
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			output.Warn("manifest issue", "detail", msg)
		}
		return
	}
}

// printSummary reports the generated project with an aligned file listing
// and next steps.
func printSummary(cmd *cobra.Command, answers *scaffold.Answers, result *scaffold.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf(
		"Created %s plugin %s at %s/", answers.Category, output.Noun(answers.Name), result.Root)))

	entries := make([]output.FileEntry, 0, len(result.Files))
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f,
			Description: output.StyleDim.Render(fileDescription(f)),
		})
	}
	fmt.Fprint(out, output.RenderFileTree(entries, summaryAlignColumn))

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", result.Root)
	fmt.Fprintln(out, "  2. Run 'npm install' to install dependencies")
	fmt.Fprintln(out, "  3. Run 'npm run build', then 'npm run pack' to produce the distributable zip")
}

// fileDescription maps generated paths to summary descriptions.
func fileDescription(path string) string {
	descriptions := map[string]string{
		"plugin.json":     "plugin manifest",
		"package.json":    "build descriptor",
		"tsconfig.json":   "TypeScript compiler options",
		"README.md":       "project readme",
		"scripts/pack.js": "packaging script",
		"src/types.ts":    "plugin capability contracts",
		"src/index.tsx":   "plugin entry stub",
		"src/index.jsx":   "plugin entry stub",
	}
	return descriptions[path]
}
