package cli

import (
	"github.com/plugsmith-labs/plugsmith/internal/branding"
	"github.com/plugsmith-labs/plugsmith/internal/config"
	"github.com/plugsmith-labs/plugsmith/internal/output"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds host application plugins. Run it with no arguments and
answer a short series of questions; it writes a ready-to-build project with
a plugin manifest, build descriptor, optional TypeScript setup, packaging
script, and source stubs.

Question defaults can be set in ` + config.FilePath() + `
(keys: ` + config.KeyDefaultCategory + `, ` + config.KeyDefaultTyping + `).
Set ` + branding.EnvVar("VERBOSE") + `=true for debug logging.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		output.SetupLogging(config.GetBool(config.KeyVerbose))
	},
	RunE: runScaffold,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
