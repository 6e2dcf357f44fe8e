// Package cli defines the Cobra command tree for the plugsmith CLI. The
// root command runs the interactive scaffolding flow; version is the only
// subcommand. Command implementations delegate to internal packages for
// business logic and only handle I/O formatting and user interaction.
package cli
