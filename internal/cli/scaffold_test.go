package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// chdir changes the working directory for the test and restores it on
// cleanup, mirroring testing.T.Chdir, which needs a newer Go toolchain
// than this module targets.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("chdir: cannot restore working directory: " + err.Error())
		}
	})
}

// execScaffold runs the root command with scripted wizard input from a
// temporary working directory, returning stdout, stderr, and the directory.
func execScaffold(t *testing.T, input string) (string, string, string) {
	t.Helper()
	tmp := t.TempDir()
	chdir(t, tmp)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v\nstderr:\n%s", err, stderr.String())
	}
	return stdout.String(), stderr.String(), tmp
}

func TestRootCommand_ScaffoldsTypedUIProject(t *testing.T) {
	stdout, _, tmp := execScaffold(t, "demo-plugin\n1\napp-header\ny\n")

	for _, f := range []string{
		"plugin.json",
		"package.json",
		"tsconfig.json",
		"README.md",
		"scripts/pack.js",
		"src/types.ts",
		"src/index.tsx",
	} {
		if _, err := os.Stat(filepath.Join(tmp, "demo-plugin", f)); err != nil {
			t.Errorf("expected %s under the project root: %v", f, err)
		}
	}

	if !strings.Contains(stdout, "demo-plugin") {
		t.Errorf("summary should name the project:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Next steps:") {
		t.Errorf("summary should print next steps:\n%s", stdout)
	}
	if !strings.Contains(stdout, "plugin manifest") {
		t.Errorf("summary should describe generated files:\n%s", stdout)
	}
}

func TestRootCommand_ScaffoldsUntypedMiddlewareProject(t *testing.T) {
	_, _, tmp := execScaffold(t, "mw-demo\n2\ncache-read\nn\n")

	if _, err := os.Stat(filepath.Join(tmp, "mw-demo", "src", "index.jsx")); err != nil {
		t.Errorf("expected untyped entry stub: %v", err)
	}
	for _, absent := range []string{"tsconfig.json", "src/types.ts", "src/index.tsx"} {
		if _, err := os.Stat(filepath.Join(tmp, "mw-demo", filepath.FromSlash(absent))); err == nil {
			t.Errorf("untyped project must not contain %s", absent)
		}
	}
}

func TestRootCommand_CancelledRunWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader("demo-plugin\n"))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for cancelled run")
	}
	if !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("error should report cancellation, got: %v", err)
	}

	entries, readErr := os.ReadDir(tmp)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("cancelled run must write nothing, found %d entries", len(entries))
	}
}

func TestFileDescription_CoversAllGeneratedFiles(t *testing.T) {
	for _, f := range []string{
		"plugin.json", "package.json", "tsconfig.json", "README.md",
		"scripts/pack.js", "src/types.ts", "src/index.tsx", "src/index.jsx",
	} {
		if fileDescription(f) == "" {
			t.Errorf("no summary description for %s", f)
		}
	}
}
