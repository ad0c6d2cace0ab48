package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/config"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
	"github.com/thoreinstein/rigup/internal/paths"
	"github.com/thoreinstein/rigup/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter rigup configuration",
	Long: `Create ~/.config/rigup/config.yaml with every toolchain enabled and an
empty skip list, stamped with the detected package manager as a comment-free
baseline to edit.`,
	Example: `  # Create the config file
  rigup init

  # Replace an existing one
  rigup init --force`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	configPath := filepath.Join(paths.ConfigHome(), config.AppName, "config.yaml")

	w := cmd.OutOrStdout()
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	cfg := config.Config{
		Version:    1,
		Skip:       []string{},
		Toolchains: defaultToolchainToggles(),
	}
	if err := fileutil.AtomicWriteYAML(configPath, &cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	if profile, err := hostenv.Detect(execx.NewSystem(), runtime.GOOS); err == nil {
		fmt.Fprintf(w, "Detected package manager: %s\n", profile.PackageManager)
	}
	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}

// defaultToolchainToggles enables every known toolchain so the generated
// file shows the full set of names the operator can turn off.
func defaultToolchainToggles() map[string]bool {
	toggles := make(map[string]bool)
	for _, c := range capability.Toolchains() {
		toggles[c.Name] = true
	}
	return toggles
}
