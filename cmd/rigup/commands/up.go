package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/config"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/orchestrate"
	"github.com/thoreinstein/rigup/internal/report"
	"github.com/thoreinstein/rigup/pkg/fileutil"
)

var (
	upSkip        []string
	upInteractive bool
	upJSON        bool
	upReportFile  string
	upUser        string
)

func init() {
	upCmd.Flags().StringSliceVar(&upSkip, "skip", nil,
		"optional capability names to skip (repeatable)")
	upCmd.Flags().BoolVarP(&upInteractive, "interactive", "i", false,
		"pick which toolchains to bootstrap")
	upCmd.Flags().BoolVar(&upJSON, "json", false,
		"print the report as JSON")
	upCmd.Flags().StringVar(&upReportFile, "report-file", "",
		"also write the JSON report to this file")
	upCmd.Flags().StringVar(&upUser, "user", "",
		"user granted container engine group membership (default: $USER)")
	rootCmd.AddCommand(upCmd)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Install missing build dependencies and toolchains",
	Long: `Probe the machine for the capability catalog and install whatever is
missing: generic build dependencies through the platform package manager in
one bulk transaction, then language toolchains through their own installers.

Already present tools are left untouched; re-running is always safe.

Exit codes:
  0 - Done, including runs where optional toolchains failed
  2 - Unsupported platform, missing package manager, or a required
      dependency could not be installed
  3 - A package manager was just bootstrapped; re-run in a fresh shell`,
	RunE: runUp,
}

func runUp(cmd *cobra.Command, _ []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	manifest, err := config.LoadManifest(config.ManifestName)
	if err != nil {
		return errors.NewUserError(err, "Fix or remove "+config.ManifestName)
	}
	cfg = cfg.Merge(manifest)

	cfg = withExtraSkips(cfg, upSkip)

	if upInteractive {
		cfg, err = chooseToolchains(cfg)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return errors.Wrap(err, "toolchain selection failed")
		}
	}

	var extras []string
	if manifest != nil {
		extras = manifest.Packages.Extra
	}

	o := orchestrate.New(orchestrate.Options{
		Config:        cfg,
		ExtraPackages: extras,
		User:          upUser,
		Logger:        slog.Default(),
	})
	rep, runErr := o.Run(cmd.Context())

	if upJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, "encoding report")
		}
	} else {
		report.NewPresenter(cmd.OutOrStdout()).Present(rep)
	}

	if upReportFile != "" {
		if err := fileutil.AtomicWriteJSON(upReportFile, rep); err != nil {
			return errors.NewSystemError(err, "Could not write the report file")
		}
	}

	return exitErrorFor(runErr)
}

// withExtraSkips layers the --skip flag values over the config's skip list
// without mutating the original.
func withExtraSkips(cfg *config.Config, extra []string) *config.Config {
	if len(extra) == 0 {
		return cfg
	}
	skips := make([]string, 0, len(cfg.Skip)+len(extra))
	skips = append(skips, cfg.Skip...)
	return &config.Config{
		Version:    cfg.Version,
		Skip:       append(skips, extra...),
		Toolchains: cfg.Toolchains,
	}
}

// exitErrorFor maps the orchestrator's terminal conditions to exit codes.
// A Done run returns nil even when optional capabilities failed.
func exitErrorFor(runErr error) error {
	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, errors.ErrRestartRequired):
		return errors.NewRestartError(
			"Open a new shell and re-run `rigup up` to continue")
	case errors.Is(runErr, errors.ErrUnsupportedPlatform),
		errors.Is(runErr, errors.ErrPackageManagerMissing):
		return errors.NewSystemError(runErr,
			"rigup supports apt, yum, dnf, Homebrew, and Chocolatey hosts")
	case errors.Is(runErr, errors.ErrRequiredInstallFailed):
		return errors.NewSystemError(runErr,
			"Re-run with -v to see the package manager output")
	default:
		return errors.NewSystemError(runErr, "")
	}
}

// chooseToolchains presents a multi-select over the optional toolchains.
// Selected entries stay enabled; everything else is disabled for this run.
func chooseToolchains(cfg *config.Config) (*config.Config, error) {
	toolchains := capability.Toolchains()

	selected, err := fuzzyfinder.FindMulti(
		toolchains,
		func(i int) string {
			return toolchains[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Toolchain: %s\nProbe command: %s",
				toolchains[i].Name, toolchains[i].Command)
		}),
	)
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]bool, len(toolchains))
	for _, idx := range selected {
		enabled[toolchains[idx].Name] = true
	}

	out := &config.Config{
		Version:    cfg.Version,
		Skip:       cfg.Skip,
		Toolchains: make(map[string]bool, len(toolchains)),
	}
	for _, tc := range toolchains {
		out.Toolchains[tc.Name] = enabled[tc.Name] && cfg.ToolchainEnabled(tc.Name)
	}
	return out, nil
}
